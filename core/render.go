// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"iter"
	"strings"
)

// Render joins the values yielded by seq with the given arrow token.
// A sequence that yields nothing renders as EmptyRendering.
//
// Example:
//
//	Render(list.All(), ArrowForward) // "10 -> 20 -> 30"
//
// Complexity: O(n) time, O(n) space for the output string.
func Render[T any](seq iter.Seq[T], arrow string) string {
	var sb strings.Builder
	first := true
	for v := range seq {
		if !first {
			sb.WriteString(arrow)
		}
		fmt.Fprint(&sb, v)
		first = false
	}
	if first {
		return EmptyRendering
	}

	return sb.String()
}
