// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlds/core"
)

const (
	methodRange      = "Range"
	methodDescending = "Descending"
	methodLiteral    = "Literal"
	minValues        = 1
)

// Range appends start, start+step, ..., start+(n-1)*step. n ≥ 1.
// Complexity: O(n).
func Range(start, n int) Constructor {
	return func(dst core.Appender[int], cfg builderConfig) error {
		if n < minValues {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRange, n, minValues, ErrTooFewValues)
		}
		for i := 0; i < n; i++ {
			dst.Append(start + i*cfg.step)
		}

		return nil
	}
}

// Descending appends start, start-step, ..., start-(n-1)*step. n ≥ 1.
// Complexity: O(n).
func Descending(start, n int) Constructor {
	return func(dst core.Appender[int], cfg builderConfig) error {
		if n < minValues {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodDescending, n, minValues, ErrTooFewValues)
		}
		for i := 0; i < n; i++ {
			dst.Append(start - i*cfg.step)
		}

		return nil
	}
}

// Literal appends vs in the given order. At least one value is required.
// The slice is copied at construction time.
func Literal(vs ...int) Constructor {
	values := append([]int(nil), vs...)

	return func(dst core.Appender[int], _ builderConfig) error {
		if len(values) < minValues {
			return fmt.Errorf("%s: no values: %w", methodLiteral, ErrTooFewValues)
		}
		for _, v := range values {
			dst.Append(v)
		}

		return nil
	}
}
