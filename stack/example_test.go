// SPDX-License-Identifier: MIT

package stack_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/stack"
)

// ExampleNewSlice reverses a word with a bounded stack.
func ExampleNewSlice() {
	word := "lvlds"
	s := stack.NewSlice[rune](stack.WithCapacity(len(word)))
	for _, r := range word {
		_ = s.Push(r)
	}
	var out []rune
	for !s.IsEmpty() {
		r, _ := s.Pop()
		out = append(out, r)
	}
	fmt.Println(string(out))
	// Output:
	// sdlvl
}
