// SPDX-License-Identifier: MIT

package dll_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/lvlds/dll"
)

// TestListProperties checks the algebraic laws of the positional API
// against arbitrary contents.
func TestListProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("append then pop last is identity", prop.ForAll(
		func(values []int, v int) string {
			l := dll.New(values...)
			l.Append(v)
			n, err := l.PopLast()
			if err != nil {
				return err.Error()
			}
			if n.Value != v {
				return fmt.Sprintf("popped %d, want %d", n.Value, v)
			}
			if !slices.Equal(l.Traverse(), values) {
				return fmt.Sprintf("list %v, want %v", l.Traverse(), values)
			}
			return ""
		},
		gen.SliceOf(gen.Int()),
		gen.Int(),
	))

	properties.Property("prepend then pop first is identity", prop.ForAll(
		func(values []int, v int) string {
			l := dll.New(values...)
			l.Prepend(v)
			n, err := l.PopFirst()
			if err != nil {
				return err.Error()
			}
			if n.Value != v || n.Next() != nil || n.Prev() != nil {
				return fmt.Sprintf("bad popped node %+v", n)
			}
			if !slices.Equal(l.Traverse(), values) {
				return fmt.Sprintf("list %v, want %v", l.Traverse(), values)
			}
			return ""
		},
		gen.SliceOf(gen.Int()),
		gen.Int(),
	))

	properties.Property("insert at then remove at is identity", prop.ForAll(
		func(values []int, pos int, v int) string {
			l := dll.New(values...)
			i := pos % (len(values) + 1)
			if err := l.InsertAt(i, v); err != nil {
				return err.Error()
			}
			n, err := l.RemoveAt(i)
			if err != nil {
				return err.Error()
			}
			if n.Value != v {
				return fmt.Sprintf("removed %d at %d, want %d", n.Value, i, v)
			}
			if !slices.Equal(l.Traverse(), values) {
				return fmt.Sprintf("list %v, want %v", l.Traverse(), values)
			}
			return ""
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 1<<10),
		gen.Int(),
	))

	properties.Property("reverse traverse mirrors traverse", prop.ForAll(
		func(values []int) bool {
			l := dll.New(values...)
			fwd := l.Traverse()
			slices.Reverse(fwd)
			return slices.Equal(fwd, l.ReverseTraverse()) && len(fwd) == l.Len()
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("get at agrees with traverse", prop.ForAll(
		func(values []int) string {
			l := dll.New(values...)
			for i, want := range values {
				got, err := l.GetAt(i)
				if err != nil {
					return err.Error()
				}
				if got != want {
					return fmt.Sprintf("GetAt(%d) = %d, want %d", i, got, want)
				}
			}
			return ""
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}
