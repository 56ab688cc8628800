// SPDX-License-Identifier: MIT

package heap_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/lvlds/heap"
)

// drain inserts every value under variant and extracts until empty.
func drain(values []int, variant heap.Variant) ([]int, error) {
	h, err := heap.New[int](len(values) + 1)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if err := h.Insert(v, variant); err != nil {
			return nil, err
		}
	}
	out := make([]int, 0, len(values))
	for !h.IsEmpty() {
		v, err := h.Extract(variant)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

func TestHeapProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("min extraction yields the sorted multiset", prop.ForAll(
		func(values []int) string {
			got, err := drain(values, heap.Min)
			if err != nil {
				return err.Error()
			}
			want := slices.Clone(values)
			slices.Sort(want)
			if !slices.Equal(got, want) {
				return fmt.Sprintf("got %v, want %v", got, want)
			}
			return ""
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	properties.Property("max extraction yields the reverse-sorted multiset", prop.ForAll(
		func(values []int) string {
			got, err := drain(values, heap.Max)
			if err != nil {
				return err.Error()
			}
			want := slices.Clone(values)
			slices.Sort(want)
			slices.Reverse(want)
			if !slices.Equal(got, want) {
				return fmt.Sprintf("got %v, want %v", got, want)
			}
			return ""
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	properties.Property("every parent dominates its children", prop.ForAll(
		func(values []int) bool {
			h, err := heap.New[int](len(values) + 1)
			if err != nil {
				return false
			}
			for _, v := range values {
				if h.Insert(v, heap.Max) != nil {
					return false
				}
			}
			slots := append([]int{0}, h.LevelOrder()...)
			for i := 2; i < len(slots); i++ {
				if slots[i/2] < slots[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}
