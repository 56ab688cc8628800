// SPDX-License-Identifier: MIT

package heap

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlds/core"
)

// Heap is a binary heap of at most Capacity() values.
type Heap[T constraints.Ordered] struct {
	slots  []T // len(slots) == capacity+1; slots[0] unused
	length int
}

// New returns an empty heap able to hold capacity values.
// Returns ErrInvalidCapacity when capacity < 1.
func New[T constraints.Ordered](capacity int) (*Heap[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	return &Heap[T]{slots: make([]T, capacity+1)}, nil
}

// Size returns the number of stored values. O(1).
func (h *Heap[T]) Size() int { return h.length }

// Capacity returns the fixed maximum number of values. O(1).
func (h *Heap[T]) Capacity() int { return len(h.slots) - 1 }

// IsEmpty reports whether Size() == 0. O(1).
func (h *Heap[T]) IsEmpty() bool { return h.length == 0 }

// Peek returns the root value without removing it. O(1).
func (h *Heap[T]) Peek() (T, error) {
	if h.length == 0 {
		var zero T
		return zero, fmt.Errorf("heap: Peek: %w", core.ErrEmpty)
	}

	return h.slots[1], nil
}

// Insert places v at slot Size()+1 and sifts it up under variant.
// Returns core.ErrFull when the heap is at capacity; the heap is untouched.
// Complexity: O(log n).
func (h *Heap[T]) Insert(v T, variant Variant) error {
	if h.length+1 > h.Capacity() {
		return fmt.Errorf("heap: Insert: %w (capacity %d)", core.ErrFull, h.Capacity())
	}
	h.length++
	h.slots[h.length] = v
	h.siftUp(h.length, variant)

	return nil
}

// Extract removes and returns the root: slot 1 is swapped with the last slot,
// the length shrinks, and the new root sifts down under variant.
// Returns core.ErrEmpty on an empty heap.
// Complexity: O(log n).
func (h *Heap[T]) Extract(variant Variant) (T, error) {
	if h.length == 0 {
		var zero T
		return zero, fmt.Errorf("heap: Extract: %w", core.ErrEmpty)
	}
	root := h.slots[1]
	h.swap(1, h.length)
	var zero T
	h.slots[h.length] = zero
	h.length--
	h.siftDown(1, variant)

	return root, nil
}

// LevelOrder returns a copy of slots 1..Size(). O(n).
func (h *Heap[T]) LevelOrder() []T {
	out := make([]T, h.length)
	copy(out, h.slots[1:h.length+1])

	return out
}

// Clear empties the heap, keeping its capacity. O(1) amortized.
func (h *Heap[T]) Clear() {
	clear(h.slots)
	h.length = 0
}

// String renders slots 1..Size() separated by spaces, or core.EmptyRendering.
func (h *Heap[T]) String() string {
	if h.length == 0 {
		return core.EmptyRendering
	}
	var sb strings.Builder
	for i := 1; i <= h.length; i++ {
		if i > 1 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, h.slots[i])
	}

	return sb.String()
}

// before reports whether a must sit strictly above b under variant.
func before[T constraints.Ordered](a, b T, variant Variant) bool {
	if variant == Min {
		return a < b
	}

	return a > b
}

// siftUp swaps slot i with its parent while it strictly beats the parent.
func (h *Heap[T]) siftUp(i int, variant Variant) {
	for i > 1 {
		parent := i / 2
		if !before(h.slots[i], h.slots[parent], variant) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown moves slot i toward the leaves until neither child beats it.
//  1. pick the left child, switch to the right one only if it strictly wins;
//  2. swap if the chosen child strictly beats the parent, else stop.
func (h *Heap[T]) siftDown(i int, variant Variant) {
	for {
		child := 2 * i
		if child > h.length {
			return
		}
		if right := child + 1; right <= h.length && before(h.slots[right], h.slots[child], variant) {
			child = right
		}
		if !before(h.slots[child], h.slots[i], variant) {
			return
		}
		h.swap(i, child)
		i = child
	}
}

func (h *Heap[T]) swap(i, j int) {
	h.slots[i], h.slots[j] = h.slots[j], h.slots[i]
}
