// SPDX-License-Identifier: MIT

package stack

import (
	"fmt"

	"github.com/katalvlaran/lvlds/core"
)

var _ Stack[int] = (*Slice[int])(nil)

// Slice is a stack whose top is the end of a slice.
type Slice[T any] struct {
	items    []T
	capacity int // 0 = unbounded
}

// NewSlice returns an empty stack configured by opts.
func NewSlice[T any](opts ...Option) *Slice[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Slice[T]{items: make([]T, 0, o.capacity), capacity: o.capacity}
}

// Push appends v. Returns core.ErrFull on a bounded stack at capacity.
// Amortized O(1).
func (s *Slice[T]) Push(v T) error {
	if s.capacity > 0 && len(s.items) == s.capacity {
		return fmt.Errorf("stack: Push: %w (capacity %d)", core.ErrFull, s.capacity)
	}
	s.items = append(s.items, v)

	return nil
}

// Pop removes the last element. O(1).
func (s *Slice[T]) Pop() (T, error) {
	var zero T
	last := len(s.items) - 1
	if last < 0 {
		return zero, fmt.Errorf("stack: Pop: %w", core.ErrEmpty)
	}
	v := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]

	return v, nil
}

// Peek returns the last element. O(1).
func (s *Slice[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, fmt.Errorf("stack: Peek: %w", core.ErrEmpty)
	}

	return s.items[len(s.items)-1], nil
}

// Size returns the number of values. O(1).
func (s *Slice[T]) Size() int { return len(s.items) }

// IsEmpty reports whether the stack holds nothing. O(1).
func (s *Slice[T]) IsEmpty() bool { return len(s.items) == 0 }

// Capacity returns the bound, or 0 when unbounded.
func (s *Slice[T]) Capacity() int { return s.capacity }

// Clear drops every value, keeping the backing array.
func (s *Slice[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}
