// SPDX-License-Identifier: MIT

package stack

import (
	"fmt"

	"github.com/katalvlaran/lvlds/core"
	"github.com/katalvlaran/lvlds/sll"
)

var _ Stack[int] = (*Linked[int])(nil)

// Linked is a stack whose top is the head of a singly linked list.
type Linked[T comparable] struct {
	list *sll.List[T]
}

// NewLinked returns an empty unbounded stack.
func NewLinked[T comparable]() *Linked[T] {
	return &Linked[T]{list: sll.New[T]()}
}

// Push prepends v. Never fails. O(1).
func (s *Linked[T]) Push(v T) error {
	s.list.Prepend(v)
	return nil
}

// Pop detaches the head. O(1).
func (s *Linked[T]) Pop() (T, error) {
	n, err := s.list.PopFirst()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("stack: Pop: %w", core.ErrEmpty)
	}

	return n.Value, nil
}

// Peek returns the head value. O(1).
func (s *Linked[T]) Peek() (T, error) {
	if s.list.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("stack: Peek: %w", core.ErrEmpty)
	}

	return s.list.Head().Value, nil
}

// Size returns the number of values. O(1).
func (s *Linked[T]) Size() int { return s.list.Len() }

// IsEmpty reports whether the stack holds nothing. O(1).
func (s *Linked[T]) IsEmpty() bool { return s.list.IsEmpty() }

// Clear drops every value. O(1).
func (s *Linked[T]) Clear() { s.list.DeleteAll() }

// String renders top to bottom.
func (s *Linked[T]) String() string { return s.list.String() }
