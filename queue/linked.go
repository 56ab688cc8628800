// SPDX-License-Identifier: MIT

package queue

import (
	"fmt"

	"github.com/katalvlaran/lvlds/core"
	"github.com/katalvlaran/lvlds/dll"
)

var _ Queue[int] = (*Linked[int])(nil)

// Linked is an unbounded queue over a doubly linked list.
type Linked[T comparable] struct {
	list *dll.List[T]
}

// NewLinked returns an empty unbounded queue.
func NewLinked[T comparable]() *Linked[T] {
	return &Linked[T]{list: dll.New[T]()}
}

// Enqueue appends v at the tail. Never fails. O(1).
func (q *Linked[T]) Enqueue(v T) error {
	q.list.Append(v)
	return nil
}

// Dequeue detaches the head. O(1).
func (q *Linked[T]) Dequeue() (T, error) {
	n, err := q.list.PopFirst()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("queue: Dequeue: %w", core.ErrEmpty)
	}

	return n.Value, nil
}

// Peek returns the head value. O(1).
func (q *Linked[T]) Peek() (T, error) {
	if q.list.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("queue: Peek: %w", core.ErrEmpty)
	}

	return q.list.Head().Value, nil
}

// Size returns the number of values. O(1).
func (q *Linked[T]) Size() int { return q.list.Len() }

// IsEmpty reports whether the queue holds nothing. O(1).
func (q *Linked[T]) IsEmpty() bool { return q.list.IsEmpty() }

// Clear drops every value. O(1).
func (q *Linked[T]) Clear() { q.list.DeleteAll() }

// String renders front to back.
func (q *Linked[T]) String() string { return q.list.String() }
