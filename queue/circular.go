// SPDX-License-Identifier: MIT

package queue

import (
	"fmt"

	"github.com/katalvlaran/lvlds/core"
)

var _ Queue[int] = (*Circular[int])(nil)

// Circular is a bounded ring-buffer queue.
type Circular[T any] struct {
	slots []T
	start int // index of the front element, -1 when empty
	top   int // index of the back element, -1 when empty
}

// NewCircular returns an empty queue holding at most capacity values.
// Panics if capacity < 1.
func NewCircular[T any](capacity int) *Circular[T] {
	if capacity < 1 {
		panic("queue: NewCircular(capacity): capacity must be ≥ 1")
	}

	return &Circular[T]{slots: make([]T, capacity), start: -1, top: -1}
}

// Capacity returns the fixed number of slots.
func (q *Circular[T]) Capacity() int { return len(q.slots) }

// Indices returns the raw start and top indices; both are -1 when empty.
func (q *Circular[T]) Indices() (start, top int) { return q.start, q.top }

// IsEmpty reports start = top = -1. O(1).
func (q *Circular[T]) IsEmpty() bool { return q.start == -1 }

// IsFull reports (top+1) mod C = start. O(1).
func (q *Circular[T]) IsFull() bool {
	return !q.IsEmpty() && (q.top+1)%len(q.slots) == q.start
}

// Size returns the number of values between start and top inclusive. O(1).
func (q *Circular[T]) Size() int {
	switch {
	case q.IsEmpty():
		return 0
	case q.top >= q.start:
		return q.top - q.start + 1
	default:
		return len(q.slots) - q.start + q.top + 1
	}
}

// Enqueue advances top with wraparound and stores v there.
// The first element of an empty queue lands in slot 0.
// Returns core.ErrFull at capacity. O(1).
func (q *Circular[T]) Enqueue(v T) error {
	if q.IsFull() {
		return fmt.Errorf("queue: Enqueue: %w (capacity %d)", core.ErrFull, len(q.slots))
	}
	if q.IsEmpty() {
		q.start, q.top = 0, 0
	} else {
		q.top = (q.top + 1) % len(q.slots)
	}
	q.slots[q.top] = v

	return nil
}

// Dequeue returns the value at start and advances start with wraparound.
// Removing the last value resets both indices to -1. O(1).
func (q *Circular[T]) Dequeue() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, fmt.Errorf("queue: Dequeue: %w", core.ErrEmpty)
	}
	v := q.slots[q.start]
	q.slots[q.start] = zero
	if q.start == q.top {
		q.start, q.top = -1, -1
	} else {
		q.start = (q.start + 1) % len(q.slots)
	}

	return v, nil
}

// Peek returns the value at start. O(1).
func (q *Circular[T]) Peek() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("queue: Peek: %w", core.ErrEmpty)
	}

	return q.slots[q.start], nil
}

// Clear empties the queue and resets both indices to -1.
func (q *Circular[T]) Clear() {
	clear(q.slots)
	q.start, q.top = -1, -1
}
