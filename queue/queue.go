// SPDX-License-Identifier: MIT

package queue

import "errors"

// ErrClosed is returned by Blocking once Close has been called.
var ErrClosed = errors.New("queue: closed")

// Queue is a first-in, first-out container.
type Queue[T any] interface {
	// Enqueue adds v at the back. Bounded queues return core.ErrFull.
	Enqueue(v T) error

	// Dequeue removes and returns the front value, or core.ErrEmpty.
	Dequeue() (T, error)

	// Peek returns the front value without removing it, or core.ErrEmpty.
	Peek() (T, error)

	// Size returns the number of stored values.
	Size() int

	// IsEmpty reports whether Size() == 0.
	IsEmpty() bool

	// Clear removes every value.
	Clear()
}
