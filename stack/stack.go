// SPDX-License-Identifier: MIT

package stack

// Stack is a last-in, first-out container.
type Stack[T any] interface {
	// Push places v on top. Bounded stacks return core.ErrFull at capacity.
	Push(v T) error

	// Pop removes and returns the top value, or core.ErrEmpty.
	Pop() (T, error)

	// Peek returns the top value without removing it, or core.ErrEmpty.
	Peek() (T, error)

	// Size returns the number of stored values.
	Size() int

	// IsEmpty reports whether Size() == 0.
	IsEmpty() bool

	// Clear removes every value.
	Clear()
}

// Option configures NewSlice.
type Option func(*options)

type options struct {
	capacity int // 0 = unbounded
}

// WithCapacity bounds the stack to n values.
// Panics if n < 1.
func WithCapacity(n int) Option {
	if n < 1 {
		panic("stack: WithCapacity(n): n must be ≥ 1")
	}

	return func(o *options) { o.capacity = n }
}
