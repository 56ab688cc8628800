// SPDX-License-Identifier: MIT

package csll

import (
	"iter"

	"github.com/katalvlaran/lvlds/core"
)

// TailIndex is accepted by InsertAt as shorthand for "append after the tail".
const TailIndex = -1

var _ core.Sequence[int] = (*List[int])(nil)

// Node is a value cell on the ring.
type Node[T comparable] struct {
	// Value is the payload; callers may overwrite it in place.
	Value T

	next *Node[T]
	list *List[T] // owning list; nil once detached
}

// Next returns the following node on the ring (the head, for the tail),
// or nil once the node is detached.
func (n *Node[T]) Next() *Node[T] {
	if n.list == nil {
		return nil
	}

	return n.next
}

func (n *Node[T]) detach() {
	n.next = nil
	n.list = nil
}

// List is a circular singly linked list. The zero value is an empty list.
type List[T comparable] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
}

// New returns a list holding values in order.
func New[T comparable](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.Append(v)
	}

	return l
}

// Len returns the number of nodes. O(1).
func (l *List[T]) Len() int { return l.length }

// IsEmpty reports whether the list holds no nodes. O(1).
func (l *List[T]) IsEmpty() bool { return l.length == 0 }

// Head returns the first node, or nil when empty.
func (l *List[T]) Head() *Node[T] { return l.head }

// Tail returns the last node, or nil when empty.
func (l *List[T]) Tail() *Node[T] { return l.tail }

// All yields one full revolution of values starting at head.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.head == nil {
			return
		}
		n := l.head
		for {
			if !yield(n.Value) {
				return
			}
			n = n.next
			if n == l.head {
				return
			}
		}
	}
}

// Traverse returns the values from head to tail.
func (l *List[T]) Traverse() []T {
	out := make([]T, 0, l.length)
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}

// String renders one revolution as "a -> b -> c", or "Empty".
func (l *List[T]) String() string {
	return core.Render(l.All(), core.ArrowForward)
}
