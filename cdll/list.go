// SPDX-License-Identifier: MIT

package cdll

import (
	"iter"

	"github.com/katalvlaran/lvlds/core"
)

var _ core.Sequence[int] = (*List[int])(nil)

// Node is a value cell on a doubly linked ring.
type Node[T comparable] struct {
	// Value is the payload; callers may overwrite it in place.
	Value T

	prev *Node[T]
	next *Node[T]
	list *List[T] // owning list; nil once detached
}

// Next returns the following node on the ring, or nil once detached.
func (n *Node[T]) Next() *Node[T] {
	if n.list == nil {
		return nil
	}

	return n.next
}

// Prev returns the preceding node on the ring, or nil once detached.
func (n *Node[T]) Prev() *Node[T] {
	if n.list == nil {
		return nil
	}

	return n.prev
}

func (n *Node[T]) detach() {
	n.prev, n.next = nil, nil
	n.list = nil
}

// List is a circular doubly linked list. The zero value is an empty list.
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

// All yields one revolution from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.head == nil {
			return
		}
		for n := l.head; ; {
			if !yield(n.Value) {
				return
			}
			if n = n.next; n == l.head {
				return
			}
		}
	}
}

// Backward yields one revolution from tail to head, stopping when the walk
// revisits tail.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.tail == nil {
			return
		}
		for n := l.tail; ; {
			if !yield(n.Value) {
				return
			}
			if n = n.prev; n == l.tail {
				return
			}
		}
	}
}

// Traverse returns the values from head to tail.
func (l *List[T]) Traverse() []T {
	return collect(l.All(), l.length)
}

// ReverseTraverse returns the values from tail to head.
func (l *List[T]) ReverseTraverse() []T {
	return collect(l.Backward(), l.length)
}

// String renders one revolution as "a <-> b <-> c", or "Empty".
func (l *List[T]) String() string {
	return core.Render(l.All(), core.ArrowBoth)
}

func collect[T any](seq iter.Seq[T], n int) []T {
	out := make([]T, 0, n)
	for v := range seq {
		out = append(out, v)
	}

	return out
}
