// SPDX-License-Identifier: MIT

package sll

import (
	"fmt"

	"github.com/katalvlaran/lvlds/core"
)

// Append links a new node after the tail. O(1).
func (l *List[T]) Append(v T) {
	n := &Node[T]{Value: v, list: l}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.length++
}

// Prepend links a new node before the head. O(1).
func (l *List[T]) Prepend(v T) {
	n := &Node[T]{Value: v, next: l.head, list: l}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.length++
}

// InsertAt places v at position i, shifting the rest towards the tail.
// i == 0 prepends, i == Len() appends.
// Returns ErrOutOfRange unless 0 ≤ i ≤ Len(); the list is untouched on error.
// Complexity: O(i).
func (l *List[T]) InsertAt(i int, v T) error {
	if err := core.CheckInsertIndex(i, l.length); err != nil {
		return fmt.Errorf("sll: InsertAt(%d): %w", i, err)
	}
	switch i {
	case 0:
		l.Prepend(v)
	case l.length:
		l.Append(v)
	default:
		prev := l.walk(i - 1)
		prev.next = &Node[T]{Value: v, next: prev.next, list: l}
		l.length++
	}

	return nil
}

// NodeAt returns the node at position i.
// Complexity: O(i).
func (l *List[T]) NodeAt(i int) (*Node[T], error) {
	if err := core.CheckIndex(i, l.length); err != nil {
		return nil, fmt.Errorf("sll: NodeAt(%d): %w", i, err)
	}

	return l.walk(i), nil
}

// GetAt returns the value at position i.
func (l *List[T]) GetAt(i int) (T, error) {
	n, err := l.NodeAt(i)
	if err != nil {
		var zero T
		return zero, err
	}

	return n.Value, nil
}

// SetAt overwrites the value at position i.
func (l *List[T]) SetAt(i int, v T) error {
	n, err := l.NodeAt(i)
	if err != nil {
		return err
	}
	n.Value = v

	return nil
}

// PopFirst detaches and returns the head node. Returns ErrEmpty on an empty list.
// Complexity: O(1).
func (l *List[T]) PopFirst() (*Node[T], error) {
	if l.length == 0 {
		return nil, fmt.Errorf("sll: PopFirst: %w", core.ErrEmpty)
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.length--
	n.detach()

	return n, nil
}

// PopLast detaches and returns the tail node. Returns ErrEmpty on an empty list.
// Complexity: O(n), the predecessor of tail has to be found from head.
func (l *List[T]) PopLast() (*Node[T], error) {
	if l.length == 0 {
		return nil, fmt.Errorf("sll: PopLast: %w", core.ErrEmpty)
	}
	if l.length == 1 {
		return l.PopFirst()
	}
	n := l.tail
	prev := l.walk(l.length - 2)
	prev.next = nil
	l.tail = prev
	l.length--
	n.detach()

	return n, nil
}

// RemoveAt detaches and returns the node at position i.
// Complexity: O(i).
func (l *List[T]) RemoveAt(i int) (*Node[T], error) {
	if err := core.CheckIndex(i, l.length); err != nil {
		return nil, fmt.Errorf("sll: RemoveAt(%d): %w", i, err)
	}
	switch i {
	case 0:
		return l.PopFirst()
	case l.length - 1:
		return l.PopLast()
	}
	prev := l.walk(i - 1)
	n := prev.next
	prev.next = n.next
	l.length--
	n.detach()

	return n, nil
}

// Search returns the index of the first node whose value equals v,
// or core.NotFound.
// Complexity: O(n).
func (l *List[T]) Search(v T) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.Value == v {
			return i
		}
		i++
	}

	return core.NotFound
}

// Reverse flips the list in place so the old tail becomes the head.
// Complexity: O(n) time, O(1) space.
func (l *List[T]) Reverse() {
	var prev *Node[T]
	cur := l.head
	l.tail = l.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev, cur = cur, next
	}
	l.head = prev
}

// DeleteAll drops every node and restores the empty state.
// Complexity: O(1).
func (l *List[T]) DeleteAll() {
	l.head, l.tail = nil, nil
	l.length = 0
}

// walk returns the node at position i; i must already be validated.
func (l *List[T]) walk(i int) *Node[T] {
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}

	return n
}
