// SPDX-License-Identifier: MIT

package csll

import (
	"fmt"

	"github.com/katalvlaran/lvlds/core"
)

// Append links a new node after the tail and closes the ring on it. O(1).
// On an empty list the new node links to itself.
func (l *List[T]) Append(v T) {
	n := &Node[T]{Value: v, list: l}
	if l.head == nil {
		n.next = n
		l.head, l.tail = n, n
	} else {
		n.next = l.head
		l.tail.next = n
		l.tail = n
	}
	l.length++
}

// Prepend links a new node before the head and repoints tail.next at it. O(1).
func (l *List[T]) Prepend(v T) {
	n := &Node[T]{Value: v, list: l}
	if l.head == nil {
		n.next = n
		l.head, l.tail = n, n
	} else {
		n.next = l.head
		l.head = n
		l.tail.next = n
	}
	l.length++
}

// InsertAt places v at position i. i == 0 prepends; i == Len() or
// i == TailIndex appends; otherwise the node at i-1 is reached by walking
// forward from head and the new node is spliced after it.
// Returns ErrOutOfRange for any other index; the list is untouched on error.
// Complexity: O(i).
func (l *List[T]) InsertAt(i int, v T) error {
	if i == TailIndex {
		l.Append(v)
		return nil
	}
	if err := core.CheckInsertIndex(i, l.length); err != nil {
		return fmt.Errorf("csll: InsertAt(%d): %w", i, err)
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

// NodeAt returns the node at position i by walking forward from head.
// Complexity: O(i).
func (l *List[T]) NodeAt(i int) (*Node[T], error) {
	if err := core.CheckIndex(i, l.length); err != nil {
		return nil, fmt.Errorf("csll: NodeAt(%d): %w", i, err)
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

// PopFirst detaches and returns the head node. O(1).
// Removing the only node empties the list (head = tail = nil).
func (l *List[T]) PopFirst() (*Node[T], error) {
	if l.length == 0 {
		return nil, fmt.Errorf("csll: PopFirst: %w", core.ErrEmpty)
	}
	n := l.head
	if l.length == 1 {
		l.head, l.tail = nil, nil
	} else {
		l.head = n.next
		l.tail.next = l.head
	}
	l.length--
	n.detach()

	return n, nil
}

// PopLast detaches and returns the tail node.
// Complexity: O(n), the node preceding tail is found by scanning from head.
func (l *List[T]) PopLast() (*Node[T], error) {
	if l.length == 0 {
		return nil, fmt.Errorf("csll: PopLast: %w", core.ErrEmpty)
	}
	if l.length == 1 {
		return l.PopFirst()
	}
	n := l.tail
	prev := l.walk(l.length - 2)
	prev.next = l.head
	l.tail = prev
	l.length--
	n.detach()

	return n, nil
}

// RemoveAt detaches and returns the node at position i.
// Complexity: O(i).
func (l *List[T]) RemoveAt(i int) (*Node[T], error) {
	if err := core.CheckIndex(i, l.length); err != nil {
		return nil, fmt.Errorf("csll: RemoveAt(%d): %w", i, err)
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

// Search returns the index of the first node whose value equals v, or
// core.NotFound after one full revolution.
// Complexity: O(n).
func (l *List[T]) Search(v T) int {
	if l.head == nil {
		return core.NotFound
	}
	n, i := l.head, 0
	for {
		if n.Value == v {
			return i
		}
		n = n.next
		i++
		if n == l.head {
			return core.NotFound
		}
	}
}

// DeleteAll breaks the tail→head edge, then drops every node. O(1).
func (l *List[T]) DeleteAll() {
	if l.tail != nil {
		l.tail.next = nil
	}
	l.head, l.tail = nil, nil
	l.length = 0
}

// walk returns the node at a validated position i.
func (l *List[T]) walk(i int) *Node[T] {
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}

	return n
}
