// SPDX-License-Identifier: MIT

package dll

import (
	"fmt"

	"github.com/katalvlaran/lvlds/core"
)

// Append links a new node after the tail. O(1).
func (l *List[T]) Append(v T) {
	n := &Node[T]{Value: v, prev: l.tail, list: l}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
}

// Prepend links a new node before the head. O(1).
func (l *List[T]) Prepend(v T) {
	n := &Node[T]{Value: v, next: l.head, list: l}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.length++
}

// InsertAt places v at position i. i == 0 prepends, i == Len() appends;
// otherwise the node at i-1 is located and the new node is spliced after it,
// updating all four affected links.
// Returns ErrOutOfRange unless 0 ≤ i ≤ Len(); nothing is allocated on error.
// Complexity: O(min(i, n-i)).
func (l *List[T]) InsertAt(i int, v T) error {
	if err := core.CheckInsertIndex(i, l.length); err != nil {
		return fmt.Errorf("dll: InsertAt(%d): %w", i, err)
	}
	switch i {
	case 0:
		l.Prepend(v)
	case l.length:
		l.Append(v)
	default:
		l.insertAfter(l.walk(i-1), v)
	}

	return nil
}

// InsertAfter links v right after mark and returns the new node.
// Returns ErrNotFound when mark does not belong to l.
// Complexity: O(1).
func (l *List[T]) InsertAfter(mark *Node[T], v T) (*Node[T], error) {
	if !l.owns(mark) {
		return nil, fmt.Errorf("dll: InsertAfter: mark %w in list", core.ErrNotFound)
	}
	if mark == l.tail {
		l.Append(v)
		return l.tail, nil
	}

	return l.insertAfter(mark, v), nil
}

// InsertBefore links v right before mark and returns the new node.
// Returns ErrNotFound when mark does not belong to l.
// Complexity: O(1).
func (l *List[T]) InsertBefore(mark *Node[T], v T) (*Node[T], error) {
	if !l.owns(mark) {
		return nil, fmt.Errorf("dll: InsertBefore: mark %w in list", core.ErrNotFound)
	}
	if mark == l.head {
		l.Prepend(v)
		return l.head, nil
	}

	return l.insertAfter(mark.prev, v), nil
}

// NodeAt returns the node at position i, walking from the closer end.
// Complexity: O(min(i, n-i)).
func (l *List[T]) NodeAt(i int) (*Node[T], error) {
	if err := core.CheckIndex(i, l.length); err != nil {
		return nil, fmt.Errorf("dll: NodeAt(%d): %w", i, err)
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
// Returns ErrEmpty on an empty list.
func (l *List[T]) PopFirst() (*Node[T], error) {
	if l.length == 0 {
		return nil, fmt.Errorf("dll: PopFirst: %w", core.ErrEmpty)
	}
	n := l.head
	l.unlink(n)

	return n, nil
}

// PopLast detaches and returns the tail node. O(1).
// Returns ErrEmpty on an empty list.
func (l *List[T]) PopLast() (*Node[T], error) {
	if l.length == 0 {
		return nil, fmt.Errorf("dll: PopLast: %w", core.ErrEmpty)
	}
	n := l.tail
	l.unlink(n)

	return n, nil
}

// RemoveAt detaches and returns the node at position i.
// The ends delegate to PopFirst/PopLast; interior nodes are found by
// bidirectional traversal and unlinked (left.next = right, right.prev = left).
// Complexity: O(1) at the ends, O(min(i, n-i)) otherwise.
func (l *List[T]) RemoveAt(i int) (*Node[T], error) {
	if err := core.CheckIndex(i, l.length); err != nil {
		return nil, fmt.Errorf("dll: RemoveAt(%d): %w", i, err)
	}
	switch i {
	case 0:
		return l.PopFirst()
	case l.length - 1:
		return l.PopLast()
	}
	n := l.walk(i)
	l.unlink(n)

	return n, nil
}

// Remove detaches n from l. Returns ErrNotFound when n does not belong to l.
// Complexity: O(1).
func (l *List[T]) Remove(n *Node[T]) error {
	if !l.owns(n) {
		return fmt.Errorf("dll: Remove: node %w in list", core.ErrNotFound)
	}
	l.unlink(n)

	return nil
}

// Search returns the index of the first node whose value equals v,
// or core.NotFound. O(n).
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

// Reverse flips the list in place by swapping each node's links.
// Complexity: O(n) time, O(1) space.
func (l *List[T]) Reverse() {
	for n := l.head; n != nil; n = n.prev {
		n.prev, n.next = n.next, n.prev
	}
	l.head, l.tail = l.tail, l.head
}

// DeleteAll detaches every node and restores the empty state, so handles
// obtained earlier are rejected by InsertAfter, InsertBefore and Remove.
// Complexity: O(n).
func (l *List[T]) DeleteAll() {
	for n := l.head; n != nil; {
		next := n.next
		n.detach()
		n = next
	}
	l.head, l.tail = nil, nil
	l.length = 0
}

// owns reports whether n is a live node of l.
func (l *List[T]) owns(n *Node[T]) bool {
	return n != nil && n.list == l
}

// walk returns the node at a validated position i, starting from head when
// i < length/2 and from tail otherwise.
func (l *List[T]) walk(i int) *Node[T] {
	if i < l.length/2 {
		n := l.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := l.tail
	for j := l.length - 1; j > i; j-- {
		n = n.prev
	}

	return n
}

// insertAfter splices a new node between mark and mark.next.
// mark must not be the tail.
func (l *List[T]) insertAfter(mark *Node[T], v T) *Node[T] {
	n := &Node[T]{Value: v, prev: mark, next: mark.next, list: l}
	mark.next.prev = n
	mark.next = n
	l.length++

	return n
}

// unlink removes n from the chain, repairs the neighbours and head/tail,
// and detaches n.
func (l *List[T]) unlink(n *Node[T]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	l.length--
	n.detach()
}
