// SPDX-License-Identifier: MIT

package cdll

import (
	"fmt"

	"github.com/katalvlaran/lvlds/core"
)

// Append links a new node between tail and head and makes it the tail.
// Updates the four seam links (tail↔new, new↔head). O(1).
func (l *List[T]) Append(v T) {
	if l.head == nil {
		l.initSingleton(v)
		return
	}
	l.tail = l.linkBetween(l.tail, l.head, v)
}

// Prepend links a new node between tail and head and makes it the head. O(1).
func (l *List[T]) Prepend(v T) {
	if l.head == nil {
		l.initSingleton(v)
		return
	}
	l.head = l.linkBetween(l.tail, l.head, v)
}

// InsertAt places v at position i. i == 0 prepends, i == Len() appends;
// otherwise the node at i-1 is located by bidirectional traversal and the new
// node is spliced after it.
// Returns ErrOutOfRange unless 0 ≤ i ≤ Len(); the list is untouched on error.
// Complexity: O(min(i, n-i)).
func (l *List[T]) InsertAt(i int, v T) error {
	if err := core.CheckInsertIndex(i, l.length); err != nil {
		return fmt.Errorf("cdll: InsertAt(%d): %w", i, err)
	}
	switch i {
	case 0:
		l.Prepend(v)
	case l.length:
		l.Append(v)
	default:
		prev := l.walk(i - 1)
		l.linkBetween(prev, prev.next, v)
	}

	return nil
}

// InsertAfter links v right after mark and returns the new node. Inserting
// after the tail appends. Returns ErrNotFound when mark does not belong to l.
// Complexity: O(1).
func (l *List[T]) InsertAfter(mark *Node[T], v T) (*Node[T], error) {
	if !l.owns(mark) {
		return nil, fmt.Errorf("cdll: InsertAfter: mark %w in list", core.ErrNotFound)
	}
	n := l.linkBetween(mark, mark.next, v)
	if mark == l.tail {
		l.tail = n
	}

	return n, nil
}

// NodeAt returns the node at position i: forward from head when i < Len()/2,
// backward from tail otherwise.
func (l *List[T]) NodeAt(i int) (*Node[T], error) {
	if err := core.CheckIndex(i, l.length); err != nil {
		return nil, fmt.Errorf("cdll: NodeAt(%d): %w", i, err)
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
func (l *List[T]) PopFirst() (*Node[T], error) {
	if l.length == 0 {
		return nil, fmt.Errorf("cdll: PopFirst: %w", core.ErrEmpty)
	}
	n := l.head
	l.unlink(n)

	return n, nil
}

// PopLast detaches and returns the tail node. O(1), tail.prev is at hand.
func (l *List[T]) PopLast() (*Node[T], error) {
	if l.length == 0 {
		return nil, fmt.Errorf("cdll: PopLast: %w", core.ErrEmpty)
	}
	n := l.tail
	l.unlink(n)

	return n, nil
}

// RemoveAt detaches and returns the node at position i, repairing both the
// forward and the reverse ring links at the removal site.
// Complexity: O(1) at the ends, O(min(i, n-i)) otherwise.
func (l *List[T]) RemoveAt(i int) (*Node[T], error) {
	if err := core.CheckIndex(i, l.length); err != nil {
		return nil, fmt.Errorf("cdll: RemoveAt(%d): %w", i, err)
	}
	n := l.walk(i)
	l.unlink(n)

	return n, nil
}

// Remove detaches n from l. Returns ErrNotFound when n does not belong to l.
// Complexity: O(1).
func (l *List[T]) Remove(n *Node[T]) error {
	if !l.owns(n) {
		return fmt.Errorf("cdll: Remove: node %w in list", core.ErrNotFound)
	}
	l.unlink(n)

	return nil
}

// Rotate moves the head k positions forward (k < 0 moves it backward).
// Only the head and tail references move; no link is rewritten.
// Complexity: O(min(k mod n, n - k mod n)).
func (l *List[T]) Rotate(k int) {
	if l.length < 2 {
		return
	}
	k = ((k % l.length) + l.length) % l.length
	if k == 0 {
		return
	}
	l.head = l.walk(k)
	l.tail = l.head.prev
}

// Search returns the index of the first node whose value equals v, or
// core.NotFound after one revolution. O(n).
func (l *List[T]) Search(v T) int {
	if l.head == nil {
		return core.NotFound
	}
	i := 0
	for n := l.head; ; i++ {
		if n.Value == v {
			return i
		}
		if n = n.next; n == l.head {
			return core.NotFound
		}
	}
}

// DeleteAll breaks both ring edges (tail.next and head.prev), then detaches
// every node so handles obtained earlier are rejected by InsertAfter and
// Remove.
// Complexity: O(n).
func (l *List[T]) DeleteAll() {
	if l.head != nil {
		l.tail.next = nil
		l.head.prev = nil
	}
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

// initSingleton handles the Empty→Singleton transition: one self-linked node.
func (l *List[T]) initSingleton(v T) {
	n := &Node[T]{Value: v, list: l}
	n.next, n.prev = n, n
	l.head, l.tail = n, n
	l.length = 1
}

// linkBetween allocates a node between two adjacent live nodes and returns it.
// Head and tail are left for the caller to adjust.
func (l *List[T]) linkBetween(prev, next *Node[T], v T) *Node[T] {
	n := &Node[T]{Value: v, prev: prev, next: next, list: l}
	prev.next = n
	next.prev = n
	l.length++

	return n
}

// unlink removes n from the ring, handles the Singleton→Empty transition,
// moves head/tail off n, and detaches it.
func (l *List[T]) unlink(n *Node[T]) {
	if l.length == 1 {
		l.head, l.tail = nil, nil
	} else {
		n.prev.next = n.next
		n.next.prev = n.prev
		if n == l.head {
			l.head = n.next
		}
		if n == l.tail {
			l.tail = n.prev
		}
	}
	l.length--
	n.detach()
}

// walk returns the node at a validated position i from the closer end.
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
