// SPDX-License-Identifier: MIT

// Package dll implements a doubly linked list: every node carries prev and next
// links, so removal given a node is O(1) and traversal runs in both directions.
//
// Invariants (hold before and after every public call):
//
//	Len() == 0  ⇔  head == tail == nil
//	head.prev == nil, tail.next == nil
//	for every node n with n.next != nil: n.next.prev == n
//
// Positional access walks from whichever end is closer: GetAt(i) starts at
// head when i < Len()/2 and at tail otherwise. This is part of the contract,
// not an optimization detail; the worst case is Len()/2 steps.
//
// Complexity:
//
//	Append, Prepend, PopFirst, PopLast           O(1)
//	InsertAfter, InsertBefore, Remove (by node)  O(1)
//	InsertAt, GetAt, SetAt, RemoveAt             O(min(i, n-i))
//	Search, Traverse, ReverseTraverse, Reverse   O(n)
//	DeleteAll                                    O(n), detaches every node
//
// Removed nodes are returned with prev and next cleared; Next() and Prev()
// on a detached node return nil.
//
// Example:
//
//	l := dll.New(10, 20, 30, 40)
//	n, _ := l.RemoveAt(2) // n.Value == 30, l == 10 <-> 20 <-> 40
package dll
