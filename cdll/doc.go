// SPDX-License-Identifier: MIT

// Package cdll implements a circular doubly linked list: CSLL's wrap-around
// combined with DLL's back-links.
//
// Invariants (hold before and after every public call):
//
//	Len() == 0  ⇔  head == tail == nil
//	Len() ≥ 1   ⇒  tail.next == head and head.prev == tail
//	Len() == 1  ⇒  the single node's next and prev both point to itself
//	for every node n: n.next.prev == n and n.prev.next == n
//
// State machine. Every mutation is a transition between Empty (0), Singleton
// (1) and Multi (≥2). Empty→Singleton creates the self-loop,
// Singleton→Empty clears head and tail, and the Singleton↔Multi edges are the
// only places where head and tail stop or start being the same node.
//
// Complexity:
//
//	Append, Prepend, PopFirst, PopLast              O(1)
//	InsertAfter, Remove (by node)                   O(1)
//	InsertAt, GetAt, SetAt, RemoveAt                O(min(i, n-i))
//	Rotate(k)                                       O(min(|k| mod n, n))
//	Search, Traverse, ReverseTraverse, DeleteAll    O(n)
//
// GetAt walks forward from head when i < Len()/2 and backward from tail
// otherwise. Forward loops stop when they come back to head, backward loops
// when they come back to tail; both compare node identity.
//
// Example:
//
//	l := cdll.New(10, 20, 30, 40)
//	l.Prepend(5)
//	l.Head().Prev().Value // 40
//	l.Tail().Next().Value // 5
package cdll
