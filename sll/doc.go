// SPDX-License-Identifier: MIT

// Package sll implements the baseline singly linked list: a forward-only
// chain of nodes with O(1) operations at the head and O(1) append at the tail.
//
// Invariants (hold before and after every public call):
//
//	Len() == 0  ⇔  head == tail == nil
//	otherwise   tail.next == nil and exactly Len() nodes are reachable from head
//
// Complexity:
//
//	Append, Prepend, PopFirst             O(1)
//	PopLast, InsertAt, GetAt, RemoveAt    O(n)
//	Search, Traverse, Reverse             O(n)
//	DeleteAll                             O(1)
//
// Removal operations return the node fully detached (Next() == nil); the
// caller owns it afterwards.
//
// The stack package builds its linked stack on the head of this list.
package sll
