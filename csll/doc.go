// SPDX-License-Identifier: MIT

// Package csll implements a circular singly linked list: the tail links back
// to the head, so there is no nil terminator while the list is non-empty.
//
// Invariants (hold before and after every public call):
//
//	Len() == 0  ⇔  head == tail == nil
//	otherwise   tail.next == head, and walking next from head visits exactly
//	            Len() nodes before returning to head
//	Len() == 1  ⇒  the single node links to itself
//
// Every loop in this package stops on node identity ("back at head"), never
// on a nil check or on value equality; a ring has no nil to find.
//
// Index extension: InsertAt accepts i == -1 as shorthand for "after the tail"
// (equivalent to Append). No other operation accepts negative indices.
//
// Complexity:
//
//	Append, Prepend, PopFirst, DeleteAll   O(1)
//	PopLast                                O(n) (needs the node before tail)
//	InsertAt, GetAt, SetAt, RemoveAt       O(i)
//	Search, Traverse                       O(n)
//
// DeleteAll breaks the tail→head edge before dropping the header references,
// so the ring is released the same way under any collection regime.
package csll
