// SPDX-License-Identifier: MIT

// Package lvlds is a small family of in-memory containers built on node links
// and flat arrays, with one shared positional contract.
//
// What is inside:
//
//	core/     the Sequence[T] contract, error kinds, index checks, rendering
//	sll/      singly linked list (baseline)
//	dll/      doubly linked list with node handles and bidirectional walks
//	csll/     circular singly linked list (tail.next = head)
//	cdll/     circular doubly linked list (tail.next = head, head.prev = tail)
//	heap/     fixed-capacity binary heap, max or min chosen per operation
//	avl/      AVL tree with rotations and hook-driven traversals
//	stack/    LIFO adapters over sll and over a slice
//	queue/    FIFO adapters: bounded circular, linked, blocking concurrent
//	builder/  deterministic integer fixtures for any container
//	cmd/lvlds command-line playground for all of the above
//
// Positions are 0-based. GetAt, SetAt and RemoveAt accept 0 ≤ i < Len();
// InsertAt accepts 0 ≤ i ≤ Len(), where i == Len() appends. A failing call
// returns an error matching one of core.ErrOutOfRange, core.ErrEmpty,
// core.ErrFull or core.ErrNotFound and leaves the container untouched.
//
// Removed nodes come back detached: their Next and Prev are nil and they no
// longer belong to any list. DeleteAll on a circular list breaks the ring
// before dropping it.
//
// The core containers are single-goroutine types; queue.Blocking is the one
// type designed for concurrent use.
package lvlds
