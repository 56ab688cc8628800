// SPDX-License-Identifier: MIT

// Package queue provides FIFO adapters over the sequence containers.
//
//   - NewCircular: fixed capacity C over an array of C slots with two
//     indices, start and top. Empty is start = top = -1, full is
//     (top+1) mod C = start, both indices advance with wraparound and are
//     reset to -1 when the last element leaves.
//   - NewLinked: unbounded; enqueue appends to a dll.List, dequeue pops its
//     head. Both O(1).
//   - NewBlocking: a goroutine-safe queue (bounded or unbounded) with
//     context-aware Put and Take, Close, optional zap logging and
//     Prometheus metrics.
//
// Errors:
//
//	core.ErrEmpty  Dequeue or Peek on an empty queue
//	core.ErrFull   Enqueue at capacity
//	ErrClosed      any operation on a closed Blocking queue that cannot
//	               be served from what is left in it
//
// Circular and Linked are not safe for concurrent use.
package queue
