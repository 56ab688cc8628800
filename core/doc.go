// SPDX-License-Identifier: MIT

// Package core defines the contract shared by every positional container in
// lvlds: the Sequence interface, the four failure kinds, index validation and
// the rendering helpers used by String methods and tests.
//
// What lives here?
//
//	Sequence[T]    positional API implemented by sll, dll, csll and cdll
//	Appender[T]    the Append-only subset consumed by builder
//	NotFound       sentinel index returned by Search
//	Render         "10 -> 20 -> 30" style rendering, "Empty" when empty
//
// Index semantics:
//
//	valid element index:   0 ≤ i < Len()
//	valid insertion index: 0 ≤ i ≤ Len()   (i == Len() means "one past the end")
//
// Errors:
//
//	ErrOutOfRange  index outside its admissible interval
//	ErrEmpty       pop/peek/dequeue on an empty container
//	ErrFull        insert into a fixed-capacity container at capacity
//	ErrNotFound    search or node-handle lookup did not locate the target
//
// Every public operation of a container either succeeds and keeps its
// structural invariants, or fails with exactly one of the kinds above without
// mutating state. Containers wrap these sentinels with call-site context
// ("dll: RemoveAt(7): core: index out of range"); callers branch with
// errors.Is.
//
// None of the containers are safe for concurrent use; callers serialize
// access externally. The queue package offers a blocking, mutex-guarded queue
// for producer/consumer workloads.
package core
