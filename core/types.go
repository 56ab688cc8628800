// SPDX-License-Identifier: MIT

package core

import "fmt"

// NotFound is the index returned by Search when no element matches.
const NotFound = -1

// Rendering tokens shared by the String methods of the linked containers.
const (
	// EmptyRendering is what an empty container renders as.
	EmptyRendering = "Empty"

	// ArrowForward separates elements of singly linked containers.
	ArrowForward = " -> "

	// ArrowBoth separates elements of doubly linked containers.
	ArrowBoth = " <-> "
)

// Appender is the minimal write surface needed to fill a container in order.
type Appender[T any] interface {
	Append(v T)
}

// Sequence is the positional contract implemented by sll, dll, csll and cdll.
// Removal operations are not part of it because each list returns its own
// detached node type.
type Sequence[T comparable] interface {
	fmt.Stringer
	Appender[T]

	// Len returns the number of live nodes. O(1).
	Len() int

	// IsEmpty reports whether Len() == 0. O(1).
	IsEmpty() bool

	// Prepend inserts v before the current head. O(1).
	Prepend(v T)

	// InsertAt inserts v so that it ends up at position i (0 ≤ i ≤ Len()).
	InsertAt(i int, v T) error

	// GetAt returns the value at position i (0 ≤ i < Len()).
	GetAt(i int) (T, error)

	// SetAt overwrites the value at position i (0 ≤ i < Len()).
	SetAt(i int, v T) error

	// Search returns the index of the first element equal to v, or NotFound.
	Search(v T) int

	// Traverse returns the elements from head to tail.
	Traverse() []T

	// DeleteAll restores the empty state. A no-op on an empty container.
	DeleteAll()
}
