// SPDX-License-Identifier: MIT

package core

import "errors"

// Every message is prefixed with "core: ..." so the kind stays greppable after
// a container wraps it with its own context.
var (
	// ErrOutOfRange indicates that an index is outside its admissible interval.
	ErrOutOfRange = errors.New("core: index out of range")

	// ErrEmpty indicates a pop/peek/dequeue on an empty container.
	ErrEmpty = errors.New("core: container is empty")

	// ErrFull indicates an insert into a fixed-capacity container at capacity.
	ErrFull = errors.New("core: container is full")

	// ErrNotFound indicates that a value or node handle was not located.
	ErrNotFound = errors.New("core: not found")
)
