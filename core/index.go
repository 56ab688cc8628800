// SPDX-License-Identifier: MIT

package core

import "fmt"

// CheckIndex validates an element index: 0 ≤ i < length.
// Returns a wrapped ErrOutOfRange naming the admissible interval otherwise.
// Complexity: O(1).
func CheckIndex(i, length int) error {
	if i < 0 || i >= length {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, length)
	}

	return nil
}

// CheckInsertIndex validates an insertion index: 0 ≤ i ≤ length.
// Complexity: O(1).
func CheckInsertIndex(i, length int) error {
	if i < 0 || i > length {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrOutOfRange, i, length)
	}

	return nil
}
