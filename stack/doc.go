// SPDX-License-Identifier: MIT

// Package stack provides LIFO adapters over the sequence containers.
//
//   - NewLinked pushes and pops at the head of an sll.List: O(1), unbounded.
//   - NewSlice pushes and pops at the end of a slice: amortized O(1);
//     WithCapacity bounds it and Push then fails with core.ErrFull.
//
// Pop and Peek on an empty stack fail with core.ErrEmpty.
// Neither adapter is safe for concurrent use.
package stack
