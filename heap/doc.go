// SPDX-License-Identifier: MIT

// Package heap implements a fixed-capacity, array-backed binary heap whose
// ordering (max or min) is chosen per operation rather than per instance.
//
// Storage layout:
//
//	slots[0]            reserved, never read
//	slots[1..Len()]     the complete binary tree, level by level
//	parent(i) = i/2     left(i) = 2i     right(i) = 2i+1
//
// The reserved slot keeps the index arithmetic free of +1/-1 corrections.
//
// Variants:
//
//   - Max: every parent is ≥ its children; Peek returns the largest value.
//   - Min: every parent is ≤ its children; Peek returns the smallest value.
//
// The variant is an argument to Insert and Extract. The heap property only
// holds for a given variant when every mutating call since the last Clear used
// that same variant; mixing variants is allowed but yields no ordering promise.
//
// Tie-breaking:
//
//   - Sift-up and sift-down use strict comparisons, so equal values never swap.
//   - When both children are candidates and compare equal, the left child wins.
//
// The heap is not stable.
//
// Errors:
//
//	ErrInvalidCapacity  capacity < 1 at construction
//	core.ErrFull        Insert at capacity
//	core.ErrEmpty       Peek or Extract on an empty heap
//
// Complexity:
//
//	Peek, Size, Capacity, IsEmpty, Clear  O(1)
//	Insert, Extract                       O(log n)
//	LevelOrder, String                    O(n)
package heap
