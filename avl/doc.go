// SPDX-License-Identifier: MIT

// Package avl implements a height-balanced binary search tree over naturally
// ordered keys.
//
// Every node caches its height (a leaf has height 1, an empty subtree 0) and
// the tree keeps |height(left) - height(right)| ≤ 1 at every node. Insert and
// Delete repair the balance on the unwind path with at most one single or
// double rotation per node:
//
//	Left-Left    balance > 1,  left child leans left or is even   rotate right
//	Right-Right  balance < -1, right child leans right or is even rotate left
//	Left-Right   balance > 1,  left child leans right             rotate left child, then right
//	Right-Left   balance < -1, right child leans left             rotate right child, then left
//
// A rotation refreshes the pivot's height before the new subtree root's,
// because the latter is derived from the former.
//
// Duplicate keys are rejected with ErrDuplicate; the tree is a set.
// Deleting a missing key fails with core.ErrNotFound. A node with two
// children is replaced by its in-order successor.
//
// Traversals:
//
//	PreOrder   node, left, right
//	InOrder    left, node, right (sorted ascending)
//	PostOrder  left, right, node
//	LevelOrder breadth-first, left to right
//
// Walk runs any of them with functional options: a cancellation context
// checked between visits, an OnVisit hook that receives the node depth
// (root = 0) and may abort the walk, and a MaxDepth limit.
//
// Complexity:
//
//	Insert, Delete, Search, Contains, Min, Max  O(log n)
//	traversals, String                          O(n)
//	Len, Height, Root, Clear                    O(1)
//
// The tree is not safe for concurrent use.
package avl
