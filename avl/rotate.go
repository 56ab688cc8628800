// SPDX-License-Identifier: MIT

package avl

import "golang.org/x/exp/constraints"

func height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}

	return n.height
}

func balance[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}

	return height(n.left) - height(n.right)
}

// update recomputes n.height from its children.
func update[T constraints.Ordered](n *Node[T]) {
	n.height = 1 + max(height(n.left), height(n.right))
}

// rotateRight lifts n.left above n:
//
//	    n            l
//	   / \          / \
//	  l   c   →    a   n
//	 / \              / \
//	a   b            b   c
func rotateRight[T constraints.Ordered](n *Node[T]) *Node[T] {
	l := n.left
	n.left = l.right
	l.right = n
	update(n) // pivot first
	update(l)

	return l
}

// rotateLeft lifts n.right above n; mirror of rotateRight.
func rotateLeft[T constraints.Ordered](n *Node[T]) *Node[T] {
	r := n.right
	n.right = r.left
	r.left = n
	update(n) // pivot first
	update(r)

	return r
}

// rebalance refreshes n.height and applies the rotation its balance factor
// calls for. The child's own lean decides between a single and a double
// rotation, which after an insert matches comparing the new key with the
// child's key.
func rebalance[T constraints.Ordered](n *Node[T]) *Node[T] {
	update(n)
	switch b := balance(n); {
	case b > 1:
		if balance(n.left) < 0 { // Left-Right
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n) // Left-Left
	case b < -1:
		if balance(n.right) > 0 { // Right-Left
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n) // Right-Right
	default:
		return n
	}
}
