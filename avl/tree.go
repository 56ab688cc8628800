// SPDX-License-Identifier: MIT

package avl

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlds/core"
)

// Node is a tree cell. Its key is read-only so the ordering cannot be broken
// from outside.
type Node[T constraints.Ordered] struct {
	value  T
	left   *Node[T]
	right  *Node[T]
	height int
}

// Value returns the key stored in n.
func (n *Node[T]) Value() T { return n.value }

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] { return n.right }

// Height returns the cached height; a leaf has height 1.
func (n *Node[T]) Height() int { return height(n) }

// Balance returns height(left) - height(right).
func (n *Node[T]) Balance() int { return balance(n) }

// Tree is an AVL tree. The zero value is an empty tree.
type Tree[T constraints.Ordered] struct {
	root *Node[T]
	size int
}

// New returns an empty tree.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Len returns the number of keys. O(1).
func (t *Tree[T]) Len() int { return t.size }

// Height returns the height of the root, 0 when empty. O(1).
func (t *Tree[T]) Height() int { return height(t.root) }

// Root returns the root node, or nil when empty.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Clear drops every node. O(1).
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Insert adds v and rebalances the path back to the root.
// Returns ErrDuplicate if v is already present; the tree is untouched.
// Complexity: O(log n).
func (t *Tree[T]) Insert(v T) error {
	root, err := insert(t.root, v)
	if err != nil {
		return fmt.Errorf("avl: Insert(%v): %w", v, err)
	}
	t.root = root
	t.size++

	return nil
}

// Delete removes v and rebalances the path back to the root.
// Returns core.ErrNotFound if v is absent; the tree is untouched.
// Complexity: O(log n).
func (t *Tree[T]) Delete(v T) error {
	root, err := remove(t.root, v)
	if err != nil {
		return fmt.Errorf("avl: Delete(%v): %w", v, err)
	}
	t.root = root
	t.size--

	return nil
}

// Search descends from the root and returns the node holding v.
// Returns core.ErrNotFound when v is absent. O(log n).
func (t *Tree[T]) Search(v T) (*Node[T], error) {
	n := t.root
	for n != nil {
		switch {
		case v < n.value:
			n = n.left
		case v > n.value:
			n = n.right
		default:
			return n, nil
		}
	}

	return nil, fmt.Errorf("avl: Search(%v): %w", v, core.ErrNotFound)
}

// Contains reports whether v is present. O(log n).
func (t *Tree[T]) Contains(v T) bool {
	_, err := t.Search(v)
	return err == nil
}

// Min returns the smallest key, or core.ErrEmpty. O(log n).
func (t *Tree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, fmt.Errorf("avl: Min: %w", core.ErrEmpty)
	}

	return leftmost(t.root).value, nil
}

// Max returns the largest key, or core.ErrEmpty. O(log n).
func (t *Tree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, fmt.Errorf("avl: Max: %w", core.ErrEmpty)
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.value, nil
}

// String renders the level-order keys separated by spaces, or
// core.EmptyRendering.
func (t *Tree[T]) String() string {
	if t.root == nil {
		return core.EmptyRendering
	}
	var sb strings.Builder
	for i, v := range t.LevelOrder() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}

	return sb.String()
}

// insert places v under n and returns the rebalanced subtree root.
// On error n is returned unchanged and no height along the path is touched.
func insert[T constraints.Ordered](n *Node[T], v T) (*Node[T], error) {
	if n == nil {
		return &Node[T]{value: v, height: 1}, nil
	}
	var err error
	switch {
	case v < n.value:
		var child *Node[T]
		if child, err = insert(n.left, v); err != nil {
			return n, err
		}
		n.left = child
	case v > n.value:
		var child *Node[T]
		if child, err = insert(n.right, v); err != nil {
			return n, err
		}
		n.right = child
	default:
		return n, ErrDuplicate
	}

	return rebalance(n), nil
}

// remove deletes v from the subtree under n and returns its new root.
//  1. descend to the node holding v;
//  2. zero or one child: splice the child in;
//  3. two children: copy the in-order successor up, delete it from the right;
//  4. rebalance on the way back.
func remove[T constraints.Ordered](n *Node[T], v T) (*Node[T], error) {
	if n == nil {
		return nil, core.ErrNotFound
	}
	var err error
	switch {
	case v < n.value:
		var child *Node[T]
		if child, err = remove(n.left, v); err != nil {
			return n, err
		}
		n.left = child
	case v > n.value:
		var child *Node[T]
		if child, err = remove(n.right, v); err != nil {
			return n, err
		}
		n.right = child
	default:
		if n.left == nil {
			return n.right, nil
		}
		if n.right == nil {
			return n.left, nil
		}
		succ := leftmost(n.right)
		n.value = succ.value
		// succ.value is present in n.right, so this cannot fail.
		n.right, _ = remove(n.right, succ.value)
	}

	return rebalance(n), nil
}

func leftmost[T constraints.Ordered](n *Node[T]) *Node[T] {
	for n.left != nil {
		n = n.left
	}

	return n
}
