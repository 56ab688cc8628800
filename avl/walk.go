// SPDX-License-Identifier: MIT

package avl

import (
	"context"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Walk visits every node in the given order, applying opts.
// Returns ErrOptionViolation for bad options, ErrUnknownOrder for an order
// outside the defined set, ctx.Err() on cancellation, or the OnVisit error
// wrapped with the key it failed on.
// Complexity: O(n) plus the cost of the hooks.
func (t *Tree[T]) Walk(order Order, opts ...WalkOption[T]) error {
	o := DefaultWalkOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	w := &walker[T]{opts: o, ctx: o.Ctx}

	switch order {
	case OrderPre, OrderIn, OrderPost:
		return w.depthFirst(t.root, 0, order)
	case OrderLevel:
		return w.levels(t.root)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownOrder, order)
	}
}

// PreOrder returns the keys in node-left-right order.
func (t *Tree[T]) PreOrder() []T { return t.collect(OrderPre) }

// InOrder returns the keys in ascending order.
func (t *Tree[T]) InOrder() []T { return t.collect(OrderIn) }

// PostOrder returns the keys in left-right-node order.
func (t *Tree[T]) PostOrder() []T { return t.collect(OrderPost) }

// LevelOrder returns the keys breadth-first, left to right.
func (t *Tree[T]) LevelOrder() []T { return t.collect(OrderLevel) }

func (t *Tree[T]) collect(order Order) []T {
	out := make([]T, 0, t.size)
	// The background context never cancels and the hook never fails.
	_ = t.Walk(order, WithOnVisit(func(v T, _ int) error {
		out = append(out, v)
		return nil
	}))

	return out
}

// walker carries the per-walk state.
type walker[T constraints.Ordered] struct {
	opts WalkOptions[T]
	ctx  context.Context
}

// tooDeep reports whether depth lies past MaxDepth.
func (w *walker[T]) tooDeep(depth int) bool {
	return w.opts.MaxDepth > 0 && depth > w.opts.MaxDepth
}

// visit checks cancellation, then calls OnVisit.
func (w *walker[T]) visit(n *Node[T], depth int) error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}
	if err := w.opts.OnVisit(n.value, depth); err != nil {
		return fmt.Errorf("avl: OnVisit error at %v: %w", n.value, err)
	}

	return nil
}

// depthFirst recurses; the tree height is O(log n) so the stack stays shallow.
func (w *walker[T]) depthFirst(n *Node[T], depth int, order Order) error {
	if n == nil || w.tooDeep(depth) {
		return nil
	}
	if order == OrderPre {
		if err := w.visit(n, depth); err != nil {
			return err
		}
	}
	if err := w.depthFirst(n.left, depth+1, order); err != nil {
		return err
	}
	if order == OrderIn {
		if err := w.visit(n, depth); err != nil {
			return err
		}
	}
	if err := w.depthFirst(n.right, depth+1, order); err != nil {
		return err
	}
	if order == OrderPost {
		return w.visit(n, depth)
	}

	return nil
}

type levelItem[T constraints.Ordered] struct {
	node  *Node[T]
	depth int
}

// levels runs a FIFO over the tree, enqueueing children left to right.
func (w *walker[T]) levels(root *Node[T]) error {
	if root == nil {
		return nil
	}
	queue := []levelItem[T]{{node: root, depth: 0}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if err := w.visit(item.node, item.depth); err != nil {
			return err
		}
		next := item.depth + 1
		if w.tooDeep(next) {
			continue
		}
		for _, child := range [...]*Node[T]{item.node.left, item.node.right} {
			if child != nil {
				queue = append(queue, levelItem[T]{node: child, depth: next})
			}
		}
	}

	return nil
}
