// SPDX-License-Identifier: MIT

package avl

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrDuplicate is returned by Insert when the key is already present.
	ErrDuplicate = errors.New("avl: duplicate key")

	// ErrOptionViolation is returned by Walk when an invalid WalkOption is supplied.
	ErrOptionViolation = errors.New("avl: invalid option supplied")

	// ErrUnknownOrder is returned by Walk for an Order outside the defined set.
	ErrUnknownOrder = errors.New("avl: unknown traversal order")
)

// Order selects the visit sequence of Walk.
type Order int

const (
	// OrderPre visits a node before its subtrees.
	OrderPre Order = iota

	// OrderIn visits the left subtree, the node, then the right subtree.
	OrderIn

	// OrderPost visits a node after its subtrees.
	OrderPost

	// OrderLevel visits nodes breadth-first, left to right.
	OrderLevel
)

// String returns "pre", "in", "post" or "level".
func (o Order) String() string {
	switch o {
	case OrderPre:
		return "pre"
	case OrderIn:
		return "in"
	case OrderPost:
		return "post"
	case OrderLevel:
		return "level"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// WalkOption configures Walk via functional arguments.
// An invalid option is recorded and surfaced as ErrOptionViolation when Walk
// is invoked.
type WalkOption[T any] func(*WalkOptions[T])

// WalkOptions holds the hooks and limits of a single Walk.
type WalkOptions[T any] struct {
	// Ctx allows cancellation and deadlines; checked before every visit.
	Ctx context.Context

	// OnVisit is called for each visited node with its depth (root = 0).
	// A non-nil error aborts the walk and is returned wrapped.
	OnVisit func(v T, depth int) error

	// MaxDepth, if > 0, skips nodes deeper than MaxDepth.
	// 0 means no limit.
	MaxDepth int

	err error
}

// DefaultWalkOptions returns options with a background context, a no-op
// OnVisit and no depth limit.
func DefaultWalkOptions[T any]() WalkOptions[T] {
	return WalkOptions[T]{
		Ctx:      context.Background(),
		OnVisit:  func(T, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext[T any](ctx context.Context) WalkOption[T] {
	return func(o *WalkOptions[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the visit hook. A nil fn is ignored.
func WithOnVisit[T any](fn func(v T, depth int) error) WalkOption[T] {
	return func(o *WalkOptions[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to nodes at depth ≤ d.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[T any](d int) WalkOption[T] {
	return func(o *WalkOptions[T]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}
