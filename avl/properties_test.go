// SPDX-License-Identifier: MIT

package avl_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/google/btree"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/lvlds/avl"
	"github.com/katalvlaran/lvlds/core"
)

// balanced recomputes heights and reports the first violated node, if any.
func balanced(n *avl.Node[int]) (int, error) {
	if n == nil {
		return 0, nil
	}
	lh, err := balanced(n.Left())
	if err != nil {
		return 0, err
	}
	rh, err := balanced(n.Right())
	if err != nil {
		return 0, err
	}
	if n.Height() != 1+max(lh, rh) {
		return 0, fmt.Errorf("stale height at %d", n.Value())
	}
	if b := lh - rh; b < -1 || b > 1 {
		return 0, fmt.Errorf("balance %d at %d", b, n.Value())
	}

	return n.Height(), nil
}

// TestTreeModel replays random insert/delete streams against a B-tree set.
// Each op encodes a key (op/2) and a kind (even = insert, odd = delete).
func TestTreeModel(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("tree agrees with an ordered-set oracle", prop.ForAll(
		func(ops []int) string {
			tr := avl.New[int]()
			oracle := btree.NewOrderedG[int](4)
			for _, op := range ops {
				key := op / 2
				if op%2 == 0 {
					err := tr.Insert(key)
					if _, existed := oracle.ReplaceOrInsert(key); existed != errors.Is(err, avl.ErrDuplicate) {
						return fmt.Sprintf("insert %d: err=%v, oracle existed=%v", key, err, existed)
					}
				} else {
					err := tr.Delete(key)
					if _, existed := oracle.Delete(key); existed == errors.Is(err, core.ErrNotFound) {
						return fmt.Sprintf("delete %d: err=%v, oracle existed=%v", key, err, existed)
					}
				}
				if _, err := balanced(tr.Root()); err != nil {
					return err.Error()
				}
			}
			want := make([]int, 0, oracle.Len())
			oracle.Ascend(func(k int) bool {
				want = append(want, k)
				return true
			})
			if got := tr.InOrder(); !slices.Equal(got, want) || tr.Len() != oracle.Len() {
				return fmt.Sprintf("in-order %v, oracle %v", got, want)
			}
			return ""
		},
		gen.SliceOf(gen.IntRange(0, 199)),
	))

	properties.Property("in-order is sorted and deduplicated", prop.ForAll(
		func(values []int) bool {
			tr := avl.New[int]()
			for _, v := range values {
				_ = tr.Insert(v)
			}
			want := slices.Clone(values)
			slices.Sort(want)
			want = slices.Compact(want)
			return slices.Equal(tr.InOrder(), want)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}
