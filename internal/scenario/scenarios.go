// SPDX-License-Identifier: MIT

package scenario

import (
	"github.com/katalvlaran/lvlds/avl"
	"github.com/katalvlaran/lvlds/builder"
	"github.com/katalvlaran/lvlds/cdll"
	"github.com/katalvlaran/lvlds/csll"
	"github.com/katalvlaran/lvlds/dll"
	"github.com/katalvlaran/lvlds/heap"
)

// tens is the shared fixture 10, 20, 30, 40.
var tens = []builder.BuilderOption{builder.WithStep(10)}

func appendedCDLL() (*cdll.List[int], error) {
	l := cdll.New[int]()
	if err := builder.Fill(l, tens, builder.Range(10, 4)); err != nil {
		return nil, err
	}

	return l, nil
}

func runCDLLAppend(rec *recorder) (string, error) {
	l, err := appendedCDLL()
	if err != nil {
		return "", err
	}
	rec.expect("length", l.Len(), 4)
	rec.expect("head", l.Head().Value, 10)
	rec.expect("tail", l.Tail().Value, 40)
	rec.expect("tail.next", l.Tail().Next().Value, 10)
	rec.expect("head.prev", l.Head().Prev().Value, 40)
	rec.expect("traverse", l.Traverse(), []int{10, 20, 30, 40})

	return l.String(), nil
}

func runCDLLPrepend(rec *recorder) (string, error) {
	l, err := appendedCDLL()
	if err != nil {
		return "", err
	}
	l.Prepend(5)
	rec.expect("head", l.Head().Value, 5)
	rec.expect("tail", l.Tail().Value, 40)
	rec.expect("head.prev", l.Head().Prev().Value, 40)
	rec.expect("tail.next", l.Tail().Next().Value, 5)
	rec.expect("traverse", l.Traverse(), []int{5, 10, 20, 30, 40})

	return l.String(), nil
}

func runDLLRemoveAt(rec *recorder) (string, error) {
	l := dll.New[int]()
	if err := builder.Fill(l, tens, builder.Range(10, 4)); err != nil {
		return "", err
	}
	n, err := l.RemoveAt(2)
	if err != nil {
		return "", err
	}
	rec.expect("removed", n.Value, 30)
	rec.expect("removed.next", n.Next() == nil, true)
	rec.expect("removed.prev", n.Prev() == nil, true)
	rec.expect("length", l.Len(), 3)
	rec.expect("traverse", l.Traverse(), []int{10, 20, 40})

	return l.String(), nil
}

func runCSLLPopFirst(rec *recorder) (string, error) {
	l := csll.New(10)
	n, err := l.PopFirst()
	if err != nil {
		return "", err
	}
	rec.expect("popped", n.Value, 10)
	rec.expect("length", l.Len(), 0)
	rec.expect("head", l.Head() == nil, true)
	rec.expect("tail", l.Tail() == nil, true)

	return l.String(), nil
}

func runHeapOrder(rec *recorder) (string, error) {
	h, err := heap.New[int](8)
	if err != nil {
		return "", err
	}
	values, err := builder.Values(nil, builder.Literal(4, 5, 6, 3, 2, 1, 7))
	if err != nil {
		return "", err
	}
	for _, v := range values {
		if err := h.Insert(v, heap.Max); err != nil {
			return "", err
		}
	}
	order := h.LevelOrder()
	rec.expect("level order", order, []int{7, 4, 6, 3, 2, 1, 5})
	ordered := true
	for i := 2; i <= len(order); i++ {
		if order[i/2-1] < order[i-1] {
			ordered = false
		}
	}
	rec.expect("parent ≥ child", ordered, true)

	return h.String(), nil
}

func runAVLRotation(rec *recorder) (string, error) {
	tr := avl.New[int]()
	for _, v := range []int{30, 25, 35, 20} {
		if err := tr.Insert(v); err != nil {
			return "", err
		}
	}
	rec.expect("left of root after 20", tr.Root().Left().Value(), 25)
	if err := tr.Insert(15); err != nil {
		return "", err
	}
	rec.expect("left of root after 15", tr.Root().Left().Value(), 20)
	rec.expect("in-order", tr.InOrder(), []int{15, 20, 25, 30, 35})
	balanced := true
	_ = tr.Walk(avl.OrderPre, avl.WithOnVisit(func(v int, _ int) error {
		n, err := tr.Search(v)
		if err != nil || n.Balance() < -1 || n.Balance() > 1 {
			balanced = false
		}
		return nil
	}))
	rec.expect("balance ∈ {-1,0,1}", balanced, true)

	return tr.String(), nil
}
