// SPDX-License-Identifier: MIT

package avl_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/avl"
)

// ExampleTree_Insert shows the left-left rotation triggered by the last key.
func ExampleTree_Insert() {
	tr := avl.New[int]()
	for _, v := range []int{30, 25, 35, 20, 15} {
		if err := tr.Insert(v); err != nil {
			fmt.Println("error:", err)
			return
		}
	}
	fmt.Println("level:", tr)
	fmt.Println("in:   ", tr.InOrder())
	fmt.Println("height:", tr.Height())
	// Output:
	// level: 30 20 35 15 25
	// in:    [15 20 25 30 35]
	// height: 3
}

// ExampleTree_Walk prints every key with its depth.
func ExampleTree_Walk() {
	tr := avl.New[string]()
	for _, v := range []string{"b", "a", "c"} {
		_ = tr.Insert(v)
	}
	_ = tr.Walk(avl.OrderLevel, avl.WithOnVisit(func(v string, depth int) error {
		fmt.Printf("%s@%d\n", v, depth)
		return nil
	}))
	// Output:
	// b@0
	// a@1
	// c@1
}
