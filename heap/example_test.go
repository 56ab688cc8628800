// SPDX-License-Identifier: MIT

package heap_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/heap"
)

// ExampleHeap_Insert builds a max-heap and drains it.
func ExampleHeap_Insert() {
	h, err := heap.New[int](8)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range []int{4, 5, 6, 3, 2, 1, 7} {
		if err := h.Insert(v, heap.Max); err != nil {
			fmt.Println("error:", err)
			return
		}
	}
	fmt.Println(h.LevelOrder())
	for !h.IsEmpty() {
		v, _ := h.Extract(heap.Max)
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// [7 4 6 3 2 1 5]
	// 7 6 5 4 3 2 1
}
