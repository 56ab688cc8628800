// SPDX-License-Identifier: MIT

package queue_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/queue"
)

// ExampleNewCircular shows the index reset when the last element leaves.
func ExampleNewCircular() {
	q := queue.NewCircular[string](2)
	_ = q.Enqueue("a")
	_ = q.Enqueue("b")
	fmt.Println(q.Enqueue("c"))
	fmt.Println(q.Indices())
	_, _ = q.Dequeue()
	_, _ = q.Dequeue()
	fmt.Println(q.Indices())
	// Output:
	// queue: Enqueue: core: container is full (capacity 2)
	// 0 1
	// -1 -1
}
