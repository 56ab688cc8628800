// SPDX-License-Identifier: MIT

package heap_test

import (
	"testing"

	"github.com/katalvlaran/lvlds/heap"
)

// BenchmarkInsertExtract_1K keeps a 1K-element min-heap churning.
func BenchmarkInsertExtract_1K(b *testing.B) {
	const n = 1_000
	h, err := heap.New[int](n + 1)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	for i := 0; i < n; i++ {
		_ = h.Insert((i*7919)%n, heap.Min)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := h.Insert(i%n, heap.Min); err != nil {
			b.Fatalf("Insert failed: %v", err)
		}
		if _, err := h.Extract(heap.Min); err != nil {
			b.Fatalf("Extract failed: %v", err)
		}
	}
}
