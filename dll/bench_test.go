// SPDX-License-Identifier: MIT

package dll_test

import (
	"testing"

	"github.com/katalvlaran/lvlds/dll"
)

// benchmarkGetAt measures positional reads over a list of n nodes.
func benchmarkGetAt(b *testing.B, n int) {
	l := dll.New[int]()
	for i := 0; i < n; i++ {
		l.Append(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.GetAt(i % n); err != nil {
			b.Fatalf("GetAt failed: %v", err)
		}
	}
}

func BenchmarkGetAt_1K(b *testing.B)  { benchmarkGetAt(b, 1_000) }
func BenchmarkGetAt_10K(b *testing.B) { benchmarkGetAt(b, 10_000) }

// BenchmarkAppendPopFirst measures the O(1) queue-like path.
func BenchmarkAppendPopFirst(b *testing.B) {
	l := dll.New[int]()
	for i := 0; i < b.N; i++ {
		l.Append(i)
		if _, err := l.PopFirst(); err != nil {
			b.Fatalf("PopFirst failed: %v", err)
		}
	}
}
