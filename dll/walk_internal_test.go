// SPDX-License-Identifier: MIT

package dll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestWalk_StartsFromCloserEnd severs the forward chain right after head:
// every index in the upper half must still resolve through prev links.
func TestWalk_StartsFromCloserEnd(t *testing.T) {
	l := New(0, 1, 2, 3, 4, 5, 6, 7)
	saved := l.head.next
	l.head.next = nil
	defer func() { l.head.next = saved }()

	for i := l.length / 2; i < l.length; i++ {
		n := l.walk(i)
		require.NotNil(t, n)
		require.Equal(t, i, n.Value)
	}
}

// TestWalk_LowerHalfFromHead severs the backward chain before tail.
func TestWalk_LowerHalfFromHead(t *testing.T) {
	l := New(0, 1, 2, 3, 4, 5, 6)
	saved := l.tail.prev
	l.tail.prev = nil
	defer func() { l.tail.prev = saved }()

	for i := 0; i < l.length/2; i++ {
		require.Equal(t, i, l.walk(i).Value)
	}
}
