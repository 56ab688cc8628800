// SPDX-License-Identifier: MIT

package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/core"
	"github.com/katalvlaran/lvlds/queue"
)

func requireIndices(t *testing.T, q *queue.Circular[int], start, top int) {
	t.Helper()
	s, tp := q.Indices()
	require.Equal(t, start, s, "start")
	require.Equal(t, top, tp, "top")
}

func TestCircular_IndexRules(t *testing.T) {
	q := queue.NewCircular[int](3)
	requireIndices(t, q, -1, -1)
	assert.True(t, q.IsEmpty())
	assert.False(t, q.IsFull())

	require.NoError(t, q.Enqueue(1))
	requireIndices(t, q, 0, 0)
	require.NoError(t, q.Enqueue(2))
	require.NoError(t, q.Enqueue(3))
	requireIndices(t, q, 0, 2)
	assert.True(t, q.IsFull())
	assert.ErrorIs(t, q.Enqueue(4), core.ErrFull)
	requireIndices(t, q, 0, 2)

	v, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	requireIndices(t, q, 1, 2)

	// top wraps to slot 0
	require.NoError(t, q.Enqueue(4))
	requireIndices(t, q, 1, 0)
	assert.True(t, q.IsFull())
	assert.Equal(t, 3, q.Size())

	for _, want := range []int{2, 3} {
		v, err = q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	// start wraps to slot 0
	requireIndices(t, q, 0, 0)
	assert.Equal(t, 1, q.Size())

	v, err = q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	requireIndices(t, q, -1, -1)

	_, err = q.Dequeue()
	assert.ErrorIs(t, err, core.ErrEmpty)
	_, err = q.Peek()
	assert.ErrorIs(t, err, core.ErrEmpty)
}

func TestCircular_SingleSlot(t *testing.T) {
	q := queue.NewCircular[int](1)
	require.NoError(t, q.Enqueue(7))
	assert.True(t, q.IsFull())
	assert.ErrorIs(t, q.Enqueue(8), core.ErrFull)
	v, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	q.Clear()
	requireIndices(t, q, -1, -1)
	assert.Equal(t, 1, q.Capacity())
}

func TestNewCircular_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { queue.NewCircular[int](0) })
}

func TestQueue_FIFO(t *testing.T) {
	impls := map[string]queue.Queue[int]{
		"circular": queue.NewCircular[int](8),
		"linked":   queue.NewLinked[int](),
	}
	for name, q := range impls {
		t.Run(name, func(t *testing.T) {
			for round := 0; round < 3; round++ {
				for i := 0; i < 5; i++ {
					require.NoError(t, q.Enqueue(round*10+i))
				}
				assert.Equal(t, 5, q.Size())
				front, err := q.Peek()
				require.NoError(t, err)
				assert.Equal(t, round*10, front)
				for i := 0; i < 5; i++ {
					v, err := q.Dequeue()
					require.NoError(t, err)
					assert.Equal(t, round*10+i, v)
				}
				assert.True(t, q.IsEmpty())
			}
			require.NoError(t, q.Enqueue(1))
			q.Clear()
			_, err := q.Dequeue()
			assert.ErrorIs(t, err, core.ErrEmpty)
		})
	}
}
