// SPDX-License-Identifier: MIT

package sll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/core"
	"github.com/katalvlaran/lvlds/sll"
)

// requireWellFormed walks the list and checks the structural invariants.
func requireWellFormed[T comparable](t *testing.T, l *sll.List[T]) {
	t.Helper()
	if l.Len() == 0 {
		require.Nil(t, l.Head(), "empty list must have nil head")
		require.Nil(t, l.Tail(), "empty list must have nil tail")
		return
	}
	require.NotNil(t, l.Head())
	require.Nil(t, l.Tail().Next(), "tail.next must be nil")

	count := 0
	var last *sll.Node[T]
	for n := l.Head(); n != nil; n = n.Next() {
		count++
		last = n
		require.LessOrEqual(t, count, l.Len(), "more nodes reachable than Len()")
	}
	require.Equal(t, l.Len(), count)
	require.Same(t, l.Tail(), last)
}

func TestList_AppendPrepend(t *testing.T) {
	l := sll.New[int]()
	requireWellFormed(t, l)
	assert.True(t, l.IsEmpty())
	assert.Equal(t, core.EmptyRendering, l.String())

	l.Append(20)
	l.Append(30)
	l.Prepend(10)
	requireWellFormed(t, l)
	assert.Equal(t, []int{10, 20, 30}, l.Traverse())
	assert.Equal(t, "10 -> 20 -> 30", l.String())
}

func TestList_InsertAt(t *testing.T) {
	l := sll.New(10, 30)
	require.NoError(t, l.InsertAt(1, 20))
	require.NoError(t, l.InsertAt(0, 5))
	require.NoError(t, l.InsertAt(l.Len(), 40))
	requireWellFormed(t, l)
	assert.Equal(t, []int{5, 10, 20, 30, 40}, l.Traverse())

	err := l.InsertAt(7, 99)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	err = l.InsertAt(-1, 99)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	assert.Equal(t, 5, l.Len(), "failed insert must not mutate")
}

func TestList_GetSetAt(t *testing.T) {
	l := sll.New("a", "b", "c")
	v, err := l.GetAt(2)
	require.NoError(t, err)
	assert.Equal(t, "c", v)

	require.NoError(t, l.SetAt(1, "B"))
	assert.Equal(t, []string{"a", "B", "c"}, l.Traverse())

	_, err = l.GetAt(3)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	assert.ErrorIs(t, l.SetAt(-2, "x"), core.ErrOutOfRange)
}

func TestList_PopFirstPopLast(t *testing.T) {
	l := sll.New(1, 2, 3)

	n, err := l.PopFirst()
	require.NoError(t, err)
	assert.Equal(t, 1, n.Value)
	assert.Nil(t, n.Next(), "popped node must be detached")
	requireWellFormed(t, l)

	n, err = l.PopLast()
	require.NoError(t, err)
	assert.Equal(t, 3, n.Value)
	requireWellFormed(t, l)

	n, err = l.PopLast()
	require.NoError(t, err)
	assert.Equal(t, 2, n.Value)
	requireWellFormed(t, l)

	_, err = l.PopFirst()
	assert.ErrorIs(t, err, core.ErrEmpty)
	_, err = l.PopLast()
	assert.ErrorIs(t, err, core.ErrEmpty)
}

func TestList_RemoveAt(t *testing.T) {
	l := sll.New(10, 20, 30, 40)
	n, err := l.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, 30, n.Value)
	assert.Nil(t, n.Next())
	assert.Equal(t, []int{10, 20, 40}, l.Traverse())
	requireWellFormed(t, l)

	n, err = l.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, 40, n.Value)
	assert.Equal(t, 20, l.Tail().Value)

	_, err = l.RemoveAt(2)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestList_SearchReverseDeleteAll(t *testing.T) {
	l := sll.New(4, 8, 15, 16, 23, 42)
	assert.Equal(t, 3, l.Search(16))
	assert.Equal(t, core.NotFound, l.Search(7))

	l.Reverse()
	requireWellFormed(t, l)
	assert.Equal(t, []int{42, 23, 16, 15, 8, 4}, l.Traverse())
	assert.Equal(t, 4, l.Tail().Value)

	l.DeleteAll()
	requireWellFormed(t, l)
	l.DeleteAll() // no-op on empty
	assert.Equal(t, 0, l.Len())
}

func TestList_InsertRemoveIdentity(t *testing.T) {
	base := []int{1, 2, 3, 4, 5}
	for i := 0; i <= len(base); i++ {
		l := sll.New(base...)
		require.NoError(t, l.InsertAt(i, 99))
		n, err := l.RemoveAt(i)
		require.NoError(t, err)
		assert.Equal(t, 99, n.Value)
		assert.Equal(t, base, l.Traverse(), "insert/remove at %d must be identity", i)
		requireWellFormed(t, l)
	}
}
