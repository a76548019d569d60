// SPDX-License-Identifier: MIT

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegraph/chain"
)

func TestQueue_FIFO(t *testing.T) {
	q := chain.NewQueue("A", "B")
	q.Enqueue("C")
	require.Equal(t, 3, q.Len())

	v, ok := q.Peek()
	require.True(t, ok)
	require.Equal(t, "A", v)

	var got []string
	for !q.IsEmpty() {
		v, _ = q.Dequeue()
		got = append(got, v)
	}
	require.Equal(t, []string{"A", "B", "C"}, got)

	_, ok = q.Dequeue()
	require.False(t, ok)
}

// Interleaved use exercises the free list behind the queue.
func TestQueue_Interleaved(t *testing.T) {
	q := chain.NewQueue[int]()
	next := 0
	for round := 0; round < 50; round++ {
		q.Enqueue(round*2, round*2+1)
		v, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, next, v)
		next++
	}
	require.Equal(t, 50, q.Len())
}

func TestStack_LIFO(t *testing.T) {
	s := chain.NewStack(1, 2)
	s.Push(3, 4)
	require.Equal(t, []int{4, 3, 2, 1}, s.Slice())

	v, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, 4, v)

	v, _ = s.Pop()
	require.Equal(t, 4, v)
	v, _ = s.Pop()
	require.Equal(t, 3, v)
	require.Equal(t, 2, s.Len())

	s.Pop()
	s.Pop()
	require.True(t, s.IsEmpty())
	_, ok = s.Pop()
	require.False(t, ok)
}
