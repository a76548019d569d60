// SPDX-License-Identifier: MIT

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/routegraph/chain"
)

func TestQueue_FIFO(t *testing.T) {
	q := chain.NewQueue(1, 2)
	q.Enqueue(3)
	require.Equal(t, 3, q.Len())

	v, _ := q.Peek()
	require.Equal(t, 1, v)
	for want := 1; want <= 3; want++ {
		got, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	_, ok := q.Dequeue()
	require.False(t, ok)
	require.True(t, q.IsEmpty())
}

func TestStack_LIFO(t *testing.T) {
	s := chain.NewStack("a", "b")
	s.Push("c")
	require.Equal(t, []string{"c", "b", "a"}, s.Slice())

	v, _ := s.Peek()
	require.Equal(t, "c", v)
	v, _ = s.Pop()
	require.Equal(t, "c", v)
	require.Equal(t, 2, s.Len())
	require.False(t, s.IsEmpty())
}

func TestParents_TopIsMostRecent(t *testing.T) {
	p := chain.NewParents[string, int]()
	_, ok := p.Top("C")
	require.False(t, ok)

	p.Push("C", 9)
	p.Push("C", 7)
	v, ok := p.Top("C")
	require.True(t, ok)
	require.Equal(t, 7, v)
	require.Equal(t, []int{7, 9}, p.Stack("C"))
	require.True(t, p.Has("C"))
	require.False(t, p.Has("D"))
}

func TestParents_PopRestore(t *testing.T) {
	p := chain.NewParents[string, int]()
	p.Push("B", 1)
	p.Push("C", 2)
	p.Push("C", 3)

	v, _ := p.Pop("C")
	require.Equal(t, 3, v)
	v, _ = p.Pop("C")
	require.Equal(t, 2, v)
	v, _ = p.Pop("B")
	require.Equal(t, 1, v)
	_, ok := p.Pop("C")
	require.False(t, ok)
	require.Equal(t, 3, p.Pending())

	require.Equal(t, 3, p.Restore())
	require.Equal(t, 0, p.Pending())
	require.Equal(t, []int{3, 2}, p.Stack("C"))
	require.Equal(t, []int{1}, p.Stack("B"))
}

func TestParents_Commit(t *testing.T) {
	p := chain.NewParents[string, int]()
	p.Push("A", 1)
	p.Pop("A")
	p.Commit()
	require.Equal(t, 0, p.Restore())
	require.Equal(t, 0, p.Len("A"))
}

// TestParents_RestoreProperty pops an arbitrary sequence of keys and checks
// that Restore returns every stack to its prior content.
func TestParents_RestoreProperty(t *testing.T) {
	keys := []string{"A", "B", "C", "D"}
	rapid.Check(t, func(t *rapid.T) {
		p := chain.NewParents[string, int]()
		pushes := rapid.IntRange(0, 40).Draw(t, "pushes")
		for i := 0; i < pushes; i++ {
			k := rapid.SampledFrom(keys).Draw(t, "pushKey")
			p.Push(k, i)
		}
		before := make(map[string][]int, len(keys))
		for _, k := range keys {
			before[k] = p.Stack(k)
		}

		pops := rapid.IntRange(0, 40).Draw(t, "pops")
		for i := 0; i < pops; i++ {
			p.Pop(rapid.SampledFrom(keys).Draw(t, "popKey"))
		}
		p.Restore()

		for _, k := range keys {
			got := p.Stack(k)
			if len(got) != len(before[k]) {
				t.Fatalf("key %s: %v after restore, want %v", k, got, before[k])
			}
			for i := range got {
				if got[i] != before[k][i] {
					t.Fatalf("key %s: %v after restore, want %v", k, got, before[k])
				}
			}
		}
	})
}
