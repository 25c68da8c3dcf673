package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drain[T any](f Frontier[T]) []T {
	var out []T
	for !f.IsEmpty() {
		out = append(out, f.Pop())
	}
	return out
}

func TestFrontiers(t *testing.T) {
	t.Run("stack pops last in first out", func(t *testing.T) {
		s := NewStack[string]()
		s.Push("a", 3)
		s.Push("b", 1)
		s.Push("c", 2)

		require.Equal(t, 3, s.Len())
		require.Equal(t, []string{"c", "b", "a"}, drain[string](s))
		require.True(t, s.IsEmpty())
	})

	t.Run("queue pops first in first out", func(t *testing.T) {
		q := NewQueue[string]()
		q.Push("a", 3)
		q.Push("b", 1)
		q.Push("c", 2)

		require.Equal(t, []string{"a", "b", "c"}, drain[string](q))
	})

	t.Run("queue keeps order across compaction", func(t *testing.T) {
		q := NewQueue[int]()
		var want []int
		for i := 0; i < 100; i++ {
			q.Push(i, 0)
		}
		for i := 0; i < 70; i++ {
			require.Equal(t, i, q.Pop())
		}
		for i := 100; i < 150; i++ {
			q.Push(i, 0)
		}
		for i := 70; i < 150; i++ {
			want = append(want, i)
		}

		require.Equal(t, 80, q.Len())
		require.Equal(t, want, drain[int](q))
	})

	t.Run("priority queue pops lowest priority first", func(t *testing.T) {
		pq := NewPriorityQueue[string]()
		pq.Push("a", 3)
		pq.Push("b", 1)
		pq.Push("c", 2)

		require.Equal(t, []string{"b", "c", "a"}, drain[string](pq))
	})

	t.Run("priority queue breaks ties by insertion order", func(t *testing.T) {
		pq := NewPriorityQueue[string]()
		pq.Push("first", 1)
		pq.Push("low", 0)
		pq.Push("second", 1)
		pq.Push("third", 1)

		require.Equal(t, []string{"low", "first", "second", "third"}, drain[string](pq))
	})

	t.Run("popping an empty frontier panics", func(t *testing.T) {
		require.Panics(t, func() { NewStack[int]().Pop() })
		require.Panics(t, func() { NewQueue[int]().Pop() })
		require.Panics(t, func() { NewPriorityQueue[int]().Pop() })
	})
}
