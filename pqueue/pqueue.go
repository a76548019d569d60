// SPDX-License-Identifier: MIT
//
// Package pqueue provides a generic binary-heap priority queue ordered by a
// caller-supplied less function.
//
// The queue is a min-heap with respect to less: Pop returns the element that
// sorts first. Supplying a "greater" function turns it into a max-heap.
//
// Complexity:
//
//   - Push:  O(log n) per value (append + sift-up).
//   - Pop:   O(log n) (swap root with last, shrink, sift-down).
//   - Peek, Len, IsEmpty: O(1).
//
// Invariant: for every index i > 0, less(heap[i], heap[parent(i)]) is false,
// i.e. no child sorts before its parent.
//
// A PriorityQueue is not safe for concurrent use.
package pqueue

// root is the index of the extremal element.
const root = 0

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// PriorityQueue is a binary heap over values of type T.
type PriorityQueue[T any] struct {
	heap []T
	less func(a, b T) bool
}

// New builds a queue ordered by less and pushes the initial values.
// A nil less panics, since no ordering can be derived from it.
func New[T any](less func(a, b T) bool, values ...T) *PriorityQueue[T] {
	if less == nil {
		panic("pqueue: less function is nil")
	}
	q := &PriorityQueue[T]{
		heap: make([]T, 0, len(values)),
		less: less,
	}
	q.Push(values...)

	return q
}

// Len returns the number of queued elements.
func (q *PriorityQueue[T]) Len() int { return len(q.heap) }

// IsEmpty reports whether the queue holds no elements.
func (q *PriorityQueue[T]) IsEmpty() bool { return len(q.heap) == 0 }

// Push inserts each value in turn and returns the new size.
func (q *PriorityQueue[T]) Push(values ...T) int {
	for _, v := range values {
		q.heap = append(q.heap, v)
		q.siftUp(len(q.heap) - 1)
	}

	return len(q.heap)
}

// Peek returns the extremal element without removing it.
// ok is false when the queue is empty.
func (q *PriorityQueue[T]) Peek() (v T, ok bool) {
	if len(q.heap) == 0 {
		return v, false
	}

	return q.heap[root], true
}

// Pop removes and returns the extremal element.
// ok is false when the queue is empty.
func (q *PriorityQueue[T]) Pop() (v T, ok bool) {
	n := len(q.heap)
	if n == 0 {
		return v, false
	}
	v = q.heap[root]
	last := n - 1
	if last > root {
		q.swap(root, last)
	}
	var zero T
	q.heap[last] = zero // drop the reference for the GC
	q.heap = q.heap[:last]
	if len(q.heap) > 1 {
		q.siftDown(root)
	}

	return v, true
}

// Clear drops every element but keeps the backing array.
func (q *PriorityQueue[T]) Clear() {
	var zero T
	for i := range q.heap {
		q.heap[i] = zero
	}
	q.heap = q.heap[:0]
}

// Valid reports whether the heap invariant holds for every element.
// It is O(n) and meant for tests and diagnostics.
func (q *PriorityQueue[T]) Valid() bool {
	for i := 1; i < len(q.heap); i++ {
		if q.less(q.heap[i], q.heap[parent(i)]) {
			return false
		}
	}

	return true
}

func (q *PriorityQueue[T]) swap(i, j int) { q.heap[i], q.heap[j] = q.heap[j], q.heap[i] }

func (q *PriorityQueue[T]) siftUp(i int) {
	for i > root {
		p := parent(i)
		if !q.less(q.heap[i], q.heap[p]) {
			break
		}
		q.swap(i, p)
		i = p
	}
}

func (q *PriorityQueue[T]) siftDown(i int) {
	n := len(q.heap)
	for {
		first := i
		if l := left(i); l < n && q.less(q.heap[l], q.heap[first]) {
			first = l
		}
		if r := right(i); r < n && q.less(q.heap[r], q.heap[first]) {
			first = r
		}
		if first == i {
			return
		}
		q.swap(i, first)
		i = first
	}
}
