// SPDX-License-Identifier: MIT

package chain

// Queue is a FIFO buffer backed by a List. Dequeue is O(1).
type Queue[T comparable] struct {
	list List[T]
}

// NewQueue returns a queue holding values, first value at the front.
func NewQueue[T comparable](values ...T) *Queue[T] {
	q := &Queue[T]{}
	q.Enqueue(values...)

	return q
}

// Enqueue appends values at the back.
func (q *Queue[T]) Enqueue(values ...T) { q.list.Add(values...) }

// Dequeue removes and returns the front value.
func (q *Queue[T]) Dequeue() (T, bool) { return q.list.RemoveFirst() }

// Peek returns the front value without removing it.
func (q *Queue[T]) Peek() (T, bool) { return q.list.First() }

// Len returns the number of queued values.
func (q *Queue[T]) Len() int { return q.list.Len() }

// IsEmpty reports whether the queue is empty.
func (q *Queue[T]) IsEmpty() bool { return q.list.IsEmpty() }

// Stack is a LIFO stack backed by a List; the top is the list head.
type Stack[T comparable] struct {
	list List[T]
}

// NewStack pushes values in order, so the last value is on top.
func NewStack[T comparable](values ...T) *Stack[T] {
	s := &Stack[T]{}
	s.Push(values...)

	return s
}

// Push puts values on top, one by one.
func (s *Stack[T]) Push(values ...T) { s.list.AddFirst(values...) }

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (T, bool) { return s.list.RemoveFirst() }

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, bool) { return s.list.First() }

// Len returns the stack depth.
func (s *Stack[T]) Len() int { return s.list.Len() }

// IsEmpty reports whether the stack is empty.
func (s *Stack[T]) IsEmpty() bool { return s.list.IsEmpty() }

// Slice returns the values top→bottom.
func (s *Stack[T]) Slice() []T { return s.list.Slice() }
