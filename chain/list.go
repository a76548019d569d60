// SPDX-License-Identifier: MIT
//
// Package chain provides a doubly-linked list whose nodes live in an arena
// and link to each other by index, plus the FIFO queue, LIFO stack and
// per-key predecessor stacks that route searches build on it.
//
// Nodes are never shared outside the list: callers see values only, and a
// removed slot is recycled through a free list. Index 0 is reserved as the
// nil link, so the zero List is an empty, ready-to-use list.
//
// Complexity:
//
//   - Add, AddFirst, RemoveFirst, RemoveLast, First, Last, Len: O(1) per value.
//   - Remove(value): O(n) scan, O(1) unlink.
//
// A List is not safe for concurrent use.
package chain

import (
	"fmt"
	"iter"
	"strings"
)

// none is the nil link; slot 0 of the arena is never handed out.
const none = 0

type node[T comparable] struct {
	val  T
	prev int
	next int
}

// List is a doubly-linked list of comparable values.
type List[T comparable] struct {
	nodes  []node[T]
	free   []int
	head   int
	tail   int
	length int
}

// NewList returns a list holding values in order.
func NewList[T comparable](values ...T) *List[T] {
	l := &List[T]{}
	l.Add(values...)

	return l
}

// Len returns the number of live nodes.
func (l *List[T]) Len() int { return l.length }

// IsEmpty reports whether the list has no nodes.
func (l *List[T]) IsEmpty() bool { return l.length == 0 }

// First returns the head value.
func (l *List[T]) First() (v T, ok bool) {
	if l.head == none {
		return v, false
	}

	return l.nodes[l.head].val, true
}

// Last returns the tail value.
func (l *List[T]) Last() (v T, ok bool) {
	if l.tail == none {
		return v, false
	}

	return l.nodes[l.tail].val, true
}

// Add appends values at the tail, in order.
func (l *List[T]) Add(values ...T) {
	for _, v := range values {
		i := l.alloc(v)
		l.nodes[i].prev = l.tail
		if l.tail != none {
			l.nodes[l.tail].next = i
		} else {
			l.head = i
		}
		l.tail = i
		l.length++
	}
}

// AddFirst prepends values at the head one by one, so the last argument
// ends up first: AddFirst(1, 2) on [3] yields [2 1 3].
func (l *List[T]) AddFirst(values ...T) {
	for _, v := range values {
		i := l.alloc(v)
		l.nodes[i].next = l.head
		if l.head != none {
			l.nodes[l.head].prev = i
		} else {
			l.tail = i
		}
		l.head = i
		l.length++
	}
}

// Remove unlinks the first node holding v and reports whether one was found.
func (l *List[T]) Remove(v T) bool {
	for i := l.head; i != none; i = l.nodes[i].next {
		if l.nodes[i].val == v {
			l.unlink(i)
			return true
		}
	}

	return false
}

// RemoveFirst unlinks and returns the head value.
func (l *List[T]) RemoveFirst() (v T, ok bool) {
	if l.head == none {
		return v, false
	}
	v = l.nodes[l.head].val
	l.unlink(l.head)

	return v, true
}

// RemoveLast unlinks and returns the tail value.
func (l *List[T]) RemoveLast() (v T, ok bool) {
	if l.tail == none {
		return v, false
	}
	v = l.nodes[l.tail].val
	l.unlink(l.tail)

	return v, true
}

// Clear drops every node and releases the arena.
func (l *List[T]) Clear() {
	*l = List[T]{}
}

// All iterates head→tail following next links.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.head; i != none; i = l.nodes[i].next {
			if !yield(l.nodes[i].val) {
				return
			}
		}
	}
}

// Backward iterates tail→head following prev links.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.tail; i != none; i = l.nodes[i].prev {
			if !yield(l.nodes[i].val) {
				return
			}
		}
	}
}

// Slice copies the values head→tail.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.length)
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}

// String renders the list as "[a, b, c]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for v := range l.All() {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
		first = false
	}
	sb.WriteByte(']')

	return sb.String()
}

func (l *List[T]) alloc(v T) int {
	if len(l.nodes) == 0 {
		l.nodes = append(l.nodes, node[T]{}) // reserve slot 0 as the nil link
	}
	if n := len(l.free); n > 0 {
		i := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[i] = node[T]{val: v}
		return i
	}
	l.nodes = append(l.nodes, node[T]{val: v})

	return len(l.nodes) - 1
}

func (l *List[T]) unlink(i int) {
	n := l.nodes[i]
	if n.prev != none {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != none {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.nodes[i] = node[T]{}
	l.free = append(l.free, i)
	l.length--
}
