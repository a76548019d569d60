// SPDX-License-Identifier: MIT

package chain

// Parents keeps one predecessor stack per key and journals every Pop so that
// Restore can put the popped values back.
//
// The most recently pushed predecessor of a key is its top and is consulted
// first. Pop followed by Restore leaves every stack exactly as it was, which
// lets a caller walk a predecessor chain destructively and still repeat the
// walk later.
type Parents[K comparable, V comparable] struct {
	stacks  map[K]*List[V]
	journal []entry[K, V]
}

type entry[K comparable, V comparable] struct {
	key K
	val V
}

// NewParents returns an empty set of predecessor stacks.
func NewParents[K comparable, V comparable]() *Parents[K, V] {
	return &Parents[K, V]{stacks: make(map[K]*List[V])}
}

// Push puts v on top of key's stack.
func (p *Parents[K, V]) Push(key K, v V) {
	s, ok := p.stacks[key]
	if !ok {
		s = &List[V]{}
		p.stacks[key] = s
	}
	s.AddFirst(v)
}

// Top returns the most recent predecessor of key without removing it.
func (p *Parents[K, V]) Top(key K) (v V, ok bool) {
	s, exists := p.stacks[key]
	if !exists {
		return v, false
	}

	return s.First()
}

// Pop removes and returns key's top predecessor and journals it for Restore.
func (p *Parents[K, V]) Pop(key K) (v V, ok bool) {
	s, exists := p.stacks[key]
	if !exists {
		return v, false
	}
	v, ok = s.RemoveFirst()
	if ok {
		p.journal = append(p.journal, entry[K, V]{key: key, val: v})
	}

	return v, ok
}

// Len returns the depth of key's stack.
func (p *Parents[K, V]) Len(key K) int {
	if s, ok := p.stacks[key]; ok {
		return s.Len()
	}

	return 0
}

// Has reports whether key currently has at least one predecessor.
func (p *Parents[K, V]) Has(key K) bool { return p.Len(key) > 0 }

// Stack returns a copy of key's predecessors, top first.
func (p *Parents[K, V]) Stack(key K) []V {
	if s, ok := p.stacks[key]; ok {
		return s.Slice()
	}

	return nil
}

// Pending returns the number of popped values awaiting Restore.
func (p *Parents[K, V]) Pending() int { return len(p.journal) }

// Restore re-inserts every journaled value in reverse pop order and clears
// the journal. It returns the number of values restored.
func (p *Parents[K, V]) Restore() int {
	n := len(p.journal)
	for i := n - 1; i >= 0; i-- {
		e := p.journal[i]
		p.stacks[e.key].AddFirst(e.val)
	}
	p.journal = p.journal[:0]

	return n
}

// Commit forgets the journal, making the pops since the last Restore permanent.
func (p *Parents[K, V]) Commit() { p.journal = p.journal[:0] }
