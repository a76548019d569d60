// SPDX-License-Identifier: MIT

package dfs

import (
	"slices"
	"sort"

	"github.com/katalvlaran/routegraph/core"
)

// DetectCycles returns the distinct cycles closed by back edges of a
// depth-first search over g, each as a closed walk [v0, v1, ..., v0].
// A nil result means the (filtered) graph is acyclic.
func DetectCycles(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	verts := g.Vertices()
	d := &detector{
		g:     g,
		keep:  o.FilterEdge,
		state: make(map[string]int, len(verts)),
		path:  make([]string, 0, len(verts)),
		seen:  make(map[string]struct{}),
	}
	for _, v := range verts {
		if d.state[v] == White {
			d.visit(v)
		}
	}

	sort.Slice(d.cycles, func(i, j int) bool {
		return JoinSig(d.cycles[i]) < JoinSig(d.cycles[j])
	})

	return d.cycles, nil
}

// HasCycle reports whether the (filtered) graph contains any cycle.
func HasCycle(g *core.Graph, opts ...Option) (bool, error) {
	cycles, err := DetectCycles(g, opts...)

	return len(cycles) > 0, err
}

type detector struct {
	g      *core.Graph
	keep   func(*core.Edge) bool
	state  map[string]int
	path   []string
	seen   map[string]struct{}
	cycles [][]string
}

// visit colors id Gray, explores its kept edges and records every back edge
// to a Gray vertex as a cycle.
func (d *detector) visit(id string) {
	d.state[id] = Gray
	d.path = append(d.path, id)

	for _, e := range d.g.Edges(id) {
		if d.keep != nil && !d.keep(e) {
			continue
		}
		switch d.state[e.To] {
		case White:
			d.visit(e.To)
		case Gray:
			d.record(e.To)
		}
	}

	d.path = d.path[:len(d.path)-1]
	d.state[id] = Black
}

// record extracts the cycle from start to the top of the path and keeps it
// if its canonical form is new.
func (d *detector) record(start string) {
	idx := slices.Index(d.path, start)
	base := MinimalRotation(d.path[idx:])
	closed := append(base, base[0])

	sig := JoinSig(closed)
	if _, ok := d.seen[sig]; ok {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, closed)
}
