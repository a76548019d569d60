// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdges/GetEdge/HasEdge/Edges/AllEdges/EdgeCount.
// Ownership:
//   - Stored edges never leave the package. GetEdge, Edges and AllEdges hand
//     out copies, so a caller cannot rewrite a distance or endpoint in place.
// Determinism:
//   - Edges(from) returns edges in first-insertion order of their targets.
//   - AllEdges() walks sources in sorted order, then Edges(from) order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

// AddEdge inserts the edge from→to, or replaces the distance of an existing one.
//
// Implementation:
//   - Stage 1: Validate via NewEdge (single-character IDs, no self-loop, distance ≥ 0).
//   - Stage 2: Under the write lock, register both endpoints as vertices.
//   - Stage 3: Store the edge; a new target is appended to order[from],
//     a replaced target keeps its original position.
//
// Errors:
//   - ErrBadVertex, ErrLoopNotAllowed, ErrNegativeDistance (wrapped).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, distance int64) error {
	e, err := NewEdge(from, to, distance)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.insert(&e)

	return nil
}

// AddEdges inserts every edge in order and stops at the first invalid one.
// Edges inserted before the failing one stay in the graph.
func (g *Graph) AddEdges(edges ...Edge) error {
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Distance); err != nil {
			return err
		}
	}

	return nil
}

// insert stores a validated edge. Caller holds the write lock.
func (g *Graph) insert(e *Edge) {
	g.vertices[e.From] = struct{}{}
	g.vertices[e.To] = struct{}{}

	inner, ok := g.adjacency[e.From]
	if !ok {
		inner = make(map[string]*Edge)
		g.adjacency[e.From] = inner
	}
	if _, exists := inner[e.To]; !exists {
		g.order[e.From] = append(g.order[e.From], e.To)
		g.edgeCount++
	}
	inner[e.To] = e
}

// GetEdge returns a copy of the edge from→to.
// The boolean is false when from has no outgoing edges or none to `to`;
// GetEdge never fails.
//
// Complexity: O(1).
func (g *Graph) GetEdge(from, to string) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.adjacency[from][to]
	if !ok {
		return nil, false
	}
	c := *e

	return &c, true
}

// HasEdge reports whether an edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// Edges returns copies of the outgoing edges of from in insertion order.
// Unknown vertices yield an empty (nil) slice.
//
// Complexity: O(d) where d is the out-degree of from.
func (g *Graph) Edges(from string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesLocked(from)
}

// edgesLocked assembles Edges(from). The copies share one backing array.
// Caller holds at least the read lock.
func (g *Graph) edgesLocked(from string) []*Edge {
	targets := g.order[from]
	if len(targets) == 0 {
		return nil
	}
	inner := g.adjacency[from]
	buf := make([]Edge, len(targets))
	out := make([]*Edge, len(targets))
	for i, to := range targets {
		buf[i] = *inner[to]
		out[i] = &buf[i]
	}

	return out
}

// AllEdges returns copies of every edge, grouped by source vertex in ID order.
// Complexity: O(V log V + E).
func (g *Graph) AllEdges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, g.edgeCount)
	for _, from := range g.sortedVerticesLocked() {
		out = append(out, g.edgesLocked(from)...)
	}

	return out
}

// EdgeCount returns the number of distinct (from, to) edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
