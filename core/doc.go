// SPDX-License-Identifier: MIT
//
// Package core provides the directed, weighted graph that route queries run on.
//
// Vertices are single-character symbols ("A", "B", …). An edge is a one-way
// connection From→To with a non-negative integer Distance; an edge A→B never
// implies B→A. The graph keeps:
//
//   - adjacency[from][to] = *Edge   O(1) single-edge lookup
//   - order[from] = []to            deterministic, insertion-ordered neighbor enumeration
//
// Invariants:
//
//   - At most one edge per ordered pair; AddEdge on an existing pair replaces
//     its distance and keeps its position in Edges(from).
//   - No self-loops: AddEdge(v, v, d) returns ErrLoopNotAllowed.
//   - Both endpoints of every edge are vertices.
//
// Queries never fail for unknown vertices: GetEdge reports (nil, false),
// Edges/Neighbors return empty slices. Only HasNodes validates its input,
// returning ErrNotSequence or ErrBadVertex.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 5)
//	e, ok := g.GetEdge("A", "B") // e.Distance == 5, ok == true
//	ok, err := g.HasNodes([]string{"A", "B"})
//
// Concurrency: a sync.RWMutex guards the graph, so it may be filled from
// several goroutines. Searches in package routes assume no writer runs while a
// query is in flight.
package core
