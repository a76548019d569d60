// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, OutDegree, AdjacencyList).
// Determinism:
//   - Neighbors() follows first-insertion order of targets.
//   - AdjacencyList() keys are vertex IDs; values keep Neighbors() order.

package core

// Neighbors returns the IDs reachable from `from` over one edge,
// in insertion order. Unknown vertices yield an empty slice; Neighbors never fails.
//
// Complexity: O(d).
func (g *Graph) Neighbors(from string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	targets := g.order[from]
	out := make([]string, len(targets))
	copy(out, targets)

	return out
}

// OutDegree returns the number of outgoing edges of `from`.
func (g *Graph) OutDegree(from string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order[from])
}

// AdjacencyList returns an independent copy of vertex → neighbor IDs.
// Every vertex appears as a key, sinks with an empty slice.
//
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		targets := g.order[id]
		cp := make([]string, len(targets))
		copy(cp, targets)
		out[id] = cp
	}

	return out
}
