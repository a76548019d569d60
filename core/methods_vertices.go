// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex queries: HasVertex/HasNodes/Vertices/VertexCount.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - All methods take the read lock.
package core

import (
	"fmt"
	"sort"
)

// HasVertex reports whether the vertex ID exists (invalid IDs ⇒ false).
//
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// HasNodes reports whether every listed vertex exists in the graph.
//
// Implementation:
//   - Stage 1: Reject a nil list (ErrNotSequence).
//   - Stage 2: Validate every element is a single character before any lookup,
//     so a malformed list fails even when an earlier vertex is missing.
//   - Stage 3: Under the read lock, check membership; stop at the first miss.
//
// Inputs:
//   - ids: vertex IDs; an empty non-nil list is vacuously present.
//
// Returns:
//   - bool: true iff all vertices exist.
//   - error: ErrNotSequence or a wrapped ErrBadVertex naming the element index.
//
// Complexity:
//   - Time O(n), Space O(1).
func (g *Graph) HasNodes(ids []string) (bool, error) {
	if ids == nil {
		return false, ErrNotSequence
	}
	for i, id := range ids {
		if err := ValidateVertex(id); err != nil {
			return false, fmt.Errorf("nodes[%d]: %w", i, err)
		}
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, id := range ids {
		if _, ok := g.vertices[id]; !ok {
			return false, nil
		}
	}

	return true, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedVerticesLocked()
}

func (g *Graph) sortedVerticesLocked() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
