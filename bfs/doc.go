// SPDX-License-Identifier: MIT

// Package bfs runs breadth-first search over a core.Graph, counting stops
// (edges) instead of distances. It answers "which towns can be reached from
// here, and in how few stops".
//
// Towns are visited in non-decreasing stop count, following edges in their
// direction and in insertion order, so the visit sequence is reproducible.
// The Result keeps, per reached town, its stop count and the edge it was
// first reached over; PathTo and DistanceTo walk those edges back to the
// start.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Usage:
//
//	res, err := bfs.BFS(g, "A", bfs.WithMaxStops(2))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ctx or hook errors
//	}
//	path, _ := res.PathTo("C") // [A B C]
//	d, _ := res.DistanceTo("C") // 9, the length of that path
package bfs
