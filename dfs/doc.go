// SPDX-License-Identifier: MIT

// Package dfs implements depth-first cycle detection on a directed core.Graph.
//
// What:
//
//   - DetectCycles reports the cycles closed by back edges, using vertex
//     coloring (White, Gray, Black). Every strongly connected component that
//     contains a cycle yields at least one of them, so a caller asking "can
//     a walk loop forever inside this edge set" gets a sound answer.
//   - WithEdgeFilter restricts the search to a subset of edges, e.g. the
//     zero-distance ones.
//   - Cycles are canonicalized to their lexicographically minimal rotation
//     (Booth's algorithm) and deduplicated, then sorted by signature.
//
// Complexity:
//
//   - DetectCycles: Time O(V+E + C·L), Memory O(V + L_max)
//     (C=#cycles, L=avg cycle length)
//
// Errors:
//
//   - ErrGraphNil  graph pointer is nil
package dfs
