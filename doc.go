// SPDX-License-Identifier: MIT

// Package routegraph answers route questions over a small directed, weighted
// graph of towns, each named by a single character.
//
// What it answers:
//
//   - Distance of an explicit route ("A-B-C"), or NO SUCH ROUTE.
//   - Number of walks between two towns bounded by stops or by distance.
//   - Shortest walk between two towns; from == to finds the shortest cycle.
//   - Which towns are reachable, and in how few stops.
//
// Packages:
//
//	core/      Graph and Edge with single-character vertices, RW-locked
//	pqueue/    generic binary heap ordered by a less func
//	chain/     arena doubly-linked list, Queue, Stack and per-key predecessor stacks
//	routes/    Distance, NumRoutes, ShortestRoute/ShortestPath
//	bfs/       fewest-stops reachability
//	dfs/       cycle detection, used to reject zero-distance loops
//	loader/    edge-list parsing ("AB5, BC4" or "A B 5"), file loading, generation
//	config/    YAML query plans validated before they run
//	cmd/routegraph  command-line front end
//
// Quick start:
//
//	g := core.NewGraph()
//	_, _ = loader.LoadString(ctx, "AB5, BC4, CD8, DC8, DE6, AD5, CE2, EB3, AE7", g)
//	rg, _ := routes.New(g)
//	d, _ := rg.Distance("A-B-C")                            // 9
//	n, _ := rg.NumRoutes("C", "C", routes.WithMaxStops(3))  // 2
//	s, _ := rg.ShortestRoute("B", "B")                      // 9
package routegraph
