// SPDX-License-Identifier: MIT
//
// Package routes answers route queries over a directed, weighted core.Graph
// whose vertices are single-character symbols.
//
// Overview:
//
//   - Distance("A-B-C")                  total distance of an explicit route.
//   - NumRoutes(from, to, WithMaxStops(n)) number of walks bounded by stops or distance.
//   - ShortestRoute(from, to)            minimum distance over all walks; from == to
//     yields the shortest cycle.
//
// All counting searches count walks: vertices and edges may repeat. A walk of
// zero edges never counts.
//
// Search machinery:
//
//   - Counting by stops runs a level-synchronized breadth expansion over a
//     chain.Queue; WithRecursive() switches to an equivalent depth-first walk.
//   - Counting by distance pops walks from a pqueue heap in order of
//     cumulative distance; the recursive variant gives identical counts.
//   - ShortestRoute is Dijkstra with lazy decrease-key keyed by cumulative
//     distance. Each improvement pushes the entry edge onto the target's
//     predecessor stack in a chain.Parents; the walk is rebuilt by popping
//     predecessors back to the source and then restoring them.
//
// Sentinels:
//
//   - NoRoute (-1): Distance hit a missing hop, or ShortestRoute found no walk.
//     Not an error.
//   - NumRoutes returns 0 when no walk satisfies the bound.
//
// Errors (sentinel):
//
//   - ErrBadRoute:            malformed route string.
//   - ErrNoCriterion:         no bound > 0 supplied to NumRoutes.
//   - ErrConflictingCriteria: more than one bound supplied.
//   - ErrOptionViolation:     negative bound.
//   - ErrVertexNotFound:      query vertex absent from the graph.
//   - ErrZeroDistanceCycle:   distance bound over a reachable zero-distance cycle.
//   - ErrDistanceOverflow:    Distance or ShortestRoute sum beyond math.MaxInt64.
//
// Walk distances saturate at math.MaxInt64 while counting, so no distance
// bound admits a walk whose sum overflows.
//
// Resource model: queries are synchronous and have no cancellation. The
// number of enumerated walks grows exponentially with maxStops/maxDistance on
// cyclic graphs and recursive variants use stack proportional to walk length.
// Bounds are the caller's responsibility. A cycle of zero-distance edges
// reachable under a distance bound would admit infinitely many walks; such a
// query fails with ErrZeroDistanceCycle before enumerating anything.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 5)
//	_ = g.AddEdge("B", "C", 4)
//	rg, _ := routes.New(g)
//	d, _ := rg.Distance("A-B-C")                              // 9
//	n, _ := rg.NumRoutes("A", "C", routes.WithMaxStops(3))    // 1
//	s, _ := rg.ShortestRoute("A", "C")                        // 9
package routes
