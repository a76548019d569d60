// SPDX-License-Identifier: MIT

package routes

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/routegraph/chain"
	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/pqueue"
)

// ShortestRoute returns the minimum cumulative distance over all walks from
// `from` to `to`, or NoRoute when `to` is unreachable.
//
// When from == to the result is the length of the shortest cycle through
// `from`, never zero; NoRoute if `from` lies on no cycle.
//
// Errors: ErrVertexNotFound or wrapped core.ErrBadVertex for bad endpoints;
// ErrDistanceOverflow when `to` is reachable only over walks longer than
// math.MaxInt64.
func (r *Graph) ShortestRoute(from, to string) (int64, error) {
	route, err := r.ShortestPath(from, to)
	if err != nil {
		return 0, err
	}

	return route.Distance, nil
}

// ShortestPath is ShortestRoute plus the walk itself. An unreachable target
// yields a Route with no vertices and Distance == NoRoute.
//
// Implementation:
//   - Stage 1: Validate endpoints.
//   - Stage 2: Seed the heap with the outgoing edges of `from`, keyed by
//     cumulative distance. `from` is settled at 0 unless it is also the target.
//   - Stage 3: Pop the closest arrival; skip settled vertices; settle; return
//     on the target; otherwise relax the outgoing edges (lazy decrease-key).
//   - Stage 4: Rebuild the walk from the predecessor chain and restore it.
//
// Complexity:
//   - Time O((V + E) log E), Space O(V + E).
func (r *Graph) ShortestPath(from, to string) (Route, error) {
	if err := r.validateEndpoints(from, to); err != nil {
		return Route{}, err
	}

	s := newSearch(r.Graph, from, to)
	last, found := s.run()
	if !found && s.overflow {
		return Route{}, fmt.Errorf("%w: %s→%s", ErrDistanceOverflow, from, to)
	}
	if !found {
		r.logger.Debug("routes: unreachable",
			slog.String("from", from),
			slog.String("to", to))
		return Route{Distance: NoRoute}, nil
	}

	route, err := s.reconstruct()
	if err != nil {
		return Route{}, err
	}
	if route.Distance != last.dist {
		return Route{}, fmt.Errorf("%w: chain distance %d, search distance %d",
			ErrBrokenChain, route.Distance, last.dist)
	}

	r.logger.Debug("routes: shortest",
		slog.String("from", from),
		slog.String("to", to),
		slog.Int64("distance", route.Distance),
		slog.String("route", route.String()))

	return route, nil
}

// arrival is a heap entry: an edge and the cumulative distance at its head.
type arrival struct {
	edge *core.Edge
	dist int64
}

// search holds the mutable state of one shortest-walk query.
type search struct {
	g       *core.Graph
	from    string
	to      string
	dist    map[string]int64 // best tentative distance per vertex
	settled map[string]bool  // vertices whose distance is final
	parents *chain.Parents[string, *core.Edge]
	pq      *pqueue.PriorityQueue[arrival]

	overflow bool // some relaxation exceeded math.MaxInt64 and was dropped
}

func newSearch(g *core.Graph, from, to string) *search {
	n := g.VertexCount()

	return &search{
		g:       g,
		from:    from,
		to:      to,
		dist:    make(map[string]int64, n),
		settled: make(map[string]bool, n),
		parents: chain.NewParents[string, *core.Edge](),
		pq:      pqueue.New(func(a, b arrival) bool { return a.dist < b.dist }),
	}
}

// run executes the best-first loop and returns the arrival at the target.
func (s *search) run() (arrival, bool) {
	if s.from != s.to {
		s.dist[s.from] = 0
		s.settled[s.from] = true
	}
	s.relax(s.from, 0)

	for !s.pq.IsEmpty() {
		a, _ := s.pq.Pop()
		v := a.edge.To
		if s.settled[v] {
			continue // stale entry
		}
		s.settled[v] = true
		if v == s.to {
			return a, true
		}
		s.relax(v, a.dist)
	}

	return arrival{}, false
}

// distancesFrom runs the search to exhaustion and returns the shortest
// distance from `from` to every reachable vertex, `from` itself at 0.
// The empty target is never a vertex, so run does not stop early.
func distancesFrom(g *core.Graph, from string) map[string]int64 {
	s := newSearch(g, from, "")
	s.run()

	return s.dist
}

// relax offers every outgoing edge of u, reached at distance base.
// Arrivals whose distance would overflow are dropped and flagged.
// A strict improvement pushes the edge on the target's predecessor stack,
// so the top of each stack is that vertex's best-known entry edge.
func (s *search) relax(u string, base int64) {
	for _, e := range s.g.Edges(u) {
		v := e.To
		if s.settled[v] {
			continue
		}
		d, ok := core.AddDistance(base, e.Distance)
		if !ok {
			s.overflow = true
			continue
		}
		if cur, seen := s.dist[v]; seen && d >= cur {
			continue
		}
		s.dist[v] = d
		s.parents.Push(v, e)
		s.pq.Push(arrival{edge: e, dist: d})
	}
}

// reconstruct walks the predecessor chain from the target back to the
// source, then restores every popped entry so the chain can be walked again.
func (s *search) reconstruct() (Route, error) {
	defer s.parents.Restore()

	var hops []*core.Edge
	cur := s.to
	limit := s.g.VertexCount()
	for {
		e, ok := s.parents.Pop(cur)
		if !ok {
			return Route{}, fmt.Errorf("%w: no predecessor for %q", ErrBrokenChain, cur)
		}
		hops = append(hops, e)
		if len(hops) > limit {
			return Route{}, fmt.Errorf("%w: walk longer than %d hops", ErrBrokenChain, limit)
		}
		cur = e.From
		if cur == s.from {
			break
		}
	}

	return routeFromHops(hops), nil
}

// routeFromHops turns target-first hops into a source-first Route and sums
// their distances.
func routeFromHops(hops []*core.Edge) Route {
	n := len(hops)
	vertices := make([]string, 0, n+1)
	var dist int64
	vertices = append(vertices, hops[n-1].From)
	for i := n - 1; i >= 0; i-- {
		vertices = append(vertices, hops[i].To)
		dist += hops[i].Distance
	}

	return Route{Vertices: vertices, Distance: dist}
}
