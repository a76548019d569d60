// SPDX-License-Identifier: MIT

package routes

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/routegraph/chain"
	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/dfs"
	"github.com/katalvlaran/routegraph/pqueue"
)

// step is one frontier item: the edge just taken, the cumulative distance
// and stop count from the query source, and the step it was expanded from.
// Steps are immutable once built, so sharing parents between siblings is safe.
// dist saturates at math.MaxInt64, which no distance bound admits.
type step struct {
	edge   *core.Edge
	dist   int64
	stops  int
	parent *step
}

// route rebuilds the walk ending at s by following parent links.
func (s *step) route() Route {
	n := s.stops + 1
	vertices := make([]string, n)
	cur := s
	for i := n - 1; i > 0; i-- {
		vertices[i] = cur.edge.To
		if cur.parent == nil {
			vertices[i-1] = cur.edge.From
			break
		}
		cur = cur.parent
	}

	return Route{Vertices: vertices, Distance: s.dist}
}

// walker holds the state of a single NumRoutes call.
type walker struct {
	g     *core.Graph
	to    string
	limit int64
	hook  func(Route)
	count int
}

// NumRoutes counts the walks from `from` to `to` that satisfy exactly one bound:
//
//   - WithMaxStops(n):    walks of 1..n edges; every arrival at `to` counts,
//     including prefixes of longer counted walks.
//   - WithExactStops(n):  walks of exactly n edges.
//   - WithMaxDistance(d): walks whose cumulative distance is < d.
//
// Walks may revisit vertices and edges. A walk of zero edges never counts, so
// from == to asks for cycles through `from`.
//
// Errors: ErrNoCriterion, ErrConflictingCriteria, ErrOptionViolation,
// ErrVertexNotFound / wrapped core.ErrBadVertex for bad endpoints, and
// ErrZeroDistanceCycle when WithMaxDistance admits infinitely many walks.
//
// Complexity: the number of enumerated walks, which grows exponentially with
// the bound on cyclic graphs. Callers pick sane bounds. The recursive variant
// uses stack depth proportional to the longest walk.
func (r *Graph) NumRoutes(from, to string, opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	kind, limit, err := o.criterion()
	if err != nil {
		return 0, err
	}
	if err = r.validateEndpoints(from, to); err != nil {
		return 0, err
	}

	w := &walker{g: r.Graph, to: to, limit: limit, hook: o.OnRoute}
	if kind == MaxDistance {
		if err = w.checkZeroCycles(from); err != nil {
			return 0, err
		}
	}
	switch {
	case kind == MaxDistance && o.Recursive:
		for _, e := range w.g.Edges(from) {
			w.distanceDFS(&step{edge: e, dist: e.Distance, stops: 1})
		}
	case kind == MaxDistance:
		w.bestFirst(from)
	case o.Recursive:
		for _, e := range w.g.Edges(from) {
			w.stopsDFS(&step{edge: e, dist: e.Distance, stops: 1}, kind == ExactStops)
		}
	default:
		w.levels(from, kind == ExactStops)
	}

	r.logger.Debug("routes: counted",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("criterion", string(kind)),
		slog.Int64("limit", limit),
		slog.Bool("recursive", o.Recursive),
		slog.Int("routes", w.count))

	return w.count, nil
}

// hit records one counted walk.
func (w *walker) hit(s *step) {
	w.count++
	if w.hook != nil {
		w.hook(s.route())
	}
}

// expand creates the children of s, one per outgoing edge of s's destination.
func (w *walker) expand(s *step) []*step {
	edges := w.g.Edges(s.edge.To)
	out := make([]*step, 0, len(edges))
	for _, e := range edges {
		d, _ := core.AddDistance(s.dist, e.Distance)
		out = append(out, &step{edge: e, dist: d, stops: s.stops + 1, parent: s})
	}

	return out
}

// levels runs the level-synchronized breadth expansion: every walk of
// length L is processed before any walk of length L+1, for L = 1..limit.
// The FIFO holds exactly one level at a time; width tracks its size.
func (w *walker) levels(from string, exact bool) {
	q := chain.NewQueue[*step]()
	for _, e := range w.g.Edges(from) {
		q.Enqueue(&step{edge: e, dist: e.Distance, stops: 1})
	}

	width := q.Len()
	for level := int64(1); level <= w.limit && width > 0; level++ {
		next := 0
		for i := 0; i < width; i++ {
			cur, _ := q.Dequeue()
			if cur.edge.To == w.to && (!exact || level == w.limit) {
				w.hit(cur)
			}
			if level < w.limit {
				children := w.expand(cur)
				q.Enqueue(children...)
				next += len(children)
			}
		}
		width = next
	}
}

// stopsDFS is the depth-first form of levels. It keeps descending after an
// arrival at the target since longer walks through it still count.
func (w *walker) stopsDFS(s *step, exact bool) {
	if s.edge.To == w.to && (!exact || int64(s.stops) == w.limit) {
		w.hit(s)
	}
	if int64(s.stops) >= w.limit {
		return
	}
	for _, child := range w.expand(s) {
		w.stopsDFS(child, exact)
	}
}

// bestFirst enumerates walks under the distance bound in order of
// cumulative distance. Only steps strictly below the bound enter the heap.
func (w *walker) bestFirst(from string) {
	q := pqueue.New(func(a, b *step) bool { return a.dist < b.dist })
	for _, e := range w.g.Edges(from) {
		if e.Distance < w.limit {
			q.Push(&step{edge: e, dist: e.Distance, stops: 1})
		}
	}

	for !q.IsEmpty() {
		cur, _ := q.Pop()
		if cur.edge.To == w.to {
			w.hit(cur)
		}
		for _, child := range w.expand(cur) {
			if child.dist < w.limit {
				q.Push(child)
			}
		}
	}
}

// distanceDFS is the depth-first form of bestFirst.
func (w *walker) distanceDFS(s *step) {
	if s.dist >= w.limit {
		return
	}
	if s.edge.To == w.to {
		w.hit(s)
	}
	for _, child := range w.expand(s) {
		w.distanceDFS(child)
	}
}

// checkZeroCycles rejects a distance bound that a zero-distance cycle could
// never exhaust. Each strongly connected set of zero-distance edges yields at
// least one detected cycle, and every vertex of that set is reachable from
// the cycle at no cost, so testing the detected cycles' vertices suffices.
func (w *walker) checkZeroCycles(from string) error {
	cycles, err := dfs.DetectCycles(w.g, dfs.WithEdgeFilter(func(e *core.Edge) bool {
		return e.Distance == 0
	}))
	if err != nil || len(cycles) == 0 {
		return err
	}

	dist := distancesFrom(w.g, from)
	for _, c := range cycles {
		for _, v := range c[:len(c)-1] {
			if d, ok := dist[v]; ok && d < w.limit {
				return fmt.Errorf("%w: %s at distance %d", ErrZeroDistanceCycle, strings.Join(c, "-"), d)
			}
		}
	}

	return nil
}
