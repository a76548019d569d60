// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/routegraph/chain"
	"github.com/katalvlaran/routegraph/core"
)

// queueItem is a reached town and its stop count.
type queueItem struct {
	town  string
	stops int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   *chain.Queue[queueItem]
	visited map[string]bool
	res     *Result
}

// BFS visits every town reachable from start over directed edges, nearest
// (in stops) first, and returns the fewest-stops tree.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound before the
// search; ctx.Err() or a wrapped OnVisit error during it, in which case the
// partial Result comes back too.
//
// Complexity: O(V + E).
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   chain.NewQueue[queueItem](),
		visited: make(map[string]bool, n),
		res: &Result{
			Order: make([]string, 0, n),
			Stops: make(map[string]int, n),
			Via:   make(map[string]core.Edge, n),
		},
	}

	w.reach(start, 0, nil)

	return w.res, w.loop()
}

// reach marks town as reached after `stops` edges, the last being via
// (nil for the start), and queues it for a visit.
func (w *walker) reach(town string, stops int, via *core.Edge) {
	w.visited[town] = true
	w.res.Stops[town] = stops
	if via != nil {
		w.res.Via[town] = *via
	}
	w.queue.Enqueue(queueItem{town: town, stops: stops})
}

// loop visits queued towns until the queue drains, ctx ends or OnVisit fails.
func (w *walker) loop() error {
	for !w.queue.IsEmpty() {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item, _ := w.queue.Dequeue()
		w.res.Order = append(w.res.Order, item.town)
		if err := w.opts.OnVisit(item.town, item.stops); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.town, err)
		}
		w.expand(item)
	}

	return nil
}

// expand reaches every unseen town one kept edge away from item, unless
// that would pass MaxStops.
func (w *walker) expand(item queueItem) {
	next := item.stops + 1
	if w.opts.MaxStops > 0 && next > w.opts.MaxStops {
		return
	}
	for _, e := range w.graph.Edges(item.town) {
		if !w.opts.FilterEdge(e) || w.visited[e.To] {
			continue
		}
		w.reach(e.To, next, e)
	}
}
