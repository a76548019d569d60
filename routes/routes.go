// SPDX-License-Identifier: MIT

package routes

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/katalvlaran/routegraph/core"
)

// routePattern is the grammar accepted by Distance.
var routePattern = regexp.MustCompile(`^[A-Z](-[A-Z])+$`)

// routeSep joins vertices in a route string.
const routeSep = "-"

// Graph answers route queries over an embedded core.Graph.
//
// It holds no per-query state: queues, heaps and parent chains are created by
// each call and dropped when it returns. The embedded graph must not be
// mutated while a query runs.
type Graph struct {
	*core.Graph
	logger *slog.Logger
}

// New wraps g for route queries.
func New(g *core.Graph, opts ...GraphOption) (*Graph, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	r := &Graph{Graph: g, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Distance returns the total distance of route, a string of uppercase
// vertices joined by "-" such as "A-B-C".
//
// Returns:
//   - the sum of hop distances, or NoRoute (nil error) when any hop has no edge.
//   - ErrBadRoute when route does not match ^[A-Z](-[A-Z])+$ after trimming.
//   - ErrDistanceOverflow when the sum does not fit in an int64.
//
// Complexity: O(k) for k hops.
func (r *Graph) Distance(route string) (int64, error) {
	route = strings.TrimSpace(route)
	if !routePattern.MatchString(route) {
		return 0, fmt.Errorf("%w: %q", ErrBadRoute, route)
	}

	nodes := strings.Split(route, routeSep)
	var dist int64
	for i := 0; i+1 < len(nodes); i++ {
		e, ok := r.GetEdge(nodes[i], nodes[i+1])
		if !ok {
			r.logger.Debug("routes: missing hop",
				slog.String("route", route),
				slog.String("from", nodes[i]),
				slog.String("to", nodes[i+1]))
			return NoRoute, nil
		}
		if dist, ok = core.AddDistance(dist, e.Distance); !ok {
			return 0, fmt.Errorf("%w: %q", ErrDistanceOverflow, route)
		}
	}

	return dist, nil
}

// validateEndpoints checks both query vertices through HasNodes.
func (r *Graph) validateEndpoints(from, to string) error {
	ok, err := r.HasNodes([]string{from, to})
	if err != nil {
		return fmt.Errorf("routes: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %q→%q", ErrVertexNotFound, from, to)
	}

	return nil
}
