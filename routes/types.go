// SPDX-License-Identifier: MIT
//
// Package routes provides tunable options, sentinel errors and result types
// for route queries over a core.Graph.
package routes

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// NoRoute is returned by Distance and ShortestRoute when no route exists.
// It is a normal outcome, never accompanied by an error.
const NoRoute int64 = -1

// NoRouteText is the display form of NoRoute.
const NoRouteText = "NO SUCH ROUTE"

// Sentinel errors for route queries.
var (
	// ErrBadRoute indicates a route string not matching VERTEX(-VERTEX)+.
	ErrBadRoute = errors.New("routes: route must match ^[A-Z](-[A-Z])+$")

	// ErrNoCriterion indicates NumRoutes received none of maxStops,
	// exactStops or maxDistance with a value > 0.
	ErrNoCriterion = errors.New("routes: one of maxStops, exactStops or maxDistance must be > 0")

	// ErrConflictingCriteria indicates more than one bound was supplied.
	ErrConflictingCriteria = errors.New("routes: only one of maxStops, exactStops or maxDistance may be set")

	// ErrOptionViolation indicates an invalid Option value (e.g. a negative bound).
	ErrOptionViolation = errors.New("routes: invalid option supplied")

	// ErrVertexNotFound indicates a query vertex absent from the graph.
	ErrVertexNotFound = errors.New("routes: vertex not found")

	// ErrZeroDistanceCycle indicates a distance-bounded count that would never
	// finish: a cycle of zero-distance edges is reachable under the bound.
	ErrZeroDistanceCycle = errors.New("routes: zero-distance cycle reachable under maxDistance")

	// ErrDistanceOverflow indicates a walk whose distance does not fit in an
	// int64.
	ErrDistanceOverflow = errors.New("routes: walk distance overflows int64")

	// ErrBrokenChain indicates that the predecessor chain of a finished
	// search does not lead back to the source. It signals a bug, not bad input.
	ErrBrokenChain = errors.New("routes: predecessor chain does not reach the source")
)

// Criterion names the bound used by a counting query.
type Criterion string

// Counting criteria.
const (
	MaxStops    Criterion = "maxStops"
	ExactStops  Criterion = "exactStops"
	MaxDistance Criterion = "maxDistance"
)

// Route is a walk through the graph: its vertices in travel order and the
// sum of its hop distances.
type Route struct {
	Vertices []string
	Distance int64
}

// Found reports whether the route holds at least one hop.
func (r Route) Found() bool { return len(r.Vertices) > 1 }

// Stops returns the number of edges in the walk.
func (r Route) Stops() int {
	if len(r.Vertices) == 0 {
		return 0
	}

	return len(r.Vertices) - 1
}

// String renders "A-B-C", or NoRouteText for an empty route.
func (r Route) String() string {
	if !r.Found() {
		return NoRouteText
	}

	return strings.Join(r.Vertices, "-")
}

// Option configures a NumRoutes query via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// query runs.
type Option func(*Options)

// Options holds the bound and callbacks of a NumRoutes query.
type Options struct {
	// MaxStops counts walks of 1..MaxStops edges ending at the target.
	MaxStops int

	// ExactStops counts walks of exactly ExactStops edges ending at the target.
	ExactStops int

	// MaxDistance counts walks whose cumulative distance is < MaxDistance.
	MaxDistance int64

	// Recursive selects the depth-first variant instead of the
	// level-synchronized/best-first one. Counts are identical.
	Recursive bool

	// OnRoute, if set, receives every counted walk.
	OnRoute func(Route)

	err error
}

// DefaultOptions returns Options with no bound, iterative search and no hook.
func DefaultOptions() Options {
	return Options{}
}

// WithMaxStops bounds walks to at most n edges. n < 0 is an option violation.
func WithMaxStops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: maxStops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStops = n
	}
}

// WithExactStops bounds walks to exactly n edges. n < 0 is an option violation.
func WithExactStops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: exactStops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ExactStops = n
	}
}

// WithMaxDistance bounds walks to a cumulative distance strictly below d.
// d < 0 is an option violation.
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: maxDistance cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithRecursive selects the depth-first search variant.
func WithRecursive() Option {
	return func(o *Options) { o.Recursive = true }
}

// WithOnRoute registers a callback invoked once per counted walk.
func WithOnRoute(fn func(Route)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRoute = fn
		}
	}
}

// criterion resolves the single active bound.
func (o Options) criterion() (Criterion, int64, error) {
	if o.err != nil {
		return "", 0, o.err
	}
	var (
		kind  Criterion
		limit int64
		set   int
	)
	if o.MaxStops > 0 {
		kind, limit = MaxStops, int64(o.MaxStops)
		set++
	}
	if o.ExactStops > 0 {
		kind, limit = ExactStops, int64(o.ExactStops)
		set++
	}
	if o.MaxDistance > 0 {
		kind, limit = MaxDistance, o.MaxDistance
		set++
	}
	switch {
	case set == 0:
		return "", 0, ErrNoCriterion
	case set > 1:
		return "", 0, ErrConflictingCriteria
	}

	return kind, limit, nil
}

// GraphOption configures a routes.Graph at construction.
type GraphOption func(*Graph)

// WithLogger sets the structured logger used for query diagnostics.
// A nil logger keeps slog.Default().
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}
