// SPDX-License-Identifier: MIT

// Package bfs finds the towns reachable from a start town over directed
// edges, each with the fewest stops needed to get there.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/routegraph/core"
)

// Sentinel errors.
var (
	// ErrStartVertexNotFound indicates a start town absent from the graph.
	ErrStartVertexNotFound = errors.New("bfs: start town not in graph")

	// ErrGraphNil indicates a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation indicates an invalid Option, such as a negative
	// stop limit. Options record it; BFS reports it before searching.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable indicates a town the search never reached.
	ErrUnreachable = errors.New("bfs: town not reached")
)

// Option configures a search.
type Option func(*Options)

// Options tunes one BFS call. Zero values mean "no limit" and "keep every edge".
type Options struct {
	// Ctx is checked before each town is visited.
	Ctx context.Context

	// OnVisit sees every reached town with its stop count, in visit order.
	// An error stops the search.
	OnVisit func(town string, stops int) error

	// MaxStops drops towns more than MaxStops edges away. 0 is unlimited.
	MaxStops int

	// FilterEdge keeps an edge when it returns true.
	FilterEdge func(e *core.Edge) bool

	err error
}

// DefaultOptions searches without a stop limit, hook or edge filter.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(string, int) error { return nil },
		FilterEdge: func(*core.Edge) bool { return true },
	}
}

// WithContext cancels the search with ctx. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the visit hook. nil is ignored.
func WithOnVisit(fn func(town string, stops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxStops limits the search to towns at most n stops away.
// n == 0 lifts the limit; n < 0 records ErrOptionViolation.
func WithMaxStops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max stops %d is negative", ErrOptionViolation, n)
			return
		}
		o.MaxStops = n
	}
}

// WithFilterEdge travels only over edges for which fn returns true,
// e.g. edges shorter than some distance. nil is ignored.
func WithFilterEdge(fn func(e *core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// Result is the fewest-stops tree rooted at the start town.
type Result struct {
	// Order lists the reached towns in visit order; Order[0] is the start.
	Order []string

	// Stops is the fewest number of edges from the start to each town.
	Stops map[string]int

	// Via is the edge each town was first reached over. The start has none.
	Via map[string]core.Edge
}

// PathTo returns the towns of the fewest-stops route from the start to dest,
// start first. Among equally short routes it is the one found first, which
// follows edge insertion order.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Stops[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, dest)
	}
	path := []string{dest}
	for e, ok := r.Via[dest]; ok; e, ok = r.Via[e.From] {
		path = append(path, e.From)
	}
	slices.Reverse(path)

	return path, nil
}

// DistanceTo sums the edge distances along PathTo(dest). It is not the
// shortest distance to dest, only the length of the fewest-stops route.
// The sum saturates at math.MaxInt64.
func (r *Result) DistanceTo(dest string) (int64, error) {
	if _, ok := r.Stops[dest]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnreachable, dest)
	}
	var d int64
	for e, ok := r.Via[dest]; ok; e, ok = r.Via[e.From] {
		d, _ = core.AddDistance(d, e.Distance)
	}

	return d, nil
}
