// SPDX-License-Identifier: MIT

// Package dfs defines visitation states, errors and options for cycle
// detection.
package dfs

import (
	"errors"

	"github.com/katalvlaran/routegraph/core"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

// ErrGraphNil is returned when a nil *core.Graph is passed to DetectCycles.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures cycle detection.
type Option func(*Options)

// Options holds the edge filter used by DetectCycles.
type Options struct {
	// FilterEdge, if non-nil, keeps an edge only when it returns true.
	FilterEdge func(e *core.Edge) bool
}

// WithEdgeFilter restricts traversal to edges for which fn returns true.
func WithEdgeFilter(fn func(e *core.Edge) bool) Option {
	return func(o *Options) {
		o.FilterEdge = fn
	}
}
