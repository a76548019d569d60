// SPDX-License-Identifier: MIT
//
// Package core defines the directed, weighted Graph whose vertices are
// single-character symbols, the immutable Edge type, and the sentinel
// errors shared by every route query.
//
// Errors:
//
//	ErrBadVertex         - vertex ID is not exactly one character.
//	ErrLoopNotAllowed    - edge with from == to.
//	ErrNegativeDistance  - edge distance below zero.
//	ErrNotSequence       - HasNodes received a nil list.
//	ErrNilGraph          - a nil *Graph was supplied where one is required.
package core

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"unicode/utf8"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertex indicates that a vertex ID is not a single-character symbol.
	ErrBadVertex = errors.New("core: vertex must be a single character")

	// ErrLoopNotAllowed indicates an edge whose endpoints coincide.
	ErrLoopNotAllowed = errors.New("core: edge from must differ from edge to")

	// ErrNegativeDistance indicates an edge with a distance below zero.
	ErrNegativeDistance = errors.New("core: edge distance must be non-negative")

	// ErrNotSequence indicates HasNodes was called without a vertex list.
	ErrNotSequence = errors.New("core: nodes must be a list of single characters")

	// ErrNilGraph indicates a nil *Graph.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Edge is a directed, weighted connection between two distinct vertices.
//
// Edges are immutable once stored: the Graph only hands out copies, so
// changing a returned Edge never alters the graph.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Distance is the non-negative cost of travelling From→To.
	Distance int64
}

// NewEdge validates the endpoints and distance and returns the Edge.
//
// Errors:
//   - ErrBadVertex: from or to is not exactly one character.
//   - ErrLoopNotAllowed: from == to.
//   - ErrNegativeDistance: distance < 0.
//
// Complexity: O(1).
func NewEdge(from, to string, distance int64) (Edge, error) {
	if err := ValidateVertex(from); err != nil {
		return Edge{}, err
	}
	if err := ValidateVertex(to); err != nil {
		return Edge{}, err
	}
	if from == to {
		return Edge{}, fmt.Errorf("%w: %s→%s", ErrLoopNotAllowed, from, to)
	}
	if distance < 0 {
		return Edge{}, fmt.Errorf("%w: %s→%s distance=%d", ErrNegativeDistance, from, to, distance)
	}

	return Edge{From: from, To: to, Distance: distance}, nil
}

// String renders the edge in the compact record form, e.g. "AB5".
func (e Edge) String() string {
	return fmt.Sprintf("%s%s%d", e.From, e.To, e.Distance)
}

// ValidateVertex reports ErrBadVertex unless id holds exactly one rune.
func ValidateVertex(id string) error {
	if utf8.RuneCountInString(id) != 1 {
		return fmt.Errorf("%w: %q", ErrBadVertex, id)
	}

	return nil
}

// AddDistance sums two non-negative distances. A sum above math.MaxInt64
// saturates at math.MaxInt64 and reports ok == false.
func AddDistance(a, b int64) (sum int64, ok bool) {
	if a > math.MaxInt64-b {
		return math.MaxInt64, false
	}

	return a + b, true
}

// Graph is the in-memory adjacency store: vertex → (neighbor → *Edge).
//
// At most one edge exists per ordered pair (from, to). Both endpoints of an
// edge are registered as vertices, so a vertex with only incoming edges still
// exists. order keeps the neighbor IDs of each vertex in insertion order so
// that Edges() and Neighbors() are deterministic.
//
// mu guards every field. Writers take the write lock; queries take the read
// lock. Route searches assume the graph is not mutated while they run.
type Graph struct {
	mu sync.RWMutex

	vertices  map[string]struct{}
	adjacency map[string]map[string]*Edge // adjacency[from][to] = edge
	order     map[string][]string         // order[from] = neighbor IDs by first insertion
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]*Edge),
		order:     make(map[string][]string),
	}
}
