// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph and core.Edge contracts.

package core_test

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/routegraph/core"
)

// townData is the reference edge set used throughout the route tests.
var townData = []core.Edge{
	{From: "A", To: "B", Distance: 5},
	{From: "B", To: "C", Distance: 4},
	{From: "C", To: "D", Distance: 8},
	{From: "D", To: "C", Distance: 8},
	{From: "D", To: "E", Distance: 6},
	{From: "A", To: "D", Distance: 5},
	{From: "C", To: "E", Distance: 2},
	{From: "E", To: "B", Distance: 3},
	{From: "A", To: "E", Distance: 7},
}

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
	require.NoError(s.T(), s.g.AddEdges(townData...))
}

func (s *GraphSuite) TestNewEdgeRejectsSelfLoop() {
	_, err := core.NewEdge("A", "A", 1)
	require.ErrorIs(s.T(), err, core.ErrLoopNotAllowed)

	err = s.g.AddEdge("B", "B", 3)
	require.ErrorIs(s.T(), err, core.ErrLoopNotAllowed)
}

func (s *GraphSuite) TestNewEdgeValidation() {
	_, err := core.NewEdge("AB", "C", 1)
	require.ErrorIs(s.T(), err, core.ErrBadVertex)

	_, err = core.NewEdge("A", "", 1)
	require.ErrorIs(s.T(), err, core.ErrBadVertex)

	_, err = core.NewEdge("A", "B", -2)
	require.ErrorIs(s.T(), err, core.ErrNegativeDistance)

	e, err := core.NewEdge("X", "Y", 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "XY0", e.String())
}

func (s *GraphSuite) TestCounts() {
	require.Equal(s.T(), 5, s.g.VertexCount())
	require.Equal(s.T(), len(townData), s.g.EdgeCount())
	require.Equal(s.T(), []string{"A", "B", "C", "D", "E"}, s.g.Vertices())
}

func (s *GraphSuite) TestGetEdge() {
	e, ok := s.g.GetEdge("A", "B")
	require.True(s.T(), ok)
	require.Equal(s.T(), int64(5), e.Distance)

	// Directed: A→B does not imply B→A.
	_, ok = s.g.GetEdge("B", "A")
	require.False(s.T(), ok)

	// Unknown source never panics.
	_, ok = s.g.GetEdge("Z", "A")
	require.False(s.T(), ok)
	require.False(s.T(), s.g.HasEdge("Z", "A"))
}

func (s *GraphSuite) TestDuplicateReplacesAndKeepsOrder() {
	require.NoError(s.T(), s.g.AddEdge("A", "B", 11))

	e, ok := s.g.GetEdge("A", "B")
	require.True(s.T(), ok)
	require.Equal(s.T(), int64(11), e.Distance)
	require.Equal(s.T(), len(townData), s.g.EdgeCount())
	require.Equal(s.T(), []string{"B", "D", "E"}, s.g.Neighbors("A"))
}

func (s *GraphSuite) TestEdgesInsertionOrder() {
	edges := s.g.Edges("A")
	require.Len(s.T(), edges, 3)
	got := make([]string, 0, len(edges))
	for _, e := range edges {
		got = append(got, e.String())
	}
	require.Equal(s.T(), []string{"AB5", "AD5", "AE7"}, got)

	require.Empty(s.T(), s.g.Edges("Z"))
	require.Empty(s.T(), s.g.Neighbors("Z"))
	require.Equal(s.T(), 0, s.g.OutDegree("Z"))
}

func (s *GraphSuite) TestReturnedEdgesAreCopies() {
	e, ok := s.g.GetEdge("A", "B")
	require.True(s.T(), ok)
	e.Distance = 99
	e.To = "A"

	edges := s.g.Edges("A")
	edges[0].Distance = 42
	all := s.g.AllEdges()
	all[0].From = "B"

	got, ok := s.g.GetEdge("A", "B")
	require.True(s.T(), ok)
	require.Equal(s.T(), "AB5", got.String())
	require.Equal(s.T(), "AB5", s.g.Edges("A")[0].String())
	require.Equal(s.T(), "AB5", s.g.AllEdges()[0].String())
}

func (s *GraphSuite) TestAllEdgesGroupedBySource() {
	all := s.g.AllEdges()
	require.Len(s.T(), all, len(townData))
	require.Equal(s.T(), "AB5", all[0].String())
	require.Equal(s.T(), "EB3", all[len(all)-1].String())
}

func (s *GraphSuite) TestHasNodes() {
	ok, err := s.g.HasNodes([]string{"A", "E"})
	require.NoError(s.T(), err)
	require.True(s.T(), ok)

	ok, err = s.g.HasNodes([]string{"A", "F"})
	require.NoError(s.T(), err)
	require.False(s.T(), ok)

	ok, err = s.g.HasNodes([]string{})
	require.NoError(s.T(), err)
	require.True(s.T(), ok)

	_, err = s.g.HasNodes(nil)
	require.ErrorIs(s.T(), err, core.ErrNotSequence)

	// Malformed element fails even after a missing vertex.
	_, err = s.g.HasNodes([]string{"F", "AB"})
	require.ErrorIs(s.T(), err, core.ErrBadVertex)
}

func (s *GraphSuite) TestSinkIsVertex() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddEdge("A", "Z", 1))
	require.True(s.T(), g.HasVertex("Z"))
	require.Empty(s.T(), g.AdjacencyList()["Z"])
	require.Equal(s.T(), []string{"Z"}, g.AdjacencyList()["A"])
}

func (s *GraphSuite) TestAddEdgesStopsAtFirstError() {
	g := core.NewGraph()
	err := g.AddEdges(
		core.Edge{From: "A", To: "B", Distance: 1},
		core.Edge{From: "C", To: "C", Distance: 1},
		core.Edge{From: "D", To: "E", Distance: 1},
	)
	require.True(s.T(), errors.Is(err, core.ErrLoopNotAllowed))
	require.Equal(s.T(), 1, g.EdgeCount())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestGraph_ConcurrentLoad fills one graph from several goroutines and checks
// that no edge is lost. Assertions stay on the test goroutine.
func TestGraph_ConcurrentLoad(t *testing.T) {
	const workers = 8
	g := core.NewGraph()
	letters := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	var wg sync.WaitGroup
	errs := make(chan error, workers*len(letters))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			from := string(letters[w])
			for i := 0; i < len(letters); i++ {
				to := string(letters[i])
				if to == from {
					continue
				}
				if err := g.AddEdge(from, to, int64(i)); err != nil {
					errs <- fmt.Errorf("%s→%s: %w", from, to, err)
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, workers*(len(letters)-1), g.EdgeCount())
}

func TestAddDistance(t *testing.T) {
	cases := []struct {
		a, b int64
		sum  int64
		ok   bool
	}{
		{0, 0, 0, true},
		{5, 4, 9, true},
		{math.MaxInt64 - 1, 1, math.MaxInt64, true},
		{math.MaxInt64, 1, math.MaxInt64, false},
		{1 << 62, 1 << 62, math.MaxInt64, false},
	}
	for _, c := range cases {
		sum, ok := core.AddDistance(c.a, c.b)
		require.Equal(t, c.sum, sum, "%d+%d", c.a, c.b)
		require.Equal(t, c.ok, ok, "%d+%d", c.a, c.b)
	}
}
