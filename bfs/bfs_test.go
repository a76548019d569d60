// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/routegraph/bfs"
	"github.com/katalvlaran/routegraph/core"
)

// town returns "AB5, BC4, CD8, DC8, DE6, AD5, CE2, EB3, AE7".
func town(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	err := g.AddEdges(
		core.Edge{From: "A", To: "B", Distance: 5},
		core.Edge{From: "B", To: "C", Distance: 4},
		core.Edge{From: "C", To: "D", Distance: 8},
		core.Edge{From: "D", To: "C", Distance: 8},
		core.Edge{From: "D", To: "E", Distance: 6},
		core.Edge{From: "A", To: "D", Distance: 5},
		core.Edge{From: "C", To: "E", Distance: 2},
		core.Edge{From: "E", To: "B", Distance: 3},
		core.Edge{From: "A", To: "E", Distance: 7},
	)
	if err != nil {
		t.Fatal(err)
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := town(t)
	if _, err := bfs.BFS(g, "Z"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, "A", bfs.WithMaxStops(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative stops: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_TownStops checks visit order, stop counts and the tree edges.
func TestBFS_TownStops(t *testing.T) {
	res, err := bfs.BFS(town(t), "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "E", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	want := map[string]int{"A": 0, "B": 1, "D": 1, "E": 1, "C": 2}
	if !reflect.DeepEqual(res.Stops, want) {
		t.Errorf("Stops = %v; want %v", res.Stops, want)
	}
	if _, ok := res.Via["A"]; ok {
		t.Errorf("start has an entry edge: %v", res.Via["A"])
	}
	if got := res.Via["C"].String(); got != "BC4" {
		t.Errorf("Via[C] = %s; want BC4", got)
	}
	path, err := res.PathTo("C")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(C) = %v; want %v", path, want)
	}
	if d, err := res.DistanceTo("C"); err != nil || d != 9 {
		t.Errorf("DistanceTo(C) = %d, %v; want 9", d, err)
	}
	if d, err := res.DistanceTo("A"); err != nil || d != 0 {
		t.Errorf("DistanceTo(A) = %d, %v; want 0", d, err)
	}
}

// TestBFS_DirectedReach confirms edges are followed in one direction only.
func TestBFS_DirectedReach(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("A", "B", 1); err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, "B")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if _, err = res.PathTo("A"); !errors.Is(err, bfs.ErrUnreachable) {
		t.Errorf("PathTo(A): want ErrUnreachable, got %v", err)
	}
	if _, err = res.DistanceTo("A"); !errors.Is(err, bfs.ErrUnreachable) {
		t.Errorf("DistanceTo(A): want ErrUnreachable, got %v", err)
	}
}

// TestBFS_MaxStopsAndFilter limits stops and drops long edges.
func TestBFS_MaxStopsAndFilter(t *testing.T) {
	g := town(t)
	res, err := bfs.BFS(g, "C", bfs.WithMaxStops(1))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"C", "D", "E"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("1 stop Order = %v; want %v", res.Order, want)
	}

	short := bfs.WithFilterEdge(func(e *core.Edge) bool { return e.Distance < 5 })
	res, err = bfs.BFS(g, "A", short)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("filtered Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_HookAndCancel covers OnVisit errors and context cancellation.
func TestBFS_HookAndCancel(t *testing.T) {
	g := town(t)
	stop := errors.New("stop")
	res, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(town string, _ int) error {
		if town == "D" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want hook error, got %v", err)
	}
	if want := []string{"A", "B", "D"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("partial Order = %v; want %v", res.Order, want)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = bfs.BFS(g, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
