// SPDX-License-Identifier: MIT

// Package routes_test shows the route queries on the classic town data set.
// Each example is runnable via "go test -run Example".
package routes_test

import (
	"fmt"

	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/routes"
)

// buildTown returns the graph "AB5, BC4, CD8, DC8, DE6, AD5, CE2, EB3, AE7".
func buildTown() *routes.Graph {
	g := core.NewGraph()
	_ = g.AddEdges(townEdges...)
	rg, _ := routes.New(g)

	return rg
}

// ExampleGraph_Distance sums the hops of explicit routes. A missing hop is
// reported as NoRoute, not as an error.
func ExampleGraph_Distance() {
	rg := buildTown()
	for _, route := range []string{"A-B-C", "A-D", "A-D-C", "A-E-B-C-D", "A-E-D"} {
		d, err := rg.Distance(route)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		if d == routes.NoRoute {
			fmt.Printf("%s: %s\n", route, routes.NoRouteText)
			continue
		}
		fmt.Printf("%s: %d\n", route, d)
	}
	// Output:
	// A-B-C: 9
	// A-D: 5
	// A-D-C: 13
	// A-E-B-C-D: 22
	// A-E-D: NO SUCH ROUTE
}

// ExampleGraph_NumRoutes counts walks under each of the three bounds.
func ExampleGraph_NumRoutes() {
	rg := buildTown()

	a, _ := rg.NumRoutes("C", "C", routes.WithMaxStops(3))
	b, _ := rg.NumRoutes("A", "C", routes.WithExactStops(4))
	c, _ := rg.NumRoutes("C", "C", routes.WithMaxDistance(30))
	fmt.Println(a, b, c)
	// Output: 2 3 7
}

// ExampleGraph_ShortestPath finds a shortest walk and, for from == to, the
// shortest cycle.
func ExampleGraph_ShortestPath() {
	rg := buildTown()

	for _, q := range [][2]string{{"A", "C"}, {"B", "B"}} {
		r, err := rg.ShortestPath(q[0], q[1])
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s→%s: %s (%d)\n", q[0], q[1], r, r.Distance)
	}
	// Output:
	// A→C: A-B-C (9)
	// B→B: B-C-E-B (9)
}
