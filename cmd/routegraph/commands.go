// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/routegraph/bfs"
	"github.com/katalvlaran/routegraph/loader"
	"github.com/katalvlaran/routegraph/routes"
)

func newDistanceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "distance ROUTE...",
		Short:   "Total distance of explicit routes such as A-B-C",
		Example: `  routegraph --data "AB5, BC4" distance A-B-C`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rg, err := a.graph(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([]table.Row, 0, len(args))
			for _, route := range args {
				d, err := rg.Distance(route)
				if err != nil {
					return err
				}
				rows = append(rows, table.Row{route, distanceText(d)})
			}

			return a.render(table.Row{"Route", "Distance"}, rows)
		},
	}
}

func newCountCommand(a *app) *cobra.Command {
	var (
		maxStops    int
		exactStops  int
		maxDistance int64
		recursive   bool
		list        bool
	)
	cmd := &cobra.Command{
		Use:   "count FROM TO",
		Short: "Number of walks bounded by stops or distance",
		Example: `  routegraph --file town.txt count C C --max-stops 3
  routegraph --file town.txt count C C --max-distance 30 --routes`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rg, err := a.graph(cmd.Context())
			if err != nil {
				return err
			}

			var walks []routes.Route
			opts := []routes.Option{
				routes.WithMaxStops(maxStops),
				routes.WithExactStops(exactStops),
				routes.WithMaxDistance(maxDistance),
			}
			if recursive {
				opts = append(opts, routes.WithRecursive())
			}
			if list {
				opts = append(opts, routes.WithOnRoute(func(r routes.Route) { walks = append(walks, r) }))
			}
			n, err := rg.NumRoutes(args[0], args[1], opts...)
			if err != nil {
				return err
			}

			if err = a.render(table.Row{"From", "To", "Routes"}, []table.Row{{args[0], args[1], n}}); err != nil {
				return err
			}
			if !list {
				return nil
			}
			rows := make([]table.Row, 0, len(walks))
			for i, w := range walks {
				rows = append(rows, table.Row{i + 1, w.String(), w.Stops(), w.Distance})
			}

			return a.render(table.Row{"#", "Route", "Stops", "Distance"}, rows)
		},
	}
	f := cmd.Flags()
	f.IntVar(&maxStops, "max-stops", 0, "count walks of 1..N edges")
	f.IntVar(&exactStops, "exact-stops", 0, "count walks of exactly N edges")
	f.Int64Var(&maxDistance, "max-distance", 0, "count walks shorter than D")
	f.BoolVar(&recursive, "recursive", false, "use the depth-first search")
	f.BoolVar(&list, "routes", false, "list every counted walk")
	cmd.MarkFlagsMutuallyExclusive("max-stops", "exact-stops", "max-distance")
	cmd.MarkFlagsOneRequired("max-stops", "exact-stops", "max-distance")

	return cmd
}

func newShortestCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shortest FROM TO",
		Short: "Shortest walk between two towns; FROM == TO finds the shortest cycle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rg, err := a.graph(cmd.Context())
			if err != nil {
				return err
			}
			r, err := rg.ShortestPath(args[0], args[1])
			if err != nil {
				return err
			}

			return a.render(table.Row{"From", "To", "Distance", "Route"},
				[]table.Row{{args[0], args[1], distanceText(r.Distance), r.String()}})
		},
	}
}

func newReachCommand(a *app) *cobra.Command {
	var maxStops int
	cmd := &cobra.Command{
		Use:   "reach FROM",
		Short: "Towns reachable from FROM with the fewest stops to each",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rg, err := a.graph(cmd.Context())
			if err != nil {
				return err
			}
			res, err := bfs.BFS(rg.Graph, args[0],
				bfs.WithContext(cmd.Context()),
				bfs.WithMaxStops(maxStops))
			if err != nil {
				return err
			}

			rows := make([]table.Row, 0, len(res.Order))
			for _, v := range res.Order[1:] {
				path, err := res.PathTo(v)
				if err != nil {
					return err
				}
				d, err := res.DistanceTo(v)
				if err != nil {
					return err
				}
				rows = append(rows, table.Row{v, res.Stops[v], strings.Join(path, "-"), d})
			}

			return a.render(table.Row{"To", "Stops", "Route", "Distance"}, rows)
		},
	}
	cmd.Flags().IntVar(&maxStops, "max-stops", 0, "ignore towns more than N stops away (0: no limit)")

	return cmd
}

func newRunCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run PLAN.yaml",
		Short: "Run every query of a YAML plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlan(cmd.Context(), args[0])
		},
	}
}

func newGenCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "gen SIZE",
		Short:     "Print a synthetic edge list of size s, m or l",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(loader.Small), string(loader.Medium), string(loader.Large)},
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := loader.ParseSize(args[0])
			if err != nil {
				return err
			}
			data, err := loader.Generate(size, a.seed)
			if err != nil {
				return err
			}
			_, err = a.out.Write([]byte(data))

			return err
		},
	}
}
