// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/routegraph/config"
	"github.com/katalvlaran/routegraph/routes"
)

// errExpectation is returned when a plan query disagrees with its expect value.
var errExpectation = errors.New("routegraph: plan expectations failed")

// outcome is the answer to one plan query.
type outcome struct {
	label  string
	answer int64
	route  string
	expect *int64
}

// status is "ok", "FAIL" or empty when the query carries no expectation.
func (o outcome) status() string {
	switch {
	case o.expect == nil:
		return ""
	case *o.expect == o.answer:
		return "ok"
	}

	return "FAIL"
}

// runPlan loads the plan at path, answers its queries in order and renders
// them as one table.
func (a *app) runPlan(ctx context.Context, path string) error {
	plan, err := config.LoadPlan(path)
	if err != nil {
		return err
	}
	src := source{data: plan.Graph.Data, files: plan.Graph.Files}
	if gen := plan.Graph.Generate; gen != nil {
		src.gen, src.seed = gen.Size, gen.Seed
	}
	rg, err := a.build(ctx, src)
	if err != nil {
		return err
	}

	outcomes, err := a.execute(ctx, rg, plan.Queries)
	if err != nil {
		return err
	}

	rows := make([]table.Row, 0, len(outcomes))
	failed := 0
	for i, o := range outcomes {
		expect := ""
		if o.expect != nil {
			expect = distanceText(*o.expect)
		}
		if o.status() == "FAIL" {
			failed++
		}
		rows = append(rows, table.Row{i + 1, o.label, distanceText(o.answer), o.route, expect, o.status()})
	}
	if err = a.render(table.Row{"#", "Query", "Answer", "Route", "Expect", "Status"}, rows); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errExpectation, failed, len(outcomes))
	}

	return nil
}

// execute answers queries in order. It stops at the first query error or
// when ctx is done.
func (a *app) execute(ctx context.Context, rg *routes.Graph, queries []config.Query) ([]outcome, error) {
	out := make([]outcome, 0, len(queries))
	for i, q := range queries {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		o, err := answer(rg, q)
		if err != nil {
			return out, fmt.Errorf("query %d (%s): %w", i+1, q.Label(), err)
		}
		a.logger.Debug("plan query answered",
			slog.String("query", o.label),
			slog.Int64("answer", o.answer))
		out = append(out, o)
	}

	return out, nil
}

// answer runs one query.
func answer(rg *routes.Graph, q config.Query) (outcome, error) {
	o := outcome{label: q.Label(), expect: q.Expect}
	switch q.Kind {
	case config.KindDistance:
		d, err := rg.Distance(q.Route)
		if err != nil {
			return o, err
		}
		o.answer = d

	case config.KindCount:
		opts := []routes.Option{
			routes.WithMaxStops(q.MaxStops),
			routes.WithExactStops(q.ExactStops),
			routes.WithMaxDistance(q.MaxDistance),
		}
		if q.Recursive {
			opts = append(opts, routes.WithRecursive())
		}
		n, err := rg.NumRoutes(q.From, q.To, opts...)
		if err != nil {
			return o, err
		}
		o.answer = int64(n)

	case config.KindShortest:
		r, err := rg.ShortestPath(q.From, q.To)
		if err != nil {
			return o, err
		}
		o.answer = r.Distance
		if r.Found() {
			o.route = r.String()
		}

	default:
		return o, fmt.Errorf("routegraph: unknown query kind %q", q.Kind)
	}

	return o, nil
}
