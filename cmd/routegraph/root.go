// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/loader"
	"github.com/katalvlaran/routegraph/routes"
)

// errNoSource is returned when a query command has no graph to run on.
var errNoSource = errors.New("routegraph: one of --data, --file or --gen is required")

// app carries the global flags and the writers shared by every command.
type app struct {
	out io.Writer
	err io.Writer

	data      string
	files     []string
	gen       string
	seed      int64
	logLevel  string
	logFormat string
	format    string

	logger *slog.Logger
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{out: stdout, err: stderr}

	root := &cobra.Command{
		Use:           "routegraph",
		Short:         "Route queries over a directed weighted graph",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(a.err, a.logLevel, a.logFormat)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.data, "data", "", `inline edge records, e.g. "AB5, BC4"`)
	pf.StringSliceVar(&a.files, "file", nil, "edge-list file (repeatable)")
	pf.StringVar(&a.gen, "gen", "", "generate a synthetic graph of size s, m or l")
	pf.Int64Var(&a.seed, "seed", 1, "seed for --gen and the gen command")
	pf.StringVar(&a.logLevel, "log-level", "warn", "debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "text", "text or json")
	pf.StringVarP(&a.format, "output", "o", "table", "table, csv or markdown")

	root.AddCommand(
		newDistanceCommand(a),
		newCountCommand(a),
		newShortestCommand(a),
		newReachCommand(a),
		newRunCommand(a),
		newGenCommand(a),
	)

	return root
}

// newLogger builds the slog handler selected by --log-level and --log-format.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("routegraph: --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return nil, fmt.Errorf("routegraph: --log-format must be text or json, got %q", format)
}

// source is one way of obtaining edges. Exactly one field group is set.
type source struct {
	data  string
	files []string
	gen   string
	seed  int64
}

func (s source) count() int {
	set := 0
	for _, on := range []bool{s.data != "", len(s.files) > 0, s.gen != ""} {
		if on {
			set++
		}
	}

	return set
}

// graph builds the query graph from the global source flags.
func (a *app) graph(ctx context.Context) (*routes.Graph, error) {
	return a.build(ctx, source{data: a.data, files: a.files, gen: a.gen, seed: a.seed})
}

// build loads src into a fresh graph.
func (a *app) build(ctx context.Context, src source) (*routes.Graph, error) {
	if src.count() != 1 {
		return nil, errNoSource
	}

	g := core.NewGraph()
	lopts := []loader.Option{loader.WithLogger(a.logger)}
	var err error
	switch {
	case src.data != "":
		_, err = loader.LoadString(ctx, src.data, g, lopts...)
	case len(src.files) > 0:
		_, err = loader.LoadFiles(ctx, g, src.files, lopts...)
	default:
		var size loader.Size
		if size, err = loader.ParseSize(src.gen); err != nil {
			return nil, err
		}
		var data string
		if data, err = loader.Generate(size, src.seed); err != nil {
			return nil, err
		}
		_, err = loader.LoadString(ctx, data, g, lopts...)
	}
	if err != nil {
		return nil, err
	}
	a.logger.Info("graph loaded",
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()))

	return routes.New(g, routes.WithLogger(a.logger))
}
