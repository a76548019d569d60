// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/routegraph/core"
)

// MaxLineSize is the longest line Load accepts. A whole data set may sit on
// one comma-separated line, so the cap is far above bufio's 64 KiB default.
const MaxLineSize = 16 << 20

// initialLineBuffer is the scanner's starting buffer; it grows up to MaxLineSize.
const initialLineBuffer = 64 << 10

// defaultParallelism caps concurrent readers in LoadFiles.
const defaultParallelism = 4

// Option configures a load.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	parallelism int
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default(), parallelism: defaultParallelism}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger for load diagnostics. nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithParallelism bounds the number of files LoadFiles reads at once.
// Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("loader: WithParallelism(%d)", n))
	}
	return func(o *options) { o.parallelism = n }
}

// Load reads records from r line by line and adds them to g. It returns the
// number of records added. Records before a failing line stay in g.
//
// Cancellation is checked once per line. Lines longer than MaxLineSize fail.
func Load(ctx context.Context, r io.Reader, g *core.Graph, opts ...Option) (int, error) {
	if g == nil {
		return 0, core.ErrNilGraph
	}
	o := newOptions(opts)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineBuffer), MaxLineSize)
	added, lineNo := 0, 0
	for sc.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return added, err
		}
		edges, err := parseLine(sc.Text(), lineNo)
		if err != nil {
			return added, fmt.Errorf("loader: %w", err)
		}
		for _, e := range edges {
			if err = g.AddEdge(e.From, e.To, e.Distance); err != nil {
				return added, fmt.Errorf("loader: line %d: %w", lineNo, err)
			}
			added++
		}
	}
	if err := sc.Err(); err != nil {
		return added, fmt.Errorf("loader: line %d: %w", lineNo+1, err)
	}

	o.logger.Debug("loader: loaded",
		slog.Int("lines", lineNo),
		slog.Int("edges", added),
		slog.Int("vertices", g.VertexCount()))

	return added, nil
}

// LoadString is Load over an in-memory string such as "AB5, BC4, CD8".
func LoadString(ctx context.Context, data string, g *core.Graph, opts ...Option) (int, error) {
	return Load(ctx, strings.NewReader(data), g, opts...)
}

// LoadFile opens path and loads it into g.
func LoadFile(ctx context.Context, path string, g *core.Graph, opts ...Option) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	n, err := Load(ctx, f, g, opts...)
	if err != nil {
		return n, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}

// LoadFiles loads several files into g concurrently and returns the total
// number of records added. The first failure cancels the remaining reads.
//
// When two files define the same (from, to) pair the surviving distance
// depends on scheduling.
func LoadFiles(ctx context.Context, g *core.Graph, paths []string, opts ...Option) (int, error) {
	if g == nil {
		return 0, core.ErrNilGraph
	}
	o := newOptions(opts)

	counts := make([]int, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.parallelism)
	for i, p := range paths {
		eg.Go(func() error {
			n, err := LoadFile(ctx, p, g, opts...)
			counts[i] = n
			return err
		})
	}
	err := eg.Wait()

	total := 0
	for _, n := range counts {
		total += n
	}
	o.logger.Debug("loader: loaded files",
		slog.Int("files", len(paths)),
		slog.Int("edges", total))

	return total, err
}
