// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"
	"math/rand"
	"unicode"

	"github.com/katalvlaran/routegraph/core"
)

// ErrUnknownSize indicates a size label other than s, m or l.
var ErrUnknownSize = errors.New("loader: size must be one of s, m, l")

// Size selects a synthetic data set.
type Size string

// Data set sizes. Each bounds the code point range of the vertices and sets
// the stride between extra targets.
const (
	Small  Size = "s"
	Medium Size = "m"
	Large  Size = "l"
)

// firstVertex is the code point of the first generated vertex.
const firstVertex = 'A'

// maxGenDistance is the exclusive upper bound of generated distances.
const maxGenDistance = 24

// defaultGenDistance is used when no RNG is configured.
const defaultGenDistance int64 = 1

// shape returns the exclusive code point bound and the target stride.
func (s Size) shape() (limit rune, jump int, err error) {
	switch s {
	case Small:
		return 70, 1, nil
	case Medium:
		return 90, 2, nil
	case Large:
		return 1000, 20, nil
	}

	return 0, 0, fmt.Errorf("%w: %q", ErrUnknownSize, string(s))
}

// ParseSize maps "s", "m" or "l" to a Size.
func ParseSize(s string) (Size, error) {
	size := Size(s)
	if _, _, err := size.shape(); err != nil {
		return "", err
	}

	return size, nil
}

// GenOption customizes generation.
type GenOption func(*genConfig)

type genConfig struct {
	rng      *rand.Rand
	weightFn func(*rand.Rand) int64
}

func newGenConfig(opts []GenOption) genConfig {
	cfg := genConfig{weightFn: uniformDistance}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed draws distances from a rand.Rand seeded with seed.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand draws distances from r. Panics on nil.
func WithRand(r *rand.Rand) GenOption {
	if r == nil {
		panic("loader: WithRand(nil)")
	}
	return func(c *genConfig) { c.rng = r }
}

// WithDistanceFn overrides the distance generator. fn receives the
// configured RNG, which may be nil, and must return a value >= 0.
// Panics on nil.
func WithDistanceFn(fn func(*rand.Rand) int64) GenOption {
	if fn == nil {
		panic("loader: WithDistanceFn(nil)")
	}
	return func(c *genConfig) { c.weightFn = fn }
}

// uniformDistance samples [0, maxGenDistance), or defaultGenDistance without an RNG.
func uniformDistance(rng *rand.Rand) int64 {
	if rng == nil {
		return defaultGenDistance
	}

	return rng.Int63n(maxGenDistance)
}

// usableVertex reports whether r can stand alone as a vertex in a record.
// Control and space characters would not survive trimming, and ',' or '#'
// would be taken for separators.
func usableVertex(r rune) bool {
	return unicode.IsGraphic(r) && !unicode.IsSpace(r) && r != ',' && r != '#'
}

// GenerateEdges builds the synthetic edge list for size. For each vertex i
// it emits i→i+1, then i→j for every jump-th vertex j other than i and i+1.
// Code points that cannot be written as a vertex are skipped.
//
// Complexity: O(V²/jump) edges.
func GenerateEdges(size Size, opts ...GenOption) ([]core.Edge, error) {
	limit, jump, err := size.shape()
	if err != nil {
		return nil, err
	}
	cfg := newGenConfig(opts)

	var out []core.Edge
	emit := func(from, to rune) error {
		e, err := core.NewEdge(string(from), string(to), cfg.weightFn(cfg.rng))
		if err != nil {
			return err
		}
		out = append(out, e)
		return nil
	}

	for i := rune(firstVertex); i < limit; i++ {
		if !usableVertex(i) {
			continue
		}
		if usableVertex(i + 1) {
			if err = emit(i, i+1); err != nil {
				return nil, err
			}
		}
		for j := rune(firstVertex); j < limit; j += rune(jump) {
			if j == i || j == i+1 || !usableVertex(j) {
				continue
			}
			if err = emit(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Generate renders GenerateEdges(size, WithSeed(seed)) as compact records,
// one per line.
func Generate(size Size, seed int64) (string, error) {
	edges, err := GenerateEdges(size, WithSeed(seed))
	if err != nil {
		return "", err
	}

	return Format(edges), nil
}
