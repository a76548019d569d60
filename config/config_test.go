// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegraph/config"
)

const townPlan = `
graph:
  data: "AB5, BC4, CD8, DC8, DE6, AD5, CE2, EB3, AE7"
queries:
  - name: distance A-B-C
    kind: distance
    route: A-B-C
    expect: 9
  - kind: count
    from: C
    to: C
    max_stops: 3
  - kind: shortest
    from: B
    to: B
`

func TestParse_TownPlan(t *testing.T) {
	p, err := config.Parse([]byte(townPlan))
	require.NoError(t, err)
	require.Len(t, p.Queries, 3)

	q := p.Queries[0]
	assert.Equal(t, config.KindDistance, q.Kind)
	assert.Equal(t, "A-B-C", q.Route)
	require.NotNil(t, q.Expect)
	assert.Equal(t, int64(9), *q.Expect)
	assert.Equal(t, "distance A-B-C", q.Label())

	assert.Equal(t, 3, p.Queries[1].MaxStops)
	assert.Nil(t, p.Queries[1].Expect)
	assert.Equal(t, "count C→C", p.Queries[1].Label())
	assert.Equal(t, "shortest B→B", p.Queries[2].Label())
}

func TestParse_RoundTrip(t *testing.T) {
	p, err := config.Parse([]byte(townPlan))
	require.NoError(t, err)
	out, err := p.Marshal()
	require.NoError(t, err)

	again, err := config.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"no queries": `
graph: {data: "AB5"}
queries: []`,
		"no source": `
queries: [{kind: shortest, from: A, to: B}]`,
		"two sources": `
graph: {data: "AB5", files: [a.txt]}
queries: [{kind: shortest, from: A, to: B}]`,
		"bad kind": `
graph: {data: "AB5"}
queries: [{kind: longest, from: A, to: B}]`,
		"distance without route": `
graph: {data: "AB5"}
queries: [{kind: distance}]`,
		"shortest without to": `
graph: {data: "AB5"}
queries: [{kind: shortest, from: A}]`,
		"long vertex": `
graph: {data: "AB5"}
queries: [{kind: shortest, from: AB, to: B}]`,
		"count without bound": `
graph: {data: "AB5"}
queries: [{kind: count, from: A, to: B}]`,
		"count with two bounds": `
graph: {data: "AB5"}
queries: [{kind: count, from: A, to: B, max_stops: 2, max_distance: 9}]`,
		"negative bound": `
graph: {data: "AB5"}
queries: [{kind: count, from: A, to: B, exact_stops: -2}]`,
		"bad size": `
graph: {generate: {size: xl}}
queries: [{kind: shortest, from: A, to: B}]`,
		"empty file name": `
graph: {files: [""]}
queries: [{kind: shortest, from: A, to: B}]`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalidPlan)

			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := config.Parse([]byte(`
graph: {data: "AB5"}
queries: [{kind: shortest, from: A, to: B, via: C}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "via")
}

func TestParse_Empty(t *testing.T) {
	_, err := config.Parse(nil)
	require.ErrorIs(t, err, config.ErrInvalidPlan)
}

func TestParse_MultiByteVertex(t *testing.T) {
	p, err := config.Parse([]byte(`
graph: {data: "ÄÖ3"}
queries: [{kind: shortest, from: Ä, to: Ö}]`))
	require.NoError(t, err)
	assert.Equal(t, "Ä", p.Queries[0].From)
}

func TestLoadPlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(townPlan), 0o600))

	p, err := config.LoadPlan(path)
	require.NoError(t, err)
	assert.Len(t, p.Queries, 3)

	_, err = config.LoadPlan(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	big := filepath.Join(dir, "big.yaml")
	require.NoError(t, os.WriteFile(big, []byte(strings.Repeat("#", config.MaxPlanFileSize+1)), 0o600))
	_, err = config.LoadPlan(big)
	require.ErrorIs(t, err, config.ErrPlanTooLarge)
}
