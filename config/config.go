// SPDX-License-Identifier: MIT
//
// Package config describes query plans: a graph source plus a list of route
// queries, written in YAML and validated before anything runs.
//
// Example plan:
//
//	graph:
//	  data: "AB5, BC4, CD8, DC8, DE6, AD5, CE2, EB3, AE7"
//	queries:
//	  - name: distance A-B-C
//	    kind: distance
//	    route: A-B-C
//	    expect: 9
//	  - kind: count
//	    from: C
//	    to: C
//	    max_stops: 3
//	  - kind: shortest
//	    from: B
//	    to: B
//
// Exactly one of graph.data, graph.files or graph.generate must be set.
// Count queries take exactly one of max_stops, exact_stops or max_distance.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// MaxPlanFileSize bounds the size of a plan file read by LoadPlan.
const MaxPlanFileSize = 1 << 20

// Sentinel errors.
var (
	// ErrInvalidPlan wraps every validation failure of a Plan.
	ErrInvalidPlan = errors.New("config: invalid plan")

	// ErrPlanTooLarge indicates a plan file above MaxPlanFileSize.
	ErrPlanTooLarge = errors.New("config: plan file too large")
)

// Query kinds.
const (
	KindDistance = "distance"
	KindCount    = "count"
	KindShortest = "shortest"
)

// Plan is a graph source and the queries to run against it.
type Plan struct {
	Graph   GraphSource `yaml:"graph"`
	Queries []Query     `yaml:"queries" validate:"required,min=1,dive"`
}

// GraphSource names where the edges come from.
type GraphSource struct {
	// Data holds inline records such as "AB5, BC4".
	Data string `yaml:"data,omitempty"`

	// Files are edge-list files loaded concurrently.
	Files []string `yaml:"files,omitempty" validate:"omitempty,dive,required"`

	// Generate builds a synthetic graph.
	Generate *Generate `yaml:"generate,omitempty" validate:"omitempty"`
}

// Generate selects a synthetic data set.
type Generate struct {
	Size string `yaml:"size" validate:"required,oneof=s m l"`
	Seed int64  `yaml:"seed"`
}

// Query is one route question. Which fields apply depends on Kind.
type Query struct {
	Name string `yaml:"name,omitempty"`
	Kind string `yaml:"kind" validate:"required,oneof=distance count shortest"`

	// Route is the explicit route of a distance query, e.g. "A-B-C".
	Route string `yaml:"route,omitempty" validate:"required_if=Kind distance"`

	From string `yaml:"from,omitempty" validate:"required_if=Kind count,required_if=Kind shortest,omitempty,len=1"`
	To   string `yaml:"to,omitempty" validate:"required_if=Kind count,required_if=Kind shortest,omitempty,len=1"`

	MaxStops    int   `yaml:"max_stops,omitempty" validate:"gte=0"`
	ExactStops  int   `yaml:"exact_stops,omitempty" validate:"gte=0"`
	MaxDistance int64 `yaml:"max_distance,omitempty" validate:"gte=0"`
	Recursive   bool  `yaml:"recursive,omitempty"`

	// Expect, when set, is the answer the query must produce.
	Expect *int64 `yaml:"expect,omitempty"`
}

// Label returns Name, or a description built from the query fields.
func (q Query) Label() string {
	if q.Name != "" {
		return q.Name
	}
	if q.Kind == KindDistance {
		return fmt.Sprintf("%s %s", q.Kind, q.Route)
	}

	return fmt.Sprintf("%s %s→%s", q.Kind, q.From, q.To)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(graphSourceLevel, GraphSource{})
	v.RegisterStructValidation(queryLevel, Query{})

	return v
}

// graphSourceLevel requires exactly one source.
func graphSourceLevel(sl validator.StructLevel) {
	src := sl.Current().Interface().(GraphSource)
	set := 0
	if src.Data != "" {
		set++
	}
	if len(src.Files) > 0 {
		set++
	}
	if src.Generate != nil {
		set++
	}
	if set != 1 {
		sl.ReportError(src.Data, "Data", "data", "one_source", "")
	}
}

// queryLevel requires exactly one bound on count queries.
func queryLevel(sl validator.StructLevel) {
	q := sl.Current().Interface().(Query)
	if q.Kind != KindCount {
		return
	}
	set := 0
	for _, on := range []bool{q.MaxStops > 0, q.ExactStops > 0, q.MaxDistance > 0} {
		if on {
			set++
		}
	}
	if set != 1 {
		sl.ReportError(q.MaxStops, "MaxStops", "max_stops", "one_bound", "")
	}
}

// Validate checks p against its tags and cross-field rules.
func (p *Plan) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}

	return nil
}

// Parse decodes a YAML plan, rejecting unknown fields, and validates it.
func Parse(data []byte) (*Plan, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Plan
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidPlan)
		}
		return nil, fmt.Errorf("config: decode plan: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// LoadPlan reads and parses the plan at path.
func LoadPlan(path string) (*Plan, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if info.Size() > MaxPlanFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrPlanTooLarge, path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Marshal renders p as YAML.
func (p *Plan) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}
