// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/routegraph/core"
)

// ErrSyntax indicates a record that matches neither the compact nor the
// token form.
var ErrSyntax = errors.New("loader: malformed edge record")

// recordSep splits a line into records.
const recordSep = ","

// commentPrefix starts a comment line.
const commentPrefix = "#"

// Parse decodes every record in data into edges, in input order.
// Records are validated as edges (single-character vertices, no self-loop,
// non-negative distance) but no graph is touched.
func Parse(data string) ([]core.Edge, error) {
	var out []core.Edge
	for i, line := range strings.Split(data, "\n") {
		edges, err := parseLine(line, i+1)
		if err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
		out = append(out, edges...)
	}

	return out, nil
}

// parseLine decodes the comma-separated records of one line.
func parseLine(line string, lineNo int) ([]core.Edge, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, commentPrefix) {
		return nil, nil
	}

	var out []core.Edge
	for _, rec := range strings.Split(line, recordSep) {
		rec = strings.TrimSpace(rec)
		if rec == "" {
			continue
		}
		e, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", lineNo, rec, err)
		}
		out = append(out, e)
	}

	return out, nil
}

// parseRecord decodes "AB5" or "A B 5".
func parseRecord(rec string) (core.Edge, error) {
	var from, to, dist string
	if fields := strings.FieldsFunc(rec, unicode.IsSpace); len(fields) > 1 {
		if len(fields) != 3 {
			return core.Edge{}, fmt.Errorf("%w: want 3 fields, got %d", ErrSyntax, len(fields))
		}
		from, to, dist = fields[0], fields[1], fields[2]
	} else {
		runes := []rune(rec)
		if len(runes) < 3 {
			return core.Edge{}, fmt.Errorf("%w: too short", ErrSyntax)
		}
		from, to, dist = string(runes[0]), string(runes[1]), string(runes[2:])
	}

	if !isDigits(dist) {
		return core.Edge{}, fmt.Errorf("%w: distance %q is not a decimal number", ErrSyntax, dist)
	}
	d, err := strconv.ParseInt(dist, 10, 64)
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: distance %q is not an integer", ErrSyntax, dist)
	}

	return core.NewEdge(from, to, d)
}

// isDigits reports whether s is one or more ASCII decimal digits.
// strconv.ParseInt alone would also take a leading sign.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// Format renders edges as newline-terminated compact records ("AB5\n").
func Format(edges []core.Edge) string {
	var b strings.Builder
	for _, e := range edges {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}

	return b.String()
}
