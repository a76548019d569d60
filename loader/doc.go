// SPDX-License-Identifier: MIT
//
// Package loader reads edge lists into a core.Graph and generates synthetic
// ones.
//
// Grammar:
//
//	data    := record { sep record }
//	sep     := "," | newline
//	record  := compact | tokens
//	compact := VERTEX VERTEX DIGITS        e.g. "AB5"
//	tokens  := VERTEX ws VERTEX ws DIGITS  e.g. "A B 5"
//	DIGITS  := [0-9]+
//
// Surrounding whitespace is ignored, empty records are skipped and a line whose
// first non-blank character is '#' is a comment. Both forms may be mixed,
// so "AB5, BC4" and "A B 5\nB C 4" load the same graph.
//
// A line may hold up to MaxLineSize bytes.
//
// Errors carry the 1-based line and the offending record and wrap ErrSyntax,
// or the core validation error (core.ErrBadVertex, core.ErrLoopNotAllowed)
// raised by the graph. A signed distance is ErrSyntax.
//
// Generation follows the classic s/m/l fixture recipe: vertices are
// consecutive code points starting at 'A', each vertex gets an edge to its
// successor plus edges to every jump-th vertex, with distances drawn from
// [0, 24).
package loader
