// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/routegraph/routes"
)

// Output formats accepted by --output.
const (
	formatTable    = "table"
	formatCSV      = "csv"
	formatMarkdown = "markdown"
)

// render writes one table to the command output in the selected format.
func (a *app) render(header table.Row, rows []table.Row) error {
	t := table.NewWriter()
	t.SetOutputMirror(a.out)
	t.AppendHeader(header)
	t.AppendRows(rows)

	switch a.format {
	case formatTable:
		t.SetStyle(table.StyleLight)
		t.Render()
	case formatCSV:
		t.RenderCSV()
	case formatMarkdown:
		t.RenderMarkdown()
	default:
		return fmt.Errorf("routegraph: --output must be table, csv or markdown, got %q", a.format)
	}

	return nil
}

// distanceText renders a distance, or NoRouteText for routes.NoRoute.
func distanceText(d int64) string {
	if d == routes.NoRoute {
		return routes.NoRouteText
	}

	return strconv.FormatInt(d, 10)
}
