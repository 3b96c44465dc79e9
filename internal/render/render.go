// Package render draws a table state as plain text or JSON for
// non-interactive output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/rmtable/internal/table"
	"github.com/mesh-intelligence/rmtable/pkg/types"
)

// Placeholder texts shared with the interactive view.
const (
	Title      = "Rick and Morty Characters"
	NoResults  = "No results found"
	FetchError = "Error fetching data"
	Loading    = "Loading..."
)

// maxCellWidth bounds a cell before truncation with "...".
const maxCellWidth = 40

// Cells returns the displayed cell texts of ch in column order.
func Cells(ch types.Character) []string {
	out := make([]string, len(types.Columns))
	for i, c := range types.Columns {
		out[i] = c.Value(ch)
	}
	return out
}

// Headers returns the column headers in column order.
func Headers() []string {
	out := make([]string, len(types.Columns))
	for i, c := range types.Columns {
		out[i] = strings.ToUpper(c.Header())
	}
	return out
}

// PageLabel describes the current page, e.g. "Page 2 of 5". An empty
// filtered set reads "Page 0 of 0".
func PageLabel(s *table.State) string {
	if s.PageCount() == 0 {
		return "Page 0 of 0"
	}
	return fmt.Sprintf("Page %d of %d", s.PageIndex()+1, s.PageCount())
}

// Buttons renders the first, previous, next and last controls. Enabled
// controls are bracketed, disabled ones parenthesised.
func Buttons(s *table.State) string {
	btn := func(label string, enabled bool) string {
		if enabled {
			return "[" + label + "]"
		}
		return "(" + label + ")"
	}
	return strings.Join([]string{
		btn("<<", s.CanPreviousPage()),
		btn("<", s.CanPreviousPage()),
		btn(">", s.CanNextPage()),
		btn(">>", s.CanNextPage()),
	}, " ")
}

// Table writes the current page of s under Title with a header, a footer
// describing pagination and the active filters. An empty filtered set
// prints the headers followed by NoResults.
func Table(w io.Writer, s *table.State) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", Title); err != nil {
		return err
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	headers := Headers()
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	rules := make([]string, len(headers))
	for i, h := range headers {
		rules[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(rules, "\t"))

	if s.FilteredCount() == 0 {
		fmt.Fprintln(tw, NoResults)
	}
	for ch := range s.VisibleRows() {
		cells := Cells(ch)
		for i, c := range cells {
			cells[i] = truncate(c, maxCellWidth)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	// Trim trailing padding left by tabwriter.
	for line := range strings.SplitSeq(strings.TrimSuffix(sb.String(), "\n"), "\n") {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}

	if f := FilterSummary(s); f != "" {
		if _, err := fmt.Fprintf(w, "Filters: %s\n", f); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s · Show %d entries · %d of %d rows\n%s\n",
		PageLabel(s), s.PageSize(), s.FilteredCount(), s.TotalCount(), Buttons(s))
	return err
}

// FilterSummary lists the active filters in column order, e.g.
// `name="Rick" status="Alive"`.
func FilterSummary(s *table.State) string {
	var parts []string
	for _, c := range types.FilterColumns {
		if v := s.Filter(c); v != "" {
			parts = append(parts, fmt.Sprintf("%s=%q", c, v))
		}
	}
	return strings.Join(parts, " ")
}

// JSON writes the current page of s as an indented JSON array. An empty page
// is written as [].
func JSON(w io.Writer, s *table.State) error {
	page := s.Page()
	out, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal page: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
