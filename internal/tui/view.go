package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/rmtable/internal/render"
	"github.com/mesh-intelligence/rmtable/pkg/types"
)

// columnWidths are the rendered widths of types.Columns, separator included.
var columnWidths = []int{6, 30, 12, 20}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	ruleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	inputStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	emptyStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	enabledStyle  = lipgloss.NewStyle().Bold(true)
	disabledStyle = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginTop(1)
)

// View renders the model. It depends only on the model's fields.
func (m Model) View() string {
	switch m.phase {
	case phaseLoading:
		return render.Loading + "\n"
	case phaseFailed:
		return errorStyle.Render(render.FetchError) + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(render.Title))
	b.WriteString("\n")
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.filterView())
	b.WriteString("\n")
	rule := sum(columnWidths)
	if m.width > 0 && m.width < rule {
		rule = m.width
	}
	b.WriteString(ruleStyle.Render(strings.Repeat("─", rule)))
	b.WriteString("\n")
	b.WriteString(m.bodyView())
	b.WriteString("\n")
	b.WriteString(m.pageSizeView())
	b.WriteString("\n")
	b.WriteString(m.pagerView())
	b.WriteString("\n")
	b.WriteString(m.helpView())
	b.WriteString("\n")
	return b.String()
}

func (m Model) headerView() string {
	cells := make([]string, len(types.Columns))
	for i, c := range types.Columns {
		cells[i] = headerStyle.Width(columnWidths[i]).Render(c.Header())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// filterView draws an input under each filterable header and a blank cell
// under the others.
func (m Model) filterView() string {
	cells := make([]string, len(types.Columns))
	in := 0
	for i, c := range types.Columns {
		w := lipgloss.NewStyle().Width(columnWidths[i])
		if !c.Filterable() {
			cells[i] = w.Render("")
			continue
		}
		style := inputStyle
		if in == m.focus {
			style = focusStyle
		}
		cells[i] = w.Inherit(style).Render(m.inputs[in].View())
		in++
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) bodyView() string {
	if m.state.FilteredCount() == 0 {
		return emptyStyle.Render(render.NoResults)
	}
	var lines []string
	for ch := range m.state.VisibleRows() {
		cells := render.Cells(ch)
		for i, c := range cells {
			cells[i] = lipgloss.NewStyle().Width(columnWidths[i]).MaxWidth(columnWidths[i]).Render(fit(c, columnWidths[i]-1))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}

func (m Model) pageSizeView() string {
	opts := make([]string, len(types.PageSizes))
	for i, n := range types.PageSizes {
		label := strconv.Itoa(n)
		if n == m.state.PageSize() {
			opts[i] = selectedStyle.Render(label)
		} else {
			opts[i] = label
		}
	}
	return fmt.Sprintf("Show %s entries", strings.Join(opts, " "))
}

func (m Model) pagerView() string {
	btn := func(label string, enabled bool) string {
		if enabled {
			return enabledStyle.Render("[" + label + "]")
		}
		return disabledStyle.Render("(" + label + ")")
	}
	prev, next := m.state.CanPreviousPage(), m.state.CanNextPage()
	return fmt.Sprintf("%s %s %s %s  %s · %d of %d rows",
		btn("<<", prev), btn("<", prev), btn(">", next), btn(">>", next),
		render.PageLabel(m.state), m.state.FilteredCount(), m.state.TotalCount())
}

func (m Model) helpView() string {
	parts := make([]string, 0, len(helpBindings))
	for _, b := range helpBindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	if m.focus != noFocus {
		parts = []string{"tab next filter", "enter/esc done", "ctrl+c quit"}
	}
	return helpStyle.Render(strings.Join(parts, " · "))
}

// fit truncates s to n runes, marking the cut with "…".
func fit(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func sum(xs []int) int {
	t := 0
	for _, x := range xs {
		t += x
	}
	return t
}
