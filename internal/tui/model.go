// Package tui is the interactive character table. The model fetches the
// record set once at start, shows a loading line until the fetch settles,
// then either the generic fetch error or the table with its filter inputs,
// page-size selector and pagination controls.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/rmtable/internal/table"
	"github.com/mesh-intelligence/rmtable/pkg/types"
)

type phase int

const (
	phaseLoading phase = iota
	phaseFailed
	phaseReady
)

// noFocus marks that no filter input has focus.
const noFocus = -1

type fetchedMsg struct{ records []types.Character }

type fetchFailedMsg struct{ err error }

// Options configures a Model.
type Options struct {
	// PageSize is the initial page size; zero means types.DefaultPageSize.
	PageSize int
	Logger   logrus.FieldLogger
}

// Model is the bubbletea model of the character table.
type Model struct {
	ctx      context.Context
	source   types.Source
	log      logrus.FieldLogger
	pageSize int

	phase  phase
	state  *table.State
	inputs []textinput.Model // one per types.FilterColumns entry
	focus  int
	width  int
}

// New returns a Model that fetches from source when started.
func New(ctx context.Context, source types.Source, opts Options) Model {
	if opts.PageSize == 0 {
		opts.PageSize = types.DefaultPageSize
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		opts.Logger = l
	}

	inputs := make([]textinput.Model, len(types.FilterColumns))
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = "Filter..."
		ti.Prompt = ""
		ti.CharLimit = 0
		ti.Width = columnWidths[i+1] - 1
		inputs[i] = ti
	}

	return Model{
		ctx:      ctx,
		source:   source,
		log:      opts.Logger,
		pageSize: opts.PageSize,
		phase:    phaseLoading,
		inputs:   inputs,
		focus:    noFocus,
	}
}

// Run starts the interactive program and blocks until the user quits.
// A fetch failure is shown in the UI and also returned once the program ends.
func Run(ctx context.Context, source types.Source, opts Options) error {
	p := tea.NewProgram(New(ctx, source, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	if m, ok := final.(Model); ok && m.phase == phaseFailed {
		return types.ErrFetch
	}
	return nil
}

// State returns the table state, or nil until the fetch succeeds.
func (m Model) State() *table.State { return m.state }

// Init starts the single fetch.
func (m Model) Init() tea.Cmd {
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		records, err := source.Fetch(ctx)
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		return fetchedMsg{records: records}
	}
}

// Update handles fetch results, window resizes and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case fetchedMsg:
		m.state = table.New(msg.records)
		if err := m.state.SetPageSize(m.pageSize); err != nil {
			m.log.WithError(err).WithField("page_size", m.pageSize).Warn("ignoring page size")
		}
		m.phase = phaseReady
		m.log.WithField("count", len(msg.records)).Debug("table ready")
		return m, nil

	case fetchFailedMsg:
		m.phase = phaseFailed
		m.log.WithError(msg.err).Error("fetch failed")
		return m, nil

	case tea.KeyMsg:
		if m.phase != phaseReady {
			if key.Matches(msg, keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.focus != noFocus {
			return m.updateFilter(msg)
		}
		return m.updateTable(msg)
	}
	return m, nil
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.First):
		m.state.FirstPage()
	case key.Matches(msg, keys.Previous):
		m.state.PreviousPage()
	case key.Matches(msg, keys.Next):
		m.state.NextPage()
	case key.Matches(msg, keys.Last):
		m.state.LastPage()
	case key.Matches(msg, keys.PageSize):
		m.cyclePageSize(1)
	case key.Matches(msg, keys.PageSizeDn):
		m.cyclePageSize(-1)
	case key.Matches(msg, keys.Filter):
		cmd := m.focusInput(0)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, keys.Done):
		m.inputs[m.focus].Blur()
		m.focus = noFocus
		return m, nil
	case key.Matches(msg, keys.NextInput):
		cmd := m.focusInput((m.focus + 1) % len(m.inputs))
		return m, cmd
	case key.Matches(msg, keys.PrevInput):
		cmd := m.focusInput((m.focus + len(m.inputs) - 1) % len(m.inputs))
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	col := types.FilterColumns[m.focus]
	if v := m.inputs[m.focus].Value(); v != m.state.Filter(col) {
		// FilterColumns are all filterable.
		_ = m.state.SetFilter(col, v)
	}
	return m, cmd
}

// focusInput moves focus to input i and returns its blink command.
func (m *Model) focusInput(i int) tea.Cmd {
	if m.focus != noFocus {
		m.inputs[m.focus].Blur()
	}
	m.focus = i
	return m.inputs[i].Focus()
}

// cyclePageSize steps through types.PageSizes by dir, wrapping around.
func (m *Model) cyclePageSize(dir int) {
	cur := 0
	for i, n := range types.PageSizes {
		if n == m.state.PageSize() {
			cur = i
		}
	}
	next := (cur + dir + len(types.PageSizes)) % len(types.PageSizes)
	// PageSizes are all valid.
	_ = m.state.SetPageSize(types.PageSizes[next])
}
