// Package table holds the client-side table state: the fetched record set,
// the per-column filters and the pagination window over the filtered rows.
//
// Every mutating operation recomputes the filtered rows synchronously, so
// renderers can treat a State as plain data and draw it as a pure function.
// A State is not safe for concurrent use; it is owned by a single UI loop.
package table

import (
	"iter"
	"strings"

	"github.com/mesh-intelligence/rmtable/pkg/types"
)

// State owns the record set, the FilterSet and the PageState.
type State struct {
	records  []types.Character
	filters  types.FilterSet
	filtered []types.Character
	size     int
	index    int
}

// New creates a State over records with no filters, page size
// types.DefaultPageSize and page index 0. The slice is not copied; records
// are treated as immutable.
func New(records []types.Character) *State {
	s := &State{
		filters: make(types.FilterSet),
		size:    types.DefaultPageSize,
	}
	s.SetRecords(records)
	return s
}

// SetRecords replaces the record set wholesale, keeps the filters and page
// size, and returns to the first page.
func (s *State) SetRecords(records []types.Character) {
	s.records = records
	s.index = 0
	s.refilter()
}

// SetFilter sets the filter text for column. An empty value clears the
// column's filter. The page index is not reset but is clamped to the last
// page of the new filtered set.
// Returns ErrColumnNotFilterable for columns that take no filter.
func (s *State) SetFilter(column types.Column, value string) error {
	if !column.Filterable() {
		return types.ErrColumnNotFilterable
	}
	if value == "" {
		delete(s.filters, column)
	} else {
		s.filters[column] = value
	}
	s.refilter()
	s.clamp()
	return nil
}

// Filter returns the active filter text for column, or "" when unset.
func (s *State) Filter(column types.Column) string {
	return s.filters[column]
}

// Filters returns a copy of the active filters.
func (s *State) Filters() types.FilterSet {
	out := make(types.FilterSet, len(s.filters))
	for k, v := range s.filters {
		out[k] = v
	}
	return out
}

// SetPageSize changes the page size. The new index is chosen so that the
// first row of the current page stays visible.
// Returns ErrInvalidPageSize unless n is one of types.PageSizes.
func (s *State) SetPageSize(n int) error {
	if !types.ValidPageSize(n) {
		return types.ErrInvalidPageSize
	}
	top := s.index * s.size
	s.size = n
	s.index = top / n
	s.clamp()
	return nil
}

// GotoPage moves to page i, clamped to [0, PageCount()-1].
func (s *State) GotoPage(i int) {
	s.index = i
	s.clamp()
}

// NextPage advances one page; a no-op on the last page.
func (s *State) NextPage() {
	if s.CanNextPage() {
		s.index++
	}
}

// PreviousPage goes back one page; a no-op on the first page.
func (s *State) PreviousPage() {
	if s.CanPreviousPage() {
		s.index--
	}
}

// FirstPage is GotoPage(0).
func (s *State) FirstPage() { s.GotoPage(0) }

// LastPage moves to the last page of the filtered set.
func (s *State) LastPage() { s.GotoPage(s.PageCount() - 1) }

// PageIndex returns the zero-based current page.
func (s *State) PageIndex() int { return s.index }

// PageSize returns the number of rows per page.
func (s *State) PageSize() int { return s.size }

// PageCount returns the number of pages over the filtered set. An empty
// filtered set has zero pages.
func (s *State) PageCount() int {
	return (len(s.filtered) + s.size - 1) / s.size
}

// FilteredCount returns how many records satisfy every active filter.
func (s *State) FilteredCount() int { return len(s.filtered) }

// TotalCount returns the size of the unfiltered record set.
func (s *State) TotalCount() int { return len(s.records) }

// CanPreviousPage reports whether PreviousPage would move.
func (s *State) CanPreviousPage() bool { return s.index > 0 }

// CanNextPage reports whether NextPage would move.
func (s *State) CanNextPage() bool { return s.index < s.PageCount()-1 }

// VisibleRows yields the records of the current page in record order.
func (s *State) VisibleRows() iter.Seq[types.Character] {
	lo, hi := s.bounds()
	rows := s.filtered[lo:hi]
	return func(yield func(types.Character) bool) {
		for _, r := range rows {
			if !yield(r) {
				return
			}
		}
	}
}

// Page returns the records of the current page as a new slice.
func (s *State) Page() []types.Character {
	lo, hi := s.bounds()
	out := make([]types.Character, hi-lo)
	copy(out, s.filtered[lo:hi])
	return out
}

// Filtered returns every record that satisfies the active filters, across
// all pages, as a new slice.
func (s *State) Filtered() []types.Character {
	out := make([]types.Character, len(s.filtered))
	copy(out, s.filtered)
	return out
}

// bounds returns the [lo, hi) window of the current page within filtered.
func (s *State) bounds() (int, int) {
	lo := s.index * s.size
	if lo > len(s.filtered) {
		lo = len(s.filtered)
	}
	hi := lo + s.size
	if hi > len(s.filtered) {
		hi = len(s.filtered)
	}
	return lo, hi
}

// refilter rebuilds filtered with a linear scan over records.
func (s *State) refilter() {
	s.filtered = s.filtered[:0:0]
	for _, r := range s.records {
		if s.matches(r) {
			s.filtered = append(s.filtered, r)
		}
	}
}

// matches reports whether r contains every active filter text, case
// sensitively, in the corresponding column.
func (s *State) matches(r types.Character) bool {
	for col, want := range s.filters {
		if !strings.Contains(col.Value(r), want) {
			return false
		}
	}
	return true
}

// clamp keeps index within [0, PageCount()-1], or 0 when there are no pages.
func (s *State) clamp() {
	if last := s.PageCount() - 1; s.index > last {
		s.index = last
	}
	if s.index < 0 {
		s.index = 0
	}
}
