package state

import (
	"fmt"

	"github.com/kk-code-lab/ropen/internal/records"
)

// Record mirrors records.Record so UI code can rely on a single import.
type Record = records.Record

const (
	// WindowTitle prefixes the match counter shown in the title line.
	WindowTitle = "Open file"
	// DefaultPageStep is the PageUp/PageDown distance.
	DefaultPageStep = 10
)

// ===== STATE DEFINITIONS =====

// AppState is the single source of truth for one picker session.
type AppState struct {
	// Candidates
	Store *records.Store

	// Filtering
	Query      string
	Visible    []Record // Matching records in display order
	Generation int      // Incremented on every rebuild of Visible
	Loading    bool     // Set while the query is seeded; suppresses recompute
	restoreKey string   // Identity key to reselect on the next rebuild

	// Sorting
	Sort SortState

	// Selection & viewport
	Nav          Navigator
	ScrollOffset int
	// RevealPending asks the viewport to center the selection once it knows
	// its height. Set when a previously chosen record was relocated.
	RevealPending bool

	// Layout
	ScreenWidth  int
	ScreenHeight int
	ColumnWidths [ColumnCount]int // Proportional widths: File, Path, Project
	PageStep     int

	// Outcome
	Chosen    *Record
	Done      bool
	Dismissed bool

	// Status line
	LastError error
	Notice    string
}

// Options configures a new picker state.
type Options struct {
	Clamp        ClampPolicy
	PageStep     int
	ColumnWidths [ColumnCount]int
}

// NewAppState creates a state over store in loading mode. Seed the session
// with SeedSession, then dispatch OpenAction to run the initial filter pass.
func NewAppState(store *records.Store, opts Options) *AppState {
	pageStep := opts.PageStep
	if pageStep <= 0 {
		pageStep = DefaultPageStep
	}
	widths := opts.ColumnWidths
	for i := range widths {
		if widths[i] <= 0 {
			widths[i] = DefaultColumnWidths[i]
		}
	}
	return &AppState{
		Store:        store,
		Loading:      true,
		Sort:         DefaultSortState(),
		Nav:          Navigator{Policy: opts.Clamp, index: -1},
		ColumnWidths: widths,
		PageStep:     pageStep,
	}
}

// SeedSession installs the remembered query and the identity key of the last
// opened record. It only has an effect while the state is loading.
func (s *AppState) SeedSession(query, lastChosenKey string) {
	if !s.Loading {
		return
	}
	s.setQuery(query)
	s.restoreKey = lastChosenKey
}

// RestoreKey returns the identity key the next rebuild will try to reselect.
func (s *AppState) RestoreKey() string {
	return s.restoreKey
}

// SelectedIndex returns the selection index into Visible, or -1.
func (s *AppState) SelectedIndex() int {
	return s.Nav.Index()
}

// CurrentRecord returns the selected record, or nil when nothing is selected.
func (s *AppState) CurrentRecord() *Record {
	idx := s.Nav.Index()
	if idx < 0 || idx >= len(s.Visible) {
		return nil
	}
	rec := s.Visible[idx]
	return &rec
}

// TotalCount returns the number of records in the store.
func (s *AppState) TotalCount() int {
	return s.Store.Len()
}

// Title renders the window title with the match counter.
func (s *AppState) Title() string {
	return fmt.Sprintf("%s (%d/%d)", WindowTitle, len(s.Visible), s.TotalCount())
}

// MatchSummary describes the filter result for the status line.
func (s *AppState) MatchSummary() string {
	total := s.TotalCount()
	n := len(s.Visible)
	switch n {
	case 0:
		return fmt.Sprintf("0 matches out of %d", total)
	case 1:
		return fmt.Sprintf("1 match out of %d", total)
	default:
		return fmt.Sprintf("%d matches out of %d", n, total)
	}
}

func (s *AppState) setQuery(q string) {
	s.Query = q
}
