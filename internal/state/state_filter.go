package state

import (
	"github.com/kk-code-lab/ropen/internal/records"
	search "github.com/kk-code-lab/ropen/internal/search"
)

// Recompute builds the visible set for query from scratch, orders it by sort
// and picks the record to select. When restoreKey names a visible record it is
// selected and restored is true so the caller can scroll it into view.
// Otherwise the first record is selected, or -1 when nothing matches.
func Recompute(store *records.Store, query string, sort SortState, restoreKey string) (visible []Record, selected int, restored bool) {
	matcher := search.NewMatcher(query)
	n := store.Len()
	visible = make([]Record, 0, n)
	for i := 0; i < n; i++ {
		rec := store.At(i)
		if matcher.Match(rec.Name) {
			visible = append(visible, rec)
		}
	}

	SortRecords(visible, sort)

	if len(visible) == 0 {
		return visible, -1, false
	}
	if restoreKey != "" {
		if idx := indexOfKey(visible, restoreKey); idx >= 0 {
			return visible, idx, true
		}
	}
	return visible, 0, false
}

func indexOfKey(visible []Record, key string) int {
	for i := range visible {
		if visible[i].Key() == key {
			return i
		}
	}
	return -1
}

// rebuild replaces Visible and resets the navigator from the fresh result.
// Callers must not invoke it while the state is loading.
func (s *AppState) rebuild() {
	visible, selected, restored := Recompute(s.Store, s.Query, s.Sort, s.restoreKey)
	s.Visible = visible
	s.Generation++
	s.Nav.Reset(len(visible), selected)
	s.ScrollOffset = 0
	s.RevealPending = restored
	if restored {
		s.centerScrollOnSelection()
	} else {
		s.updateScrollVisibility()
	}
}

// queryEdited applies a user edit of the query text. The remembered record is
// only relocated by the first pass; once the user types, later passes start
// from the top of the list.
func (s *AppState) queryEdited(q string) {
	s.setQuery(q)
	if s.Loading {
		return
	}
	s.restoreKey = ""
	s.rebuild()
}
