package state

import (
	"fmt"
	"sort"
	"strings"
)

// Column identifies one of the list columns.
type Column int

const (
	ColumnName Column = iota
	ColumnDir
	ColumnGroup

	ColumnCount = 3
)

// DefaultColumnWidths are the File, Path and Project widths used when none are
// remembered.
var DefaultColumnWidths = [ColumnCount]int{200, 400, 200}

var columnTitles = [ColumnCount]string{"File", "Path", "Project"}

func (c Column) String() string {
	if c < 0 || int(c) >= ColumnCount {
		return fmt.Sprintf("Column(%d)", int(c))
	}
	return columnTitles[c]
}

// Valid reports whether c names a known column.
func (c Column) Valid() bool {
	return c >= 0 && int(c) < ColumnCount
}

// Direction is the sort order of the active column.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// SortState is the active sort column and direction.
type SortState struct {
	Column    Column
	Direction Direction
}

// DefaultSortState sorts by file name, ascending.
func DefaultSortState() SortState {
	return SortState{Column: ColumnName, Direction: Ascending}
}

// Toggle returns the sort state after activating col: the active column flips
// direction, any other column becomes active in ascending order.
func (s SortState) Toggle(col Column) SortState {
	if col == s.Column {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return s
	}
	return SortState{Column: col, Direction: Ascending}
}

func sortKey(r Record, col Column) string {
	switch col {
	case ColumnDir:
		return r.Dir
	case ColumnGroup:
		return r.Group
	default:
		return r.Name
	}
}

// Compare orders a and b by the active column using ordinal, case-sensitive
// comparison. It returns a negative number, zero or a positive number.
func Compare(a, b Record, s SortState) int {
	c := strings.Compare(sortKey(a, s.Column), sortKey(b, s.Column))
	if s.Direction == Descending {
		return -c
	}
	return c
}

// SortRecords orders recs in place. Equal keys keep their relative order.
func SortRecords(recs []Record, s SortState) {
	sort.SliceStable(recs, func(i, j int) bool {
		return Compare(recs[i], recs[j], s) < 0
	})
}

// resort reorders Visible after a sort change and keeps the selected record
// selected.
func (s *AppState) resort() {
	var selectedKey string
	if rec := s.CurrentRecord(); rec != nil {
		selectedKey = rec.Key()
	}

	SortRecords(s.Visible, s.Sort)

	if selectedKey != "" {
		if idx := indexOfKey(s.Visible, selectedKey); idx >= 0 {
			s.Nav.Select(idx)
		}
	}
	s.updateScrollVisibility()
}
