package state

// Rows above and below the list: title, query, column header, status line.
const (
	listTopRows    = 3
	listBottomRows = 1
)

// ListStartRow is the screen row of the first list entry.
func ListStartRow() int {
	return listTopRows
}

// VisibleLines returns how many list rows fit on screen.
func (s *AppState) VisibleLines() int {
	lines := s.ScreenHeight - listTopRows - listBottomRows
	if lines < 1 {
		return 1
	}
	return lines
}

func (s *AppState) maxScrollOffset() int {
	maxOffset := len(s.Visible) - s.VisibleLines()
	if maxOffset < 0 {
		return 0
	}
	return maxOffset
}

func (s *AppState) clampScroll() {
	if s.ScrollOffset > s.maxScrollOffset() {
		s.ScrollOffset = s.maxScrollOffset()
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

// updateScrollVisibility scrolls the minimum needed to keep the selection on
// screen.
func (s *AppState) updateScrollVisibility() {
	idx := s.Nav.Index()
	if idx < 0 {
		s.ScrollOffset = 0
		return
	}

	visibleLines := s.VisibleLines()
	if idx < s.ScrollOffset {
		s.ScrollOffset = idx
	} else if idx >= s.ScrollOffset+visibleLines {
		s.ScrollOffset = idx - visibleLines + 1
	}
	s.clampScroll()
}

// centerScrollOnSelection puts the selection in the middle of the viewport.
func (s *AppState) centerScrollOnSelection() {
	idx := s.Nav.Index()
	if idx < 0 {
		s.ScrollOffset = 0
		return
	}
	s.ScrollOffset = idx - s.VisibleLines()/2
	s.clampScroll()
}
