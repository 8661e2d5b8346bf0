package render

import (
	statepkg "github.com/kk-code-lab/ropen/internal/state"
)

// columnGap separates adjacent columns.
const columnGap = 1

// Layout records where the last frame put things so mouse input can be
// mapped back to rows and columns.
type Layout struct {
	Width        int
	Height       int
	HeaderRow    int
	ListStartRow int
	ListRows     int
	ColumnX      [statepkg.ColumnCount]int
	ColumnWidth  [statepkg.ColumnCount]int
}

// ColumnAt returns the column under screen x. Gaps belong to the column on
// their left.
func (l Layout) ColumnAt(x int) (statepkg.Column, bool) {
	if x < 0 || x >= l.Width {
		return 0, false
	}
	for i := statepkg.ColumnCount - 1; i >= 0; i-- {
		if l.ColumnWidth[i] > 0 && x >= l.ColumnX[i] {
			return statepkg.Column(i), true
		}
	}
	return 0, false
}

// RowAt converts screen y to an offset into the visible list window.
func (l Layout) RowAt(y int) (int, bool) {
	row := y - l.ListStartRow
	if row < 0 || row >= l.ListRows {
		return 0, false
	}
	return row, true
}

// computeColumns scales the remembered proportional widths to the terminal
// width. The last column absorbs the rounding remainder.
func computeColumns(width int, proportions [statepkg.ColumnCount]int) (xs, widths [statepkg.ColumnCount]int) {
	available := width - columnGap*(statepkg.ColumnCount-1)
	if available < statepkg.ColumnCount {
		if width > 0 {
			widths[0] = width
		}
		return xs, widths
	}

	total := 0
	for _, p := range proportions {
		if p > 0 {
			total += p
		}
	}

	used := 0
	for i := 0; i < statepkg.ColumnCount; i++ {
		var w int
		if i == statepkg.ColumnCount-1 {
			w = available - used
		} else if total > 0 && proportions[i] > 0 {
			w = available * proportions[i] / total
		} else {
			w = available / statepkg.ColumnCount
		}
		if w < 1 {
			w = 1
		}
		widths[i] = w
		used += w
	}

	x := 0
	for i := range widths {
		xs[i] = x
		x += widths[i] + columnGap
	}
	return xs, widths
}

func computeLayout(w, h int, state *statepkg.AppState) Layout {
	l := Layout{
		Width:        w,
		Height:       h,
		HeaderRow:    statepkg.ListStartRow() - 1,
		ListStartRow: statepkg.ListStartRow(),
	}
	l.ListRows = h - statepkg.ListStartRow() - 1
	if l.ListRows < 0 {
		l.ListRows = 0
	}
	l.ColumnX, l.ColumnWidth = computeColumns(w, state.ColumnWidths)
	return l
}
