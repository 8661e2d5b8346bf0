package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	searchpkg "github.com/kk-code-lab/ropen/internal/search"
	statepkg "github.com/kk-code-lab/ropen/internal/state"
	textutil "github.com/kk-code-lab/ropen/internal/textutil"
)

const queryPrompt = "Search: "

// Renderer handles all UI rendering
type Renderer struct {
	screen     tcell.Screen
	theme      ColorTheme
	asciiWidth [128]int
	widthMu    sync.RWMutex
	wideWidth  sync.Map

	layoutMu sync.Mutex
	layout   Layout
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// LastLayout returns the geometry of the most recent frame.
func (r *Renderer) LastLayout() Layout {
	r.layoutMu.Lock()
	defer r.layoutMu.Unlock()
	return r.layout
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	w, h := r.screen.Size()

	layout := computeLayout(w, h, state)
	r.layoutMu.Lock()
	r.layout = layout
	r.layoutMu.Unlock()

	r.drawTitle(state, w)
	r.drawQueryLine(state, w, h)
	r.drawColumnHeader(state, layout)
	r.drawList(state, layout)
	r.drawStatusLine(state, w, h)

	r.screen.Show()
}

func (r *Renderer) drawTitle(state *statepkg.AppState, w int) {
	style := tcell.StyleDefault.Background(r.theme.TitleBg).Foreground(r.theme.TitleFg).Bold(true)
	title := state.Title()
	if state.Loading {
		title = statepkg.WindowTitle + " (loading…)"
	}
	x := r.drawText(0, 0, w, title, style)
	r.fill(x, 0, w, style)
}

func (r *Renderer) drawQueryLine(state *statepkg.AppState, w, h int) {
	const row = 1
	if h <= row {
		r.screen.HideCursor()
		return
	}
	promptStyle := tcell.StyleDefault.Foreground(r.theme.PromptFg)
	queryStyle := tcell.StyleDefault.Foreground(r.theme.QueryFg)

	x := r.drawText(0, row, w, queryPrompt, promptStyle)
	query := textutil.SanitizeTerminalText(state.Query)
	// Keep the caret on screen for long queries.
	if available := w - x - 1; available > 0 && textutil.DisplayWidth(query) > available {
		query = textutil.FitLeft(query, available)
	}
	x = r.drawText(x, row, w, query, queryStyle)
	r.fill(x, row, w, tcell.StyleDefault)

	if x < w {
		r.screen.ShowCursor(x, row)
	} else {
		r.screen.HideCursor()
	}
}

func (r *Renderer) drawColumnHeader(state *statepkg.AppState, layout Layout) {
	y := layout.HeaderRow
	if y < 0 || y >= layout.Height {
		return
	}
	base := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)
	active := base.Foreground(r.theme.HeaderSortFg).Bold(true)
	r.fill(0, y, layout.Width, base)

	for i := 0; i < statepkg.ColumnCount; i++ {
		width := layout.ColumnWidth[i]
		if width <= 0 {
			continue
		}
		col := statepkg.Column(i)
		label := col.String()
		style := base
		if col == state.Sort.Column {
			style = active
			label += " " + sortIndicator(state.Sort.Direction)
		}
		start := layout.ColumnX[i]
		r.drawText(start, y, start+width, textutil.Fit(label, width), style)
	}
}

func sortIndicator(d statepkg.Direction) string {
	if d == statepkg.Descending {
		return "▼"
	}
	return "▲"
}

func (r *Renderer) drawList(state *statepkg.AppState, layout Layout) {
	if layout.ListRows <= 0 {
		return
	}
	if len(state.Visible) == 0 {
		if state.Loading {
			return
		}
		style := tcell.StyleDefault.Foreground(r.theme.EmptyResultFg).Italic(true)
		msg := "no matching files"
		if state.TotalCount() == 0 {
			msg = "no files"
		}
		r.drawText(1, layout.ListStartRow, layout.Width, msg, style)
		return
	}

	selected := state.SelectedIndex()
	for row := 0; row < layout.ListRows; row++ {
		idx := state.ScrollOffset + row
		if idx >= len(state.Visible) {
			break
		}
		r.drawRecordRow(state, layout, layout.ListStartRow+row, state.Visible[idx], idx == selected)
	}
}

func (r *Renderer) drawRecordRow(state *statepkg.AppState, layout Layout, y int, rec statepkg.Record, selected bool) {
	rowStyle := tcell.StyleDefault
	fileStyle := rowStyle.Foreground(r.theme.FileFg)
	dirStyle := rowStyle.Foreground(r.theme.DirFg)
	groupStyle := rowStyle.Foreground(r.theme.GroupFg)
	matchStyle := rowStyle.Foreground(r.theme.MatchFg).Bold(true)
	if selected {
		rowStyle = rowStyle.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		fileStyle, dirStyle, groupStyle = rowStyle, rowStyle, rowStyle
		matchStyle = rowStyle.Bold(true).Underline(true)
	}
	r.fill(0, y, layout.Width, rowStyle)

	if w := layout.ColumnWidth[statepkg.ColumnName]; w > 0 {
		x := layout.ColumnX[statepkg.ColumnName]
		name := textutil.Fit(textutil.SanitizeTerminalText(rec.Name), w)
		span, ok := searchpkg.FindSpan(rec.Name, state.Query)
		r.drawHighlighted(x, y, x+w, name, span, ok, fileStyle, matchStyle)
	}
	if w := layout.ColumnWidth[statepkg.ColumnDir]; w > 0 {
		x := layout.ColumnX[statepkg.ColumnDir]
		r.drawText(x, y, x+w, textutil.FitLeft(textutil.SanitizeTerminalText(rec.Dir), w), dirStyle)
	}
	if w := layout.ColumnWidth[statepkg.ColumnGroup]; w > 0 {
		x := layout.ColumnX[statepkg.ColumnGroup]
		r.drawText(x, y, x+w, textutil.Fit(textutil.SanitizeTerminalText(rec.Group), w), groupStyle)
	}
}

// drawStatusLine shows the last error or notice, otherwise the match summary
// and key hints.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	y := h - 1
	if y < statepkg.ListStartRow() {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	r.fill(0, y, w, style)

	var text string
	switch {
	case state.LastError != nil:
		style = style.Foreground(r.theme.ErrorFg)
		text = fmt.Sprintf(" error: %v", state.LastError)
	case state.Notice != "":
		style = style.Foreground(r.theme.NoticeFg)
		text = " " + state.Notice
	default:
		text = " " + state.MatchSummary()
		if help := buildFooterHelpText(state); help != "" {
			text += " | " + help
		}
	}
	text = textutil.Fit(textutil.SanitizeTerminalText(text), w)
	r.drawText(0, y, w, text, style)
}
