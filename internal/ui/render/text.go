package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	searchpkg "github.com/kk-code-lab/ropen/internal/search"
)

// cachedRuneWidth memoises runewidth lookups. ASCII widths live in a fixed
// table stored off by one so that zero means "not computed yet".
func (r *Renderer) cachedRuneWidth(ru rune) int {
	if ru >= 0 && ru < 128 {
		r.widthMu.RLock()
		cached := r.asciiWidth[ru]
		r.widthMu.RUnlock()
		if cached != 0 {
			return cached - 1
		}
		w := runewidth.RuneWidth(ru)
		if w < 0 {
			w = 0
		}
		r.widthMu.Lock()
		r.asciiWidth[ru] = w + 1
		r.widthMu.Unlock()
		return w
	}

	if cached, ok := r.wideWidth.Load(ru); ok {
		return cached.(int)
	}
	w := runewidth.RuneWidth(ru)
	if w < 0 {
		w = 0
	}
	r.wideWidth.Store(ru, w)
	return w
}

// drawStyledRune draws ru at x and pads wide runes; zero-width runes take one
// cell so the cursor always advances.
func (r *Renderer) drawStyledRune(x, y, maxX int, ru rune, style tcell.Style) int {
	if x >= maxX {
		return x
	}
	width := r.cachedRuneWidth(ru)
	if width <= 0 {
		width = 1
	}
	if x+width > maxX {
		// A wide rune that would straddle the edge is replaced by padding.
		for ; x < maxX; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
		return x
	}
	r.screen.SetContent(x, y, ru, nil, style)
	for w := 1; w < width; w++ {
		r.screen.SetContent(x+w, y, ' ', nil, style)
	}
	return x + width
}

// drawText draws text from startX, clipped at maxX, and returns the next x.
func (r *Renderer) drawText(startX, y, maxX int, text string, style tcell.Style) int {
	x := startX
	for _, ru := range text {
		if x >= maxX {
			break
		}
		x = r.drawStyledRune(x, y, maxX, ru, style)
	}
	return x
}

// drawHighlighted draws text with the runes inside span in highlightStyle.
func (r *Renderer) drawHighlighted(startX, y, maxX int, text string, span searchpkg.MatchSpan, hasSpan bool, baseStyle, highlightStyle tcell.Style) int {
	x := startX
	idx := 0
	for _, ru := range text {
		if x >= maxX {
			break
		}
		style := baseStyle
		if hasSpan && idx >= span.Start && idx < span.End {
			style = highlightStyle
		}
		x = r.drawStyledRune(x, y, maxX, ru, style)
		idx++
	}
	return x
}

func (r *Renderer) fill(startX, y, maxX int, style tcell.Style) {
	for x := startX; x < maxX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
