// Package textutil prepares record text for a terminal cell grid.
package textutil

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// SanitizeTerminalText makes file names safe to draw. C0/C1 controls become
// '?', line breaks and tabs become spaces, and invisible format characters
// (bidi overrides, zero-width joiners, BOM) become '·' so that a name cannot
// reorder or hide the text around it.
func SanitizeTerminalText(text string) string {
	clean := true
	for _, r := range text {
		if needsReplacement(r) {
			clean = false
			break
		}
	}
	if clean {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case unicode.IsControl(r):
			b.WriteByte('?')
		case unicode.Is(unicode.Cf, r):
			b.WriteRune('·')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsReplacement(r rune) bool {
	return unicode.IsControl(r) || unicode.Is(unicode.Cf, r)
}

// DisplayWidth reports the number of terminal cells text occupies.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Fit truncates text to at most width cells, ending in an ellipsis when cut.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, Ellipsis)
}

// FitLeft keeps the end of text, which is the informative part of a long
// directory path.
func FitLeft(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width <= runewidth.StringWidth(Ellipsis) {
		return runewidth.Truncate(text, width, "")
	}
	budget := width - runewidth.StringWidth(Ellipsis)
	runes := []rune(text)
	used := 0
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > budget {
			break
		}
		used += w
		start--
	}
	return Ellipsis + string(runes[start:])
}
