package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/ropen/internal/state"
)

// buildFooterHelpText returns the key hints shown after the match summary.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "  ")
}

func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}
	if len(state.Visible) == 0 {
		return []string{"Ctrl+U: clear query", "Esc: cancel"}
	}
	return []string{
		"↵: open",
		"Esc: cancel",
		"F1-F3: sort",
		"^O: reveal",
		"^Y: copy path",
	}
}
