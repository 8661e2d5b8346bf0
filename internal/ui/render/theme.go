package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	TitleBg       tcell.Color
	TitleFg       tcell.Color
	QueryFg       tcell.Color
	PromptFg      tcell.Color
	HeaderBg      tcell.Color
	HeaderFg      tcell.Color
	HeaderSortFg  tcell.Color
	FileFg        tcell.Color
	DirFg         tcell.Color
	GroupFg       tcell.Color
	MatchFg       tcell.Color
	SelectionBg   tcell.Color
	SelectionFg   tcell.Color
	FooterBg      tcell.Color
	FooterFg      tcell.Color
	ErrorFg       tcell.Color
	NoticeFg      tcell.Color
	EmptyResultFg tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		TitleBg:       tcell.ColorDefault,
		TitleFg:       tcell.ColorDefault,
		QueryFg:       tcell.ColorDefault,
		PromptFg:      tcell.Color33,
		HeaderBg:      tcell.Color236,
		HeaderFg:      tcell.Color252,
		HeaderSortFg:  tcell.ColorWhite,
		FileFg:        tcell.ColorDefault,
		DirFg:         tcell.ColorLightSlateGray,
		GroupFg:       tcell.Color33,
		MatchFg:       tcell.Color214, // amber for the matched substring
		SelectionBg:   tcell.Color33,
		SelectionFg:   tcell.ColorWhite,
		FooterBg:      tcell.ColorDefault,
		FooterFg:      tcell.ColorDefault,
		ErrorFg:       tcell.ColorRed,
		NoticeFg:      tcell.ColorGreen,
		EmptyResultFg: tcell.ColorLightSlateGray,
	}
}
