package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== LIFECYCLE ACTIONS =====

// OpenAction ends the loading phase and runs the initial filter pass.
type OpenAction struct{}

type OpenSelectedAction struct{} // Enter / double click
type DismissAction struct{}      // Esc / Ctrl+C

// ===== QUERY ACTIONS =====

type QueryCharAction struct {
	Char rune
}
type QueryBackspaceAction struct{}
type QueryDeleteWordAction struct{}
type QueryClearAction struct{}

// QuerySetAction replaces the whole query, e.g. from a paste.
type QuerySetAction struct {
	Text string
}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type PageUpAction struct{}
type PageDownAction struct{}
type HomeAction struct{}
type EndAction struct{}

// WheelAction carries discrete wheel notches. Positive notches scroll away
// from the user and move to previous records.
type WheelAction struct {
	Notches int
}

// SelectIndexAction selects a visible row directly, e.g. from a mouse click.
type SelectIndexAction struct {
	Index int
}

// ===== COLUMN ACTIONS =====

type SortColumnAction struct {
	Column Column
}

// ColumnResizeAction grows (positive) or shrinks the active sort column.
type ColumnResizeAction struct {
	Delta int
}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// ===== SIDE-EFFECT ACTIONS (handled by the application) =====

type RevealDirectoryAction struct{}
type CopyPathAction struct{}
type SuspendAction struct{}
