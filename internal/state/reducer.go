package state

import (
	"unicode"
)

const (
	minColumnWidth  = 40
	maxColumnWidth  = 4000
	columnWidthStep = 20
)

// ===== REDUCER =====

// StateReducer applies actions to state
type StateReducer struct{}

// NewStateReducer creates a new reducer
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

func isQueryWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func previousWordBoundary(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	i := pos
	for i > 0 && !isQueryWordChar(runes[i-1]) {
		i--
	}
	for i > 0 && isQueryWordChar(runes[i-1]) {
		i--
	}
	return i
}

// Reduce applies action to state. Every transition completes synchronously.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	// In Go we mutate in place but conceptually treat state as immutable.

	switch a := action.(type) {

	// ===== LIFECYCLE =====

	case OpenAction:
		if !state.Loading {
			return state, nil
		}
		state.Loading = false
		state.rebuild()
		return state, nil

	case OpenSelectedAction:
		rec := state.CurrentRecord()
		if rec == nil {
			return state, nil
		}
		state.Chosen = rec
		state.Done = true
		return state, nil

	case DismissAction:
		state.Chosen = nil
		state.Dismissed = true
		state.Done = true
		return state, nil

	// ===== QUERY =====

	case QueryCharAction:
		if !unicode.IsPrint(a.Char) {
			return state, nil
		}
		state.queryEdited(state.Query + string(a.Char))
		return state, nil

	case QueryBackspaceAction:
		if state.Query == "" {
			return state, nil
		}
		runes := []rune(state.Query)
		state.queryEdited(string(runes[:len(runes)-1]))
		return state, nil

	case QueryDeleteWordAction:
		if state.Query == "" {
			return state, nil
		}
		runes := []rune(state.Query)
		cut := previousWordBoundary(runes, len(runes))
		state.queryEdited(string(runes[:cut]))
		return state, nil

	case QueryClearAction:
		if state.Query == "" {
			return state, nil
		}
		state.queryEdited("")
		return state, nil

	case QuerySetAction:
		if a.Text == state.Query {
			return state, nil
		}
		state.queryEdited(a.Text)
		return state, nil

	// ===== NAVIGATION =====

	case NavigateDownAction:
		r.moveBy(state, 1)
		return state, nil

	case NavigateUpAction:
		r.moveBy(state, -1)
		return state, nil

	case PageDownAction:
		r.moveBy(state, state.PageStep)
		return state, nil

	case PageUpAction:
		r.moveBy(state, -state.PageStep)
		return state, nil

	case WheelAction:
		// Wheel away from the user moves toward the top of the list.
		r.moveBy(state, -a.Notches)
		return state, nil

	case HomeAction:
		if state.Nav.MoveTo(0) {
			state.RevealPending = false
			state.updateScrollVisibility()
		}
		return state, nil

	case EndAction:
		if state.Nav.MoveTo(len(state.Visible) - 1) {
			state.RevealPending = false
			state.updateScrollVisibility()
		}
		return state, nil

	case SelectIndexAction:
		if state.Nav.Select(a.Index) {
			state.RevealPending = false
			state.updateScrollVisibility()
		}
		return state, nil

	// ===== COLUMNS =====

	case SortColumnAction:
		if !a.Column.Valid() {
			return state, nil
		}
		state.Sort = state.Sort.Toggle(a.Column)
		state.resort()
		return state, nil

	case ColumnResizeAction:
		col := state.Sort.Column
		width := state.ColumnWidths[col] + a.Delta*columnWidthStep
		if width < minColumnWidth {
			width = minColumnWidth
		}
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		state.ColumnWidths[col] = width
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		if state.RevealPending {
			state.centerScrollOnSelection()
			state.RevealPending = false
		} else {
			state.updateScrollVisibility()
		}
		return state, nil
	}

	return state, nil
}

func (r *StateReducer) moveBy(state *AppState, delta int) {
	if state.Nav.MoveBy(delta) {
		state.RevealPending = false
		state.updateScrollVisibility()
	}
}
