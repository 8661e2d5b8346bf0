package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/ropen/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{actionChan: actionChan}
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the user has dismissed the picker.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	alt := ev.Modifiers()&tcell.ModAlt != 0

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		ih.actionChan <- statepkg.DismissAction{}
		return false

	case tcell.KeyEnter:
		ih.actionChan <- statepkg.OpenSelectedAction{}

	case tcell.KeyUp, tcell.KeyCtrlP:
		ih.actionChan <- statepkg.NavigateUpAction{}
	case tcell.KeyDown, tcell.KeyCtrlN:
		ih.actionChan <- statepkg.NavigateDownAction{}
	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.PageUpAction{}
	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.PageDownAction{}
	case tcell.KeyHome:
		ih.actionChan <- statepkg.HomeAction{}
	case tcell.KeyEnd:
		ih.actionChan <- statepkg.EndAction{}

	case tcell.KeyLeft:
		if ctrl {
			ih.actionChan <- statepkg.ColumnResizeAction{Delta: -1}
		}
	case tcell.KeyRight:
		if ctrl {
			ih.actionChan <- statepkg.ColumnResizeAction{Delta: 1}
		}

	case tcell.KeyF1:
		ih.actionChan <- statepkg.SortColumnAction{Column: statepkg.ColumnName}
	case tcell.KeyF2:
		ih.actionChan <- statepkg.SortColumnAction{Column: statepkg.ColumnDir}
	case tcell.KeyF3:
		ih.actionChan <- statepkg.SortColumnAction{Column: statepkg.ColumnGroup}

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if alt || ctrl {
			ih.actionChan <- statepkg.QueryDeleteWordAction{}
		} else {
			ih.actionChan <- statepkg.QueryBackspaceAction{}
		}
	case tcell.KeyCtrlW:
		ih.actionChan <- statepkg.QueryDeleteWordAction{}
	case tcell.KeyCtrlU:
		ih.actionChan <- statepkg.QueryClearAction{}

	case tcell.KeyCtrlO:
		ih.actionChan <- statepkg.RevealDirectoryAction{}
	case tcell.KeyCtrlY:
		ih.actionChan <- statepkg.CopyPathAction{}
	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}

	case tcell.KeyRune:
		r := ev.Rune()
		if alt || !unicode.IsPrint(r) {
			return true
		}
		ih.actionChan <- statepkg.QueryCharAction{Char: r}
	}
	return true
}
