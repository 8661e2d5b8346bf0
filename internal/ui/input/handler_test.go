package input

import (
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/ropen/internal/state"
)

func process(t *testing.T, ev tcell.Event) (statepkg.Action, bool) {
	t.Helper()
	ch := make(chan statepkg.Action, 4)
	cont := NewInputHandler(ch).ProcessEvent(ev)
	select {
	case act := <-ch:
		return act, cont
	default:
		return nil, cont
	}
}

func TestKeyMapping(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want statepkg.Action
	}{
		{"enter opens", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), statepkg.OpenSelectedAction{}},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), statepkg.NavigateUpAction{}},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), statepkg.NavigateDownAction{}},
		{"ctrl+n", tcell.NewEventKey(tcell.KeyCtrlN, 0, tcell.ModCtrl), statepkg.NavigateDownAction{}},
		{"page up", tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), statepkg.PageUpAction{}},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), statepkg.PageDownAction{}},
		{"home", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), statepkg.HomeAction{}},
		{"end", tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone), statepkg.EndAction{}},
		{"typing", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), statepkg.QueryCharAction{Char: 'f'}},
		{"space is part of the query", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), statepkg.QueryCharAction{Char: ' '}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), statepkg.QueryBackspaceAction{}},
		{"alt+backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModAlt), statepkg.QueryDeleteWordAction{}},
		{"ctrl+w", tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl), statepkg.QueryDeleteWordAction{}},
		{"ctrl+u", tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModCtrl), statepkg.QueryClearAction{}},
		{"f1", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), statepkg.SortColumnAction{Column: statepkg.ColumnName}},
		{"f2", tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone), statepkg.SortColumnAction{Column: statepkg.ColumnDir}},
		{"f3", tcell.NewEventKey(tcell.KeyF3, 0, tcell.ModNone), statepkg.SortColumnAction{Column: statepkg.ColumnGroup}},
		{"ctrl+right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModCtrl), statepkg.ColumnResizeAction{Delta: 1}},
		{"ctrl+left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModCtrl), statepkg.ColumnResizeAction{Delta: -1}},
		{"ctrl+o", tcell.NewEventKey(tcell.KeyCtrlO, 0, tcell.ModCtrl), statepkg.RevealDirectoryAction{}},
		{"ctrl+y", tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl), statepkg.CopyPathAction{}},
		{"ctrl+z", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), statepkg.SuspendAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cont := process(t, tt.ev)
			if !cont {
				t.Fatalf("handler should keep running")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDismissKeysStopTheHandler(t *testing.T) {
	for _, key := range []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC} {
		got, cont := process(t, tcell.NewEventKey(key, 0, tcell.ModNone))
		if cont {
			t.Fatalf("key %v should stop the handler", key)
		}
		if _, ok := got.(statepkg.DismissAction); !ok {
			t.Fatalf("key %v: expected DismissAction, got %T", key, got)
		}
	}
}

func TestIgnoredKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt),
		tcell.NewEventKey(tcell.KeyF9, 0, tcell.ModNone),
	} {
		if got, cont := process(t, ev); got != nil || !cont {
			t.Fatalf("%v: expected no action, got %T", ev.Name(), got)
		}
	}
}

func TestResizeEvent(t *testing.T) {
	got, cont := process(t, tcell.NewEventResize(120, 33))
	if !cont {
		t.Fatalf("resize should keep running")
	}
	if got != (statepkg.ResizeAction{Width: 120, Height: 33}) {
		t.Fatalf("got %#v", got)
	}
}
