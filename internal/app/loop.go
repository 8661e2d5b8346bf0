package app

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/ropen/internal/records"
	statepkg "github.com/kk-code-lab/ropen/internal/state"
	inputui "github.com/kk-code-lab/ropen/internal/ui/input"
	renderui "github.com/kk-code-lab/ropen/internal/ui/render"
)

const doubleClickThreshold = 300 * time.Millisecond

// NewApplication takes over the terminal for state. The state should be
// seeded from the session but still loading; the initial filter pass runs
// once the screen size is known so a restored selection can be centered.
func NewApplication(state *statepkg.AppState, opts Options) (*Application, error) {
	screen := opts.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create screen: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()

	log := opts.Logger
	if log == nil {
		log = discardLogger()
	}

	actionCh := make(chan statepkg.Action, 16)
	app := &Application{
		screen:   screen,
		state:    state,
		reducer:  statepkg.NewStateReducer(),
		renderer: renderui.NewRenderer(screen),
		input:    inputui.NewInputHandler(actionCh),
		actionCh: actionCh,
		log:      log,
	}

	w, h := screen.Size()
	app.reduce(statepkg.ResizeAction{Width: w, Height: h})
	app.reduce(statepkg.OpenAction{})
	log.WithField("records", state.TotalCount()).WithField("visible", len(state.Visible)).Debug("picker opened")
	return app, nil
}

// Run processes input until a record is opened or the picker is dismissed.
// It returns the chosen record, or nil on dismiss, and releases the screen.
func (app *Application) Run() (*records.Record, error) {
	defer app.Close()

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	stopPolling := make(chan struct{})
	defer close(stopPolling)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-stopPolling:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
		if app.state.Done {
			app.shouldQuit = true
		}
	}

	return app.Chosen(), nil
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		// The dismiss action is already queued; the loop ends once it is
		// reduced and state.Done is set.
		app.input.ProcessEvent(ev)
	case *tcell.EventMouse:
		app.handleMouse(ev)
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

// handleMouse maps the wheel to navigation, header clicks to sorting and list
// clicks to selection; a second click on the same row opens it.
func (app *Application) handleMouse(ev *tcell.EventMouse) bool {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		app.actionCh <- statepkg.WheelAction{Notches: 1}
		return true
	case buttons&tcell.WheelDown != 0:
		app.actionCh <- statepkg.WheelAction{Notches: -1}
		return true
	}

	if buttons&tcell.Button1 == 0 {
		app.button1Down = false
		return true
	}
	// Drag reports arrive with the button still held; only the press counts.
	if app.button1Down {
		return true
	}
	app.button1Down = true

	x, y := ev.Position()
	layout := app.renderer.LastLayout()

	if y == layout.HeaderRow {
		if col, ok := layout.ColumnAt(x); ok {
			app.actionCh <- statepkg.SortColumnAction{Column: col}
		}
		return true
	}

	row, ok := layout.RowAt(y)
	if !ok {
		return true
	}
	idx := app.state.ScrollOffset + row
	if idx < 0 || idx >= len(app.state.Visible) {
		return true
	}

	clickKey := app.state.Visible[idx].Key()
	doubleClick := app.lastClickKey == clickKey && time.Since(app.lastClickTime) <= doubleClickThreshold
	app.lastClickKey = clickKey
	app.lastClickTime = time.Now()

	app.actionCh <- statepkg.SelectIndexAction{Index: idx}
	if doubleClick {
		app.actionCh <- statepkg.OpenSelectedAction{}
	}
	return true
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}
	if _, isResize := action.(statepkg.ResizeAction); !isResize {
		app.state.LastError = nil
		app.state.Notice = ""
	}

	switch action.(type) {
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case statepkg.RevealDirectoryAction:
		return app.handleReveal()
	case statepkg.CopyPathAction:
		return app.handleClipboard()
	}

	app.reduce(action)
	return true
}

func (app *Application) reduce(action statepkg.Action) {
	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
		app.log.WithError(err).Warnf("reduce %T", action)
	}
}
