package app

import (
	"io"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/kk-code-lab/ropen/internal/records"
	statepkg "github.com/kk-code-lab/ropen/internal/state"
	inputui "github.com/kk-code-lab/ropen/internal/ui/input"
	renderui "github.com/kk-code-lab/ropen/internal/ui/render"
)

// Options configures an Application.
type Options struct {
	// Screen replaces the terminal screen, e.g. with a simulation screen in
	// tests. It must not be initialised yet.
	Screen tcell.Screen
	Logger logrus.FieldLogger
}

// Application represents the running picker.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	log        logrus.FieldLogger
	shouldQuit bool
	closeOnce  sync.Once

	button1Down   bool
	lastClickKey  string
	lastClickTime time.Time
}

// State exposes the picker state, e.g. to persist the session after Run.
func (app *Application) State() *statepkg.AppState {
	return app.state
}

// Chosen returns the record the user opened, or nil when the picker was
// dismissed.
func (app *Application) Chosen() *records.Record {
	if app.state == nil || app.state.Chosen == nil {
		return nil
	}
	rec := *app.state.Chosen
	return &rec
}

// Close releases the terminal. Run calls it on return; calling it again is a
// no-op.
func (app *Application) Close() error {
	app.closeOnce.Do(app.screen.Fini)
	return nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
