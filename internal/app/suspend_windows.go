//go:build windows

package app

// Windows has no job control; suspend is a no-op.
func (app *Application) suspendToShell() {}

func (app *Application) resumeAfterStop() bool {
	return false
}
