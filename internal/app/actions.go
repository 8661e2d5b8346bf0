package app

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

var (
	commandBuilder = exec.Command
	clipboardWrite = clipboard.WriteAll
)

// handleClipboard copies the selected record's full path.
func (app *Application) handleClipboard() bool {
	rec := app.state.CurrentRecord()
	if rec == nil {
		return false
	}
	path := normalizeClipboardPath(rec.Path(), runtime.GOOS)
	if err := clipboardWrite(path); err != nil {
		app.state.LastError = fmt.Errorf("copy path: %w", err)
		app.log.WithError(err).Warn("clipboard write failed")
		return true
	}
	app.state.Notice = "copied " + path
	return true
}

func normalizeClipboardPath(inputPath string, goos string) string {
	if strings.EqualFold(goos, "windows") {
		return strings.ReplaceAll(filepath.Clean(inputPath), "/", `\`)
	}
	return filepath.ToSlash(filepath.Clean(inputPath))
}

// handleReveal opens the selected record's directory in the platform file
// manager without leaving the picker.
func (app *Application) handleReveal() bool {
	rec := app.state.CurrentRecord()
	if rec == nil {
		return false
	}
	args := revealCommand(runtime.GOOS, rec.Dir, rec.Path())
	cmd := commandBuilder(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		app.state.LastError = fmt.Errorf("reveal %s: %w", rec.Dir, err)
		app.log.WithError(err).WithField("dir", rec.Dir).Warn("reveal failed")
		return true
	}
	go func() { _ = cmd.Wait() }()
	app.state.Notice = "opened " + rec.Dir
	return true
}

func revealCommand(goos, dir, file string) []string {
	switch strings.ToLower(goos) {
	case "windows":
		return []string{"explorer", "/select," + file}
	case "darwin":
		return []string{"open", "-R", file}
	default:
		return []string{"xdg-open", dir}
	}
}
