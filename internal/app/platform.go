package app

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

// ErrNoEditor is returned when no editor command can be resolved.
var ErrNoEditor = errors.New("no editor found: set open.editor, $VISUAL or $EDITOR")

// DetectEditorCommand resolves the editor to launch. configured (from the
// config file) wins over $VISUAL and $EDITOR; vim, nano or notepad are the
// last resort.
func DetectEditorCommand(configured string) ([]string, error) {
	return detectEditorCommandInternal(runtime.GOOS, configured, os.Getenv, exec.LookPath)
}

func detectEditorCommandInternal(goos, configured string, getenv func(string) string, lookPath func(string) (string, error)) ([]string, error) {
	for _, candidate := range []string{configured, getenv("VISUAL"), getenv("EDITOR")} {
		args := parseEditorCommand(candidate)
		if len(args) == 0 {
			continue
		}
		if resolved, err := lookPath(expandUserPath(args[0])); err == nil {
			args[0] = resolved
			return args, nil
		}
	}

	defaults := [][]string{{"vim"}, {"nano"}}
	if strings.EqualFold(goos, "windows") {
		defaults = [][]string{{"code", "--wait"}, {"notepad.exe"}}
	}
	for _, def := range defaults {
		if resolved, err := lookPath(def[0]); err == nil {
			return append([]string{resolved}, def[1:]...), nil
		}
	}
	return nil, ErrNoEditor
}

// parseEditorCommand splits a shell-like command line, honouring single and
// double quotes.
func parseEditorCommand(cmd string) []string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	var (
		args    []string
		current strings.Builder
		quote   rune
		started bool
	)
	flush := func() {
		if started {
			args = append(args, current.String())
			current.Reset()
			started = false
		}
	}
	for _, r := range cmd {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			started = true
		case unicode.IsSpace(r):
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()
	return args
}

func expandUserPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// OpenInEditor runs editor on path attached to the current terminal and waits
// for it to exit. Call it after the picker has released the screen.
func OpenInEditor(editor []string, path string) error {
	if len(editor) == 0 {
		return ErrNoEditor
	}
	args := append(append([]string(nil), editor[1:]...), path)
	cmd := commandBuilder(editor[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", filepath.Base(editor[0]), err)
	}
	return nil
}
