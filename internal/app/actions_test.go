package app

import (
	"errors"
	"os"
	"os/exec"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/ropen/internal/records"
	statepkg "github.com/kk-code-lab/ropen/internal/state"
)

func TestNormalizeClipboardPathWindows(t *testing.T) {
	input := `C:\Users\me/project/sub/file.txt`
	got := normalizeClipboardPath(input, "windows")
	want := `C:\Users\me\project\sub\file.txt`
	if got != want {
		t.Fatalf("normalizeClipboardPath(%q, windows) = %q, want %q", input, got, want)
	}
}

func TestNormalizeClipboardPathUnix(t *testing.T) {
	input := "/tmp/project/dir/../file.txt"
	got := normalizeClipboardPath(input, "linux")
	want := "/tmp/project/file.txt"
	if got != want {
		t.Fatalf("normalizeClipboardPath(%q, linux) = %q, want %q", input, got, want)
	}
}

func TestHandleClipboardCopiesSelectedPath(t *testing.T) {
	app := newTestApplication(t)

	var copied string
	withClipboard(t, func(text string) error {
		copied = text
		return nil
	})

	app.handleAction(statepkg.CopyPathAction{})

	if copied != "/a/Foo.cs" && copied != `\a\Foo.cs` {
		t.Fatalf("unexpected clipboard text %q", copied)
	}
	if app.state.LastError != nil || !strings.HasPrefix(app.state.Notice, "copied ") {
		t.Fatalf("expected notice, got error=%v notice=%q", app.state.LastError, app.state.Notice)
	}
}

func TestHandleClipboardSetsLastErrorOnFailure(t *testing.T) {
	app := newTestApplication(t)
	withClipboard(t, func(string) error { return errors.New("no clipboard utilities available") })

	app.handleAction(statepkg.CopyPathAction{})

	if app.state.LastError == nil || !strings.Contains(app.state.LastError.Error(), "no clipboard") {
		t.Fatalf("expected clipboard failure in LastError, got %v", app.state.LastError)
	}
	if app.state.Notice != "" {
		t.Fatalf("notice should stay empty on failure")
	}
}

func TestHandleClipboardWithoutSelection(t *testing.T) {
	app := newTestApplication(t)
	app.reduce(statepkg.QuerySetAction{Text: "nothing matches"})

	called := false
	withClipboard(t, func(string) error {
		called = true
		return nil
	})
	if app.handleAction(statepkg.CopyPathAction{}) {
		t.Fatalf("nothing selected should not request a redraw")
	}
	if called {
		t.Fatalf("clipboard must not be touched without a selection")
	}
}

func TestHandleRevealStartsFileManager(t *testing.T) {
	app := newTestApplication(t)

	var recorded []string
	withFakeCommandBuilder(t, 0, &recorded, func() {
		app.handleAction(statepkg.RevealDirectoryAction{})
	})

	if len(recorded) == 0 {
		t.Fatalf("expected a command to be started")
	}
	if app.state.LastError != nil {
		t.Fatalf("unexpected error %v", app.state.LastError)
	}
	if app.state.Notice != "opened /a" {
		t.Fatalf("unexpected notice %q", app.state.Notice)
	}
}

func TestRevealCommand(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{"linux", []string{"xdg-open", "/src"}},
		{"freebsd", []string{"xdg-open", "/src"}},
		{"darwin", []string{"open", "-R", "/src/main.go"}},
		{"windows", []string{"explorer", "/select,/src/main.go"}},
	}
	for _, tt := range tests {
		if got := revealCommand(tt.goos, "/src", "/src/main.go"); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("%s: got %v want %v", tt.goos, got, tt.want)
		}
	}
}

func TestOpenInEditorPropagatesError(t *testing.T) {
	var recorded []string
	var err error
	withFakeCommandBuilder(t, 5, &recorded, func() {
		err = OpenInEditor([]string{"fake-editor", "--wait"}, "/src/main.go")
	})

	if err == nil || !strings.Contains(err.Error(), "fake-editor") {
		t.Fatalf("expected editor error mentioning the command, got %v", err)
	}
	assertCommandRecorded(t, recorded, []string{"fake-editor", "--wait", "/src/main.go"})
}

func TestOpenInEditorRequiresCommand(t *testing.T) {
	if err := OpenInEditor(nil, "/x"); !errors.Is(err, ErrNoEditor) {
		t.Fatalf("expected ErrNoEditor, got %v", err)
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	code, err := strconv.Atoi(os.Getenv("HELPER_PROCESS_EXIT"))
	if err != nil {
		code = 1
	}
	os.Exit(code)
}

func testStore() *records.Store {
	return records.NewStore([]records.Record{
		{Name: "Foo.cs", Dir: "/a", Group: "P"},
		{Name: "Bar.cs", Dir: "/b", Group: "P"},
		{Name: "foobar.txt", Dir: "/c", Group: "Q"},
	})
}

// newTestApplication opens a picker over testStore on a simulation screen with
// Foo.cs selected.
func newTestApplication(t *testing.T) *Application {
	t.Helper()
	state := statepkg.NewAppState(testStore(), statepkg.Options{})
	state.SeedSession("foo", "")
	app, err := NewApplication(state, Options{Screen: tcell.NewSimulationScreen("")})
	if err != nil {
		t.Fatalf("new application: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func withClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := clipboardWrite
	clipboardWrite = fn
	t.Cleanup(func() { clipboardWrite = orig })
}

func withFakeCommandBuilder(t *testing.T, exitCode int, recorded *[]string, fn func()) {
	t.Helper()
	orig := commandBuilder
	commandBuilder = func(name string, args ...string) *exec.Cmd {
		if recorded != nil {
			*recorded = append([]string{name}, args...)
		}
		return helperProcessCommand(exitCode, name, args...)
	}
	defer func() {
		commandBuilder = orig
	}()
	fn()
}

func helperProcessCommand(exitCode int, name string, args ...string) *exec.Cmd {
	cmdArgs := []string{"-test.run=TestHelperProcess", "--", name}
	cmdArgs = append(cmdArgs, args...)
	cmd := exec.Command(os.Args[0], cmdArgs...)
	cmd.Env = append(os.Environ(),
		"GO_WANT_HELPER_PROCESS=1",
		"HELPER_PROCESS_EXIT="+strconv.Itoa(exitCode),
	)
	return cmd
}

func assertCommandRecorded(t *testing.T, recorded, want []string) {
	t.Helper()
	if !reflect.DeepEqual(recorded, want) {
		t.Fatalf("expected command %v, got %v", want, recorded)
	}
}
