package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	apppkg "github.com/kk-code-lab/ropen/internal/app"
	"github.com/kk-code-lab/ropen/internal/config"
	"github.com/kk-code-lab/ropen/internal/logging"
	"github.com/kk-code-lab/ropen/internal/records"
	"github.com/kk-code-lab/ropen/internal/session"
	statepkg "github.com/kk-code-lab/ropen/internal/state"
	"github.com/kk-code-lab/ropen/internal/store"
)

type flags struct {
	configFile string
	storePath  string
	clamp      string
	manifest   bool
	edit       bool
}

// runner holds the process-level collaborators so tests can replace them.
type runner struct {
	stdin     io.Reader
	stdout    io.Writer
	newScreen func() (tcell.Screen, error)
	openFile  func(editor []string, path string) error
}

func defaultRunner() *runner {
	return &runner{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		newScreen: tcell.NewScreen,
		openFile:  apppkg.OpenInEditor,
	}
}

func newRootCmd(r *runner) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "ropen [flags] [ROOT...]",
		Short: "Incremental file picker for project trees",
		Long: strings.TrimSpace(`
ropen lists the files under the given project roots, filters them as you type
(case-insensitive substring of the file name) and prints the full path of the
file you open. The last query and the last opened file are remembered.

ROOT is a directory or GROUP=DIR; the group defaults to the directory name.
Without roots the current directory is used.`),
		Example: strings.TrimSpace(`
  # Pick a file from two projects and edit it
  ropen --edit api=~/src/api web=~/src/web

  # Pick from an explicit list
  git ls-files | sed "s|^|$PWD/|" | ropen --manifest`),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd.Context(), f, args)
		},
	}

	cmd.Flags().StringVar(&f.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/ropen/config.yaml)")
	cmd.Flags().StringVar(&f.storePath, "store", "", "settings database (overrides store.path)")
	cmd.Flags().StringVar(&f.clamp, "clamp", "", "navigation at list edges: edge|stop (overrides navigation.clamp)")
	cmd.Flags().BoolVar(&f.manifest, "manifest", false, `read records from stdin, one "PATH" or "GROUP<TAB>PATH" per line`)
	cmd.Flags().BoolVarP(&f.edit, "edit", "e", false, "open the chosen file in the editor instead of printing its path")

	return cmd
}

func (r *runner) run(ctx context.Context, f *flags, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(f.configFile)
	if err != nil {
		return err
	}
	if f.storePath != "" {
		cfg.StorePath = f.storePath
	}
	if f.clamp != "" {
		cfg.Clamp = f.clamp
	}
	clamp, err := statepkg.ParseClampPolicy(cfg.Clamp)
	if err != nil {
		return err
	}
	if f.manifest && len(args) > 0 {
		return errors.New("--manifest cannot be combined with ROOT arguments")
	}

	logger, logCloser, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ropen: logging disabled:", err)
	}
	defer logCloser.Close()

	var editor []string
	if f.edit {
		// Resolve before taking over the terminal so a missing editor fails fast.
		if editor, err = apppkg.DetectEditorCommand(cfg.Editor); err != nil {
			return err
		}
	}

	recs, err := r.loadRecords(ctx, cfg, f.manifest, args)
	if err != nil {
		return err
	}
	logger.WithField("records", len(recs)).Debug("records loaded")

	kv, closeKV := openSettings(ctx, cfg.StorePath, logger)
	defer closeKV()
	memory := session.New(kv, logger)
	snap := memory.Load(ctx)

	state := statepkg.NewAppState(records.NewStore(recs), statepkg.Options{
		Clamp:        clamp,
		PageStep:     cfg.PageStep,
		ColumnWidths: snap.Layout.ColumnWidths,
	})
	state.SeedSession(snap.State.LastQuery, snap.State.LastChosenKey)

	screen, err := r.newScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	app, err := apppkg.NewApplication(state, apppkg.Options{Screen: screen, Logger: logger})
	if err != nil {
		return err
	}
	chosen, err := app.Run()
	if err != nil {
		return err
	}

	if err := memory.Save(ctx, closingSnapshot(snap, state, chosen)); err != nil {
		logger.WithError(err).Warn("session not saved")
	}

	if chosen == nil {
		return nil
	}
	if f.edit {
		return r.openFile(editor, chosen.Path())
	}
	_, err = fmt.Fprintln(r.stdout, chosen.Path())
	return err
}

func (r *runner) loadRecords(ctx context.Context, cfg *config.Config, manifest bool, args []string) ([]records.Record, error) {
	if manifest {
		return records.ReadManifest(r.stdin)
	}
	if len(args) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		args = []string{cwd}
	}
	roots := make([]records.Root, 0, len(args))
	for _, arg := range args {
		roots = append(roots, records.ParseRoot(arg))
	}
	return records.Collect(ctx, roots, records.CollectOptions{Exclude: cfg.Exclude, Hidden: cfg.Hidden})
}

// openSettings prefers the SQLite store; when it cannot be opened the session
// is kept in memory for this run only.
func openSettings(ctx context.Context, path string, logger logrus.FieldLogger) (store.KV, func()) {
	db, err := store.OpenSQLite(ctx, path)
	if err != nil {
		logger.WithError(err).Warn("settings store unavailable, session will not persist")
		return store.NewMemory(), func() {}
	}
	return db, func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Warn("close settings store")
		}
	}
}

// closingSnapshot records what the next picker should resume from. Window
// geometry is carried over untouched since a terminal cannot be resized by
// the program; column proportions follow the user's adjustments.
func closingSnapshot(loaded session.Snapshot, state *statepkg.AppState, chosen *records.Record) session.Snapshot {
	out := session.Snapshot{
		State:  session.State{LastQuery: state.Query},
		Layout: loaded.Layout,
	}
	out.Layout.ColumnWidths = state.ColumnWidths
	if chosen != nil {
		out.State.LastChosenKey = chosen.Key()
	}
	return out
}
