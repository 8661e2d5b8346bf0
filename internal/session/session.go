// Package session remembers the picker's query, last opened file and window
// geometry between runs.
package session

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/kk-code-lab/ropen/internal/store"
)

// Persisted setting names.
const (
	KeyWindowWidth      = "WindowWidth"
	KeyWindowHeight     = "WindowHeight"
	KeyColumn1Width     = "Column1Width"
	KeyColumn2Width     = "Column2Width"
	KeyColumn3Width     = "Column3Width"
	KeySearchPhrase     = "SearchPhrase"
	KeyLastSelectedFile = "LastSelectedFile"
)

var columnKeys = [3]string{KeyColumn1Width, KeyColumn2Width, KeyColumn3Width}

// State is what the picker needs to resume where it left off.
type State struct {
	LastQuery     string
	LastChosenKey string
}

// Layout is the remembered window and column geometry.
type Layout struct {
	WindowWidth  int
	WindowHeight int
	ColumnWidths [3]int
}

// Snapshot is everything read on open and written on close.
type Snapshot struct {
	State  State
	Layout Layout
}

// DefaultLayout is used for any geometry value that is missing or invalid.
func DefaultLayout() Layout {
	return Layout{
		WindowWidth:  850,
		WindowHeight: 500,
		ColumnWidths: [3]int{200, 400, 200},
	}
}

// DefaultSnapshot is an empty query, no remembered file and DefaultLayout.
func DefaultSnapshot() Snapshot {
	return Snapshot{Layout: DefaultLayout()}
}

// Memory reads and writes a Snapshot through a KV store.
type Memory struct {
	kv  store.KV
	log logrus.FieldLogger
}

// New returns a Memory over kv. A nil logger discards warnings.
func New(kv store.KV, log logrus.FieldLogger) *Memory {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Memory{kv: kv, log: log}
}

// Load never fails. Missing keys, unreadable values and store errors all fall
// back to the defaults; failures are logged.
func (m *Memory) Load(ctx context.Context) Snapshot {
	snap := DefaultSnapshot()
	if m.kv == nil {
		return snap
	}

	snap.State.LastQuery = m.getString(ctx, KeySearchPhrase)
	snap.State.LastChosenKey = m.getString(ctx, KeyLastSelectedFile)

	def := snap.Layout
	snap.Layout.WindowWidth = m.getPositive(ctx, KeyWindowWidth, def.WindowWidth)
	snap.Layout.WindowHeight = m.getPositive(ctx, KeyWindowHeight, def.WindowHeight)
	for i, key := range columnKeys {
		snap.Layout.ColumnWidths[i] = m.getPositive(ctx, key, def.ColumnWidths[i])
	}
	return snap
}

// Save writes the snapshot. SearchPhrase is always written; LastSelectedFile
// only when State.LastChosenKey is set, so a dismissed picker keeps the
// previously opened file. Every key is attempted; the first error is returned.
func (m *Memory) Save(ctx context.Context, snap Snapshot) error {
	if m.kv == nil {
		return nil
	}

	pairs := [][2]string{
		{KeyWindowWidth, strconv.Itoa(snap.Layout.WindowWidth)},
		{KeyWindowHeight, strconv.Itoa(snap.Layout.WindowHeight)},
	}
	for i, key := range columnKeys {
		pairs = append(pairs, [2]string{key, strconv.Itoa(snap.Layout.ColumnWidths[i])})
	}
	pairs = append(pairs, [2]string{KeySearchPhrase, snap.State.LastQuery})
	if snap.State.LastChosenKey != "" {
		pairs = append(pairs, [2]string{KeyLastSelectedFile, snap.State.LastChosenKey})
	}

	var firstErr error
	for _, p := range pairs {
		if err := m.kv.Set(ctx, p[0], p[1]); err != nil {
			m.log.WithError(err).WithField("key", p[0]).Warn("session: save failed")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (m *Memory) getString(ctx context.Context, key string) string {
	v, err := m.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			m.log.WithError(err).WithField("key", key).Warn("session: load failed")
		}
		return ""
	}
	return v
}

func (m *Memory) getPositive(ctx context.Context, key string, def int) int {
	raw := m.getString(ctx, key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		m.log.WithField("key", key).WithField("value", raw).Warn("session: invalid value, using default")
		return def
	}
	return n
}
