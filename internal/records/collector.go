package records

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"golang.org/x/text/unicode/norm"
)

// Root is one project directory contributing records under a group label.
type Root struct {
	Group string
	Dir   string
}

// ParseRoot accepts "DIR" or "GROUP=DIR". Without an explicit group the base
// name of the directory is used.
func ParseRoot(arg string) Root {
	group, dir, ok := strings.Cut(arg, "=")
	if !ok || dir == "" {
		dir = arg
		group = ""
	}
	dir = filepath.Clean(dir)
	if group == "" {
		abs, err := filepath.Abs(dir)
		if err == nil {
			group = filepath.Base(abs)
		} else {
			group = filepath.Base(dir)
		}
	}
	return Root{Group: group, Dir: dir}
}

// CollectOptions controls which files are turned into records.
type CollectOptions struct {
	// Exclude holds glob patterns matched against each entry's base name.
	// Matching directories are not descended into.
	Exclude []string
	// Hidden includes dot files and dot directories.
	Hidden bool
}

// Collect walks every root and returns one record per regular file. The result
// is ordered by group, then directory, then name so the store order is
// deterministic regardless of walk scheduling.
func Collect(ctx context.Context, roots []Root, opts CollectOptions) ([]Record, error) {
	for _, pattern := range opts.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}

	var (
		mu  sync.Mutex
		out []Record
	)

	for _, root := range roots {
		dir, err := filepath.Abs(root.Dir)
		if err != nil {
			return nil, fmt.Errorf("resolve root %s: %w", root.Dir, err)
		}
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("stat root %s: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("root %s is not a directory", dir)
		}

		group := norm.NFC.String(root.Group)
		conf := &fastwalk.Config{Follow: false}
		err = fastwalk.Walk(conf, dir, func(fullPath string, d fs.DirEntry, walkErr error) error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if walkErr != nil {
				return nil
			}
			if fullPath == dir {
				return nil
			}

			name := d.Name()
			if skipEntry(fullPath, name, opts) {
				if d.IsDir() {
					return fastwalk.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}

			rec := Record{
				Name:  norm.NFC.String(name),
				Dir:   norm.NFC.String(filepath.Dir(fullPath)),
				Group: group,
			}
			mu.Lock()
			out = append(out, rec)
			mu.Unlock()
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", dir, err)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		if out[i].Dir != out[j].Dir {
			return out[i].Dir < out[j].Dir
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func skipEntry(fullPath, name string, opts CollectOptions) bool {
	if !opts.Hidden && isHidden(fullPath, name) {
		return true
	}
	for _, pattern := range opts.Exclude {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
