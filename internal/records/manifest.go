package records

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ReadManifest parses one record per line. A line is either "PATH" or
// "GROUP<TAB>PATH"; blank lines and lines starting with '#' are skipped.
// Records keep the manifest order.
func ReadManifest(r io.Reader) ([]Record, error) {
	var out []Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		group := ""
		path := line
		if g, p, ok := strings.Cut(line, "\t"); ok {
			group = strings.TrimSpace(g)
			path = p
		}
		path = strings.TrimSpace(path)
		if path == "" {
			return nil, fmt.Errorf("manifest line %d: missing path", lineNo)
		}

		path = filepath.Clean(path)
		name := filepath.Base(path)
		dir := filepath.Dir(path)
		if group == "" {
			group = filepath.Base(dir)
		}
		out = append(out, Record{
			Name:  norm.NFC.String(name),
			Dir:   norm.NFC.String(dir),
			Group: norm.NFC.String(group),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return out, nil
}
