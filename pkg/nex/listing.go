package nex

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Lister renders directory listings.
type Lister struct {
	// ParentEntry adds a "=> ../" line, as enumerations that report ".." do.
	ParentEntry bool
}

// List returns one "=> name" line per entry of dir, with a trailing "/" for
// directories. Lines are sorted after formatting and each ends in a newline;
// an empty directory yields a single newline.
func (l Lister) List(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to list %s: %w", dir, err)
	}

	lines := make([]string, 0, len(entries)+1)
	if l.ParentEntry {
		lines = append(lines, "=> ../")
	}
	for _, e := range entries {
		if e.Name() == "." {
			continue
		}
		line := "=> " + e.Name()
		if isDir(dir, e) {
			line += "/"
		}
		lines = append(lines, line)
	}
	slices.Sort(lines)

	return strings.Join(lines, "\n") + "\n", nil
}

// isDir follows symlinks so a link to a directory is listed as one.
func isDir(dir string, e os.DirEntry) bool {
	if e.Type()&os.ModeSymlink == 0 {
		return e.IsDir()
	}
	fi, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && fi.IsDir()
}
