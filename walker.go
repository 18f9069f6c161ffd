package ignore

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
)

// Ignorer answers exclusion queries for paths under some root. File and
// Repository both satisfy it.
type Ignorer interface {
	IsIgnored(path string, isDir bool) bool
}

// walkIncluded enumerates every path under root not excluded by ign,
// relative to root. The traversal uses an explicit worklist rather than
// recursion so arbitrarily deep trees cannot exhaust the call stack.
//
// Entries named ".git" are skipped by convention. Excluded directories are
// not descended into. An unreadable subdirectory is skipped and traversal
// continues; only an unreadable root fails the walk.
func walkIncluded(root string, ign Ignorer) ([]string, error) {
	root = filepath.ToSlash(root)

	var included []string
	stack := []string{""}
	for len(stack) > 0 {
		rel := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(path.Join(root, rel))
		if err != nil {
			if rel == "" {
				return nil, fmt.Errorf("reading root directory: %w", err)
			}
			slog.Debug("skipping unreadable directory",
				slog.String("dir", path.Join(root, rel)),
				slog.String("error", err.Error()))
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if name == ".git" {
				continue
			}

			entryRel := path.Join(rel, name)
			isDir := entry.IsDir()
			if ign.IsIgnored(entryRel, isDir) {
				continue
			}

			included = append(included, entryRel)
			if isDir {
				stack = append(stack, entryRel)
			}
		}
	}
	return included, nil
}
