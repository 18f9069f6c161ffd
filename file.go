package ignore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// File matches paths against the rules of one specific ignore file. It is
// the single-file counterpart to Repository: no hierarchy, just the ordered
// rules of one file scoped to its containing directory.
type File struct {
	root  string
	rules *RuleSet
}

// NewFile reads the ignore file at ignorePath and scopes its rules to the
// file's containing directory.
func NewFile(ignorePath string) (*File, error) {
	abs, err := filepath.Abs(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("resolving ignore file path: %w", err)
	}

	lines, err := readLines(abs)
	if err != nil {
		return nil, err
	}

	root := filepath.ToSlash(filepath.Dir(abs))
	return &File{root: root, rules: NewRuleSet(root, lines)}, nil
}

// NewFileFromLines builds a File from an in-memory line source instead of a
// file on disk. root is the directory the rules are scoped to.
func NewFileFromLines(root string, lines []string) *File {
	root = filepath.ToSlash(root)
	return &File{root: root, rules: NewRuleSet(root, lines)}
}

// Root returns the directory the file's rules are scoped to.
func (f *File) Root() string { return f.root }

// RuleSet returns the file's compiled rules.
func (f *File) RuleSet() *RuleSet { return f.rules }

// IsIgnored reports whether path is excluded by this file's rules. Relative
// paths are resolved against the file's root.
func (f *File) IsIgnored(path string, isDir bool) bool {
	return f.rules.IsIgnored(path, isDir)
}

// Evaluate returns the file's three-valued verdict for path.
func (f *File) Evaluate(path string, isDir bool) Verdict {
	return f.rules.Evaluate(path, isDir)
}

// IncludedFiles walks the tree under the file's root and returns every path
// not excluded by its rules, relative to the root. Entries named ".git" are
// skipped by convention, and excluded directories are not descended into.
func (f *File) IncludedFiles() ([]string, error) {
	return walkIncluded(f.root, f)
}

// readLines returns the raw lines of an ignore file. Blank and comment
// filtering happens later, in NewRuleSet.
func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ignore file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ignore file: %w", err)
	}
	return lines, nil
}
