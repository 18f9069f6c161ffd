package ignore

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultFilename is the ignore file name looked for in each directory.
const DefaultFilename = ".gitignore"

// defaultCacheSize bounds the lazy rule-set cache so long-running processes
// cannot grow it without limit.
const defaultCacheSize = 1000

// Options configures repository construction.
type Options struct {
	// Filename is the ignore file name to look for in each directory.
	// Defaults to DefaultFilename.
	Filename string

	// Lazy defers reading ignore files until a query first needs them,
	// caching per-directory rule sets in an LRU. Verdicts are identical to
	// eager mode; only the time of the file reads differs.
	Lazy bool

	// CacheSize is the maximum number of rule sets retained in lazy mode.
	// Defaults to 1000. Ignored in eager mode.
	CacheSize int
}

// Repository resolves ignore verdicts across every ignore file found under a
// root directory. For a queried path, the applicable rule sets are those in
// the path's ancestor directories inside the root, and the nearest one with
// a definite verdict wins regardless of what any farther file says.
//
// A Repository is safe for concurrent queries once constructed.
type Repository struct {
	root     string
	filename string

	// sets holds one rule set per directory containing an ignore file,
	// keyed by that directory. Populated up front in eager mode.
	sets map[string]*RuleSet

	// cache replaces sets in lazy mode; rule sets are loaded on first use.
	cache *lru.Cache[string, *RuleSet]
}

// NewRepository discovers every ignore file under root and builds the rule
// hierarchy eagerly.
func NewRepository(root string) (*Repository, error) {
	return NewRepositoryWithOptions(root, Options{})
}

// NewRepositoryWithOptions builds a Repository with explicit options.
func NewRepositoryWithOptions(root string, opts Options) (*Repository, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving repository root: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("reading repository root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("repository root %s: %w", absRoot, ErrNotDirectory)
	}

	filename := opts.Filename
	if filename == "" {
		filename = DefaultFilename
	}

	r := &Repository{
		root:     filepath.ToSlash(absRoot),
		filename: filename,
	}

	if opts.Lazy {
		size := opts.CacheSize
		if size <= 0 {
			size = defaultCacheSize
		}
		cache, err := lru.New[string, *RuleSet](size)
		if err != nil {
			return nil, fmt.Errorf("creating rule set cache: %w", err)
		}
		r.cache = cache
		return r, nil
	}

	r.sets = make(map[string]*RuleSet)
	r.discover()
	return r, nil
}

// Root returns the repository root all queries are resolved against.
func (r *Repository) Root() string { return r.root }

// discover walks the tree under root with an explicit worklist and builds
// one rule set per ignore file found, keyed by its containing directory.
// Unreadable directories and unreadable ignore files are skipped with a
// warning; one broken file must not block exclusion decisions everywhere
// else.
func (r *Repository) discover() {
	stack := []string{r.root}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			slog.Warn("skipping unreadable directory",
				slog.String("dir", dir),
				slog.String("error", err.Error()))
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() {
				if name == ".git" {
					continue
				}
				stack = append(stack, path.Join(dir, name))
				continue
			}
			if name != r.filename {
				continue
			}
			lines, err := readLines(path.Join(dir, name))
			if err != nil {
				slog.Warn("skipping unreadable ignore file",
					slog.String("path", path.Join(dir, name)),
					slog.String("error", err.Error()))
				continue
			}
			r.sets[dir] = NewRuleSet(dir, lines)
		}
	}
}

// IsIgnored reports whether path is excluded by the hierarchy. Relative
// paths are resolved against the repository root. Ancestor directories are
// consulted nearest first; the first rule set with a definite verdict
// decides, and if every ancestor is silent the path is not ignored.
func (r *Repository) IsIgnored(p string, isDir bool) bool {
	abs := r.abs(p)

	for dir := path.Dir(abs); r.inside(dir); dir = path.Dir(dir) {
		rs := r.ruleSet(dir)
		if rs == nil {
			if dir == "/" {
				break
			}
			continue
		}
		switch rs.Evaluate(abs, isDir) {
		case Excluded:
			return true
		case Included:
			return false
		}
		if dir == "/" {
			break
		}
	}
	return false
}

// IncludedPaths walks the tree under the root and returns every path not
// excluded by the hierarchy, relative to the root. Entries named ".git" are
// skipped by convention, and excluded directories are not descended into.
// Unreadable directories are skipped so a partial listing is still produced.
func (r *Repository) IncludedPaths() ([]string, error) {
	return walkIncluded(r.root, r)
}

// ruleSet returns the rule set governing dir, or nil when dir has no ignore
// file.
func (r *Repository) ruleSet(dir string) *RuleSet {
	if r.cache == nil {
		return r.sets[dir]
	}

	if rs, ok := r.cache.Get(dir); ok {
		return rs
	}

	// Eager discovery never descends into ".git"; refuse those directories
	// here too so both modes return the same verdicts.
	if r.insideGitDir(dir) {
		return nil
	}

	ignorePath := path.Join(dir, r.filename)
	if _, err := os.Stat(ignorePath); err != nil {
		return nil
	}
	lines, err := readLines(ignorePath)
	if err != nil {
		slog.Warn("skipping unreadable ignore file",
			slog.String("path", ignorePath),
			slog.String("error", err.Error()))
		return nil
	}

	rs := NewRuleSet(dir, lines)
	r.cache.Add(dir, rs)
	return rs
}

// insideGitDir reports whether dir lies at or below a ".git" directory
// strictly under the root.
func (r *Repository) insideGitDir(dir string) bool {
	rel := strings.TrimPrefix(dir, r.root)
	for _, seg := range strings.Split(rel, "/") {
		if seg == ".git" {
			return true
		}
	}
	return false
}

// inside reports whether dir is the root or a descendant of it.
func (r *Repository) inside(dir string) bool {
	return dir == r.root || strings.HasPrefix(dir, r.root+"/")
}

// abs resolves p against the repository root.
func (r *Repository) abs(p string) string {
	p = filepath.ToSlash(p)
	if !strings.HasPrefix(p, "/") && !filepath.IsAbs(p) {
		return path.Join(r.root, p)
	}
	return path.Clean(p)
}
