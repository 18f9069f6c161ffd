package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepo lays out a small tree with nested ignore files:
//
//	.gitignore              *.no, not_me_either/, /or_even_me
//	sub/.gitignore          !keep.no
//	a/b/.gitignore          !hello.greeting
func newTestRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeTestFile(t, root, ".gitignore", "*.no\nnot_me_either/\n/or_even_me\n")
	writeTestFile(t, root, "sub/.gitignore", "!keep.no\n")
	writeTestFile(t, root, "a/b/.gitignore", "!hello.greeting\n")
	writeTestFile(t, root, "include_me", "x")
	writeTestFile(t, root, "not_me.no", "x")
	writeTestFile(t, root, "sub/keep.no", "x")
	writeTestFile(t, root, "sub/drop.no", "x")
	writeTestFile(t, root, "a/b/c/hello.greeting", "x")
	return root
}

func TestNewRepository_Validation(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		_, err := NewRepository(filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("root is a file", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, dir, "plain", "x")
		_, err := NewRepository(filepath.Join(dir, "plain"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotDirectory)
	})
}

func TestRepository_NearestFileWins(t *testing.T) {
	repo, err := NewRepository(newTestRepo(t))
	require.NoError(t, err)

	// The nested negation overrides the ancestor's *.no even though the
	// ancestor rule would exclude.
	assert.False(t, repo.IsIgnored("sub/keep.no", false))

	// No nested opinion: the ancestor decides.
	assert.True(t, repo.IsIgnored("sub/drop.no", false))
	assert.True(t, repo.IsIgnored("not_me.no", false))
}

func TestRepository_HierarchyOverrides(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, ".gitignore", "*.greeting\n")
	writeTestFile(t, root, "a/b/.gitignore", "!hello.greeting\n")

	repo, err := NewRepository(root)
	require.NoError(t, err)

	assert.False(t, repo.IsIgnored("a/b/c/hello.greeting", false), "nested re-include wins across levels")
	assert.True(t, repo.IsIgnored("a/b/c/hola.greeting", false), "other greetings still excluded by the root file")
	assert.True(t, repo.IsIgnored("a/hello.greeting", false), "outside the nested file's scope the root rule applies")
}

func TestRepository_Verdicts(t *testing.T) {
	repo, err := NewRepository(newTestRepo(t))
	require.NoError(t, err)

	assert.False(t, repo.IsIgnored("include_me", false))
	assert.False(t, repo.IsIgnored(".gitignore", false))
	assert.True(t, repo.IsIgnored("or_even_me", false), "anchored root rule")
	assert.False(t, repo.IsIgnored("sub/or_even_me", false), "anchored rule does not reach nested paths")
	assert.True(t, repo.IsIgnored("not_me_either", true), "directory-only rule on a directory")
	assert.False(t, repo.IsIgnored("not_me_either", false), "directory-only rule spares a file")
}

func TestRepository_AbsoluteQueries(t *testing.T) {
	root := newTestRepo(t)
	repo, err := NewRepository(root)
	require.NoError(t, err)

	assert.True(t, repo.IsIgnored(filepath.Join(root, "not_me.no"), false))
	assert.False(t, repo.IsIgnored(filepath.Join(root, "sub/keep.no"), false))
}

func TestRepository_LazyMatchesEager(t *testing.T) {
	root := newTestRepo(t)

	eager, err := NewRepository(root)
	require.NoError(t, err)
	lazy, err := NewRepositoryWithOptions(root, Options{Lazy: true, CacheSize: 8})
	require.NoError(t, err)

	queries := []struct {
		path  string
		isDir bool
	}{
		{"include_me", false},
		{"not_me.no", false},
		{"sub/keep.no", false},
		{"sub/drop.no", false},
		{"or_even_me", false},
		{"sub/or_even_me", false},
		{"not_me_either", true},
		{"not_me_either", false},
		{"a/b/c/hello.greeting", false},
	}
	for _, q := range queries {
		assert.Equal(t, eager.IsIgnored(q.path, q.isDir), lazy.IsIgnored(q.path, q.isDir),
			"path %q isDir %v", q.path, q.isDir)
	}

	// Repeated queries exercise the cache hit path.
	for _, q := range queries {
		assert.Equal(t, eager.IsIgnored(q.path, q.isDir), lazy.IsIgnored(q.path, q.isDir))
	}
}

func TestRepository_LazySkipsGitDirectory(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, ".git/.gitignore", "*\n")
	writeTestFile(t, root, ".git/objects/.gitignore", "*\n")
	writeTestFile(t, root, ".gitignore", "*.no\n")

	eager, err := NewRepository(root)
	require.NoError(t, err)
	lazy, err := NewRepositoryWithOptions(root, Options{Lazy: true})
	require.NoError(t, err)

	// Rule files inside .git must stay invisible to lazy lookups too.
	for _, p := range []string{".git/foo", ".git/objects/ab12cd"} {
		assert.False(t, eager.IsIgnored(p, false), "path %q", p)
		assert.False(t, lazy.IsIgnored(p, false), "path %q", p)
	}
	assert.True(t, lazy.IsIgnored("not_me.no", false))
}

func TestRepository_CustomFilename(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, ".dockerignore", "*.log\n")
	writeTestFile(t, root, ".gitignore", "*.tmp\n")

	repo, err := NewRepositoryWithOptions(root, Options{Filename: ".dockerignore"})
	require.NoError(t, err)

	assert.True(t, repo.IsIgnored("error.log", false))
	assert.False(t, repo.IsIgnored("notes.tmp", false), "only the configured filename is consulted")
}

func TestRepository_SkipsGitDirectory(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, ".git/.gitignore", "*\n")
	writeTestFile(t, root, "keep.txt", "x")

	repo, err := NewRepository(root)
	require.NoError(t, err)

	assert.False(t, repo.IsIgnored("keep.txt", false), "ignore files inside .git are not loaded")
}

func TestRepository_ToleratesBrokenIgnoreFile(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, ".gitignore", "bad[\n*.log\n")
	writeTestFile(t, root, "sub/.gitignore", "*.tmp\n")

	repo, err := NewRepository(root)
	require.NoError(t, err)

	assert.True(t, repo.IsIgnored("error.log", false), "valid rules survive a malformed sibling line")
	assert.True(t, repo.IsIgnored("sub/notes.tmp", false))
}

func TestRepository_IncludedPaths(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, ".gitignore", "*.no\n")
	writeTestFile(t, root, "sub/.gitignore", "!keep.no\n")
	writeTestFile(t, root, "include_me", "x")
	writeTestFile(t, root, "not_me.no", "x")
	writeTestFile(t, root, "sub/keep.no", "x")
	writeTestFile(t, root, "sub/drop.no", "x")
	writeTestFile(t, root, ".git/HEAD", "ref")

	repo, err := NewRepository(root)
	require.NoError(t, err)

	included, err := repo.IncludedPaths()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		".gitignore",
		"include_me",
		"sub",
		"sub/.gitignore",
		"sub/keep.no",
	}, included)
}

func TestRepository_UnqueriedAncestorsOutsideRoot(t *testing.T) {
	// An ignore file in the parent of the repository root must never be
	// consulted: the ancestor walk stops at the root.
	parent := t.TempDir()
	writeTestFile(t, parent, ".gitignore", "*.txt\n")
	writeTestFile(t, parent, "repo/keep.txt", "x")

	repo, err := NewRepository(filepath.Join(parent, "repo"))
	require.NoError(t, err)

	assert.False(t, repo.IsIgnored("keep.txt", false))
}
