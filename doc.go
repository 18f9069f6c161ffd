// Package ignore decides whether filesystem paths are excluded by
// gitignore-style rules, without depending on a version-control tool.
//
// It implements the pattern format documented at:
// https://git-scm.com/docs/gitignore
//
// The package works at three levels:
//
//   - Pattern: one compiled rule line (anchoring, negation, directory-only,
//     wildcards).
//   - RuleSet / File: the ordered rules of a single ignore file, evaluated
//     with correct negation semantics against one path.
//   - Repository: every ignore file discovered under a root directory,
//     layered so that the file nearest to the queried path wins.
//
// Basic usage against a single ignore file:
//
//	f, err := ignore.NewFile("/repo/.gitignore")
//	if err != nil {
//	    // ...
//	}
//	if f.IsIgnored("build/out.o", false) {
//	    // path is excluded
//	}
//
// For a whole tree with nested ignore files:
//
//	repo, err := ignore.NewRepository("/repo")
//	if err != nil {
//	    // ...
//	}
//	repo.IsIgnored("sub/keep.no", false)
//
// Rule sets are immutable once built; a constructed File or Repository is
// safe for concurrent read-only queries.
package ignore
