package ignore

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Pattern is a single compiled ignore rule. It is immutable after
// compilation and owned by the RuleSet that compiled it; rule order within
// the set carries meaning, the Pattern itself holds none.
type Pattern struct {
	raw      string
	matcher  glob.Glob
	anchored bool
	dirOnly  bool
	negation bool
}

// Compile turns one raw rule line into a Pattern. The line must already be
// known to be non-blank and non-comment; blank and #-prefixed lines are
// filtered by the callers that read ignore files.
//
// root is the directory the rule is scoped to (the directory containing the
// ignore file). Anchored patterns only match starting at root; unanchored
// patterns match at any depth below it.
func Compile(raw, root string) (*Pattern, error) {
	text := raw

	// A trailing slash restricts the rule to directories.
	dirOnly := strings.HasSuffix(text, "/")
	if dirOnly {
		text = strings.TrimSuffix(text, "/")
	}

	// Any remaining slash pins the pattern to a fixed position under root.
	anchored := strings.Contains(text, "/")

	// A leading bang re-includes matches instead of excluding them. A space
	// after the bang is tolerated ("! pattern").
	negation := strings.HasPrefix(text, "!")
	if negation {
		text = strings.TrimLeft(text[1:], " \t")
	}

	if text == "" {
		return nil, &PatternError{Rule: raw, Err: ErrEmptyPattern}
	}

	// Anchored rules must not let * or ? cross a path separator; unanchored
	// rules match at any depth, so their wildcards may.
	var separators []rune
	if anchored {
		separators = []rune{'/'}
	}

	// Comparison is case-insensitive: both the matcher text and, later, the
	// candidate path are lowered.
	matcher, err := glob.Compile(strings.ToLower(absPattern(text, root, anchored)), separators...)
	if err != nil {
		return nil, &PatternError{Rule: raw, Err: err}
	}

	return &Pattern{
		raw:      raw,
		matcher:  matcher,
		anchored: anchored,
		dirOnly:  dirOnly,
		negation: negation,
	}, nil
}

// absPattern builds the matcher text that is compared against absolute
// candidate paths.
func absPattern(text, root string, anchored bool) string {
	if anchored {
		rootPath := strings.TrimSuffix(filepath.ToSlash(root), "/")
		if !strings.HasPrefix(text, "/") {
			text = "/" + text
		}
		return rootPath + text
	}
	if !strings.HasPrefix(text, "*") {
		return "*" + text
	}
	return text
}

// Matches reports the rule-level match result for path. For negation rules
// the result is inverted: true means "this rule does not re-include path".
// This convention lets RuleSet fold rules with plain boolean operators.
//
// A directory-only rule evaluated against a non-directory yields the rule's
// own negation flag, which is neutral under the fold for both rule kinds.
func (p *Pattern) Matches(path string, isDir bool) bool {
	if p.dirOnly && !isDir {
		return p.negation
	}
	return p.negation != p.matcher.Match(strings.ToLower(filepath.ToSlash(path)))
}

// Anchored reports whether the rule is tied to a fixed position under its
// root rather than matchable at any depth.
func (p *Pattern) Anchored() bool { return p.anchored }

// DirectoryOnly reports whether the rule matches directories only.
func (p *Pattern) DirectoryOnly() bool { return p.dirOnly }

// Negation reports whether the rule re-includes paths instead of excluding
// them.
func (p *Pattern) Negation() bool { return p.negation }

// String returns the raw rule text the Pattern was compiled from.
func (p *Pattern) String() string { return p.raw }
