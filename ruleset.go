package ignore

import (
	"log/slog"
	"path"
	"path/filepath"
	"strings"
)

// Verdict is the three-valued outcome of evaluating a path against one rule
// set. Undefined means the set had no opinion and the decision passes to the
// next ancestor ignore file; Excluded and Included are terminal.
type Verdict int

const (
	// Undefined means no rule in the set matched the path.
	Undefined Verdict = iota
	// Excluded means the path is ignored.
	Excluded
	// Included means a negation rule explicitly re-included the path.
	Included
)

// String returns a human-readable verdict name.
func (v Verdict) String() string {
	switch v {
	case Excluded:
		return "excluded"
	case Included:
		return "included"
	default:
		return "undefined"
	}
}

// RuleSet holds the ordered rules of one ignore file. Rule order is file
// order: later rules override earlier ones. A RuleSet is immutable after
// construction and safe for concurrent queries.
type RuleSet struct {
	root  string
	rules []*Pattern
}

// NewRuleSet compiles lines into a RuleSet scoped to root. Blank lines and
// comment lines are skipped. A line whose glob syntax is invalid is dropped
// with a warning rather than failing the whole set; one malformed rule must
// not disable an ignore file's remaining rules.
func NewRuleSet(root string, lines []string) *RuleSet {
	rs := &RuleSet{root: filepath.ToSlash(root)}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		p, err := Compile(line, rs.root)
		if err != nil {
			slog.Warn("dropping malformed ignore rule",
				slog.String("rule", line),
				slog.String("root", rs.root),
				slog.String("error", err.Error()))
			continue
		}
		rs.rules = append(rs.rules, p)
	}
	return rs
}

// Root returns the directory anchored rules are resolved against.
func (rs *RuleSet) Root() string { return rs.root }

// Len returns the number of compiled rules in the set.
func (rs *RuleSet) Len() int { return len(rs.rules) }

// Evaluate folds the rules over path in file order and reports the set's
// verdict. The accumulator starts not-excluded; an ordinary rule that matches
// sets it, a negation rule that matches clears it. A negation can only clear
// an exclusion, never create one, so "!keep.log" placed before "*.log" has
// no effect on keep.log.
//
// Undefined is reported when no rule expressed an opinion: no ordinary rule
// matched and no negation rule's glob matched. A negation whose glob matched
// yields Included even if nothing in this set excluded the path first; the
// explicit re-inclusion must be visible to hierarchy resolution so a nested
// "!keep.no" can override an ancestor's "*.no".
func (rs *RuleSet) Evaluate(p string, isDir bool) Verdict {
	abs := rs.abs(p)

	excluded := false
	matched := false
	for _, r := range rs.rules {
		m := r.Matches(abs, isDir)
		if r.negation {
			// Matches is inverted for negations: m == false means the
			// negation's glob hit, which both clears the accumulator and
			// counts as an opinion.
			if !m {
				matched = true
			}
			excluded = excluded && m
		} else {
			if m {
				matched = true
			}
			excluded = excluded || m
		}
	}

	switch {
	case !matched:
		return Undefined
	case excluded:
		return Excluded
	default:
		return Included
	}
}

// IsIgnored reports the single-file boolean semantics: true exactly when the
// fold ends excluded. Included and Undefined both map to false; a single
// file alone cannot distinguish "explicitly kept" from "no opinion".
func (rs *RuleSet) IsIgnored(p string, isDir bool) bool {
	return rs.Evaluate(p, isDir) == Excluded
}

// abs joins relative candidates with the rule set's root so comparisons run
// against the same absolute form the matchers were compiled for.
func (rs *RuleSet) abs(p string) string {
	p = filepath.ToSlash(p)
	if !strings.HasPrefix(p, "/") && !filepath.IsAbs(p) {
		return path.Join(rs.root, p)
	}
	return path.Clean(p)
}
