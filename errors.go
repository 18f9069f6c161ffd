package ignore

import (
	"errors"
	"fmt"
)

// ErrEmptyPattern is returned when a rule line is empty after stripping the
// negation prefix and trailing slash.
var ErrEmptyPattern = errors.New("empty pattern")

// ErrNotDirectory is returned when a repository root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// PatternError reports a rule line that could not be compiled. It always
// carries the offending rule text exactly as it appeared in the ignore file.
type PatternError struct {
	// Rule is the raw rule line that failed to compile.
	Rule string

	// Err is the underlying glob compilation error.
	Err error
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid ignore pattern %q: %v", e.Rule, e.Err)
}

// Unwrap returns the underlying cause for error chain support.
func (e *PatternError) Unwrap() error {
	return e.Err
}
