package search

import (
	"fmt"
	"os"
	"path/filepath"

	"resweep/internal/pattern"
)

// Query holds everything the walker and scanners need to run one search:
// compiled patterns, the replacement template, the root directory, and
// the hidden-file policy. Immutable once constructed; safe to share by
// value across scanner goroutines (§9 "Shared parsed query").
type Query struct {
	Search        *pattern.Pattern
	Replacement   string
	PathFilter    *pattern.Pattern // nil means no path filter
	Root          string           // absolute
	IncludeHidden bool
	AdvancedRegex bool
}

// NewQuery validates that root exists and is a directory, then returns an
// immutable Query rooted there. This is the only constructor; a failed
// validation returns an error, on which the TUI stays on the Form screen.
func NewQuery(search *pattern.Pattern, replacement string, pathFilter *pattern.Pattern, root string, includeHidden, advancedRegex bool) (*Query, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("root %q: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %q is not a directory", abs)
	}
	return &Query{
		Search:        search,
		Replacement:   replacement,
		PathFilter:    pathFilter,
		Root:          abs,
		IncludeHidden: includeHidden,
		AdvancedRegex: advancedRegex,
	}, nil
}
