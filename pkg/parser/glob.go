package parser

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// ExpandGlobs expands a list of file paths and glob patterns into a sorted,
// deduplicated list of paths. Patterns that match nothing are kept as literal
// paths so that reading them later reports a clear file-not-found error.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			result = append(result, path)
		}
	}

	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			add(pattern)
			continue
		}
		for _, match := range matches {
			add(match)
		}
	}

	slices.Sort(result)
	return result, nil
}
