// Package kv parses `key=value` command line arguments.
package kv

import (
	"fmt"
	"strings"
)

// Pair is a parsed `key=value` argument.
type Pair struct {
	Key   string
	Value string
}

// ParsePairs parses `key=value` arguments keeping their order. Keys can't be
// empty or repeated, values can't be empty.
func ParsePairs(specs []string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(specs))
	seen := make(map[string]bool, len(specs))

	for _, spec := range specs {
		key, value, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid argument %q (must be key=value)", spec)
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			return nil, fmt.Errorf("invalid argument %q: key cannot be empty", spec)
		}
		if value == "" {
			return nil, fmt.Errorf("invalid argument %q: value cannot be empty", spec)
		}
		if seen[key] {
			return nil, fmt.Errorf("key %q is repeated", key)
		}
		seen[key] = true

		pairs = append(pairs, Pair{Key: key, Value: value})
	}

	return pairs, nil
}
