package common

import (
	"strings"
	"unicode"
)

// IsIdentifier reports whether s is a valid identifier token as used by
// scenarios.yaml: a non-empty run of letters, digits, and underscores that
// does not start with a digit. Scenario names, locations, action names,
// target-class names, param-kind tokens, and property names must all pass
// this check.
//
// Example:
//   - "loading_dock" -> true
//   - "north"        -> true
//   - "2nd_shelf"    -> false (leading digit)
//   - "drop off"     -> false (space)
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if unicode.IsDigit(r) {
			if i == 0 {
				return false
			}
			continue
		}
		return false
	}
	return true
}

// Humanize converts an identifier token to its natural-language surface form
// by replacing underscores with spaces. This mirrors how the generator
// renders canonical tokens inside sentences.
//
// Example:
//   - "loading_dock" -> "loading dock"
func Humanize(token string) string {
	return strings.ReplaceAll(token, "_", " ")
}
