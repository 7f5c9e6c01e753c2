// Package strings provides string matching and normalization utilities.
package strings

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the Unicode case-folded form of s for caseless comparison.
// A Caser may carry state, so each call builds its own.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// EqualFold reports whether a and b are equal under Unicode case folding,
// ignoring surrounding whitespace.
func EqualFold(a, b string) bool {
	return Fold(strings.TrimSpace(a)) == Fold(strings.TrimSpace(b))
}

// ContainsFold reports whether needle occurs in haystack under case folding.
// An empty needle matches everything.
func ContainsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}

// AnyContainsFold reports whether needle occurs in any of the haystacks.
func AnyContainsFold(needle string, haystacks ...string) bool {
	folded := Fold(needle)
	for _, h := range haystacks {
		if strings.Contains(Fold(h), folded) {
			return true
		}
	}
	return false
}
