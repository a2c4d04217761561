// Package textutil provides text normalization for worklist search:
// lowercasing plus diacritic stripping so "Marítima" matches "maritima".
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold returns a lowercase, diacritic-free form of s suitable for
// substring comparison. Falls back to plain lowercasing if the transform
// fails on malformed input.
func Fold(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// ContainsFold reports whether needle occurs in haystack under Fold
// normalization. An empty needle always matches.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
