package database

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics removes diacritical marks from a string (e.g., "Jiří" -> "Jiri").
func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// NormalizePassport canonicalizes a passport string before storage so that
// spelling variants of the same document collide on the unique constraint
// (uppercase, no diacritics, no surrounding whitespace).
func NormalizePassport(passport string) string {
	passport = strings.TrimSpace(passport)
	passport = removeDiacritics(passport)
	return strings.ToUpper(passport)
}
