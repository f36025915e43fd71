package helpers

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldText lowercases s and strips diacritics so "Mudança" matches "mudanca".
func FoldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// MatchesKeyword reports whether any field contains keyword, ignoring case and accents.
// An empty keyword matches everything.
func MatchesKeyword(keyword string, fields ...string) bool {
	needle := FoldText(strings.TrimSpace(keyword))
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(FoldText(f), needle) {
			return true
		}
	}
	return false
}
