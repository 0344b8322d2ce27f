package filter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases and strips diacritics via canonical decomposition, so
// "Constitución" and "constitucion" compare equal. Both sides of every match
// in this package go through it.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// matchesAllTokens reports whether every whitespace-separated token of term
// appears as a substring in at least one of the fields.
func matchesAllTokens(term string, fields ...string) bool {
	tokens := strings.Fields(Normalize(term))
	if len(tokens) == 0 {
		return false
	}

	normalized := make([]string, len(fields))
	for i, f := range fields {
		normalized[i] = Normalize(f)
	}

	for _, token := range tokens {
		found := false
		for _, f := range normalized {
			if strings.Contains(f, token) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// mentionMatches applies the deliberately lenient bidirectional substring
// policy for chat-extracted place names: partial or abbreviated mentions
// still hit.
func mentionMatches(name string, mentions []string) bool {
	normName := Normalize(name)
	if normName == "" {
		return false
	}
	for _, mention := range mentions {
		normMention := Normalize(strings.TrimSpace(mention))
		if normMention == "" {
			continue
		}
		if strings.Contains(normName, normMention) || strings.Contains(normMention, normName) {
			return true
		}
	}
	return false
}
