package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// stopwords are common English filler words excluded from keyword extraction.
// Only words longer than three characters matter here; shorter ones are
// dropped by the length filter before this list is consulted.
var stopwords = map[string]struct{}{
	"this": {}, "that": {}, "with": {}, "have": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "could": {}, "would": {},
	"should": {}, "your": {}, "from": {}, "they": {}, "them": {},
	"will": {}, "about": {}, "there": {}, "their": {}, "been": {},
	"because": {}, "into": {}, "just": {}, "like": {}, "some": {},
	"then": {}, "than": {}, "were": {}, "does": {},
}

// ExtractKeywords tokenizes free text into a deduplicated keyword set.
// Text is lowercased, punctuation is replaced with whitespace, and tokens
// of three characters or fewer as well as stopwords are discarded.
// Empty or all-stopword input yields an empty set.
func ExtractKeywords(text string) map[string]struct{} {
	normalized := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	keywords := make(map[string]struct{})
	for _, token := range strings.Fields(normalized) {
		if utf8.RuneCountInString(token) <= 3 {
			continue
		}
		if _, ok := stopwords[token]; ok {
			continue
		}
		keywords[token] = struct{}{}
	}

	return keywords
}
