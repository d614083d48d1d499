package similarity

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// normalizeText canonicalizes text for comparison: NFKC normalization
// (folds width and compatibility variants such as "³" vs "3") and
// lowercasing.
func normalizeText(text string) string {
	return strings.ToLower(norm.NFKC.String(text))
}

// tokenize splits text into comparison tokens: normalized, split on any
// rune that is not a letter or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(normalizeText(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// tokenizeLexical splits text into vectorizer tokens. Single-rune tokens
// carry no lexical signal and are dropped, matching the conventional
// vectorizer token pattern.
func tokenizeLexical(text string) []string {
	tokens := tokenize(text)
	kept := tokens[:0]
	for _, token := range tokens {
		if utf8.RuneCountInString(token) >= 2 {
			kept = append(kept, token)
		}
	}
	return kept
}
