package normalizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
)

// Tokenize lowercases the cleaned text, segments it on UAX#29 word
// boundaries and keeps only fully alphabetic tokens longer than two
// runes that are not English stopwords. Empty input yields an empty
// slice, never an error.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var tokens []string

	segments := words.FromString(strings.ToLower(text))
	for segments.Next() {
		token := segments.Value()
		if !isAlphabetic(token) {
			continue
		}

		if utf8.RuneCountInString(token) <= 2 {
			continue
		}

		if IsStopword(token) {
			continue
		}

		tokens = append(tokens, token)
	}

	return tokens
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}
