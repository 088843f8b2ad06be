// Package normalizer turns raw article text into cleaned text and a
// token stream used as the substantiveness signal downstream.
package normalizer

import (
	"regexp"
	"strings"
)

var (
	urlPattern        = regexp.MustCompile(`http\S+|www\S+`)
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	disallowedPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?'"-]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Clean strips URL-like substrings and HTML tags, replaces any character
// outside the word/whitespace/basic-punctuation whitelist with a space,
// collapses runs of whitespace and trims. It never fails: empty input
// yields an empty string.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = urlPattern.ReplaceAllString(text, "")
	text = tagPattern.ReplaceAllString(text, "")
	text = disallowedPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
