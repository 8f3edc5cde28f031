// Package textutil holds the tokenizer shared by every analyzer so that word
// counts stay mutually consistent across sentiment, viewer classification,
// and summaries.
package textutil

import (
	"strings"
	"unicode"
)

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Tokenize splits text into maximal runs of word characters (letters, digits,
// underscore), lowercased. Empty input yields an empty slice.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	tokens := make([]string, 0, len(text)/5)
	var b strings.Builder

	for _, r := range text {
		if isWordRune(r) {
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		tokens = append(tokens, b.String())
	}
	return tokens
}

// WordCount returns the number of tokens in text.
func WordCount(text string) int {
	return len(Tokenize(text))
}
