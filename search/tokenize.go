package search

import (
	"regexp"
	"strings"
)

// wordPattern extracts maximal runs of word characters. Punctuation and
// whitespace act as separators and are never merged across.
var wordPattern = regexp.MustCompile(`\w+`)

// DefaultStopWords is the built-in set of common English function words
// ignored during tokenization.
var DefaultStopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did", "will", "would", "could",
	"should", "may", "might", "can", "this", "that", "these", "those",
}

// tokenize lowercases text and splits it into filtered tokens.
// Stop words and tokens of length <= 2 are dropped; duplicates and order
// are retained because both affect density scoring.
func (e *Engine) tokenize(text string) []string {
	text = strings.ToLower(strings.TrimSpace(text))

	words := wordPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) <= 2 {
			continue
		}
		if _, stop := e.stopWords[word]; stop {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}
