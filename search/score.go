package search

import (
	"math"
	"strings"
)

// scoreMatch scores candidate text against tokenized query terms and returns
// a relevance score in [0, 1].
//
// Token overlap gives baseline relevance; the whole-word bonus rewards exact
// lexical matches over substring hits; the phrase bonus rewards the query
// occurring verbatim; the density bonus favors tightly clustered matches over
// sparse ones in long candidates. The score is clamped once, at the end.
func (e *Engine) scoreMatch(queryTokens []string, text string) float64 {
	textLower := strings.ToLower(text)
	textTokens := e.tokenize(text)

	if len(queryTokens) == 0 || len(textTokens) == 0 {
		return 0
	}

	tokenSet := make(map[string]struct{}, len(textTokens))
	for _, t := range textTokens {
		tokenSet[t] = struct{}{}
	}

	// Basic keyword matching. The text is padded with single spaces so the
	// whole-word check cannot hit a partial word at either end.
	matches := 0.0
	padded := " " + textLower + " "
	for _, token := range queryTokens {
		if _, ok := tokenSet[token]; ok {
			matches++
			if strings.Contains(padded, " "+token+" ") {
				matches += 0.5
			}
		}
	}

	score := matches / float64(len(queryTokens))

	// Phrase proximity bonus.
	if len(queryTokens) > 1 {
		phrase := strings.Join(queryTokens, " ")
		if strings.Contains(textLower, phrase) {
			score += 0.3
		}
	}

	// Density bonus: matches close together in a short candidate.
	if matches > 1 {
		score += math.Min(0.2, matches/float64(len(textTokens)))
	}

	return math.Min(1.0, score)
}
