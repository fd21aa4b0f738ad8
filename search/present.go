package search

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/poiesic/opsassist/core"
)

// Messages returned in place of results for the trivial failure cases.
// These are ordinary values, not errors: the caller always gets something
// presentable.
const (
	msgEmptyQuery  = "Please provide a search query."
	msgEmptyCorpus = "No documents available to search."
)

// KeywordSearch performs a basic keyword search and returns matching snippets
// as plain strings. Snippets from a known source are prefixed with
// "[sourceName] ". When nothing matches, the single returned element is a
// human-readable message.
func (e *Engine) KeywordSearch(query, documentText string) []string {
	if strings.TrimSpace(query) == "" {
		return []string{msgEmptyQuery}
	}
	if strings.TrimSpace(documentText) == "" {
		return []string{msgEmptyCorpus}
	}

	results := e.Search(query, documentText, &SearchOptions{MaxResults: 15, MinScore: 0.15})
	if len(results) == 0 {
		return []string{fmt.Sprintf("No results found for '%s'. Try different keywords or check spelling.", query)}
	}

	snippets := make([]string, 0, len(results))
	for _, result := range results {
		if result.FileSource != "" && result.FileSource != core.UnknownDocument {
			snippets = append(snippets, fmt.Sprintf("[%s] %s", result.FileSource, result.Snippet))
		} else {
			snippets = append(snippets, result.Snippet)
		}
	}

	return snippets
}

// HighlightedResult is a structured search result with query keywords
// wrapped in highlight markers. A no-results response carries only Message.
type HighlightedResult struct {
	Snippet         string  `json:"snippet"`
	OriginalSnippet string  `json:"original_snippet"`
	Score           float64 `json:"score"`
	FileSource      string  `json:"file_source"`
	MatchType       string  `json:"match_type"`
	ContextBefore   string  `json:"context_before"`
	ContextAfter    string  `json:"context_after"`
	Message         string  `json:"message,omitempty"`
}

// SearchWithHighlights performs a search and returns structured results with
// every query keyword highlighted in the snippet. maxResults <= 0 falls back
// to 10.
func (e *Engine) SearchWithHighlights(query, documentText string, maxResults int) []HighlightedResult {
	if maxResults <= 0 {
		maxResults = 10
	}

	results := e.Search(query, documentText, &SearchOptions{MaxResults: maxResults})
	if len(results) == 0 {
		return []HighlightedResult{{Message: fmt.Sprintf("No results found for '%s'", query)}}
	}

	queryTokens := e.tokenize(query)

	formatted := make([]HighlightedResult, 0, len(results))
	for _, result := range results {
		formatted = append(formatted, HighlightedResult{
			Snippet:         e.highlight(result.Snippet, queryTokens),
			OriginalSnippet: result.Snippet,
			Score:           round3(result.Score),
			FileSource:      result.FileSource,
			MatchType:       string(result.MatchType),
			ContextBefore:   result.ContextBefore,
			ContextAfter:    result.ContextAfter,
		})
	}

	return formatted
}

// highlight wraps every case-insensitive occurrence of each query token in
// the engine's marker pair, token by token. Later tokens operate on the
// already-highlighted string, so overlapping tokens may double-wrap; that is
// existing behavior, kept as-is. The replacement text is the lowercased
// token.
func (e *Engine) highlight(snippet string, queryTokens []string) string {
	highlighted := snippet
	for _, token := range queryTokens {
		pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(token))
		highlighted = pattern.ReplaceAllLiteralString(highlighted, e.highlightMarker+token+e.highlightMarker)
	}
	return highlighted
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
