package search

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/opsassist/core"
)

const (
	// Candidates shorter than these are skipped unconditionally,
	// regardless of how they would score.
	minParagraphLength = 10
	minLineLength      = 5

	defaultMaxResults    = 20
	defaultMinScore      = 0.1
	defaultContextWindow = 100
)

// Engine performs keyword search over marked corpus text.
// It holds configuration only; Search allocates and discards its own working
// data, so one Engine may serve concurrent callers without locking.
type Engine struct {
	stopWords       map[string]struct{}
	contextWindow   int
	maxResults      int
	minScore        float64
	highlightMarker string
	logger          *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithStopWords replaces the default stop-word set.
func WithStopWords(words []string) Option {
	return func(e *Engine) {
		e.stopWords = make(map[string]struct{}, len(words))
		for _, w := range words {
			e.stopWords[w] = struct{}{}
		}
	}
}

// WithContextWindow sets the per-direction character budget for context
// extraction. Default is 100.
func WithContextWindow(chars int) Option {
	return func(e *Engine) {
		if chars > 0 {
			e.contextWindow = chars
		}
	}
}

// WithMaxResults sets the default result cap for searches that do not
// override it. Default is 20.
func WithMaxResults(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxResults = n
		}
	}
}

// WithMinScore sets the default minimum score threshold. Default is 0.1.
func WithMinScore(score float64) Option {
	return func(e *Engine) {
		if score > 0 {
			e.minScore = score
		}
	}
}

// WithHighlightMarker sets the marker pair wrapped around matched keywords
// in highlighted results. Default is "**".
func WithHighlightMarker(marker string) Option {
	return func(e *Engine) {
		if marker != "" {
			e.highlightMarker = marker
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// NewEngine creates a search engine with the default configuration,
// then applies the provided options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		contextWindow:   defaultContextWindow,
		maxResults:      defaultMaxResults,
		minScore:        defaultMinScore,
		highlightMarker: "**",
		logger:          slog.Default(),
	}
	WithStopWords(DefaultStopWords)(e)

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// SearchOptions carries per-call overrides for Search.
// Zero values fall back to the engine defaults.
type SearchOptions struct {
	// MaxResults caps the number of returned results. 0 means the engine
	// default.
	MaxResults int

	// MinScore is the minimum relevance score a candidate must reach.
	// 0 means the engine default.
	MinScore float64

	// WithoutContext leaves ContextBefore/ContextAfter empty instead of
	// walking the section body for surrounding lines.
	WithoutContext bool
}

func (e *Engine) searchParams(opts *SearchOptions) (maxResults int, minScore float64, includeContext bool) {
	maxResults = e.maxResults
	minScore = e.minScore
	includeContext = true
	if opts == nil {
		return
	}
	if opts.MaxResults > 0 {
		maxResults = opts.MaxResults
	}
	if opts.MinScore > 0 {
		minScore = opts.MinScore
	}
	includeContext = !opts.WithoutContext
	return
}

// Search scores every paragraph and line candidate in the corpus against the
// query and returns ranked, deduplicated results. A blank query, a query
// that tokenizes to nothing, or blank corpus text yields an empty result set;
// those conditions are ordinary outcomes, never errors.
func (e *Engine) Search(query, corpusText string, opts *SearchOptions) []*core.SearchResult {
	return e.SearchWithMonitor(query, corpusText, opts, nil)
}

// SearchWithMonitor is Search with per-stage observation hooks.
// The monitor receives callbacks as candidates are scored and ranked.
func (e *Engine) SearchWithMonitor(query, corpusText string, opts *SearchOptions, monitor SearchMonitor) []*core.SearchResult {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	maxResults, minScore, includeContext := e.searchParams(opts)

	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	queryTokens := e.tokenize(query)
	if len(queryTokens) == 0 {
		return nil
	}

	monitor.Start(query, queryTokens)
	e.logger.Debug("searching", "query", query, "tokens", queryTokens)

	var results []*core.SearchResult

	for _, sec := range extractSections(corpusText) {
		paragraphs := splitParagraphs(sec.body)
		lines := splitLines(sec.body)
		monitor.SectionFound(sec.name, len(paragraphs), len(lines))

		// Paragraphs first: they carry better context.
		for _, para := range paragraphs {
			if len(para) < minParagraphLength {
				continue
			}

			score := e.scoreMatch(queryTokens, para)
			if score < minScore {
				continue
			}

			var before, after string
			if includeContext {
				before, after = findContext(sec.body, para, e.contextWindow)
			}

			result := &core.SearchResult{
				Snippet:       para,
				Score:         score,
				FileSource:    sec.name,
				ContextBefore: before,
				ContextAfter:  after,
				MatchType:     core.MatchParagraph,
			}
			results = append(results, result)
			monitor.ParagraphHit(result)
		}

		// Then individual lines, for specific matches a paragraph missed.
		for i, line := range lines {
			if len(line) < minLineLength {
				continue
			}

			// Skip lines already covered by an accepted snippet from the
			// same source.
			if coveredBySnippet(results, sec.name, line) {
				monitor.LineSkipped(sec.name, line)
				continue
			}

			score := e.scoreMatch(queryTokens, line)
			if score < minScore {
				continue
			}

			var before, after string
			if includeContext {
				before, after = findContext(sec.body, line, e.contextWindow)
			}

			result := &core.SearchResult{
				Snippet:       line,
				Score:         score,
				FileSource:    sec.name,
				LineNumber:    i,
				ContextBefore: before,
				ContextAfter:  after,
				MatchType:     core.MatchLine,
			}
			results = append(results, result)
			monitor.LineHit(result)
		}
	}

	// Sort by score descending. The sort is stable so equal scores keep
	// discovery order: paragraphs before lines, sections in corpus order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	monitor.AfterRanking(results)

	// Deduplicate on normalized snippet text; first occurrence wins.
	unique := make([]*core.SearchResult, 0, maxResults)
	seen := make(map[string]struct{}, len(results))
	for _, result := range results {
		simplified := strings.ToLower(strings.TrimSpace(result.Snippet))
		if _, dup := seen[simplified]; dup {
			continue
		}
		seen[simplified] = struct{}{}
		unique = append(unique, result)
		if len(unique) >= maxResults {
			break
		}
	}

	e.logger.Debug("search complete", "query", query, "results", len(unique))
	monitor.Finish(unique)

	return unique
}

func coveredBySnippet(results []*core.SearchResult, source, line string) bool {
	for _, result := range results {
		if result.FileSource == source && strings.Contains(result.Snippet, line) {
			return true
		}
	}
	return false
}
