package search

import (
	"log/slog"

	"github.com/poiesic/opsassist/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string, queryTokens []string)
	SectionFound(name string, paragraphs, lines int)
	ParagraphHit(result *core.SearchResult)
	LineHit(result *core.SearchResult)
	LineSkipped(section, line string)
	AfterRanking(results []*core.SearchResult)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ []string)                {}
func (n *noopMonitor) SectionFound(_ string, _, _ int)           {}
func (n *noopMonitor) ParagraphHit(_ *core.SearchResult)         {}
func (n *noopMonitor) LineHit(_ *core.SearchResult)              {}
func (n *noopMonitor) LineSkipped(_, _ string)                   {}
func (n *noopMonitor) AfterRanking(_ []*core.SearchResult)       {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)             {}

// logMonitor records search stages to a slog.Logger.
type logMonitor struct {
	logger *slog.Logger
}

// NewLogMonitor creates a SearchMonitor that logs every stage of the search.
// Useful for explaining why a result ranked where it did.
func NewLogMonitor(logger *slog.Logger) SearchMonitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &logMonitor{logger: logger}
}

func (m *logMonitor) Start(query string, queryTokens []string) {
	m.logger.Info("search started", "query", query, "tokens", queryTokens)
}

func (m *logMonitor) SectionFound(name string, paragraphs, lines int) {
	m.logger.Info("section found", "section", name, "paragraphs", paragraphs, "lines", lines)
}

func (m *logMonitor) ParagraphHit(result *core.SearchResult) {
	m.logger.Info("paragraph hit", "section", result.FileSource, "score", result.Score)
}

func (m *logMonitor) LineHit(result *core.SearchResult) {
	m.logger.Info("line hit", "section", result.FileSource, "line", result.LineNumber, "score", result.Score)
}

func (m *logMonitor) LineSkipped(section, line string) {
	m.logger.Info("line covered by accepted snippet", "section", section, "line", line)
}

func (m *logMonitor) AfterRanking(results []*core.SearchResult) {
	m.logger.Info("candidates ranked", "count", len(results))
}

func (m *logMonitor) Finish(results []*core.SearchResult) {
	m.logger.Info("search finished", "results", len(results))
}
