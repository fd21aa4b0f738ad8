package search

import (
	"regexp"
	"strings"

	"github.com/poiesic/opsassist/core"
)

// Corpus text is a concatenation of documents, each wrapped in literal
// marker lines of the form "=== FILE: <name> ===" ... "=== END OF <name> ===".
var (
	fileMarker = regexp.MustCompile(`=== FILE: ([^=]+) ===`)
	endMarker  = regexp.MustCompile(`=== END OF ([^=]+) ===`)
)

// section is one named document body extracted from the corpus text.
type section struct {
	name string
	body string
}

// extractSections splits marked corpus text into named sections. Any preamble
// before the first marker is discarded and end markers are stripped from each
// body. Text without markers becomes a single section with a sentinel name.
func extractSections(text string) []section {
	matches := fileMarker.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []section{{name: core.UnknownDocument, body: text}}
	}

	sections := make([]section, 0, len(matches))
	for i, m := range matches {
		name := strings.TrimSpace(text[m[2]:m[3]])

		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		body := endMarker.ReplaceAllString(text[start:end], "")
		sections = append(sections, section{name: name, body: strings.TrimSpace(body)})
	}

	return sections
}

// splitParagraphs splits a section body on blank-line separators.
// Paragraphs are trimmed and empty ones discarded.
func splitParagraphs(body string) []string {
	parts := strings.Split(body, "\n\n")
	paragraphs := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// splitLines splits a section body into trimmed, non-blank lines.
func splitLines(body string) []string {
	parts := strings.Split(body, "\n")
	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		if l := strings.TrimSpace(part); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
