package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/opsassist/core"
)

func TestExtractSections(t *testing.T) {
	t.Run("splits marked corpus into named sections", func(t *testing.T) {
		corpus := "ignored preamble\n" +
			"=== FILE: a.md ===\n" +
			"alpha body\n" +
			"=== END OF a.md ===\n" +
			"=== FILE: b.md ===\n" +
			"bravo body\n" +
			"=== END OF b.md ===\n"

		sections := extractSections(corpus)
		require.Len(t, sections, 2)

		assert.Equal(t, "a.md", sections[0].name)
		assert.Equal(t, "alpha body", sections[0].body)
		assert.Equal(t, "b.md", sections[1].name)
		assert.Equal(t, "bravo body", sections[1].body)
	})

	t.Run("trims whitespace in file names", func(t *testing.T) {
		corpus := "=== FILE:  spaced.md  ===\ncontent here\n=== END OF  spaced.md  ===\n"

		sections := extractSections(corpus)
		require.Len(t, sections, 1)
		assert.Equal(t, "spaced.md", sections[0].name)
	})

	t.Run("unmarked text becomes a single unknown section", func(t *testing.T) {
		sections := extractSections("plain text with no markers")
		require.Len(t, sections, 1)
		assert.Equal(t, core.UnknownDocument, sections[0].name)
		assert.Equal(t, "plain text with no markers", sections[0].body)
	})

	t.Run("missing end marker still yields the section", func(t *testing.T) {
		corpus := "=== FILE: open.md ===\nbody without a closer"

		sections := extractSections(corpus)
		require.Len(t, sections, 1)
		assert.Equal(t, "open.md", sections[0].name)
		assert.Equal(t, "body without a closer", sections[0].body)
	})
}

func TestSplitParagraphs(t *testing.T) {
	t.Run("splits on blank lines and trims", func(t *testing.T) {
		body := "first paragraph\nsecond line\n\n  second paragraph  \n\n\nthird"
		assert.Equal(t,
			[]string{"first paragraph\nsecond line", "second paragraph", "third"},
			splitParagraphs(body))
	})

	t.Run("empty body yields nothing", func(t *testing.T) {
		assert.Empty(t, splitParagraphs(""))
		assert.Empty(t, splitParagraphs("\n\n\n\n"))
	})
}

func TestSplitLines(t *testing.T) {
	t.Run("drops blank lines and trims the rest", func(t *testing.T) {
		body := "one\n\n  two  \nthree\n"
		assert.Equal(t, []string{"one", "two", "three"}, splitLines(body))
	})
}
