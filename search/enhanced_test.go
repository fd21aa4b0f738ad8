package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnhancedSearches(t *testing.T) {
	e := NewEngine()

	corpus := "=== FILE: restoration.md ===\n" +
		"## Restoration Procedure\n" +
		"Follow these steps to restore power after an outage.\n" +
		"\n" +
		"## Troubleshooting\n" +
		"If the breaker trips again, resolve the underlying fault first.\n" +
		"\n" +
		"## Emergency Response\n" +
		"Critical failure: escalate the incident to the emergency desk.\n" +
		"=== END OF restoration.md ===\n"

	t.Run("procedures bias pulls step content", func(t *testing.T) {
		snippets := e.SearchProcedures("restore power", corpus)
		require.NotEmpty(t, snippets)
		assert.Contains(t, snippets[0], "Restoration Procedure")
	})

	t.Run("troubleshooting bias pulls fault content", func(t *testing.T) {
		snippets := e.SearchTroubleshooting("breaker trips", corpus)
		require.NotEmpty(t, snippets)
		assert.Contains(t, snippets[0], "Troubleshooting")
	})

	t.Run("emergency bias pulls incident content", func(t *testing.T) {
		snippets := e.SearchEmergency("escalate", corpus)
		require.NotEmpty(t, snippets)
		assert.Contains(t, snippets[0], "Emergency Response")
	})

	t.Run("bias keywords alone do not invent matches", func(t *testing.T) {
		snippets := e.SearchProcedures("restore power", "completely unrelated gardening notes")
		require.Len(t, snippets, 1)
		assert.Contains(t, snippets[0], "No results found")
	})
}
