package opsassist

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssistant(t *testing.T) {
	t.Run("create new assistant", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_store")
		assistant, err := NewAssistant(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, assistant)
		defer assistant.Close()

		// Verify components are initialized
		assert.NotNil(t, assistant.DocumentRepository())
		assert.NotNil(t, assistant.Loader())
		assert.NotNil(t, assistant.IrenoClient())
		assert.NotNil(t, assistant.backend)
		assert.NotNil(t, assistant.logger)
	})

	t.Run("in-memory store", func(t *testing.T) {
		assistant, err := NewAssistant("", WithInMemoryStore())
		require.NoError(t, err)
		defer assistant.Close()

		doc, err := assistant.Loader().IngestFile(context.Background(), writeSOP(t))
		require.NoError(t, err)
		assert.Equal(t, "outage.md", doc.Name)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// A file where the store directory should be
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		assistant, err := NewAssistant(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, assistant)
	})
}

func TestAssistant_Close(t *testing.T) {
	assistant, err := NewAssistant(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, assistant)

	err = assistant.Close()
	assert.NoError(t, err)
}

func TestAssistant_FactoryMethods(t *testing.T) {
	assistant, err := NewAssistant("", WithInMemoryStore())
	require.NoError(t, err)
	defer assistant.Close()

	t.Run("can create search engine", func(t *testing.T) {
		engine := assistant.NewEngine()
		require.NotNil(t, engine)
	})

	t.Run("can create rule responder", func(t *testing.T) {
		responder := assistant.NewRuleResponder()
		require.NotNil(t, responder)
	})
}

func TestAssistant_SearchRoundTrip(t *testing.T) {
	assistant, err := NewAssistant("", WithInMemoryStore())
	require.NoError(t, err)
	defer assistant.Close()

	ctx := context.Background()
	_, err = assistant.Loader().IngestFile(ctx, writeSOP(t))
	require.NoError(t, err)

	corpusText, err := assistant.Loader().Assemble(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, corpusText)

	results := assistant.NewEngine().KeywordSearch("transformer inspection", corpusText)
	require.NotEmpty(t, results)
	assert.Contains(t, results[0], "[outage.md]")
}

func writeSOP(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "outage.md")
	content := "Perform a transformer inspection before restoring power to the feeder.\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
