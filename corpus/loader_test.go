package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/opsassist/storage/badger"
)

func newTestLoader(t *testing.T) *Loader {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close(); backend.Close() })

	loader, err := NewLoader(repo)
	require.NoError(t, err)
	t.Cleanup(loader.Release)

	return loader
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestNewLoaderRequiresRepository(t *testing.T) {
	_, err := NewLoader(nil)
	assert.ErrorIs(t, err, ErrRepositoryRequired)
}

func TestIngestFile(t *testing.T) {
	loader := newTestLoader(t)
	ctx := context.Background()

	dir := t.TempDir()
	writeFile(t, dir, "outage.md", "Notify the operations center.")

	doc, err := loader.IngestFile(ctx, filepath.Join(dir, "outage.md"))
	require.NoError(t, err)
	assert.Equal(t, "outage.md", doc.Name)
	assert.Equal(t, "Notify the operations center.", doc.Content)
	assert.NotZero(t, doc.Id)
}

func TestIngestDir(t *testing.T) {
	loader := newTestLoader(t)
	ctx := context.Background()

	dir := t.TempDir()
	writeFile(t, dir, "outage.md", "Notify the operations center.")
	writeFile(t, dir, "notes.txt", "Transformer oil levels.")
	writeFile(t, dir, "ignored.pdf", "binary blob")
	writeFile(t, dir, "empty.md", "")

	docs, err := loader.IngestDir(ctx, dir)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	names := []string{docs[0].Name, docs[1].Name}
	assert.ElementsMatch(t, []string{"outage.md", "notes.txt"}, names)
}

func TestIngestDirErrors(t *testing.T) {
	loader := newTestLoader(t)
	ctx := context.Background()

	t.Run("missing directory", func(t *testing.T) {
		_, err := loader.IngestDir(ctx, filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})

	t.Run("path is a file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "outage.md", "content")
		_, err := loader.IngestDir(ctx, filepath.Join(dir, "outage.md"))
		assert.ErrorIs(t, err, ErrNotDirectory)
	})

	t.Run("empty directory yields no documents", func(t *testing.T) {
		docs, err := loader.IngestDir(ctx, t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}

func TestAssemble(t *testing.T) {
	loader := newTestLoader(t)
	ctx := context.Background()

	t.Run("empty store yields empty corpus", func(t *testing.T) {
		text, err := loader.Assemble(ctx)
		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("wraps each document in markers", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "outage.md", "Notify the operations center.")
		writeFile(t, dir, "alpha.md", "Inspect transformer oil levels.")

		_, err := loader.IngestDir(ctx, dir)
		require.NoError(t, err)

		text, err := loader.Assemble(ctx)
		require.NoError(t, err)

		// Documents are assembled in name order.
		assert.Equal(t,
			"\n\n=== FILE: alpha.md ===\n"+
				"Inspect transformer oil levels.\n"+
				"=== END OF alpha.md ===\n"+
				"\n\n=== FILE: outage.md ===\n"+
				"Notify the operations center.\n"+
				"=== END OF outage.md ===\n",
			text)
	})
}
