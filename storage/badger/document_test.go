package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/opsassist/core"
	"github.com/poiesic/opsassist/storage"
)

func TestDocumentBasics(t *testing.T) {
	// Create in-memory repository
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	// Test storing a document
	doc := core.NewDocument("outage.md", "Notify the operations center.")

	stored, err := repo.PutDocuments(ctx, doc)
	if err != nil {
		t.Fatalf("Failed to put document: %v", err)
	}

	if len(stored) != 1 {
		t.Fatalf("Expected 1 document, got %d", len(stored))
	}

	if stored[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if stored[0].InsertedAt.IsZero() || stored[0].UpdatedAt.IsZero() {
		t.Fatal("Expected timestamps to be set")
	}

	// Timestamps are truncated before storage so the returned document
	// matches the persisted record exactly.
	if !stored[0].InsertedAt.Equal(stored[0].InsertedAt.Truncate(time.Microsecond)) {
		t.Fatal("Expected InsertedAt to be microsecond-aligned")
	}

	// Test retrieving by ID
	retrieved, err := repo.GetDocument(ctx, stored[0].Id)
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}

	if retrieved.Name != "outage.md" {
		t.Fatalf("Expected 'outage.md', got '%s'", retrieved.Name)
	}
	if retrieved.Content != "Notify the operations center." {
		t.Fatalf("Unexpected content: '%s'", retrieved.Content)
	}

	// Test retrieving by name
	byName, err := repo.GetDocumentByName(ctx, "outage.md")
	if err != nil {
		t.Fatalf("Failed to get document by name: %v", err)
	}

	if byName.Id != stored[0].Id {
		t.Fatalf("Expected ID %d, got %d", stored[0].Id, byName.Id)
	}
}

func TestDocumentUpsert(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	first, err := repo.PutDocuments(ctx, core.NewDocument("outage.md", "version one"))
	if err != nil {
		t.Fatalf("Failed to put document: %v", err)
	}

	// Re-ingest under the same name with new content
	second, err := repo.PutDocuments(ctx, core.NewDocument("outage.md", "version two"))
	if err != nil {
		t.Fatalf("Failed to re-put document: %v", err)
	}

	if first[0].Id != second[0].Id {
		t.Fatalf("Expected stable ID on upsert, got %d then %d", first[0].Id, second[0].Id)
	}
	if first[0].ContentHash == second[0].ContentHash {
		t.Fatal("Expected content hash to change")
	}

	// Only one document should remain
	docs, err := repo.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("Failed to list documents: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("Expected 1 document, got %d", len(docs))
	}
	if docs[0].Content != "version two" {
		t.Fatalf("Expected updated content, got '%s'", docs[0].Content)
	}
	if !docs[0].InsertedAt.Equal(first[0].InsertedAt) {
		t.Fatal("Expected InsertedAt to survive the upsert")
	}
}

func TestListDocumentsOrder(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	_, err = repo.PutDocuments(ctx,
		core.NewDocument("zulu.md", "last content"),
		core.NewDocument("alpha.md", "first content"),
		core.NewDocument("mike.md", "middle content"),
	)
	if err != nil {
		t.Fatalf("Failed to put documents: %v", err)
	}

	docs, err := repo.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("Failed to list documents: %v", err)
	}

	want := []string{"alpha.md", "mike.md", "zulu.md"}
	if len(docs) != len(want) {
		t.Fatalf("Expected %d documents, got %d", len(want), len(docs))
	}
	for i, name := range want {
		if docs[i].Name != name {
			t.Fatalf("Expected '%s' at position %d, got '%s'", name, i, docs[i].Name)
		}
	}
}

func TestDocumentNotFound(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	if _, err := repo.GetDocument(ctx, 12345); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetDocumentByName(ctx, "missing.md"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if err := repo.DeleteDocuments(ctx, 12345); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteDocuments(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	stored, err := repo.PutDocuments(ctx, core.NewDocument("outage.md", "content"))
	if err != nil {
		t.Fatalf("Failed to put document: %v", err)
	}

	if err := repo.DeleteDocuments(ctx, stored[0].Id); err != nil {
		t.Fatalf("Failed to delete document: %v", err)
	}

	// Primary record and name index should both be gone
	if _, err := repo.GetDocument(ctx, stored[0].Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}
	if _, err := repo.GetDocumentByName(ctx, "outage.md"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}

	docs, err := repo.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("Failed to list documents: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("Expected empty list, got %d documents", len(docs))
	}
}
