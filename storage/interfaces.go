package storage

import (
	"context"

	"github.com/poiesic/opsassist/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// DocumentRepository provides operations for managing stored documents.
type DocumentRepository interface {
	Repository
	// PutDocuments inserts or updates one or more documents.
	// IDs are content-based (IDFromContent of the document name), so a
	// document stored under an existing name replaces it.
	// Sets InsertedAt on first store and UpdatedAt on every store.
	// Returns the documents with identity and timestamps populated.
	PutDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.Document, error)

	// GetDocumentByName retrieves a single document by its source name.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocumentByName(ctx context.Context, name string) (*core.Document, error)

	// ListDocuments retrieves all stored documents ordered by name.
	ListDocuments(ctx context.Context) ([]*core.Document, error)

	// DeleteDocuments removes documents by their IDs.
	// Returns ErrNotFound if any document doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...core.ID) error
}
