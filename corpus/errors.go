package corpus

import "errors"

var (
	// ErrRepositoryRequired is returned when a document repository is not provided.
	ErrRepositoryRequired = errors.New("document repository required")

	// ErrNotDirectory is returned when the ingestion path is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)
