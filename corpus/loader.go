package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/opsassist/core"
	"github.com/poiesic/opsassist/storage"
)

// Extensions of files picked up by directory ingestion.
var documentExtensions = map[string]struct{}{
	".md":  {},
	".txt": {},
}

// Loader ingests document files into storage and assembles the stored set
// into corpus text.
type Loader struct {
	repository storage.DocumentRepository
	pool       *ants.Pool
	logger     *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader) error

// WithPoolSize sets the worker pool size for concurrent file reads.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}

		if l.pool != nil {
			l.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		l.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a new document loader.
func NewLoader(repository storage.DocumentRepository, opts ...Option) (*Loader, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		repository: repository,
		pool:       pool,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(l); optErr != nil {
			l.Release()
			return nil, optErr
		}
	}

	return l, nil
}

// IngestFile reads a single file and stores it as a document named after its
// base name.
func (l *Loader) IngestFile(ctx context.Context, path string) (*core.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc := core.NewDocument(filepath.Base(path), string(data))
	if err := core.ValidateDocument(doc); err != nil {
		return nil, err
	}

	stored, err := l.repository.PutDocuments(ctx, doc)
	if err != nil {
		return nil, err
	}
	return stored[0], nil
}

// IngestDir reads every document file in a directory concurrently and stores
// the results. Unreadable or empty files are logged and skipped; they do not
// fail the ingestion. Returns the stored documents.
func (l *Loader) IngestDir(ctx context.Context, dir string) ([]*core.Document, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		docs []*core.Document
	)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := documentExtensions[ext]; !ok {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		wg.Add(1)
		submitErr := l.pool.Submit(func() {
			defer wg.Done()

			data, err := os.ReadFile(path)
			if err != nil {
				l.logger.Error("error reading document", "path", path, "err", err)
				return
			}

			doc := core.NewDocument(filepath.Base(path), string(data))
			if err := core.ValidateDocument(doc); err != nil {
				l.logger.Warn("skipping invalid document", "path", path, "err", err)
				return
			}

			mu.Lock()
			docs = append(docs, doc)
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			return nil, submitErr
		}
	}

	wg.Wait()

	if len(docs) == 0 {
		l.logger.Warn("no documents found", "dir", dir)
		return nil, nil
	}

	stored, err := l.repository.PutDocuments(ctx, docs...)
	if err != nil {
		return nil, err
	}

	l.logger.Info("documents ingested", "dir", dir, "count", len(stored))
	return stored, nil
}

// Assemble stitches every stored document into a single corpus string.
// Each document body is wrapped in FILE/END OF marker lines. An empty store
// yields an empty string.
func (l *Loader) Assemble(ctx context.Context) (string, error) {
	docs, err := l.repository.ListDocuments(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, doc := range docs {
		sb.WriteString("\n\n=== FILE: ")
		sb.WriteString(doc.Name)
		sb.WriteString(" ===\n")
		sb.WriteString(doc.Content)
		sb.WriteString("\n=== END OF ")
		sb.WriteString(doc.Name)
		sb.WriteString(" ===\n")
	}

	return sb.String(), nil
}

// Release releases the worker pool.
// The loader should not be used after calling Release.
func (l *Loader) Release() {
	if l.pool != nil {
		l.pool.Release()
	}
}
