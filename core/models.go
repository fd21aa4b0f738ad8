package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// UnknownDocument is the sentinel source name used when corpus text carries
// no file markers and must be treated as a single unnamed document.
const UnknownDocument = "unknown_document"

// Document is one stored operating-procedure file.
// Identity is derived from the document name, so re-ingesting a file under
// the same name updates it in place; ContentHash tracks whether the body
// actually changed.
type Document struct {
	Id          ID
	Name        string
	Content     string
	ContentHash ID
	Size        int64
	InsertedAt  time.Time // When the document was first stored
	UpdatedAt   time.Time // When the document was last re-ingested
}

// NewDocument builds a Document from a source name and its body,
// populating the derived identity and hash fields.
func NewDocument(name, content string) *Document {
	return &Document{
		Id:          IDFromContent(name),
		Name:        name,
		Content:     content,
		ContentHash: IDFromContent(content),
		Size:        int64(len(content)),
	}
}

// MatchType identifies the granularity of the candidate a search result
// came from.
type MatchType string

const (
	// MatchParagraph marks a result scored as a whole paragraph.
	MatchParagraph MatchType = "paragraph"
	// MatchLine marks a result scored as a single line.
	MatchLine MatchType = "line"
)

// SearchResult is a single ranked hit from the keyword search engine.
type SearchResult struct {
	Snippet       string
	Score         float64
	FileSource    string
	LineNumber    int
	ContextBefore string
	ContextAfter  string
	MatchType     MatchType
}
