package badger

import (
	"fmt"

	"github.com/poiesic/opsassist/core"
)

// Key prefixes for different data types
const (
	documentPrefix     = "sopdoc"
	documentNamePrefix = "sopdocn"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// makeDocumentNameKey generates a key for the name index.
// Names sort lexicographically, so iterating the prefix yields documents
// in name order.
func makeDocumentNameKey(name string) []byte {
	prefix := documentNamePrefix + ":"
	buf := make([]byte, len(prefix)+len(name))
	offset := copy(buf, []byte(prefix))
	copy(buf[offset:], []byte(name))
	return buf
}
