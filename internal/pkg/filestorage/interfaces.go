package filestorage

import (
	"github.com/google/uuid"
)

// ArchiveStorage defines the interface for keeping a copy of ingested
// CSV payloads so a batch can be inspected or replayed later.
type ArchiveStorage interface {
	// Archive stores the raw payload under the batch identifier and
	// returns the relative path it was stored at.
	Archive(subDir string, batchID uuid.UUID, originalName string, data []byte) (string, error)

	// Remove deletes an archived payload. Removing a missing file is
	// not an error.
	Remove(storedPath string) error

	// FullPath returns the full filesystem path for a stored path.
	FullPath(storedPath string) string
}
