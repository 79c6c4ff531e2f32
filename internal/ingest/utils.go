package ingest

import (
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/idparse/constants"
)

// InferDocumentType maps a dump's location under root to a document type
// tag: first path element, canonicalized. Dumps directly under root, or
// under a directory that is not a known tag, get defaultType.
func InferDocumentType(root, path, defaultType string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return defaultType
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 2 {
		return defaultType
	}
	if dt, ok := constants.Canonicalize(parts[0]); ok {
		return string(dt)
	}
	return defaultType
}
