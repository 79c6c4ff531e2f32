// Package ingest discovers OCR text dumps on disk. The document type of a
// dump is inferred from the first path element under the ingest root
// (nid/…, bo_account/…, tin/…); unrecognized directories fall back to the
// configured default type.
package ingest

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/idparse/constants"
)

// Item is one discovered OCR dump.
type Item struct {
	Path         string
	DocumentType string
}

type DirStats struct {
	Scanned uint32
	Matched uint32
	Skipped uint32
}

// ScanDirectory walks root, filters by includeExts (or the defaults), skips
// hidden entries if requested, and infers each dump's document type from its
// location. Returns the discovered items plus aggregate stats.
func ScanDirectory(root, defaultType string, includeExts []string, skipHidden bool) ([]Item, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	exts := extSet(includeExts)

	var items []Item
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		stats.Scanned++
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			stats.Skipped++
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := exts[constants.NormalizeExt(filepath.Ext(path))]; !ok {
			stats.Skipped++
			return nil
		}
		stats.Matched++
		items = append(items, Item{
			Path:         path,
			DocumentType: InferDocumentType(root, path, defaultType),
		})
		return nil
	})
	if err != nil {
		return items, stats, err
	}
	return items, stats, nil
}

func extSet(includeExts []string) map[string]struct{} {
	if len(includeExts) == 0 {
		return constants.AllowedExtensions
	}
	exts := map[string]struct{}{}
	for _, e := range includeExts {
		e = constants.NormalizeExt(strings.TrimSpace(e))
		if e != "" {
			exts[e] = struct{}{}
		}
	}
	return exts
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
