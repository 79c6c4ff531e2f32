package constants

import "strings"

// AllowedExtensions holds the default OCR text dump extensions the batch
// ingestor picks up.
var AllowedExtensions = map[string]struct{}{
	"txt":  {},
	"text": {},
	"ocr":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
