package constants

import (
	"strings"
)

// DocumentType tags which identity document the OCR text came from. The set
// is open: callers may pass tags we have never seen, and the router answers
// those with an all-absent record instead of an error.
type DocumentType string

const (
	NID       DocumentType = "NID"
	BOAccount DocumentType = "BO_ACCOUNT"
	TIN       DocumentType = "TIN"
)

var allDocumentTypes = []DocumentType{NID, BOAccount, TIN}

// DocumentTypes returns the known document types in registration order.
func DocumentTypes() []DocumentType {
	out := make([]DocumentType, len(allDocumentTypes))
	copy(out, allDocumentTypes)
	return out
}

// Canonicalize folds caller-supplied spellings onto the canonical tag.
// Unknown inputs come back unchanged with ok=false so the router can still
// shape a record around them.
func Canonicalize(input string) (DocumentType, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	normalized = strings.NewReplacer("-", "_", " ", "_", ".", "").Replace(normalized)
	if normalized == "" {
		return DocumentType(input), false
	}

	// synonyms map
	synonyms := map[string]DocumentType{
		"NATIONAL_ID": NID,
		"NID_CARD":    NID,
		"BO":          BOAccount,
		"BO_ID":       BOAccount,
		"BO_AC":       BOAccount,
		"ETIN":        TIN,
		"E_TIN":       TIN,
	}

	if dt, ok := synonyms[normalized]; ok {
		return dt, true
	}

	for _, dt := range allDocumentTypes {
		if normalized == string(dt) {
			return dt, true
		}
	}

	return DocumentType(input), false
}
