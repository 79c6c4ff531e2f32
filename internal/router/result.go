package router

import (
	"encoding/json"

	"github.com/joseph-ayodele/idparse/constants"
)

// Result is the fixed-shape extraction record. Fields carries every known
// field name regardless of document type; nil means the field was either not
// applicable to the type or applicable but undetected. The two are
// deliberately conflated because downstream consumers already rely on that
// shape.
type Result struct {
	DocumentType  constants.DocumentType          `json:"document_type"`
	Fields        map[constants.FieldName]*string `json:"fields"`
	ExtractedText string                          `json:"extracted_text"`
}

// Field returns the detected value for name, if any.
func (r Result) Field(name constants.FieldName) (string, bool) {
	if v := r.Fields[name]; v != nil {
		return *v, true
	}
	return "", false
}

// Rendered is the user-facing map form: every field present, absences
// replaced with the NotDetected sentinel, the raw input echoed for audit.
func (r Result) Rendered() map[string]string {
	out := make(map[string]string, len(r.Fields)+2)
	for name, v := range r.Fields {
		if v == nil {
			out[string(name)] = constants.NotDetected
		} else {
			out[string(name)] = *v
		}
	}
	out["document_type"] = string(r.DocumentType)
	out["extracted_text"] = r.ExtractedText
	return out
}

// RenderedJSON is Rendered marshaled for storage and schema validation.
func (r Result) RenderedJSON() ([]byte, error) {
	return json.Marshal(r.Rendered())
}

// Detected counts fields with a matched value.
func (r Result) Detected() int {
	n := 0
	for _, v := range r.Fields {
		if v != nil {
			n++
		}
	}
	return n
}
