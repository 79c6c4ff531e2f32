package router

import (
	"github.com/joseph-ayodele/idparse/constants"
)

// ResultSchema returns a JSON-Schema (draft 2020-12 subset) for the rendered
// record of a document type, as a generic map. Every known field is required;
// fields outside the type's applicable set may only carry the NotDetected
// sentinel.
func (r *Router) ResultSchema(docType constants.DocumentType) map[string]any {
	applicable := make(map[constants.FieldName]struct{})
	for _, f := range r.fieldSets[docType] {
		applicable[f] = struct{}{}
	}

	props := map[string]any{
		"document_type":  map[string]any{"const": string(docType)},
		"extracted_text": map[string]any{"type": "string"},
	}
	required := []string{"document_type", "extracted_text"}
	for _, f := range constants.AllFields() {
		if _, ok := applicable[f]; ok {
			props[string(f)] = map[string]any{"type": "string", "minLength": 1}
		} else {
			props[string(f)] = map[string]any{"const": constants.NotDetected}
		}
		required = append(required, string(f))
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}
