// Package router dispatches a declared document type to the field extractors
// that apply to it and assembles the fixed-shape result record.
package router

import (
	"log/slog"

	"github.com/joseph-ayodele/idparse/constants"
	"github.com/joseph-ayodele/idparse/internal/fields"
)

// Extractor is a total function over OCR text: a matched substring or
// absence, never an error.
type Extractor func(text string) (string, bool)

// Router owns the extractor registry and the per-type applicable field sets.
// Routing is a pure function of (document type, text); the router carries no
// per-call state and is safe for concurrent use.
type Router struct {
	logger     *slog.Logger
	extractors map[constants.FieldName]Extractor
	fieldSets  map[constants.DocumentType][]constants.FieldName
}

// New builds a router over the stock extractor set. Name extraction is tuned
// through opts; zero Options entries fall back to the defaults.
func New(opts fields.Options, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	namex := fields.NewNameExtractor(opts)
	return &Router{
		logger: logger,
		extractors: map[constants.FieldName]Extractor{
			constants.FieldHolderName:  namex.Extract,
			constants.FieldDateOfBirth: fields.DateOfBirth,
			constants.FieldNIDNumber:   fields.NIDNumber,
			constants.FieldBOAccount:   fields.BOAccountNumber,
			constants.FieldTIN:         fields.TINNumber,
		},
		fieldSets: map[constants.DocumentType][]constants.FieldName{
			constants.NID:       {constants.FieldHolderName, constants.FieldDateOfBirth, constants.FieldNIDNumber},
			constants.BOAccount: {constants.FieldHolderName, constants.FieldDateOfBirth, constants.FieldBOAccount},
			constants.TIN:       {constants.FieldHolderName, constants.FieldTIN},
		},
	}
}

// Route runs the extractors applicable to docType over text in a single
// deterministic pass. An unrecognized type yields a well-formed all-absent
// record, never an error. Fields outside the type's set stay absent.
func (r *Router) Route(docType, text string) Result {
	res := Result{
		Fields:        make(map[constants.FieldName]*string, len(constants.AllFields())),
		ExtractedText: text,
	}
	for _, f := range constants.AllFields() {
		res.Fields[f] = nil
	}

	dt, known := constants.Canonicalize(docType)
	res.DocumentType = dt
	if !known {
		r.logger.Warn("router.unknown_document_type", "document_type", docType)
		return res
	}

	for _, f := range r.fieldSets[dt] {
		if v, ok := r.extractors[f](text); ok {
			value := v
			res.Fields[f] = &value
		}
	}
	return res
}

// FieldSet returns the fields applicable to docType (nil when unknown).
func (r *Router) FieldSet(docType constants.DocumentType) []constants.FieldName {
	set := r.fieldSets[docType]
	out := make([]constants.FieldName, len(set))
	copy(out, set)
	return out
}
