// Package entity holds the data-transfer shapes that move between the
// repository, pipeline and export layers.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractionJob is one OCR-text parse request as it moves between layers.
// RawText is captured once at ingest and never mutated; ExtractedJSON is the
// rendered result record written by the parse stage.
type ExtractionJob struct {
	ID            uuid.UUID       `json:"id"`
	DocumentType  string          `json:"document_type"`
	SourcePath    string          `json:"source_path,omitempty"`
	RawText       string          `json:"raw_text"`
	Status        string          `json:"status"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    *time.Time      `json:"finished_at,omitempty"`
}
