// Package async fans stored OCR dumps out to a small worker pool.
package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit: a dump on disk plus the declared type.
type Job struct {
	Path         string
	DocumentType string
	SubmittedAt  time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// FileProcessor is what workers run for each job.
type FileProcessor interface {
	ProcessFile(ctx context.Context, docType, path string) (uuid.UUID, error)
}
