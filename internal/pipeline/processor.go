package pipeline

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/idparse/constants"
	"github.com/joseph-ayodele/idparse/internal/entity"
	"github.com/joseph-ayodele/idparse/internal/ocrtext"
	"github.com/joseph-ayodele/idparse/internal/repository"
)

// Processor records incoming OCR text as a job, then runs the parse stage.
type Processor struct {
	Logger    *slog.Logger
	Jobs      repository.JobRepository
	Parse     *ParseStage
	Normalize bool // run ocrtext.Normalize before extraction
}

func NewProcessor(logger *slog.Logger, jobs repository.JobRepository, parse *ParseStage, normalize bool) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Jobs: jobs, Parse: parse, Normalize: normalize}
}

// ProcessText creates a job for rawText and runs extraction on it.
// Returns the jobID in every case where the job row was created.
func (p *Processor) ProcessText(ctx context.Context, docType, sourcePath, rawText string) (uuid.UUID, error) {
	if p.Normalize {
		rawText = ocrtext.Normalize(rawText)
	}
	job := &entity.ExtractionJob{
		ID:           uuid.New(),
		DocumentType: docType,
		SourcePath:   sourcePath,
		RawText:      rawText,
		Status:       string(constants.JobStatusQueued),
		StartedAt:    time.Now().UTC(),
	}
	if err := p.Jobs.Create(ctx, job); err != nil {
		p.Logger.Error("processor.create.failed", "source", sourcePath, "error", err)
		return uuid.Nil, err
	}

	if _, err := p.Parse.Run(ctx, job.ID); err != nil {
		p.Logger.Error("processor.parse.failed", "job_id", job.ID, "error", err)
		return job.ID, err
	}
	p.Logger.Info("processor.parse.ok", "job_id", job.ID, "document_type", docType)
	return job.ID, nil
}

// ProcessFile reads an OCR dump from disk and processes it.
func (p *Processor) ProcessFile(ctx context.Context, docType, path string) (uuid.UUID, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		p.Logger.Error("processor.read.failed", "path", path, "error", err)
		return uuid.Nil, err
	}
	return p.ProcessText(ctx, docType, path, string(b))
}
