// Package pipeline drives stored extraction jobs through field extraction.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/idparse/internal/repository"
	"github.com/joseph-ayodele/idparse/internal/router"
)

// Config holds behavior flags for the parse stage.
type Config struct {
	// ValidateSchema runs the rendered record through its per-type JSON
	// schema before persisting.
	ValidateSchema bool
}

type ParseStage struct {
	Logger *slog.Logger
	Cfg    Config
	Jobs   repository.JobRepository
	Router *router.Router
}

func NewParseStage(logger *slog.Logger, cfg Config, jobs repository.JobRepository, rt *router.Router) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseStage{Logger: logger, Cfg: cfg, Jobs: jobs, Router: rt}
}

// Run executes field extraction for an existing job (jobID).
// Preconditions: the job exists with raw text captured at ingest.
// Effects: writes extracted_json and advances status to PARSED or FAILED.
func (p *ParseStage) Run(ctx context.Context, jobID uuid.UUID) (router.Result, error) {
	job, err := p.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return router.Result{}, fmt.Errorf("load job: %w", err)
	}
	if err := p.Jobs.MarkRunning(ctx, job.ID); err != nil {
		return router.Result{}, fmt.Errorf("mark running: %w", err)
	}

	res := p.Router.Route(job.DocumentType, job.RawText)

	rendered, err := res.RenderedJSON()
	if err != nil {
		_ = p.Jobs.FinishFailure(ctx, job.ID, err.Error())
		return res, fmt.Errorf("encode result: %w", err)
	}
	if p.Cfg.ValidateSchema {
		schema := p.Router.ResultSchema(res.DocumentType)
		if err := router.ValidateJSONAgainstSchema(schema, rendered); err != nil {
			_ = p.Jobs.FinishFailure(ctx, job.ID, err.Error())
			return res, fmt.Errorf("result schema: %w", err)
		}
	}
	if err := p.Jobs.FinishSuccess(ctx, job.ID, rendered); err != nil {
		return res, err
	}

	p.Logger.Info("parse.fields.ok",
		"job_id", job.ID,
		"document_type", string(res.DocumentType),
		"text_bytes", len(job.RawText),
		"detected", res.Detected(),
	)
	return res, nil
}
