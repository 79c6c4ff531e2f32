package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/idparse/constants"
	"github.com/joseph-ayodele/idparse/internal/common"
	"github.com/joseph-ayodele/idparse/internal/entity"
)

// JobRepository persists extraction jobs and their status transitions.
type JobRepository interface {
	Create(ctx context.Context, job *entity.ExtractionJob) error
	MarkRunning(ctx context.Context, id uuid.UUID) error
	FinishSuccess(ctx context.Context, id uuid.UUID, extracted []byte) error
	FinishFailure(ctx context.Context, id uuid.UUID, message string) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractionJob, error)
	ListByStatus(ctx context.Context, status constants.JobStatus, limit int) ([]*entity.ExtractionJob, error)
	ListParsed(ctx context.Context) ([]*entity.ExtractionJob, error)
}

type jobRepository struct {
	store  *Store
	logger *slog.Logger
}

func NewJobRepository(store *Store, logger *slog.Logger) JobRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &jobRepository{store: store, logger: logger}
}

func (r *jobRepository) Create(ctx context.Context, job *entity.ExtractionJob) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.Status == "" {
		job.Status = string(constants.JobStatusQueued)
	}
	if job.StartedAt.IsZero() {
		job.StartedAt = time.Now().UTC()
	}
	_, err := r.store.DB.ExecContext(ctx, r.store.rebind(`
		INSERT INTO extraction_job (id, document_type, source_path, raw_text, status, started_at)
		VALUES (?, ?, ?, ?, ?, ?)`),
		job.ID.String(), job.DocumentType, job.SourcePath, job.RawText, job.Status,
		job.StartedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		r.logger.Error("job.create.failed", "job_id", job.ID, "error", err)
		return common.WrapError(err, "insert extraction job")
	}
	r.logger.Debug("job.created", "job_id", job.ID, "document_type", job.DocumentType)
	return nil
}

func (r *jobRepository) MarkRunning(ctx context.Context, id uuid.UUID) error {
	return r.setStatus(ctx, id, constants.JobStatusRunning)
}

func (r *jobRepository) setStatus(ctx context.Context, id uuid.UUID, status constants.JobStatus) error {
	res, err := r.store.DB.ExecContext(ctx,
		r.store.rebind(`UPDATE extraction_job SET status = ? WHERE id = ?`),
		string(status), id.String(),
	)
	if err != nil {
		return common.WrapError(err, "update job status")
	}
	return requireRow(res)
}

func (r *jobRepository) FinishSuccess(ctx context.Context, id uuid.UUID, extracted []byte) error {
	res, err := r.store.DB.ExecContext(ctx, r.store.rebind(`
		UPDATE extraction_job
		SET status = ?, extracted_json = ?, error_message = NULL, finished_at = ?
		WHERE id = ?`),
		string(constants.JobStatusParsed), string(extracted),
		time.Now().UTC().Format(time.RFC3339Nano), id.String(),
	)
	if err != nil {
		return common.WrapError(err, "finish job success")
	}
	return requireRow(res)
}

func (r *jobRepository) FinishFailure(ctx context.Context, id uuid.UUID, message string) error {
	res, err := r.store.DB.ExecContext(ctx, r.store.rebind(`
		UPDATE extraction_job
		SET status = ?, error_message = ?, finished_at = ?
		WHERE id = ?`),
		string(constants.JobStatusFailed), message,
		time.Now().UTC().Format(time.RFC3339Nano), id.String(),
	)
	if err != nil {
		return common.WrapError(err, "finish job failure")
	}
	return requireRow(res)
}

const jobColumns = `id, document_type, source_path, raw_text, status, error_message, extracted_json, started_at, finished_at`

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractionJob, error) {
	row := r.store.DB.QueryRowContext(ctx,
		r.store.rebind(`SELECT `+jobColumns+` FROM extraction_job WHERE id = ?`),
		id.String(),
	)
	job, err := scanJob(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NewAppError("JOB_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	if err != nil {
		return nil, common.WrapError(err, "load extraction job")
	}
	return job, nil
}

func (r *jobRepository) ListByStatus(ctx context.Context, status constants.JobStatus, limit int) ([]*entity.ExtractionJob, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.store.DB.QueryContext(ctx, r.store.rebind(
		`SELECT `+jobColumns+` FROM extraction_job WHERE status = ? ORDER BY started_at LIMIT ?`),
		string(status), limit,
	)
	if err != nil {
		return nil, common.WrapError(err, "list jobs by status")
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *jobRepository) ListParsed(ctx context.Context) ([]*entity.ExtractionJob, error) {
	rows, err := r.store.DB.QueryContext(ctx, r.store.rebind(
		`SELECT `+jobColumns+` FROM extraction_job WHERE status = ? ORDER BY started_at`),
		string(constants.JobStatusParsed),
	)
	if err != nil {
		return nil, common.WrapError(err, "list parsed jobs")
	}
	defer rows.Close()
	return collectJobs(rows)
}

func collectJobs(rows *sql.Rows) ([]*entity.ExtractionJob, error) {
	var jobs []*entity.ExtractionJob
	for rows.Next() {
		job, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func scanJob(scan func(dest ...any) error) (*entity.ExtractionJob, error) {
	var (
		job        entity.ExtractionJob
		idStr      string
		errMsg     sql.NullString
		extracted  sql.NullString
		startedAt  string
		finishedAt sql.NullString
	)
	if err := scan(&idStr, &job.DocumentType, &job.SourcePath, &job.RawText,
		&job.Status, &errMsg, &extracted, &startedAt, &finishedAt); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse job id %q: %w", idStr, err)
	}
	job.ID = id
	if errMsg.Valid {
		job.ErrorMessage = &errMsg.String
	}
	if extracted.Valid {
		job.ExtractedJSON = []byte(extracted.String)
	}
	job.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return nil, fmt.Errorf("parse started_at %q: %w", startedAt, err)
	}
	if finishedAt.Valid {
		t, err := time.Parse(time.RFC3339Nano, finishedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parse finished_at %q: %w", finishedAt.String, err)
		}
		job.FinishedAt = &t
	}
	return &job, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
