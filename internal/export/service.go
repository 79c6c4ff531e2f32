// Package export renders parsed extraction jobs as XLSX workbooks.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/idparse/constants"
	"github.com/joseph-ayodele/idparse/internal/entity"
	"github.com/joseph-ayodele/idparse/internal/repository"
)

// Service is a tiny façade over the job repository that produces XLSX bytes.
type Service struct {
	jobs   repository.JobRepository
	logger *slog.Logger
}

func NewService(jobs repository.JobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobs: jobs, logger: logger}
}

// ExportJobsXLSX returns an XLSX workbook (as bytes) of every parsed job:
// one row per job, one column per known field, absences rendered with the
// NotDetected sentinel exactly as stored.
func (s *Service) ExportJobsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	jobs, err := s.jobs.ListParsed(ctx)
	if err != nil {
		return nil, fmt.Errorf("query parsed jobs: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Extractions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Job ID", "Document Type"}
	for _, field := range constants.AllFields() {
		headers = append(headers, headerFor(field))
	}
	headers = append(headers, "Source Path", "Parsed At")
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, job := range jobs {
		rendered := renderedFields(job)

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		col := 1
		write(col, job.ID.String())
		col++
		write(col, job.DocumentType)
		for _, field := range constants.AllFields() {
			col++
			v := rendered[string(field)]
			if v == "" {
				v = constants.NotDetected
			}
			write(col, v)
		}
		col++
		write(col, job.SourcePath)
		col++
		if job.FinishedAt != nil {
			write(col, job.FinishedAt.UTC().Format(time.RFC3339))
		} else {
			write(col, "")
		}

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 38) // job id
	_ = f.SetColWidth(sheet, "B", "B", 14) // document type
	_ = f.SetColWidth(sheet, "C", "C", 28) // name
	_ = f.SetColWidth(sheet, "D", "G", 18) // dob + numbers
	_ = f.SetColWidth(sheet, "H", "H", 48) // source path
	_ = f.SetColWidth(sheet, "I", "I", 22) // parsed at

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(jobs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func renderedFields(job *entity.ExtractionJob) map[string]string {
	out := map[string]string{}
	if len(job.ExtractedJSON) == 0 {
		return out
	}
	// Stored records are the rendered map; a decode failure just leaves the
	// field columns at NotDetected.
	_ = json.Unmarshal(job.ExtractedJSON, &out)
	return out
}

func headerFor(field constants.FieldName) string {
	switch field {
	case constants.FieldHolderName:
		return "Name"
	case constants.FieldDateOfBirth:
		return "Date of Birth"
	case constants.FieldNIDNumber:
		return "NID Number"
	case constants.FieldBOAccount:
		return "BO Account"
	case constants.FieldTIN:
		return "TIN"
	default:
		return string(field)
	}
}
