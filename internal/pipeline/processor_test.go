package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/joseph-ayodele/idparse/constants"
	"github.com/joseph-ayodele/idparse/internal/fields"
	"github.com/joseph-ayodele/idparse/internal/repository"
	"github.com/joseph-ayodele/idparse/internal/router"
)

func newTestProcessor(t *testing.T, normalize bool) (*Processor, repository.JobRepository) {
	t.Helper()
	store, err := repository.Open(context.Background(), repository.Config{
		DSN: filepath.Join(t.TempDir(), "pipeline_test.db"),
	}, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close(nil) })

	jobs := repository.NewJobRepository(store, nil)
	rt := router.New(fields.Options{}, nil)
	parse := NewParseStage(nil, Config{ValidateSchema: true}, jobs, rt)
	return NewProcessor(nil, jobs, parse, normalize), jobs
}

func TestProcessText(t *testing.T) {
	ctx := context.Background()
	proc, jobs := newTestProcessor(t, false)

	text := "MD: ZAKIR HOSSAIN Date of Birth 01/01/2000 ID No: 1234567890123"
	jobID, err := proc.ProcessText(ctx, "NID", "inline", text)
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	job, err := jobs.GetByID(ctx, jobID)
	if err != nil {
		t.Fatalf("load job: %v", err)
	}
	if job.Status != string(constants.JobStatusParsed) {
		t.Fatalf("status = %q", job.Status)
	}
	if job.FinishedAt == nil {
		t.Fatal("finished_at not set")
	}

	var record map[string]string
	if err := json.Unmarshal(job.ExtractedJSON, &record); err != nil {
		t.Fatalf("decode extracted: %v", err)
	}
	if record["name"] != "MD: ZAKIR HOSSAIN" {
		t.Fatalf("name = %q", record["name"])
	}
	if record["dob"] != "01/01/2000" {
		t.Fatalf("dob = %q", record["dob"])
	}
	if record["nid"] != "1234567890123" {
		t.Fatalf("nid = %q", record["nid"])
	}
	if record["tin"] != constants.NotDetected {
		t.Fatalf("tin = %q", record["tin"])
	}
	if record["document_type"] != "NID" {
		t.Fatalf("document_type = %q", record["document_type"])
	}
}

func TestProcessTextNormalizes(t *testing.T) {
	ctx := context.Background()
	proc, jobs := newTestProcessor(t, true)

	// The misread letter O only parses as part of the id after normalization.
	jobID, err := proc.ProcessText(ctx, "NID", "inline", "ID No:\t12O4567890123")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	job, err := jobs.GetByID(ctx, jobID)
	if err != nil {
		t.Fatal(err)
	}
	var record map[string]string
	if err := json.Unmarshal(job.ExtractedJSON, &record); err != nil {
		t.Fatal(err)
	}
	if record["nid"] != "1204567890123" {
		t.Fatalf("nid = %q", record["nid"])
	}
	if job.RawText != "ID No: 1204567890123" {
		t.Fatalf("stored raw text = %q", job.RawText)
	}
}

func TestProcessTextUnknownTypeStillParses(t *testing.T) {
	ctx := context.Background()
	proc, jobs := newTestProcessor(t, false)

	jobID, err := proc.ProcessText(ctx, "PASSPORT", "inline", "whatever")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	job, err := jobs.GetByID(ctx, jobID)
	if err != nil {
		t.Fatal(err)
	}
	if job.Status != string(constants.JobStatusParsed) {
		t.Fatalf("status = %q", job.Status)
	}
	var record map[string]string
	if err := json.Unmarshal(job.ExtractedJSON, &record); err != nil {
		t.Fatal(err)
	}
	for _, f := range constants.AllFields() {
		if record[string(f)] != constants.NotDetected {
			t.Errorf("%s = %q, want sentinel", f, record[string(f)])
		}
	}
}

func TestProcessFile(t *testing.T) {
	ctx := context.Background()
	proc, jobs := newTestProcessor(t, false)

	path := filepath.Join(t.TempDir(), "card.txt")
	if err := os.WriteFile(path, []byte("TIN: 123456789012"), 0o644); err != nil {
		t.Fatal(err)
	}

	jobID, err := proc.ProcessFile(ctx, "TIN", path)
	if err != nil {
		t.Fatalf("process file: %v", err)
	}
	job, err := jobs.GetByID(ctx, jobID)
	if err != nil {
		t.Fatal(err)
	}
	if job.SourcePath != path {
		t.Fatalf("source path = %q", job.SourcePath)
	}
	var record map[string]string
	if err := json.Unmarshal(job.ExtractedJSON, &record); err != nil {
		t.Fatal(err)
	}
	if record["tin"] != "123456789012" {
		t.Fatalf("tin = %q", record["tin"])
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := proc.ProcessFile(ctx, "TIN", filepath.Join(t.TempDir(), "absent.txt")); err == nil {
			t.Fatal("expected read error")
		}
	})
}
