package export

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/idparse/constants"
	"github.com/joseph-ayodele/idparse/internal/fields"
	"github.com/joseph-ayodele/idparse/internal/pipeline"
	"github.com/joseph-ayodele/idparse/internal/repository"
	"github.com/joseph-ayodele/idparse/internal/router"
)

func seedRepo(t *testing.T) repository.JobRepository {
	t.Helper()
	store, err := repository.Open(context.Background(), repository.Config{
		DSN: filepath.Join(t.TempDir(), "export_test.db"),
	}, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close(nil) })

	jobs := repository.NewJobRepository(store, nil)
	rt := router.New(fields.Options{}, nil)
	parse := pipeline.NewParseStage(nil, pipeline.Config{ValidateSchema: true}, jobs, rt)
	proc := pipeline.NewProcessor(nil, jobs, parse, false)

	ctx := context.Background()
	if _, err := proc.ProcessText(ctx, "NID",
		"/dumps/nid/a.txt",
		"MD: ZAKIR HOSSAIN Date of Birth 01/01/2000 ID No: 1234567890123"); err != nil {
		t.Fatalf("seed nid job: %v", err)
	}
	if _, err := proc.ProcessText(ctx, "TIN",
		"/dumps/tin/b.txt",
		"Name: RAHIM UDDIN TIN: 123456789012"); err != nil {
		t.Fatalf("seed tin job: %v", err)
	}
	return jobs
}

func TestExportJobsXLSX(t *testing.T) {
	jobs := seedRepo(t)
	svc := NewService(jobs, nil)

	b, err := svc.ExportJobsXLSX(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Extractions")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2 jobs", len(rows))
	}

	wantHeader := []string{"Job ID", "Document Type", "Name", "Date of Birth", "NID Number", "BO Account", "TIN", "Source Path", "Parsed At"}
	for i, h := range wantHeader {
		if rows[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], h)
		}
	}

	byPath := map[string][]string{}
	for _, row := range rows[1:] {
		byPath[row[7]] = row
	}

	nid := byPath["/dumps/nid/a.txt"]
	if nid == nil {
		t.Fatal("nid job row missing")
	}
	if nid[1] != "NID" || nid[2] != "MD: ZAKIR HOSSAIN" || nid[3] != "01/01/2000" || nid[4] != "1234567890123" {
		t.Fatalf("nid row = %v", nid)
	}
	if nid[5] != constants.NotDetected || nid[6] != constants.NotDetected {
		t.Fatalf("absent fields not rendered with sentinel: %v", nid)
	}
	if nid[8] == "" {
		t.Fatal("parsed-at column empty")
	}

	tin := byPath["/dumps/tin/b.txt"]
	if tin == nil {
		t.Fatal("tin job row missing")
	}
	if tin[1] != "TIN" || tin[2] != "RAHIM UDDIN" || tin[6] != "123456789012" {
		t.Fatalf("tin row = %v", tin)
	}
}

func TestExportJobsXLSXEmpty(t *testing.T) {
	store, err := repository.Open(context.Background(), repository.Config{
		DSN: filepath.Join(t.TempDir(), "empty_test.db"),
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close(nil) })

	svc := NewService(repository.NewJobRepository(store, nil), nil)
	b, err := svc.ExportJobsXLSX(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := f.GetRows("Extractions")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want header only", len(rows))
	}
}
