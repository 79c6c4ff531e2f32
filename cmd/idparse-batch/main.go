package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joseph-ayodele/idparse/internal/async"
	"github.com/joseph-ayodele/idparse/internal/common"
	"github.com/joseph-ayodele/idparse/internal/export"
	"github.com/joseph-ayodele/idparse/internal/fields"
	"github.com/joseph-ayodele/idparse/internal/ingest"
	"github.com/joseph-ayodele/idparse/internal/pipeline"
	repo "github.com/joseph-ayodele/idparse/internal/repository"
	"github.com/joseph-ayodele/idparse/internal/router"
)

func main() {
	// Structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()

	var (
		dir     = flag.String("dir", cfg.Ingest.Root, "directory of OCR text dumps (required)")
		defType = flag.String("type", cfg.Ingest.DefaultDocumentType, "document type for dumps not under a typed subdirectory")
		watch   = flag.Bool("watch", cfg.Ingest.Watch, "keep watching the directory after the initial scan")
		out     = flag.String("export", "", "write an XLSX report of parsed jobs to this path when done")
	)
	flag.Parse()
	cfg.Ingest.Root = *dir
	cfg.Ingest.DefaultDocumentType = *defType
	cfg.Ingest.Watch = *watch

	if cfg.Ingest.Root == "" {
		logger.Error("missing ingest root: pass -dir or set INGEST_ROOT")
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open audit store", "error", err)
		os.Exit(1)
	}
	defer store.Close(logger)

	if err := repo.HealthCheck(ctx, store, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping audit store", "error", err)
		os.Exit(1)
	}

	jobsRepo := repo.NewJobRepository(store, logger)
	rt := router.New(fields.Options{Honorific: cfg.Extract.Honorific}, logger)
	parseStage := pipeline.NewParseStage(logger, pipeline.Config{
		ValidateSchema: cfg.Extract.ValidateSchema,
	}, jobsRepo, rt)
	processor := pipeline.NewProcessor(logger, jobsRepo, parseStage, cfg.Extract.NormalizeText)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Extract.Workers),
		async.WithQueueSize(cfg.Extract.QueueSize),
		async.WithProcessTimeout(cfg.Extract.ProcessTimeout),
	)

	logger.Info("scanning for OCR dumps", "dir", cfg.Ingest.Root, "default_type", cfg.Ingest.DefaultDocumentType)
	items, stats, err := ingest.ScanDirectory(cfg.Ingest.Root, cfg.Ingest.DefaultDocumentType, nil, true)
	if err != nil {
		logger.Error("failed to scan directory", "error", err)
		os.Exit(1)
	}
	logger.Info("scan complete", "scanned", stats.Scanned, "matched", stats.Matched, "skipped", stats.Skipped)

	for _, item := range items {
		_ = queue.Enqueue(ctx, async.Job{
			Path:         item.Path,
			DocumentType: item.DocumentType,
			SubmittedAt:  time.Now().UTC(),
		})
	}

	if cfg.Ingest.Watch {
		evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:    []string{cfg.Ingest.Root},
			Debounce: cfg.Ingest.Debounce,
		}, logger)
		if err != nil {
			logger.Error("failed to start watcher", "error", err)
			os.Exit(1)
		}
		logger.Info("watching for new dumps", "dir", cfg.Ingest.Root)

	loop:
		for {
			select {
			case <-ctx.Done():
				break loop
			case path, ok := <-evCh:
				if !ok {
					break loop
				}
				_ = queue.Enqueue(ctx, async.Job{
					Path:         path,
					DocumentType: ingest.InferDocumentType(cfg.Ingest.Root, path, cfg.Ingest.DefaultDocumentType),
					SubmittedAt:  time.Now().UTC(),
				})
			case err, ok := <-errCh:
				if ok && err != nil {
					logger.Error("watcher error", "error", err)
				}
			}
		}
	}

	queue.Shutdown(context.Background())

	if *out != "" {
		exportPath := *out
		if filepath.Ext(exportPath) == "" {
			exportPath += ".xlsx"
		}
		svc := export.NewService(jobsRepo, logger)
		b, err := svc.ExportJobsXLSX(context.Background())
		if err != nil {
			logger.Error("failed to export report", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(exportPath, b, 0o644); err != nil {
			logger.Error("failed to write report", "path", exportPath, "error", err)
			os.Exit(1)
		}
		logger.Info("report written", "path", exportPath)
	}
}
