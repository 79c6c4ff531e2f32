// Package repository persists extraction jobs in the audit store. Postgres
// DSNs go through a pgx pool; anything else is treated as a sqlite path, so
// the batch tools run without any server at hand.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite"
)

// Store wraps the audit database together with the dialect it speaks.
type Store struct {
	DB      *sql.DB
	pool    *pgxpool.Pool // nil for sqlite
	dialect string
}

// Open connects to the audit store and ensures the schema exists.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var (
		store *Store
		err   error
	)
	if isPostgresDSN(cfg.DSN) {
		store, err = openPostgres(ctx, cfg, logger)
	} else {
		store, err = openSQLite(ctx, cfg, logger)
	}
	if err != nil {
		return nil, err
	}
	if err := ensureSchema(ctx, store.DB); err != nil {
		store.Close(logger)
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	logger.Info("audit store ready", "dialect", store.dialect)
	return store, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// openPostgres creates a pgx pool and wraps it as *sql.DB.
func openPostgres(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	logger.Info("connecting to database", "dsn", cfg.DSN)
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to parse database config", "error", err)
		return nil, err
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "idparse"

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, err
	}

	return &Store{DB: stdlib.OpenDBFromPool(pool), pool: pool, dialect: dialectPostgres}, nil
}

func openSQLite(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	logger.Info("opening sqlite audit store", "path", cfg.DSN)
	db, err := sql.Open("sqlite", cfg.DSN)
	if err != nil {
		logger.Error("failed to open sqlite store", "error", err)
		return nil, err
	}
	// modernc's driver serializes writes per connection; one is enough here.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{DB: db, dialect: dialectSQLite}, nil
}

// Timestamps are stored as RFC 3339 text so both dialects scan identically.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS extraction_job (
	id             TEXT PRIMARY KEY,
	document_type  TEXT NOT NULL,
	source_path    TEXT NOT NULL DEFAULT '',
	raw_text       TEXT NOT NULL,
	status         TEXT NOT NULL,
	error_message  TEXT,
	extracted_json TEXT,
	started_at     TEXT NOT NULL,
	finished_at    TEXT
);
CREATE INDEX IF NOT EXISTS extraction_job_status_idx ON extraction_job (status);
`

func ensureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}

// rebind converts ?-style placeholders to the dialect's form.
func (s *Store) rebind(query string) string {
	if s.dialect != dialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Close closes the database connections gracefully
func (s *Store) Close(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			logger.Error("failed to close audit store", "error", err)
		}
	}
	if s.pool != nil {
		s.pool.Close()
	}
}

// HealthCheck pings the store to catch DSN issues early.
func HealthCheck(ctx context.Context, store *Store, timeout time.Duration, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("pinging audit store")
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return store.DB.PingContext(ctx)
}
