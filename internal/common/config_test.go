package common

import (
	"errors"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"DB_URL", "DB_MAX_CONNS", "INGEST_ROOT", "DOC_TYPE_DEFAULT",
		"INGEST_WATCH", "INGEST_DEBOUNCE", "NAME_HONORIFIC",
		"EXTRACT_NORMALIZE", "EXTRACT_VALIDATE", "EXTRACT_WORKERS",
		"EXTRACT_QUEUE_SIZE", "EXTRACT_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	if cfg.Database.DSN != "idparse.db" {
		t.Errorf("DSN = %q", cfg.Database.DSN)
	}
	if cfg.Ingest.DefaultDocumentType != "NID" {
		t.Errorf("default type = %q", cfg.Ingest.DefaultDocumentType)
	}
	if cfg.Ingest.Watch {
		t.Error("watch defaults on")
	}
	if cfg.Ingest.Debounce != 500*time.Millisecond {
		t.Errorf("debounce = %v", cfg.Ingest.Debounce)
	}
	if !cfg.Extract.NormalizeText || !cfg.Extract.ValidateSchema {
		t.Error("extraction toggles default off")
	}
	if cfg.Extract.Workers != 4 || cfg.Extract.QueueSize != 256 {
		t.Errorf("workers = %d, queue = %d", cfg.Extract.Workers, cfg.Extract.QueueSize)
	}
	if cfg.Extract.ProcessTimeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.Extract.ProcessTimeout)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://u:p@localhost:5432/idparse")
	t.Setenv("DOC_TYPE_DEFAULT", "TIN")
	t.Setenv("INGEST_WATCH", "true")
	t.Setenv("INGEST_DEBOUNCE", "2s")
	t.Setenv("EXTRACT_WORKERS", "8")
	t.Setenv("EXTRACT_NORMALIZE", "false")
	t.Setenv("EXTRACT_TIMEOUT", "not-a-duration")

	cfg := LoadConfig()
	if cfg.Database.DSN != "postgres://u:p@localhost:5432/idparse" {
		t.Errorf("DSN = %q", cfg.Database.DSN)
	}
	if cfg.Ingest.DefaultDocumentType != "TIN" {
		t.Errorf("default type = %q", cfg.Ingest.DefaultDocumentType)
	}
	if !cfg.Ingest.Watch || cfg.Ingest.Debounce != 2*time.Second {
		t.Errorf("watch = %v, debounce = %v", cfg.Ingest.Watch, cfg.Ingest.Debounce)
	}
	if cfg.Extract.Workers != 8 {
		t.Errorf("workers = %d", cfg.Extract.Workers)
	}
	if cfg.Extract.NormalizeText {
		t.Error("normalize override ignored")
	}
	// Unparseable values fall back to the default.
	if cfg.Extract.ProcessTimeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.Extract.ProcessTimeout)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{
			Database: DatabaseConfig{DSN: "idparse.db"},
			Extract:  ExtractConfig{Workers: 4, QueueSize: 256},
		}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("validate: %v", err)
		}
	})

	t.Run("missing dsn", func(t *testing.T) {
		cfg := &Config{Extract: ExtractConfig{Workers: 4, QueueSize: 256}}
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("bad worker count", func(t *testing.T) {
		cfg := &Config{
			Database: DatabaseConfig{DSN: "idparse.db"},
			Extract:  ExtractConfig{Workers: 0, QueueSize: 256},
		}
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("got %v", err)
		}
	})
}
