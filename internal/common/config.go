package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Ingest   IngestConfig
	Extract  ExtractConfig
}

// DatabaseConfig holds audit-store configuration
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// IngestConfig holds OCR-dump discovery configuration
type IngestConfig struct {
	Root                string
	DefaultDocumentType string
	Watch               bool
	Debounce            time.Duration
}

// ExtractConfig holds extraction-pipeline configuration
type ExtractConfig struct {
	Honorific      string
	NormalizeText  bool
	ValidateSchema bool
	Workers        int
	QueueSize      int
	ProcessTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", "idparse.db"),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Ingest: IngestConfig{
			Root:                getEnv("INGEST_ROOT", ""),
			DefaultDocumentType: getEnv("DOC_TYPE_DEFAULT", "NID"),
			Watch:               getEnvAsBool("INGEST_WATCH", false),
			Debounce:            getEnvAsDuration("INGEST_DEBOUNCE", 500*time.Millisecond),
		},
		Extract: ExtractConfig{
			Honorific:      getEnv("NAME_HONORIFIC", ""),
			NormalizeText:  getEnvAsBool("EXTRACT_NORMALIZE", true),
			ValidateSchema: getEnvAsBool("EXTRACT_VALIDATE", true),
			Workers:        getEnvAsInt("EXTRACT_WORKERS", 4),
			QueueSize:      getEnvAsInt("EXTRACT_QUEUE_SIZE", 256),
			ProcessTimeout: getEnvAsDuration("EXTRACT_TIMEOUT", 30*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Extract.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "EXTRACT_WORKERS must be positive", ErrInvalidInput)
	}
	if c.Extract.QueueSize <= 0 {
		return NewAppError("CONFIG_ERROR", "EXTRACT_QUEUE_SIZE must be positive", ErrInvalidInput)
	}
	return nil
}
