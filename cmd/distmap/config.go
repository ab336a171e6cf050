package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/hupe1980/distmap"
)

// Config validation errors
var (
	ErrInvalidLogFormat        = errors.New("log_format must be 'json' or 'text'")
	ErrInvalidLogLevel         = errors.New("log_level must be debug, info, warn, or error")
	ErrInvalidProgressInterval = errors.New("progress_interval must be positive")
)

// Config holds environment-driven defaults. Every field maps to a
// DISTMAP_-prefixed environment variable; command-line flags override it.
type Config struct {
	Delimiter        string        `envconfig:"DELIMITER" default:" "`
	LogFormat        string        `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info"`
	ProgressInterval time.Duration `envconfig:"PROGRESS_INTERVAL" default:"5s"`

	// S3 upload target (credentials resolve through the standard AWS chain)
	S3Bucket string `envconfig:"S3_BUCKET"`
	S3Prefix string `envconfig:"S3_PREFIX"`

	// MinIO upload target
	MinioEndpoint  string `envconfig:"MINIO_ENDPOINT"`
	MinioBucket    string `envconfig:"MINIO_BUCKET"`
	MinioPrefix    string `envconfig:"MINIO_PREFIX"`
	MinioAccessKey string `envconfig:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `envconfig:"MINIO_SECRET_KEY"`
	MinioUseSSL    bool   `envconfig:"MINIO_USE_SSL" default:"true"`
}

// Validate checks the configuration and returns an error if invalid.
func (c Config) Validate() error {
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return ErrInvalidLogFormat
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.ProgressInterval <= 0 {
		return ErrInvalidProgressInterval
	}
	return nil
}

// loadConfig reads a .env file when present, then fills Config from
// DISTMAP_* environment variables.
func loadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("DISTMAP", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, ErrInvalidLogLevel
	}
}

func newLogger(cfg Config) (*distmap.Logger, error) {
	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.LogFormat == "json" {
		return distmap.NewJSONLogger(level), nil
	}
	return distmap.NewTextLogger(level), nil
}
