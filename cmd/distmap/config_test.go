package main

import (
	"testing"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, envconfig.Process("DISTMAP", &cfg))

	assert.Equal(t, " ", cfg.Delimiter)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.ProgressInterval)
	assert.True(t, cfg.MinioUseSSL)
	assert.NoError(t, cfg.Validate())
}

func TestConfigEnvVars(t *testing.T) {
	t.Setenv("DISTMAP_DELIMITER", ",")
	t.Setenv("DISTMAP_LOG_FORMAT", "json")
	t.Setenv("DISTMAP_LOG_LEVEL", "debug")
	t.Setenv("DISTMAP_PROGRESS_INTERVAL", "30s")
	t.Setenv("DISTMAP_S3_BUCKET", "distmats")
	t.Setenv("DISTMAP_S3_PREFIX", "subject-01")

	var cfg Config
	require.NoError(t, envconfig.Process("DISTMAP", &cfg))

	assert.Equal(t, ",", cfg.Delimiter)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.ProgressInterval)
	assert.Equal(t, "distmats", cfg.S3Bucket)
	assert.Equal(t, "subject-01", cfg.S3Prefix)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.LogFormat = "yaml" },
			wantErr: ErrInvalidLogFormat,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "trace" },
			wantErr: ErrInvalidLogLevel,
		},
		{
			name:    "zero progress interval",
			mutate:  func(c *Config) { c.ProgressInterval = 0 },
			wantErr: ErrInvalidProgressInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Delimiter:        " ",
				LogFormat:        "text",
				LogLevel:         "info",
				ProgressInterval: time.Second,
			}
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}
