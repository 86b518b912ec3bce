package common

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "./pdfs", cfg.Paths.SourceDir)
	assert.Equal(t, "./output", cfg.Paths.OutputDir)
	assert.Equal(t, "gpt-3.5-turbo", cfg.LLM.Model)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, float32(0), cfg.LLM.Temperature)
	assert.False(t, cfg.PDF.Validate)
	assert.True(t, cfg.Export.XLSX)
	assert.Empty(t, cfg.Ledger.DSN)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:11434/v1")
	t.Setenv("OPENAI_TEMPERATURE", "0.2")
	t.Setenv("OPENAI_TIMEOUT", "15s")
	t.Setenv("SOURCE_DIR", "/data/in")
	t.Setenv("OUTPUT_DIR", "/data/out")
	t.Setenv("PDF_VALIDATE", "true")
	t.Setenv("EXPORT_XLSX", "false")
	t.Setenv("LEDGER_DSN", "ledger.db")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "http://localhost:11434/v1", cfg.LLM.BaseURL)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 1e-6)
	assert.Equal(t, 15*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "/data/in", cfg.Paths.SourceDir)
	assert.Equal(t, "/data/out", cfg.Paths.OutputDir)
	assert.True(t, cfg.PDF.Validate)
	assert.False(t, cfg.Export.XLSX)
	assert.Equal(t, "ledger.db", cfg.Ledger.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Paths: PathsConfig{SourceDir: "./pdfs", OutputDir: "./output"},
			LLM:   LLMConfig{APIKey: "sk", Timeout: time.Second},
			Log:   LogConfig{Level: "info", Format: "text"},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"missing api key", func(c *Config) { c.LLM.APIKey = "" }, "OPENAI_API_KEY"},
		{"blank source dir", func(c *Config) { c.Paths.SourceDir = " " }, "SOURCE_DIR"},
		{"missing output dir", func(c *Config) { c.Paths.OutputDir = "" }, "OUTPUT_DIR"},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "LOG_FORMAT"},
		{"zero timeout", func(c *Config) { c.LLM.Timeout = 0 }, "OPENAI_TIMEOUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.field)

			var appErr *AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "CONFIG_ERROR", appErr.Code)
		})
	}
}

func TestWrapf(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrapf(ErrCopy, cause, "copy %s", "a.pdf")
	assert.ErrorIs(t, err, ErrCopy)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "file copy failed: copy a.pdf: disk full", err.Error())
	assert.NoError(t, Wrapf(ErrCopy, nil, "x"))
}

func TestWrapError(t *testing.T) {
	cause := errors.New("boom")
	assert.ErrorIs(t, WrapError(cause, "ctx"), cause)
	assert.Nil(t, WrapError(nil, "ctx"))
}

func TestRunIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RunIDFromContext(ctx))
	ctx = WithRunID(ctx, "run-1")
	ctx = WithRequestID(ctx, "req-1")
	assert.Equal(t, "run-1", RunIDFromContext(ctx))
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(LogConfig{Level: "warn", Format: "json"}, &buf).Info("hidden")
	assert.Empty(t, buf.String())

	NewLogger(LogConfig{Level: "warn", Format: "json"}, &buf).Warn("shown", "k", "v")
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	NewLogger(LogConfig{Level: "debug", Format: "text"}, &buf).Debug("dbg")
	assert.Contains(t, buf.String(), "msg=dbg")
}
