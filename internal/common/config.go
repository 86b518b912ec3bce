package common

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ConfigName is the optional config file (document-sorter.yaml) read from the working directory.
const ConfigName = "document-sorter"

// Config holds all application configuration
type Config struct {
	Paths  PathsConfig
	LLM    LLMConfig
	PDF    PDFConfig
	Export ExportConfig
	Ledger LedgerConfig
	Log    LogConfig
}

// PathsConfig holds the input and output directories
type PathsConfig struct {
	SourceDir string
	OutputDir string
}

// LLMConfig holds LLM-related configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// PDFConfig holds text extraction settings
type PDFConfig struct {
	Validate bool
}

// ExportConfig holds manifest settings
type ExportConfig struct {
	XLSX bool
}

// LedgerConfig holds run-history database settings. An empty DSN disables the ledger.
type LedgerConfig struct {
	DSN         string
	MaxConns    int32
	DialTimeout time.Duration
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string
	Format string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SOURCE_DIR", "./pdfs")
	v.SetDefault("OUTPUT_DIR", "./output")

	v.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_BASE_URL", "")
	v.SetDefault("OPENAI_TEMPERATURE", 0.0)
	v.SetDefault("OPENAI_TIMEOUT", 60*time.Second)

	v.SetDefault("PDF_VALIDATE", false)
	v.SetDefault("EXPORT_XLSX", true)

	v.SetDefault("LEDGER_DSN", "")
	v.SetDefault("LEDGER_MAX_CONNS", 4)
	v.SetDefault("LEDGER_DIAL_TIMEOUT", 3*time.Second)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// LoadConfig loads configuration from environment variables, falling back to
// document-sorter.yaml in the working directory and then to built-in defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, NewAppError("CONFIG_ERROR", "read config file", err)
		}
	}
	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Paths: PathsConfig{
			SourceDir: v.GetString("SOURCE_DIR"),
			OutputDir: v.GetString("OUTPUT_DIR"),
		},
		LLM: LLMConfig{
			Model:       v.GetString("OPENAI_MODEL"),
			APIKey:      v.GetString("OPENAI_API_KEY"),
			BaseURL:     v.GetString("OPENAI_BASE_URL"),
			Temperature: float32(v.GetFloat64("OPENAI_TEMPERATURE")),
			Timeout:     v.GetDuration("OPENAI_TIMEOUT"),
		},
		PDF: PDFConfig{
			Validate: v.GetBool("PDF_VALIDATE"),
		},
		Export: ExportConfig{
			XLSX: v.GetBool("EXPORT_XLSX"),
		},
		Ledger: LedgerConfig{
			DSN:         v.GetString("LEDGER_DSN"),
			MaxConns:    v.GetInt32("LEDGER_MAX_CONNS"),
			DialTimeout: v.GetDuration("LEDGER_DIAL_TIMEOUT"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
	}
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	val := NewValidator().
		Field("OPENAI_API_KEY", c.LLM.APIKey, Required).
		Field("SOURCE_DIR", c.Paths.SourceDir, Required).
		Field("OUTPUT_DIR", c.Paths.OutputDir, Required).
		Field("LOG_LEVEL", c.Log.Level, OneOf("debug", "info", "warn", "error")).
		Field("LOG_FORMAT", c.Log.Format, OneOf("text", "json"))
	if val.HasErrors() {
		return NewAppError("CONFIG_ERROR", val.ErrorMessage(), ErrInvalidConfig)
	}
	if c.LLM.Timeout <= 0 {
		return NewAppError("CONFIG_ERROR", fmt.Sprintf("OPENAI_TIMEOUT must be positive, got %s", c.LLM.Timeout), ErrInvalidConfig)
	}
	return nil
}
