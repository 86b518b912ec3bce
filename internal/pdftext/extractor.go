package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/joseph-ayodele/document-sorter/internal/extract"
)

const MethodPDFText = "pdf-text"

type Config struct {
	// Validate runs a relaxed pdfcpu structure check before reading text.
	Validate bool
}

// Extractor implements extract.TextExtractor on top of an Engine.
type Extractor struct {
	cfg    Config
	engine Engine
	logger *slog.Logger
}

var disableConfigDir sync.Once

func NewExtractor(cfg Config, engine Engine, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if engine == nil {
		engine = NewLedongEngine(logger)
	}
	if cfg.Validate {
		disableConfigDir.Do(api.DisableConfigDir)
	}
	return &Extractor{cfg: cfg, engine: engine, logger: logger}
}

var _ extract.TextExtractor = (*Extractor)(nil)

// Extract returns the reconstructed text of the PDF at path.
func (e *Extractor) Extract(ctx context.Context, path string) (extract.TextExtractionResult, error) {
	start := time.Now()
	e.logger.Debug("pdftext.extract.start", "path", path, "validate", e.cfg.Validate)

	var warns []string
	if e.cfg.Validate {
		if err := validate(path); err != nil {
			e.logger.Warn("pdftext.validate.failed", "path", path, "error", err)
			return extract.TextExtractionResult{Method: MethodPDFText}, fmt.Errorf("validate pdf: %w", err)
		}
	}

	pages, err := e.engine.Pages(ctx, path)
	if err != nil {
		e.logger.Error("pdftext.extract.failed",
			"path", path, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.TextExtractionResult{Method: MethodPDFText}, err
	}

	lines := ReconstructLines(pages)
	frags := CountFragments(pages)
	if frags == 0 {
		warns = append(warns, "no text layer")
	}
	res := extract.TextExtractionResult{
		Text:      strings.Join(lines, "\n"),
		Pages:     len(pages),
		Fragments: frags,
		Lines:     len(lines),
		Method:    MethodPDFText,
		Duration:  time.Since(start),
		Warnings:  warns,
	}
	e.logger.Info("pdftext.extract.ok",
		"path", path,
		"pages", res.Pages,
		"fragments", res.Fragments,
		"lines", res.Lines,
		"chars", len(res.Text),
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

func validate(path string) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return api.ValidateFile(path, conf)
}
