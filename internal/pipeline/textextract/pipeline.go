package textextract

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/document-sorter/internal/common"
	"github.com/joseph-ayodele/document-sorter/internal/extract"
)

// Pipeline is stage 1: source PDF -> reconstructed text.
type Pipeline struct {
	Extractor extract.TextExtractor
	Logger    *slog.Logger
}

func NewPipeline(x extract.TextExtractor, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{Extractor: x, Logger: logger}
}

// Run extracts the text of path. Errors are tagged with common.ErrExtract.
func (p *Pipeline) Run(ctx context.Context, path string) (extract.TextExtractionResult, error) {
	res, err := p.Extractor.Extract(ctx, path)
	if err != nil {
		p.Logger.Error("textextract.failed", "run_id", common.RunIDFromContext(ctx), "path", path, "error", err)
		return res, common.Wrapf(common.ErrExtract, err, "extract %s", path)
	}
	for _, w := range res.Warnings {
		p.Logger.Warn("textextract.warning", "path", path, "warning", w)
	}
	p.Logger.Debug("textextract.ok",
		"path", path,
		"method", res.Method,
		"pages", res.Pages,
		"lines", res.Lines,
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
