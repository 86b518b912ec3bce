package parsefields

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/document-sorter/internal/common"
	"github.com/joseph-ayodele/document-sorter/internal/llm"
)

// Pipeline is stage 2: document text -> attributes.
type Pipeline struct {
	Extractor llm.FieldExtractor
	Logger    *slog.Logger
}

func NewPipeline(fe llm.FieldExtractor, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{Extractor: fe, Logger: logger}
}

// Run asks the extractor for attributes. A defaulted result is not an error.
func (p *Pipeline) Run(ctx context.Context, path, text string) (llm.Extraction, error) {
	ext, err := p.Extractor.ExtractFields(ctx, llm.ExtractRequest{Text: text, FilePath: path})
	if err != nil {
		p.Logger.Error("parsefields.failed", "run_id", common.RunIDFromContext(ctx), "path", path, "error", err)
		return llm.Extraction{}, err
	}
	if ext.Defaulted() {
		p.Logger.Warn("parsefields.defaulted", "path", path, "reply", ext.Reply)
	}
	return ext, nil
}
