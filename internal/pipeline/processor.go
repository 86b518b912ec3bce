package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/document-sorter/constants"
	"github.com/joseph-ayodele/document-sorter/internal/common"
	"github.com/joseph-ayodele/document-sorter/internal/export"
	"github.com/joseph-ayodele/document-sorter/internal/layout"
	"github.com/joseph-ayodele/document-sorter/internal/llm"
	"github.com/joseph-ayodele/document-sorter/internal/pipeline/parsefields"
	"github.com/joseph-ayodele/document-sorter/internal/pipeline/textextract"
)

// FileOutcome is the result of processing one source file. A processed file
// carries its manifest row; a skipped one carries the reason and error.
type FileOutcome struct {
	Path       string
	Status     constants.FileStatus
	Reason     constants.SkipReason
	Err        error
	Extraction llm.Extraction
	NewPath    string
	Row        export.Row
	Elapsed    time.Duration
}

func (o FileOutcome) Processed() bool { return o.Status == constants.FileStatusProcessed }

// Classification is what the processor decides for a file before copying it.
type Classification struct {
	Text       string
	Extraction llm.Extraction
	NewPath    string
}

// Processor coordinates text extraction, attribute extraction and the copy.
type Processor struct {
	Logger    *slog.Logger
	Text      *textextract.Pipeline
	Parse     *parsefields.Pipeline
	OutputDir string
	copyFile  func(src, dst string) error
}

func NewProcessor(logger *slog.Logger, text *textextract.Pipeline, parse *parsefields.Pipeline, outputDir string) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Text: text, Parse: parse, OutputDir: outputDir, copyFile: layout.CopyFile}
}

// Classify extracts text and attributes for path and derives its destination
// without touching the filesystem. The returned reason names the failed stage.
func (p *Processor) Classify(ctx context.Context, path string) (Classification, constants.SkipReason, error) {
	res, err := p.Text.Run(ctx, path)
	if err != nil {
		return Classification{}, constants.ReasonExtractFailed, err
	}
	p.Logger.Info("processor.text.ok", "path", path, "pages", res.Pages, "lines", res.Lines)

	ext, err := p.Parse.Run(ctx, path, res.Text)
	if err != nil {
		return Classification{Text: res.Text}, constants.ReasonLLMFailed, err
	}
	return Classification{
		Text:       res.Text,
		Extraction: ext,
		NewPath:    layout.NewPath(p.OutputDir, ext.Attributes),
	}, constants.ReasonNone, nil
}

// ProcessFile classifies path and copies it to its new location. Failures
// are returned as a skipped outcome, never as an error, so the batch goes on.
func (p *Processor) ProcessFile(ctx context.Context, path string) FileOutcome {
	start := time.Now()
	out := FileOutcome{Path: path}

	skip := func(reason constants.SkipReason, err error) FileOutcome {
		out.Status = constants.FileStatusSkipped
		out.Reason = reason
		out.Err = err
		out.Elapsed = time.Since(start)
		p.Logger.Error("processor.file.skipped",
			"run_id", common.RunIDFromContext(ctx),
			"path", path,
			"reason", reason,
			"error", err,
		)
		return out
	}

	c, reason, err := p.Classify(ctx, path)
	if err != nil {
		return skip(reason, err)
	}
	out.Extraction = c.Extraction
	out.NewPath = c.NewPath

	if err := p.copyFile(path, c.NewPath); err != nil {
		return skip(constants.ReasonCopyFailed, common.Wrapf(common.ErrCopy, err, "copy %s", path))
	}

	a := c.Extraction.Attributes
	out.Status = constants.FileStatusProcessed
	out.Row = export.Row{
		SourcePath: path,
		Type:       a.Type,
		Author:     a.Author,
		Date:       a.Date,
		Amount:     a.Amount.String(),
		Symbol:     a.Symbol,
		NewPath:    c.NewPath,
	}
	out.Elapsed = time.Since(start)
	p.Logger.Info("processor.file.ok",
		"run_id", common.RunIDFromContext(ctx),
		"path", path,
		"new_path", c.NewPath,
		"origin", c.Extraction.Origin,
		"elapsed_ms", out.Elapsed.Milliseconds(),
	)
	return out
}
