package main

import (
	"context"

	"github.com/joseph-ayodele/document-sorter/internal/common"
	"github.com/joseph-ayodele/document-sorter/internal/export"
	"github.com/joseph-ayodele/document-sorter/internal/llm/openai"
	"github.com/joseph-ayodele/document-sorter/internal/pdftext"
	"github.com/joseph-ayodele/document-sorter/internal/pipeline"
	"github.com/joseph-ayodele/document-sorter/internal/pipeline/parsefields"
	"github.com/joseph-ayodele/document-sorter/internal/pipeline/textextract"
	"github.com/joseph-ayodele/document-sorter/internal/repository"
)

func newTextExtractor(cfg *common.Config) *pdftext.Extractor {
	return pdftext.NewExtractor(pdftext.Config{Validate: cfg.PDF.Validate}, pdftext.NewLedongEngine(logger), logger)
}

func newOpenAIClient(cfg *common.Config) *openai.Client {
	client := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	logger.Info("OpenAI client initialized", "model", client.Model())
	return client
}

func newProcessor(cfg *common.Config) *pipeline.Processor {
	text := textextract.NewPipeline(newTextExtractor(cfg), logger)
	parse := parsefields.NewPipeline(newOpenAIClient(cfg), logger)
	return pipeline.NewProcessor(logger, text, parse, cfg.Paths.OutputDir)
}

// openLedger returns nil, nil when LEDGER_DSN is unset.
func openLedger(ctx context.Context, cfg *common.Config) (*repository.DB, error) {
	if cfg.Ledger.DSN == "" {
		return nil, nil
	}
	return repository.Open(ctx, repository.Config{
		DSN:         cfg.Ledger.DSN,
		MaxConns:    cfg.Ledger.MaxConns,
		DialTimeout: cfg.Ledger.DialTimeout,
	}, logger)
}

func newRunner(cfg *common.Config, db *repository.DB) *pipeline.Runner {
	var runs repository.RunRepository
	if db != nil {
		runs = repository.NewRunRepository(db, logger)
	}
	return pipeline.NewRunner(
		pipeline.RunConfig{SourceDir: cfg.Paths.SourceDir, OutputDir: cfg.Paths.OutputDir},
		newProcessor(cfg),
		export.NewWriter(export.Config{XLSX: cfg.Export.XLSX}, logger),
		runs,
		logger,
	)
}
