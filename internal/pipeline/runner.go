package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/document-sorter/internal/common"
	"github.com/joseph-ayodele/document-sorter/internal/export"
	"github.com/joseph-ayodele/document-sorter/internal/ingest"
	"github.com/joseph-ayodele/document-sorter/internal/repository"
)

type RunConfig struct {
	SourceDir string
	OutputDir string
}

// Runner drives one batch: list, process each file in order, write the manifest.
type Runner struct {
	cfg    RunConfig
	proc   *Processor
	writer *export.Writer
	runs   repository.RunRepository // optional
	logger *slog.Logger
}

func NewRunner(cfg RunConfig, proc *Processor, writer *export.Writer, runs repository.RunRepository, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, proc: proc, writer: writer, runs: runs, logger: logger}
}

// Run processes every PDF in the source directory. Per-file failures are
// recorded in the report; listing and manifest failures end the run with an error.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	rep := Report{
		RunID:     uuid.NewString(),
		SourceDir: r.cfg.SourceDir,
		OutputDir: r.cfg.OutputDir,
		StartedAt: time.Now(),
	}
	ctx = common.WithRunID(ctx, rep.RunID)
	r.logger.Info("run.start", "run_id", rep.RunID, "source_dir", r.cfg.SourceDir, "output_dir", r.cfg.OutputDir)

	paths, stats, err := ingest.ListPDFs(r.cfg.SourceDir, r.logger)
	if err != nil {
		r.logger.Error("run.list.failed", "run_id", rep.RunID, "error", err)
		return rep, common.NewAppError("LIST_ERROR", "list source dir "+r.cfg.SourceDir, err)
	}
	rep.Scanned = int(stats.Scanned)

	manifest := export.NewManifest()
	for _, path := range paths {
		out := r.proc.ProcessFile(ctx, path)
		if out.Processed() {
			manifest.Append(out.Row)
		}
		rep.Outcomes = append(rep.Outcomes, out)
	}

	written, err := r.writer.Write(r.cfg.OutputDir, manifest)
	if err != nil {
		r.logger.Error("run.manifest.failed", "run_id", rep.RunID, "error", err)
		return rep, common.Wrapf(common.ErrManifest, err, "write manifest to %s", r.cfg.OutputDir)
	}
	rep.Manifest = written
	rep.FinishedAt = time.Now()

	if r.runs != nil {
		if err := r.runs.RecordRun(ctx, rep.RunRecord()); err != nil {
			r.logger.Warn("run.ledger.failed", "run_id", rep.RunID, "error", common.Wrapf(common.ErrLedger, err, "record run"))
		}
	}

	c := rep.Counts()
	r.logger.Info("run.ok",
		"run_id", rep.RunID,
		"processed", c.Processed,
		"skipped", c.Skipped,
		"defaulted", c.Defaulted,
		"manifest", rep.Manifest.CSV,
		"elapsed_ms", rep.FinishedAt.Sub(rep.StartedAt).Milliseconds(),
	)
	return rep, nil
}
