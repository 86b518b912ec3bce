package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// RunRecord is one finished batch run.
type RunRecord struct {
	ID           string
	SourceDir    string
	OutputDir    string
	StartedAt    time.Time
	FinishedAt   time.Time
	Processed    int
	Skipped      int
	Defaulted    int
	ManifestPath string
	Documents    []DocumentRecord
}

// DocumentRecord is the outcome for one source file of a run.
type DocumentRecord struct {
	Position   int
	SourcePath string
	NewPath    string
	DocType    string
	Author     string
	Recipient  string
	IssueDate  string
	Amount     string
	Symbol     string
	Origin     string
	Status     string
	Reason     string
	Error      string
}

type RunRepository interface {
	RecordRun(ctx context.Context, run RunRecord) error
	GetRun(ctx context.Context, id string) (RunRecord, error)
	Documents(ctx context.Context, runID string) ([]DocumentRecord, error)
}

type runRepo struct {
	db  *DB
	log *slog.Logger
}

func NewRunRepository(db *DB, log *slog.Logger) RunRepository {
	if log == nil {
		log = slog.Default()
	}
	return &runRepo{db: db, log: log}
}

var documentColumns = []string{
	"position", "source_path", "new_path", "doc_type", "author", "recipient",
	"issue_date", "amount", "symbol", "origin", "status", "reason", "error",
}

// RecordRun stores the run and all its documents in one transaction.
func (r *runRepo) RecordRun(ctx context.Context, run RunRecord) error {
	b := entsql.Dialect(r.db.dialect)

	tx, err := r.db.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	q, args := b.Insert("runs").
		Columns("id", "source_dir", "output_dir", "started_at", "finished_at",
			"processed", "skipped", "defaulted", "manifest_path").
		Values(run.ID, run.SourceDir, run.OutputDir, formatTime(run.StartedAt), formatTime(run.FinishedAt),
			run.Processed, run.Skipped, run.Defaulted, run.ManifestPath).
		Query()
	if err := tx.Exec(ctx, q, args, nil); err != nil {
		_ = tx.Rollback()
		r.log.Error("ledger.run.insert_failed", "run_id", run.ID, "err", err)
		return fmt.Errorf("insert run: %w", err)
	}

	if len(run.Documents) > 0 {
		ins := b.Insert("documents").Columns(append([]string{"id", "run_id"}, documentColumns...)...)
		for _, d := range run.Documents {
			ins.Values(uuid.NewString(), run.ID,
				d.Position, d.SourcePath, d.NewPath, d.DocType, d.Author, d.Recipient,
				d.IssueDate, d.Amount, d.Symbol, d.Origin, d.Status, d.Reason, d.Error)
		}
		q, args := ins.Query()
		if err := tx.Exec(ctx, q, args, nil); err != nil {
			_ = tx.Rollback()
			r.log.Error("ledger.documents.insert_failed", "run_id", run.ID, "err", err)
			return fmt.Errorf("insert documents: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	r.log.Info("ledger.run.recorded", "run_id", run.ID, "documents", len(run.Documents))
	return nil
}

func (r *runRepo) GetRun(ctx context.Context, id string) (RunRecord, error) {
	b := entsql.Dialect(r.db.dialect)
	q, args := b.Select("id", "source_dir", "output_dir", "started_at", "finished_at",
		"processed", "skipped", "defaulted", "manifest_path").
		From(b.Table("runs")).
		Where(entsql.EQ("id", id)).
		Query()

	var rows entsql.Rows
	if err := r.db.drv.Query(ctx, q, args, &rows); err != nil {
		return RunRecord{}, fmt.Errorf("query run: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return RunRecord{}, err
		}
		return RunRecord{}, fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	var (
		run             RunRecord
		started, finish string
	)
	if err := rows.Scan(&run.ID, &run.SourceDir, &run.OutputDir, &started, &finish,
		&run.Processed, &run.Skipped, &run.Defaulted, &run.ManifestPath); err != nil {
		return RunRecord{}, fmt.Errorf("scan run: %w", err)
	}
	var err error
	if run.StartedAt, err = parseTime(started); err != nil {
		return RunRecord{}, err
	}
	if run.FinishedAt, err = parseTime(finish); err != nil {
		return RunRecord{}, err
	}
	return run, rows.Err()
}

// Documents returns a run's documents in processing order.
func (r *runRepo) Documents(ctx context.Context, runID string) ([]DocumentRecord, error) {
	b := entsql.Dialect(r.db.dialect)
	q, args := b.Select(documentColumns...).
		From(b.Table("documents")).
		Where(entsql.EQ("run_id", runID)).
		OrderBy("position").
		Query()

	var rows entsql.Rows
	if err := r.db.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var out []DocumentRecord
	for rows.Next() {
		var d DocumentRecord
		if err := rows.Scan(&d.Position, &d.SourcePath, &d.NewPath, &d.DocType, &d.Author, &d.Recipient,
			&d.IssueDate, &d.Amount, &d.Symbol, &d.Origin, &d.Status, &d.Reason, &d.Error); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t, nil
}
