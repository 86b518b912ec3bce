package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Config struct {
	DSN         string
	MaxConns    int32
	DialTimeout time.Duration
}

// DB is an ent SQL driver plus the pool behind it, if any.
type DB struct {
	drv     *entsql.Driver
	dialect string
	pool    *pgxpool.Pool
	logger  *slog.Logger
}

// Dialect returns dialect.Postgres or dialect.SQLite.
func (d *DB) Dialect() string { return d.dialect }

// Open connects to the ledger database and creates its tables. postgres://
// and postgresql:// DSNs go through a pgx pool; anything else is a SQLite
// path or file: URI (an optional sqlite:// prefix is stripped).
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 3 * time.Second
	}

	var (
		d   *DB
		err error
	)
	if isPostgres(cfg.DSN) {
		d, err = openPostgres(ctx, cfg, logger)
	} else {
		d, err = openSQLite(cfg, logger)
	}
	if err != nil {
		return nil, err
	}

	if err := d.migrate(ctx); err != nil {
		d.Close()
		return nil, fmt.Errorf("create ledger tables: %w", err)
	}
	logger.Info("ledger.open.ok", "dialect", d.dialect)
	return d, nil
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func openPostgres(ctx context.Context, cfg Config, logger *slog.Logger) (*DB, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("ledger.open.failed", "dialect", dialect.Postgres, "error", err)
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	pc.ConnConfig.RuntimeParams["application_name"] = "document-sorter"

	ctx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("ledger.open.failed", "dialect", dialect.Postgres, "error", err)
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Error("ledger.ping.failed", "error", err)
		return nil, err
	}

	// Wrap pool as *sql.DB for Ent
	db := stdlib.OpenDBFromPool(pool)
	return &DB{
		drv:     entsql.OpenDB(dialect.Postgres, db),
		dialect: dialect.Postgres,
		pool:    pool,
		logger:  logger,
	}, nil
}

func openSQLite(cfg Config, logger *slog.Logger) (*DB, error) {
	dsn := strings.TrimPrefix(cfg.DSN, "sqlite://")
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		logger.Error("ledger.open.failed", "dialect", dialect.SQLite, "error", err)
		return nil, err
	}
	// one writer; also keeps :memory: databases on a single connection
	db.SetMaxOpenConns(1)
	return &DB{
		drv:     entsql.OpenDB(dialect.SQLite, db),
		dialect: dialect.SQLite,
		logger:  logger,
	}, nil
}

// Close closes the database connections gracefully
func (d *DB) Close() {
	if d == nil {
		return
	}
	if err := d.drv.Close(); err != nil {
		d.logger.Error("ledger.close.failed", "error", err)
	}
	if d.pool != nil {
		d.pool.Close()
	}
}

var ddl = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source_dir TEXT NOT NULL,
		output_dir TEXT NOT NULL,
		started_at TEXT NOT NULL,
		finished_at TEXT NOT NULL,
		processed INTEGER NOT NULL,
		skipped INTEGER NOT NULL,
		defaulted INTEGER NOT NULL,
		manifest_path TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS documents (
		id TEXT PRIMARY KEY,
		run_id TEXT NOT NULL REFERENCES runs(id),
		position INTEGER NOT NULL,
		source_path TEXT NOT NULL,
		new_path TEXT NOT NULL,
		doc_type TEXT NOT NULL,
		author TEXT NOT NULL,
		recipient TEXT NOT NULL,
		issue_date TEXT NOT NULL,
		amount TEXT NOT NULL,
		symbol TEXT NOT NULL,
		origin TEXT NOT NULL,
		status TEXT NOT NULL,
		reason TEXT NOT NULL,
		error TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS documents_run_id ON documents (run_id, position)`,
}

func (d *DB) migrate(ctx context.Context) error {
	for _, stmt := range ddl {
		if err := d.drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			return err
		}
	}
	return nil
}
