package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/document-sorter/constants"
)

type Config struct {
	XLSX bool // also write 一覧.xlsx
}

// Written lists the files produced by Writer.Write.
type Written struct {
	CSV  string
	XLSX string // empty when disabled
}

// Writer puts a finished Manifest on disk.
type Writer struct {
	cfg    Config
	logger *slog.Logger
}

func NewWriter(cfg Config, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{cfg: cfg, logger: logger}
}

// Write creates outputDir and writes 一覧.csv, then 一覧.xlsx when enabled.
// The CSV is the manifest of record; its failure is returned before any XLSX work.
func (w *Writer) Write(outputDir string, m *Manifest) (Written, error) {
	start := time.Now()
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Written{}, fmt.Errorf("create output dir: %w", err)
	}
	records := m.Records()

	var out Written
	out.CSV = filepath.Join(outputDir, constants.ManifestCSVName)
	if err := os.WriteFile(out.CSV, EncodeCSV(records), 0o644); err != nil {
		return Written{}, fmt.Errorf("write csv: %w", err)
	}
	w.logger.Info("export.csv.ok",
		"path", out.CSV,
		"rows", m.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if !w.cfg.XLSX {
		return out, nil
	}
	b, err := EncodeXLSX(records)
	if err != nil {
		return out, err
	}
	xlsxPath := filepath.Join(outputDir, constants.ManifestXLSXName)
	if err := os.WriteFile(xlsxPath, b, 0o644); err != nil {
		return out, fmt.Errorf("write xlsx: %w", err)
	}
	out.XLSX = xlsxPath
	w.logger.Info("export.xlsx.ok",
		"path", out.XLSX,
		"rows", m.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}
