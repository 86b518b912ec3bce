package ingest

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DirStats summarizes a directory listing.
type DirStats struct {
	Scanned uint32 // entries seen
	Matched uint32 // PDFs returned
	Dirs    uint32 // subdirectories ignored
	Hidden  uint32 // dotfiles ignored
}

// ListPDFs returns the PDF files directly inside root, in directory-listing
// (lexical) order. Subdirectories are not descended into.
func ListPDFs(root string, logger *slog.Logger) ([]string, DirStats, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("source dir is required")
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, DirStats{}, fmt.Errorf("read dir: %w", err)
	}

	var (
		paths []string
		stats DirStats
	)
	for _, d := range entries {
		stats.Scanned++
		name := d.Name()
		if d.IsDir() {
			stats.Dirs++
			continue
		}
		if IsHidden(name) {
			stats.Hidden++
			continue
		}
		if !d.Type().IsRegular() {
			logger.Debug("ingest.skip.irregular", "name", name, "mode", d.Type().String())
			continue
		}
		if !AllowedExt(filepath.Ext(name)) {
			continue
		}
		stats.Matched++
		paths = append(paths, filepath.Join(root, name))
	}

	logger.Info("ingest.list.ok",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"dirs", stats.Dirs,
		"hidden", stats.Hidden,
	)
	return paths, stats, nil
}
