package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/joseph-ayodele/document-sorter/internal/export"
	"github.com/joseph-ayodele/document-sorter/internal/repository"
)

// Report summarizes one run.
type Report struct {
	RunID      string
	SourceDir  string
	OutputDir  string
	StartedAt  time.Time
	FinishedAt time.Time
	Scanned    int
	Outcomes   []FileOutcome
	Manifest   export.Written
}

type Counts struct {
	Processed int
	Skipped   int
	Defaulted int // processed with fallback attributes
}

func (r Report) Counts() Counts {
	var c Counts
	for _, o := range r.Outcomes {
		if !o.Processed() {
			c.Skipped++
			continue
		}
		c.Processed++
		if o.Extraction.Defaulted() {
			c.Defaulted++
		}
	}
	return c
}

// RunRecord converts the report for the ledger.
func (r Report) RunRecord() repository.RunRecord {
	c := r.Counts()
	rec := repository.RunRecord{
		ID:           r.RunID,
		SourceDir:    r.SourceDir,
		OutputDir:    r.OutputDir,
		StartedAt:    r.StartedAt,
		FinishedAt:   r.FinishedAt,
		Processed:    c.Processed,
		Skipped:      c.Skipped,
		Defaulted:    c.Defaulted,
		ManifestPath: r.Manifest.CSV,
	}
	for i, o := range r.Outcomes {
		d := repository.DocumentRecord{
			Position:   i,
			SourcePath: o.Path,
			Status:     string(o.Status),
			Reason:     string(o.Reason),
		}
		if o.Err != nil {
			d.Error = o.Err.Error()
		}
		if o.Processed() {
			a := o.Extraction.Attributes
			d.NewPath = o.NewPath
			d.DocType = a.Type
			d.Author = a.Author
			d.Recipient = a.Recipient
			d.IssueDate = a.Date
			d.Amount = a.Amount.String()
			d.Symbol = a.Symbol
			d.Origin = string(o.Extraction.Origin)
		}
		rec.Documents = append(rec.Documents, d)
	}
	return rec
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// Render writes a boxed summary followed by one line per skipped file.
func (r Report) Render(w io.Writer) error {
	c := r.Counts()
	lines := []string{
		titleStyle.Render("document-sorter"),
		dimStyle.Render("run " + r.RunID),
		"",
		successStyle.Render(fmt.Sprintf("processed  %d", c.Processed)),
		warnStyle.Render(fmt.Sprintf("defaulted  %d", c.Defaulted)),
		errorStyle.Render(fmt.Sprintf("skipped    %d", c.Skipped)),
		"",
		"manifest   " + r.Manifest.CSV,
	}
	if r.Manifest.XLSX != "" {
		lines = append(lines, "workbook   "+r.Manifest.XLSX)
	}
	if !r.FinishedAt.IsZero() {
		lines = append(lines, dimStyle.Render("took "+r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond).String()))
	}

	var b strings.Builder
	b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")
	for _, o := range r.Outcomes {
		if o.Processed() {
			continue
		}
		fmt.Fprintf(&b, "%s %s: %s\n", errorStyle.Render("✗"), filepath.Base(o.Path), o.Reason)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
