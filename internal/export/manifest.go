package export

import (
	"strings"

	"github.com/joseph-ayodele/document-sorter/constants"
)

// Row is one manifest line for a copied document.
type Row struct {
	SourcePath string
	Type       string
	Author     string
	Date       string
	Amount     string
	Symbol     string
	NewPath    string
}

// Fields returns the row in column order.
func (r Row) Fields() []string {
	return []string{r.SourcePath, r.Type, r.Author, r.Date, r.Amount, r.Symbol, r.NewPath}
}

// Manifest is the ordered list of rows for one run. It is written once, at the end.
type Manifest struct {
	rows []Row
}

func NewManifest() *Manifest {
	return &Manifest{}
}

// Append adds a row after the existing ones.
func (m *Manifest) Append(r Row) {
	m.rows = append(m.rows, r)
}

func (m *Manifest) Rows() []Row {
	return append([]Row(nil), m.rows...)
}

func (m *Manifest) Len() int { return len(m.rows) }

// Records returns the header followed by every row.
func (m *Manifest) Records() [][]string {
	out := make([][]string, 0, len(m.rows)+1)
	out = append(out, append([]string(nil), constants.ManifestHeader...))
	for _, r := range m.rows {
		out = append(out, r.Fields())
	}
	return out
}

// EncodeCSV quotes every field, doubles embedded quotes, separates fields
// with commas and records with "\n". There is no trailing newline.
func EncodeCSV(records [][]string) []byte {
	var b strings.Builder
	for i, rec := range records {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range rec {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return []byte(b.String())
}
