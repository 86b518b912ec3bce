// Package layout derives destination names for classified documents and
// places copies under the output tree.
package layout

import (
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/document-sorter/constants"
	"github.com/joseph-ayodele/document-sorter/internal/llm"
)

var segmentReplacer = strings.NewReplacer("/", "_", `\`, "_")

// PriceString renders the amount with its currency: "1000円" for yen,
// "$50" (symbol first) for everything else.
func PriceString(a llm.Attributes) string {
	amount := a.Amount.String()
	if a.Symbol == constants.YenSymbol {
		return amount + a.Symbol
	}
	return a.Symbol + amount
}

// FileName returns <date>_<author>_<price>_<type>.pdf.
func FileName(a llm.Attributes) string {
	parts := []string{a.Date, a.Author, PriceString(a), a.Type}
	return segment(strings.Join(parts, "_")) + constants.OutputExt
}

// NewPath returns <outputDir>/<type>/<FileName>.
func NewPath(outputDir string, a llm.Attributes) string {
	return filepath.Join(outputDir, segment(a.Type), FileName(a))
}

// segment keeps a value inside one path element.
func segment(s string) string {
	s = segmentReplacer.Replace(s)
	switch s {
	case "", ".", "..":
		return "_" + s
	}
	return s
}
