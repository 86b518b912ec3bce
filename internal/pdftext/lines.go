package pdftext

import "strings"

// ReconstructLines turns page fragments into logical lines. Fragments are
// taken in engine order; an empty fragment closes the current line and any
// other fragment is appended to it as-is.
func ReconstructLines(pages []Page) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, p := range pages {
		for _, f := range p.Fragments {
			if f.IsBreak() {
				lines = append(lines, line.String())
				line.Reset()
				continue
			}
			line.WriteString(f.Text)
		}
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Reconstruct returns the newline-joined logical lines of the document.
func Reconstruct(pages []Page) string {
	return strings.Join(ReconstructLines(pages), "\n")
}
