package pdftext

import "context"

// Fragment is one positioned piece of text as returned by the layout engine.
// An empty Text marks a line break.
type Fragment struct {
	Text     string
	X, Y     float64
	FontSize float64
}

// IsBreak reports whether the fragment is a line-break marker.
func (f Fragment) IsBreak() bool { return f.Text == "" }

// Page holds the fragments of one page in reading order.
type Page struct {
	Number    int
	Fragments []Fragment
}

// Engine returns the positioned fragments of a PDF, page by page.
type Engine interface {
	Pages(ctx context.Context, path string) ([]Page, error)
}

// CountFragments returns the total number of fragments across pages.
func CountFragments(pages []Page) int {
	n := 0
	for _, p := range pages {
		n += len(p.Fragments)
	}
	return n
}
