package pdftext

import (
	"context"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/document-sorter/internal/testutil"
)

func glyph(s string, x, y float64) pdf.Text {
	return pdf.Text{Font: "Helvetica", FontSize: 12, X: x, Y: y, W: 6, S: s}
}

func TestGroupGlyphs(t *testing.T) {
	tests := []struct {
		name   string
		glyphs []pdf.Text
		want   []string
	}{
		{
			name: "no glyphs",
			want: nil,
		},
		{
			name:   "one line",
			glyphs: []pdf.Text{glyph("A", 10, 700), glyph("B", 16, 700)},
			want:   []string{"AB", ""},
		},
		{
			name: "baseline change starts a new line",
			glyphs: []pdf.Text{
				glyph("A", 10, 700), glyph("B", 16, 700),
				glyph("C", 10, 680),
			},
			want: []string{"AB", "", "C", ""},
		},
		{
			name: "small baseline jitter stays on the line",
			glyphs: []pdf.Text{
				glyph("A", 10, 700), glyph("B", 16, 701.5),
			},
			want: []string{"AB", ""},
		},
		{
			name: "wide gap becomes a space",
			glyphs: []pdf.Text{
				glyph("A", 10, 700), glyph("B", 60, 700),
			},
			want: []string{"A B", ""},
		},
		{
			name: "space glyphs collapse to one space",
			glyphs: []pdf.Text{
				glyph("A", 10, 700), glyph(" ", 16, 700), glyph(" ", 22, 700), glyph("B", 28, 700),
			},
			want: []string{"A B", ""},
		},
		{
			name: "trailing spaces are dropped",
			glyphs: []pdf.Text{
				glyph("A", 10, 700), glyph(" ", 16, 700),
			},
			want: []string{"A", ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := groupGlyphs(tt.glyphs)
			var texts []string
			for _, f := range got {
				texts = append(texts, f.Text)
			}
			assert.Equal(t, tt.want, texts)
		})
	}
}

func TestGroupGlyphs_KeepsLinePosition(t *testing.T) {
	got := groupGlyphs([]pdf.Text{glyph("A", 10, 700), glyph("B", 16, 700)})
	require.Len(t, got, 2)
	assert.Equal(t, 10.0, got[0].X)
	assert.Equal(t, 700.0, got[0].Y)
	assert.Equal(t, 12.0, got[0].FontSize)
	assert.True(t, got[1].IsBreak())
}

func TestLedongEngine_GeneratedPDF(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WritePDF(t, dir, "invoice.pdf",
		[]testutil.Line{{X: 72, Y: 720, Text: "INVOICE"}, {X: 72, Y: 690, Text: "ACME"}},
		[]testutil.Line{{X: 72, Y: 720, Text: "TOTAL"}},
	)

	pages, err := NewLedongEngine(nil).Pages(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, 1, pages[0].Number)
	assert.Equal(t, 2, pages[1].Number)

	lines := ReconstructLines(pages)
	assert.Equal(t, []string{"INVOICE", "ACME", "TOTAL"}, lines)
}

func TestLedongEngine_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "broken.pdf", []byte("%PDF-1.4\nthis is not a pdf"))

	_, err := NewLedongEngine(nil).Pages(context.Background(), path)
	assert.Error(t, err)
}

func TestLedongEngine_MissingFile(t *testing.T) {
	_, err := NewLedongEngine(nil).Pages(context.Background(), "/does/not/exist.pdf")
	assert.Error(t, err)
}
