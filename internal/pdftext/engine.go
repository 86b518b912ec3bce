package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

const (
	// glyphs whose baselines differ by less than this share of the font size are on one line
	baselineTolerance = 0.5
	// a horizontal gap wider than this share of the font size becomes a space
	wordGapRatio = 0.25
)

// LedongEngine reads positioned glyphs with github.com/ledongthuc/pdf and
// groups them into line fragments.
type LedongEngine struct {
	logger *slog.Logger
}

func NewLedongEngine(logger *slog.Logger) *LedongEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedongEngine{logger: logger}
}

// Pages opens path and returns one Page per PDF page. Malformed documents can
// make the reader panic; that is reported as an error.
func (e *LedongEngine) Pages(ctx context.Context, path string) (pages []Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("pdf reader panic on %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Warn("pdftext.close_error", "path", path, "error", cerr)
		}
	}()

	total := r.NumPage()
	pages = make([]Page, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			e.logger.Debug("pdftext.page.empty", "path", path, "page", i)
			pages = append(pages, Page{Number: i})
			continue
		}
		pages = append(pages, Page{Number: i, Fragments: groupGlyphs(p.Content().Text)})
	}
	return pages, nil
}

// groupGlyphs merges glyphs sharing a baseline into one fragment and emits an
// empty fragment after every line, including the last one on the page.
func groupGlyphs(glyphs []pdf.Text) []Fragment {
	var (
		out     []Fragment
		cur     strings.Builder
		open    bool
		lineY   float64
		lineX   float64
		size    float64
		lastEnd float64
		pending bool
	)

	flush := func() {
		if !open {
			return
		}
		if text := strings.TrimRightFunc(cur.String(), unicode.IsSpace); text != "" {
			out = append(out, Fragment{Text: text, X: lineX, Y: lineY, FontSize: size})
		}
		out = append(out, Fragment{Y: lineY, FontSize: size})
		cur.Reset()
		open = false
		pending = false
	}

	for _, g := range glyphs {
		if g.S == "" {
			continue
		}
		if open && !sameLine(lineY, g.Y, g.FontSize) {
			flush()
		}
		if strings.TrimSpace(g.S) == "" {
			if open {
				pending = true
				lastEnd = g.X + g.W
			}
			continue
		}
		if !open {
			open = true
			lineY, lineX, size = g.Y, g.X, g.FontSize
		} else if pending || g.X-lastEnd > wordGapRatio*fontOrOne(g.FontSize) {
			cur.WriteByte(' ')
		}
		pending = false
		cur.WriteString(g.S)
		lastEnd = g.X + g.W
	}
	flush()
	return out
}

func sameLine(y1, y2, fontSize float64) bool {
	return math.Abs(y1-y2) < baselineTolerance*fontOrOne(fontSize)
}

func fontOrOne(size float64) float64 {
	if size <= 0 {
		return 1
	}
	return size
}
