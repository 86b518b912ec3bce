package pipeline

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/document-sorter/internal/llm"
	"github.com/joseph-ayodele/document-sorter/internal/pdftext"
	"github.com/joseph-ayodele/document-sorter/internal/pipeline/parsefields"
	"github.com/joseph-ayodele/document-sorter/internal/pipeline/textextract"
)

var errUpstream = errors.New("upstream unavailable")

// fakeFields answers by looking at the document text.
type fakeFields struct {
	calls []llm.ExtractRequest
}

func (f *fakeFields) ExtractFields(_ context.Context, req llm.ExtractRequest) (llm.Extraction, error) {
	f.calls = append(f.calls, req)
	switch {
	case strings.Contains(req.Text, "FAIL"):
		return llm.Extraction{}, errUpstream
	case strings.Contains(req.Text, "ACME"):
		return llm.Extraction{
			Attributes: llm.Attributes{
				Type: "請求書", Author: "ACME", Date: "20240101",
				Amount: decimal.NewFromInt(1000), Symbol: "円",
			},
			Origin: llm.OriginJSON,
		}, nil
	case strings.Contains(req.Text, "GLOBEX"):
		return llm.Extraction{
			Attributes: llm.Attributes{
				Type: "見積書", Author: "Globex", Date: "20231201",
				Amount: decimal.NewFromInt(50), Symbol: "$",
			},
			Origin: llm.OriginFenced,
		}, nil
	}
	ext, _ := llm.ParseReply("no idea")
	return ext, nil
}

func newTestProcessor(outputDir string, fields llm.FieldExtractor) *Processor {
	text := textextract.NewPipeline(pdftext.NewExtractor(pdftext.Config{}, nil, nil), nil)
	return NewProcessor(nil, text, parsefields.NewPipeline(fields, nil), outputDir)
}
