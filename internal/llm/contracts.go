package llm

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/document-sorter/constants"
)

// Attributes is the normalized shape we want from the LLM.
type Attributes struct {
	Type      string          `json:"type"`                // Japanese document label, e.g. 請求書
	Recipient string          `json:"recipient,omitempty"` // addressee company
	Author    string          `json:"author"`              // issuing company
	Date      string          `json:"date"`                // YYYYMMDD or "?"
	Amount    decimal.Decimal `json:"amount"`              // tax-excluded total
	Symbol    string          `json:"symbol"`              // 円, $, or verbatim
}

// DefaultAttributes is the record used when a reply cannot be parsed.
func DefaultAttributes() Attributes {
	return Attributes{
		Type:   string(constants.Unknown),
		Author: constants.UnknownValue,
		Date:   constants.UnknownValue,
		Amount: decimal.Zero,
		Symbol: constants.UnknownValue,
	}
}

// Origin says which parsing stage produced an Extraction.
type Origin string

const (
	OriginJSON    Origin = "json"    // whole reply was the object
	OriginFenced  Origin = "fenced"  // object found inside a ``` block
	OriginDefault Origin = "default" // nothing parsed
)

// Extraction is the parsed reply together with how it was obtained.
type Extraction struct {
	Attributes
	Origin Origin
	Reply  string // raw model reply
}

// Defaulted reports whether the attributes are the fallback record.
func (e Extraction) Defaulted() bool { return e.Origin == OriginDefault }

type ExtractRequest struct {
	Text     string
	FilePath string // for logging only
}

// FieldExtractor is the interface our pipeline depends on. Errors are
// reserved for failures to obtain a reply; unparseable replies come back as
// a defaulted Extraction.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (Extraction, error)
}
