package constants

// DocType is the Japanese label the model assigns to a document.
type DocType string

const (
	Quote         DocType = "見積書"
	PurchaseOrder DocType = "発注書"
	Invoice       DocType = "請求書"
	DeliveryNote  DocType = "納品書"
	Receipt       DocType = "領収書"
	Contract      DocType = "契約書"
	Application   DocType = "申込書"
	Unknown       DocType = "不明"
)

var knownDocTypes = []DocType{
	Quote,
	PurchaseOrder,
	Invoice,
	DeliveryNote,
	Receipt,
	Contract,
	Application,
}

// KnownDocTypes returns the document types named in the prompt, in prompt order.
func KnownDocTypes() []string {
	out := make([]string, len(knownDocTypes))
	for i, t := range knownDocTypes {
		out[i] = string(t)
	}
	return out
}

// IsKnownDocType reports whether s is one of the listed labels. Other labels are still valid.
func IsKnownDocType(s string) bool {
	for _, t := range knownDocTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// Placeholders used when the model reply could not be parsed.
const (
	UnknownValue = "?"
	YenSymbol    = "円"
	DollarSymbol = "$"
)
