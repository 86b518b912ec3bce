package llm

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const invoiceJSON = `{"type":"請求書","recipient":"山田商店","author":"ACME","date":"20240101","amount":1000,"symbol":"円"}`

func invoiceAttrs() Attributes {
	return Attributes{
		Type:      "請求書",
		Recipient: "山田商店",
		Author:    "ACME",
		Date:      "20240101",
		Amount:    decimal.NewFromInt(1000),
		Symbol:    "円",
	}
}

func assertAttrs(t *testing.T, want, got Attributes) {
	t.Helper()
	assert.Equal(t, want.Type, got.Type)
	assert.Equal(t, want.Recipient, got.Recipient)
	assert.Equal(t, want.Author, got.Author)
	assert.Equal(t, want.Date, got.Date)
	assert.True(t, want.Amount.Equal(got.Amount), "amount: want %s, got %s", want.Amount, got.Amount)
	assert.Equal(t, want.Symbol, got.Symbol)
}

func TestParseReply_DirectJSON(t *testing.T) {
	ext, err := ParseReply(invoiceJSON)
	require.NoError(t, err)
	assert.Equal(t, OriginJSON, ext.Origin)
	assert.False(t, ext.Defaulted())
	assertAttrs(t, invoiceAttrs(), ext.Attributes)
	assert.Equal(t, invoiceJSON, ext.Reply)
}

func TestParseReply_DirectJSONWithWhitespace(t *testing.T) {
	ext, err := ParseReply("\n  " + invoiceJSON + "\n")
	require.NoError(t, err)
	assert.Equal(t, OriginJSON, ext.Origin)
	assertAttrs(t, invoiceAttrs(), ext.Attributes)
}

func TestParseReply_FencedMatchesDirect(t *testing.T) {
	direct, err := ParseReply(invoiceJSON)
	require.NoError(t, err)

	tests := []struct {
		name  string
		reply string
	}{
		{"bare fence", "以下が結果です。\n```\n" + invoiceJSON + "\n```\nご確認ください。"},
		{"json info string", "Here you go:\n```json\n" + invoiceJSON + "\n```"},
		{"single line fence", "```" + invoiceJSON + "```"},
		{"first block wins", "```\n" + invoiceJSON + "\n```\n```\n{\"type\":\"x\"}\n```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := ParseReply(tt.reply)
			require.NoError(t, err)
			assert.Equal(t, OriginFenced, ext.Origin)
			assertAttrs(t, direct.Attributes, ext.Attributes)
		})
	}
}

func TestParseReply_FallsBackToDefault(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"empty reply", ""},
		{"plain prose", "申し訳ありませんが、この文書から情報を抽出できませんでした。"},
		{"broken fence", "```\n{not json}\n```"},
		{"unterminated fence", "```json\n" + invoiceJSON},
		{"missing author", `{"type":"請求書","date":"20240101","amount":1000,"symbol":"円"}`},
		{"amount as string", `{"type":"請求書","author":"ACME","date":"20240101","amount":"1000","symbol":"円"}`},
		{"array instead of object", `[` + invoiceJSON + `]`},
		{"null", "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := ParseReply(tt.reply)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnparseable)
			assert.True(t, ext.Defaulted())
			assert.Equal(t, OriginDefault, ext.Origin)
			assertAttrs(t, DefaultAttributes(), ext.Attributes)
			assert.Equal(t, tt.reply, ext.Reply)
		})
	}
}

func TestParseReply_NoCoercion(t *testing.T) {
	ext, err := ParseReply(`{"type":"Invoice","author":"Acme Inc","date":"2024-01-01","amount":49.99,"symbol":"USD","extra":true}`)
	require.NoError(t, err)
	assert.Equal(t, "Invoice", ext.Type)
	assert.Equal(t, "Acme Inc", ext.Author)
	assert.Equal(t, "2024-01-01", ext.Date)
	assert.Equal(t, "49.99", ext.Amount.String())
	assert.Equal(t, "USD", ext.Symbol)
	assert.Empty(t, ext.Recipient)
}

func TestParseReply_NullRecipient(t *testing.T) {
	ext, err := ParseReply(`{"type":"領収書","recipient":null,"author":"ACME","date":"20240101","amount":0,"symbol":"円"}`)
	require.NoError(t, err)
	assert.Empty(t, ext.Recipient)
	assert.True(t, ext.Amount.IsZero())
}

func TestDefaultAttributes(t *testing.T) {
	d := DefaultAttributes()
	assert.Equal(t, "不明", d.Type)
	assert.Equal(t, "?", d.Author)
	assert.Equal(t, "?", d.Date)
	assert.True(t, d.Amount.IsZero())
	assert.Equal(t, "?", d.Symbol)
	assert.Empty(t, d.Recipient)
}

func TestStripInfoString(t *testing.T) {
	assert.Equal(t, "{}\n", stripInfoString("json\n{}\n"))
	assert.Equal(t, "\n{}\n", stripInfoString("\n{}\n"))
	assert.Equal(t, "{\"a\":1,\n\"b\":2}", stripInfoString("{\"a\":1,\n\"b\":2}"))
	assert.Equal(t, "{}", stripInfoString("{}"))
}

func TestValidateShape(t *testing.T) {
	assert.NoError(t, ValidateShape(map[string]any{
		"type": "見積書", "author": "A", "date": "?", "amount": 0.0, "symbol": "$",
	}))
	assert.Error(t, ValidateShape(map[string]any{
		"type": "見積書", "author": 1.0, "date": "?", "amount": 0.0, "symbol": "$",
	}))
	assert.Error(t, ValidateShape("just a string"))
}
