package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/document-sorter/internal/llm"
)

func attrs(date, author string, amount decimal.Decimal, symbol, typ string) llm.Attributes {
	return llm.Attributes{Date: date, Author: author, Amount: amount, Symbol: symbol, Type: typ}
}

func TestPriceString(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		symbol string
		want   string
	}{
		{"yen after amount", decimal.NewFromInt(1000), "円", "1000円"},
		{"dollar before amount", decimal.NewFromInt(50), "$", "$50"},
		{"fraction", decimal.RequireFromString("1000.5"), "$", "$1000.5"},
		{"other currency verbatim", decimal.NewFromInt(20), "€", "€20"},
		{"unknown", decimal.Zero, "?", "?0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriceString(llm.Attributes{Amount: tt.amount, Symbol: tt.symbol}))
		})
	}
}

func TestNewPath(t *testing.T) {
	a := attrs("20240101", "ACME", decimal.NewFromInt(1000), "円", "請求書")
	assert.Equal(t,
		filepath.Join("output", "請求書", "20240101_ACME_1000円_請求書.pdf"),
		NewPath("output", a))
}

func TestNewPath_Defaults(t *testing.T) {
	assert.Equal(t,
		filepath.Join("output", "不明", "?_?_?0_不明.pdf"),
		NewPath("output", llm.DefaultAttributes()))
}

func TestNewPath_SeparatorsStayInSegment(t *testing.T) {
	a := attrs("2024/01/01", `A\B`, decimal.NewFromInt(1), "$", "見積書/控え")
	p := NewPath("out", a)
	assert.Equal(t, filepath.Join("out", "見積書_控え", "2024_01_01_A_B_$1_見積書_控え.pdf"), p)
}

func TestNewPath_DotTypeCannotEscape(t *testing.T) {
	a := attrs("?", "?", decimal.Zero, "?", "..")
	p := NewPath("out", a)
	assert.Equal(t, "out", filepath.Dir(filepath.Dir(p)))
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF-1.4 data"), 0o644))

	dst := filepath.Join(dir, "out", "請求書", "copy.pdf")
	require.NoError(t, CopyFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 data", string(got))

	orig, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 data", string(orig), "source must be left untouched")
}

func TestCopyFile_Overwrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.pdf")
	dst := filepath.Join(dir, "dst.pdf")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("older and longer"), 0o644))

	require.NoError(t, CopyFile(src, dst))
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestCopyFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFile(filepath.Join(dir, "nope.pdf"), filepath.Join(dir, "x.pdf"))
	assert.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "x.pdf"))
	assert.True(t, os.IsNotExist(statErr))
}
