package llm

import (
	"strings"

	"github.com/joseph-ayodele/document-sorter/constants"
)

// BuildPrompt composes the single user message: the task description, the
// property rules and then the document text verbatim.
func BuildPrompt(text string) string {
	var b strings.Builder
	b.WriteString("入力文は、PDF文書から抜き出したテキストです。これからこのPDF文章ファイル名を属性に基づいてリネームしてフォルダに分類します。\n")
	b.WriteString("そのために内容を解析し、属性を抽出します。\n\n")
	b.WriteString("入力文を読んで、次のプロパティを持つオブジェクトをJSON形式で出力してください。\n\n")
	b.WriteString("# オブジェクトのプロパティ仕様\n\n")
	for _, rule := range propertyRules() {
		b.WriteString("- ")
		b.WriteString(rule)
		b.WriteString("\n")
	}
	b.WriteString("\n# 入力文\n\n")
	b.WriteString(text)
	b.WriteString("\n")
	return b.String()
}

func propertyRules() []string {
	return []string{
		"type: " + strings.Join(constants.KnownDocTypes(), "・") + "などの種別。日本語に翻訳してください。",
		"recipient: 宛先の会社名。ファイル名として不都合な文字は削除してください。",
		"author: 発行元の会社名。ファイル名として不都合な文字は削除してください。",
		"date: 発行日。YYYYMMDD形式で出力してください。",
		"amount: 税抜の合計金額。数値として出力してください。",
		"symbol: 通貨単位記号。JPYや¥は「" + constants.YenSymbol + "」、USDは「" + constants.DollarSymbol + "」に統一してください。それ以外の通貨はそのまま出力してください。",
	}
}
