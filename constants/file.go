package constants

import "strings"

// AllowedExtensions holds the file extensions picked up from the source directory.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether ext (with or without the dot) is an accepted input extension.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}

const (
	ManifestCSVName  = "一覧.csv"
	ManifestXLSXName = "一覧.xlsx"
	ManifestSheet    = "一覧"

	OutputExt = ".pdf"
)

// ManifestHeader is the fixed first row of every manifest.
var ManifestHeader = []string{
	"元のファイルパス",
	"種別",
	"発行元",
	"発行日",
	"金額",
	"通貨単位",
	"新しいファイル名",
}
