package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/document-sorter/constants"
)

// EncodeXLSX returns an XLSX workbook (as bytes) holding the same records as
// the CSV manifest on a single sheet.
func EncodeXLSX(records [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = constants.ManifestSheet
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for r, rec := range records {
		row := r + 1
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		for c, v := range rec {
			write(c+1, v)
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 40) // source path
	_ = f.SetColWidth(sheet, "B", "C", 22) // type, author
	_ = f.SetColWidth(sheet, "D", "D", 12) // date
	_ = f.SetColWidth(sheet, "E", "F", 12) // amount, symbol
	_ = f.SetColWidth(sheet, "G", "G", 60) // new path

	if len(records) > 0 {
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return nil, fmt.Errorf("freeze header: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
