package export

import (
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// WriteSheet adds a worksheet with a header row, one row per record, and
// columns widened to fit their longest cell.
func WriteSheet(f *excelize.File, sheet string, headers []string, rows [][]string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	widths := make([]int, len(headers))

	for c, h := range headers {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		widths[c] = utf8.RuneCountInString(h)
	}

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
			if c < len(widths) && utf8.RuneCountInString(v) > widths[c] {
				widths[c] = utf8.RuneCountInString(v)
			}
		}
	}

	for c, w := range widths {
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		// a little padding, capped so a long article body doesn't blow up the sheet
		width := float64(w) + 2
		if width > 80 {
			width = 80
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}

	return nil
}
