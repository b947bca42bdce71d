package parser

import (
	"github.com/xuri/excelize/v2"
)

// FamilySheet picks the worksheet holding the family table: the first
// sheet whose header row carries the couple column. Workbooks often put a
// title or notes sheet first. When no sheet qualifies the first sheet is
// returned, and "" when the workbook has none.
func FamilySheet(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", nil
	}

	for _, name := range sheets {
		rows, err := f.GetRows(name)
		if err != nil {
			return "", err
		}
		if cols, ok := HeaderColumns(rows); ok && cols.Couple != Absent {
			return name, nil
		}
	}
	return sheets[0], nil
}
