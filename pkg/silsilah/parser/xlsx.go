package parser

import (
	"io"

	"github.com/ukaji3/silsilah-go/pkg/silsilah/models"
	"github.com/xuri/excelize/v2"
)

// ParseXLSX parses an XLSX export of the family sheet.
func ParseXLSX(r io.Reader, opts Options) (*models.Hierarchy, error) {
	rows, err := ReadXLSX(r, opts.Sheet)
	if err != nil {
		return nil, err
	}
	return ParseRows(rows, opts), nil
}

// ReadXLSX returns the raw rows of a worksheet.
// An empty sheet name selects the sheet chosen by FamilySheet.
func ReadXLSX(r io.Reader, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		if sheet, err = FamilySheet(f); err != nil {
			return nil, err
		}
		if sheet == "" {
			return nil, nil
		}
	}

	return f.GetRows(sheet)
}
