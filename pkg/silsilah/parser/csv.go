package parser

import (
	"strings"

	"github.com/ukaji3/silsilah-go/pkg/silsilah/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ParseCSV parses a published-sheet CSV export.
//
// Rows are split on every comma with no quote handling, so a value that
// contains a comma shifts the remaining cells of its row. Published family
// sheets do not carry such values.
func ParseCSV(text string, opts Options) *models.Hierarchy {
	return ParseRows(SplitCSV(text), opts)
}

// SplitCSV splits CSV text into raw rows, dropping whitespace-only lines.
func SplitCSV(text string) [][]string {
	lines := strings.Split(text, "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(line, ","))
	}
	return rows
}

// DecodeText decodes a UTF-8 payload, removing a leading byte order mark.
// UTF-16 payloads with a BOM are converted as well.
func DecodeText(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
