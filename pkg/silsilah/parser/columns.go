package parser

import "strings"

// Recognized header names.
const (
	HeaderCouple        = "Pasangan Awal"
	HeaderChild         = "Anak"
	HeaderSpouse1       = "Menantu Pertama"
	HeaderSpouse1Status = "Status Menantu Pertama"
	HeaderSpouse2       = "Menantu Kedua"
	HeaderSpouse2Status = "Status Menantu Kedua"
	HeaderChildStatus   = "Status Anak"
)

// Absent is the index of a header that was not found.
const Absent = -1

// Columns holds the resolved index of every recognized header.
type Columns struct {
	Couple        int
	Child         int
	Spouse1       int
	Spouse1Status int
	Spouse2       int
	Spouse2Status int
	ChildStatus   int
}

// ResolveColumns locates the recognized headers by exact name.
// Missing headers resolve to Absent.
func ResolveColumns(header []string) Columns {
	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = cleanCell(h)
	}
	indexOf := func(name string) int {
		for i, c := range cells {
			if c == name {
				return i
			}
		}
		return Absent
	}
	return Columns{
		Couple:        indexOf(HeaderCouple),
		Child:         indexOf(HeaderChild),
		Spouse1:       indexOf(HeaderSpouse1),
		Spouse1Status: indexOf(HeaderSpouse1Status),
		Spouse2:       indexOf(HeaderSpouse2),
		Spouse2Status: indexOf(HeaderSpouse2Status),
		ChildStatus:   indexOf(HeaderChildStatus),
	}
}

// Missing returns the names of recognized headers that were not found.
func (c Columns) Missing() []string {
	var missing []string
	for _, col := range []struct {
		name string
		idx  int
	}{
		{HeaderCouple, c.Couple},
		{HeaderChild, c.Child},
		{HeaderSpouse1, c.Spouse1},
		{HeaderSpouse1Status, c.Spouse1Status},
		{HeaderSpouse2, c.Spouse2},
		{HeaderSpouse2Status, c.Spouse2Status},
		{HeaderChildStatus, c.ChildStatus},
	} {
		if col.idx == Absent {
			missing = append(missing, col.name)
		}
	}
	return missing
}

// GrandchildStart returns the first column index treated as a grandchild cell.
func (c Columns) GrandchildStart(b Boundary) int {
	if b == BoundaryLegacy {
		return maxIndex(c.Spouse1, c.Spouse2Status, c.Couple, c.Child, c.ChildStatus) + 1
	}
	return maxIndex(c.Couple, c.Child, c.Spouse1, c.Spouse1Status,
		c.Spouse2, c.Spouse2Status, c.ChildStatus) + 1
}

// cell returns the cell at idx, or "" when the column is absent or the row is short.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func maxIndex(idx ...int) int {
	m := Absent
	for _, i := range idx {
		if i > m {
			m = i
		}
	}
	return m
}

// cleanCell removes double quotes and surrounding whitespace.
func cleanCell(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}
