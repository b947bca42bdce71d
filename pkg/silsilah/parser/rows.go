package parser

import (
	"strings"

	"github.com/ukaji3/silsilah-go/pkg/silsilah/models"
)

// ParseRows builds a hierarchy from split rows.
// The first non-blank row is the header. Parsing is best-effort and never
// fails: short rows, stray cells and absent columns degrade to empty fields.
func ParseRows(rows [][]string, opts Options) *models.Hierarchy {
	b := newBuilder(opts.Duplicates)

	rows = dropBlankRows(rows)
	if len(rows) == 0 {
		return b.h
	}

	cols := ResolveColumns(rows[0])
	start := cols.GrandchildStart(opts.Boundary)

	for _, raw := range rows[1:] {
		row := make([]string, len(raw))
		for i, c := range raw {
			row[i] = cleanCell(c)
		}

		if couple := cell(row, cols.Couple); couple != "" {
			b.startCouple(couple)
		}
		if child := cell(row, cols.Child); child != "" {
			var spouses []models.Spouse
			if name := cell(row, cols.Spouse1); name != "" {
				spouses = append(spouses, models.Spouse{Name: name, Status: cell(row, cols.Spouse1Status)})
			}
			if name := cell(row, cols.Spouse2); name != "" {
				spouses = append(spouses, models.Spouse{Name: name, Status: cell(row, cols.Spouse2Status)})
			}
			b.startChild(child, spouses, cell(row, cols.ChildStatus))
		}

		for j := start; j < len(row); j++ {
			if row[j] != "" {
				b.addGrandchild(row[j])
			}
		}
	}

	return b.h
}

// HeaderColumns resolves the columns of the first non-blank row.
// It reports false when there is no such row.
func HeaderColumns(rows [][]string) (Columns, bool) {
	rows = dropBlankRows(rows)
	if len(rows) == 0 {
		return ResolveColumns(nil), false
	}
	return ResolveColumns(rows[0]), true
}

// DataRows counts the non-blank rows after the header.
func DataRows(rows [][]string) int {
	n := len(dropBlankRows(rows))
	if n == 0 {
		return 0
	}
	return n - 1
}

func dropBlankRows(rows [][]string) [][]string {
	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		if !isBlank(row) {
			kept = append(kept, row)
		}
	}
	return kept
}

// isBlank reports whether the row's line is whitespace only. A line of
// bare commas is not blank.
func isBlank(row []string) bool {
	return strings.TrimSpace(strings.Join(row, ",")) == ""
}

// builder carries the current couple and child across rows. The current
// child may belong to an earlier couple than the current one.
type builder struct {
	h      *models.Hierarchy
	policy DuplicatePolicy

	couple      int
	child       int
	childCouple int

	coupleIndex map[string]int
	childIndex  map[int]map[string]int
}

func newBuilder(policy DuplicatePolicy) *builder {
	return &builder{
		h:           models.NewHierarchy(),
		policy:      policy,
		couple:      -1,
		child:       -1,
		childCouple: -1,
		coupleIndex: make(map[string]int),
		childIndex:  make(map[int]map[string]int),
	}
}

// startCouple opens a couple group. The current child is kept: grandchild
// cells on rows without a child cell still go to the last child started.
func (b *builder) startCouple(label string) {
	if i, ok := b.coupleIndex[label]; ok {
		switch b.policy {
		case DuplicateMerge:
			b.couple = i
			return
		case DuplicateReplace:
			b.h.Couples[i].Children = []models.Child{}
			b.childIndex[i] = make(map[string]int)
			if b.childCouple == i {
				b.child, b.childCouple = -1, -1
			}
			b.couple = i
			return
		}
	}

	b.h.Couples = append(b.h.Couples, models.Couple{Label: label, Children: []models.Child{}})
	b.couple = len(b.h.Couples) - 1
	if _, ok := b.coupleIndex[label]; !ok {
		b.coupleIndex[label] = b.couple
	}
	b.childIndex[b.couple] = make(map[string]int)
}

// startChild opens a child under the current couple. Without a current
// couple the child has nowhere to go and is dropped.
func (b *builder) startChild(label string, spouses []models.Spouse, status string) {
	if b.couple < 0 {
		return
	}
	b.childCouple = b.couple
	couple := &b.h.Couples[b.couple]
	index := b.childIndex[b.couple]

	if i, ok := index[label]; ok {
		switch b.policy {
		case DuplicateMerge:
			entry := &couple.Children[i]
			if status != "" {
				entry.Status = status
			}
			entry.Spouses = append(entry.Spouses, spouses...)
			b.child = i
			return
		case DuplicateReplace:
			couple.Children[i] = newChild(label, spouses, status)
			b.child = i
			return
		}
	}

	couple.Children = append(couple.Children, newChild(label, spouses, status))
	b.child = len(couple.Children) - 1
	if _, ok := index[label]; !ok {
		index[label] = b.child
	}
}

func (b *builder) addGrandchild(name string) {
	if b.child < 0 {
		return
	}
	entry := &b.h.Couples[b.childCouple].Children[b.child]
	entry.Grandchildren = append(entry.Grandchildren, name)
}

func newChild(label string, spouses []models.Spouse, status string) models.Child {
	c := models.NewChild(label)
	c.Spouses = append(c.Spouses, spouses...)
	c.Status = status
	return c
}
