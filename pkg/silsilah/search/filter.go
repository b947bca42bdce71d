package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/ukaji3/silsilah-go/pkg/silsilah/models"
)

// Filter returns the part of h that matches term.
//
// A couple whose cleaned label contains the term is kept whole. Otherwise a
// child is kept whole when its cleaned label, status or any spouse name or
// status contains the term, and kept with only its matching grandchildren
// when just those match. Couples left without children are dropped.
//
// Matching is case-insensitive substring containment. An empty term returns
// h itself. h is never modified; the result may share slices with it.
// The cost is linear in the number of nodes, paid on every call.
func Filter(h *models.Hierarchy, term string) *models.Hierarchy {
	if h == nil {
		return models.NewHierarchy()
	}
	if term == "" {
		return h
	}

	m := newMatcher(term)
	out := models.NewHierarchy()

	for _, couple := range h.Couples {
		if m.match(CleanCoupleLabel(couple.Label)) {
			out.Couples = append(out.Couples, couple)
			continue
		}

		var children []models.Child
		for _, c := range couple.Children {
			if kept, ok := m.filterChild(c); ok {
				children = append(children, kept)
			}
		}
		if len(children) > 0 {
			out.Couples = append(out.Couples, models.Couple{Label: couple.Label, Children: children})
		}
	}

	return out
}

// Expanded reports whether a child's grandchildren should be shown open
// for term, i.e. whether any of them matches.
func Expanded(c models.Child, term string) bool {
	if term == "" {
		return false
	}
	m := newMatcher(term)
	for _, gc := range c.Grandchildren {
		if m.match(gc) {
			return true
		}
	}
	return false
}

// matcher folds case once per term. It is not safe for concurrent use.
type matcher struct {
	fold cases.Caser
	term string
}

func newMatcher(term string) *matcher {
	fold := cases.Fold()
	return &matcher{fold: fold, term: fold.String(term)}
}

func (m *matcher) match(s string) bool {
	return strings.Contains(m.fold.String(s), m.term)
}

func (m *matcher) childMatches(c models.Child) bool {
	if m.match(CleanChildLabel(c.Label)) || m.match(c.Status) {
		return true
	}
	for _, s := range c.Spouses {
		if m.match(s.Name) || m.match(s.Status) {
			return true
		}
	}
	return false
}

// filterChild decides whether c is kept and in which shape.
// Grandchildren are matched on their raw names, markers included.
func (m *matcher) filterChild(c models.Child) (models.Child, bool) {
	if m.childMatches(c) {
		return c, true
	}

	var matching []string
	for _, gc := range c.Grandchildren {
		if m.match(gc) {
			matching = append(matching, gc)
		}
	}
	if len(matching) == 0 {
		return models.Child{}, false
	}

	pruned := c
	pruned.Grandchildren = matching
	return pruned, true
}
