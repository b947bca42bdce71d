package server

import (
	"html/template"
	"strconv"
	"time"

	"github.com/ukaji3/silsilah-go/pkg/silsilah"
	"github.com/ukaji3/silsilah-go/pkg/silsilah/models"
	"github.com/ukaji3/silsilah-go/pkg/silsilah/search"
)

type treeView struct {
	Term        string
	Unavailable bool
	SnapshotID  string
	FetchedAt   time.Time
	Couples     []coupleView
}

type coupleView struct {
	Name     template.HTML
	Children []childView
}

type childView struct {
	ID            string
	Name          template.HTML
	Status        template.HTML
	Spouses       []spouseView
	Grandchildren []grandchildView
	Expanded      bool
}

type spouseView struct {
	Name   template.HTML
	Status template.HTML
}

type grandchildView struct {
	Name    template.HTML
	Ordinal int
}

// buildView filters the snapshot by term and prepares highlighted markup.
// A nil snapshot renders as unavailable data.
func buildView(snap *silsilah.Snapshot, term string) treeView {
	v := treeView{Term: term}
	if snap == nil {
		v.Unavailable = true
		return v
	}
	v.SnapshotID = snap.ID.String()
	v.FetchedAt = snap.FetchedAt

	hl := search.NewHighlighter(term)
	filtered := search.Filter(snap.Hierarchy, term)

	n := 0
	for _, couple := range filtered.Couples {
		cv := coupleView{Name: hl.HTML(search.CleanCoupleLabel(couple.Label))}
		for _, c := range couple.Children {
			n++
			cv.Children = append(cv.Children, childViewOf(c, term, hl, n))
		}
		v.Couples = append(v.Couples, cv)
	}
	return v
}

func childViewOf(c models.Child, term string, hl *search.Highlighter, n int) childView {
	cv := childView{
		ID:       "child-" + strconv.Itoa(n),
		Name:     hl.HTML(search.CleanChildLabel(c.Label)),
		Expanded: search.Expanded(c, term),
	}
	if c.Status != "" {
		cv.Status = hl.HTML(c.Status)
	}
	for _, s := range c.Spouses {
		sv := spouseView{Name: hl.HTML(s.Name)}
		if s.Status != "" {
			sv.Status = hl.HTML(s.Status)
		}
		cv.Spouses = append(cv.Spouses, sv)
	}
	for i, gc := range c.Grandchildren {
		cv.Grandchildren = append(cv.Grandchildren, grandchildView{
			Name:    hl.HTML(search.DisplayGrandchild(gc)),
			Ordinal: i + 1,
		})
	}
	return cv
}
