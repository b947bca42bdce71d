// Package models defines the family tree data structures.
package models

// Couple is a top-level ancestor pair together with its children.
type Couple struct {
	// Label is the couple cell as it appears in the sheet (e.g. "1. Budi & Sari").
	Label string `json:"label" yaml:"label"`
	// Children lists the couple's children in sheet order.
	Children []Child `json:"children" yaml:"children"`
}

// Child returns the first child with the given label.
func (c *Couple) Child(label string) (*Child, bool) {
	for i := range c.Children {
		if c.Children[i].Label == label {
			return &c.Children[i], true
		}
	}
	return nil, false
}

// Hierarchy is the parsed three-level family tree.
// Couples and children keep their sheet order; labels are not required
// to be unique.
type Hierarchy struct {
	// Couples lists every couple group in sheet order.
	Couples []Couple `json:"couples" yaml:"couples"`
}

// NewHierarchy returns an empty hierarchy.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{Couples: []Couple{}}
}

// Len returns the number of couples.
func (h *Hierarchy) Len() int {
	if h == nil {
		return 0
	}
	return len(h.Couples)
}

// Empty reports whether the hierarchy has no couples.
func (h *Hierarchy) Empty() bool {
	return h.Len() == 0
}

// Couple returns the first couple with the given label.
func (h *Hierarchy) Couple(label string) (*Couple, bool) {
	if h == nil {
		return nil, false
	}
	for i := range h.Couples {
		if h.Couples[i].Label == label {
			return &h.Couples[i], true
		}
	}
	return nil, false
}

// ChildCount returns the number of children across all couples.
func (h *Hierarchy) ChildCount() int {
	n := 0
	if h == nil {
		return n
	}
	for _, c := range h.Couples {
		n += len(c.Children)
	}
	return n
}

// GrandchildCount returns the number of grandchildren across all children.
func (h *Hierarchy) GrandchildCount() int {
	n := 0
	if h == nil {
		return n
	}
	for _, c := range h.Couples {
		for _, ch := range c.Children {
			n += len(ch.Grandchildren)
		}
	}
	return n
}
