package models

// Spouse is a child's married-in partner.
type Spouse struct {
	// Name is the spouse's display name.
	Name string `json:"name" yaml:"name"`
	// Status is the relationship status (empty if absent).
	Status string `json:"status" yaml:"status"`
}

// ChildEntry holds everything recorded for one child of a couple.
type ChildEntry struct {
	// Spouses lists up to two spouses in column order.
	Spouses []Spouse `json:"spouses" yaml:"spouses"`
	// Status is the child's status cell.
	Status string `json:"status" yaml:"status"`
	// Grandchildren lists grandchild names in listing order.
	// Names are stored raw, including any marker characters.
	Grandchildren []string `json:"grandchildren" yaml:"grandchildren"`
}

// Child is a labelled child entry.
type Child struct {
	// Label is the child cell as it appears in the sheet (e.g. "1. Ani").
	Label      string `json:"label" yaml:"label"`
	ChildEntry `yaml:",inline"`
}

// NewChild returns a child with empty, non-nil slices.
func NewChild(label string) Child {
	return Child{
		Label: label,
		ChildEntry: ChildEntry{
			Spouses:       []Spouse{},
			Grandchildren: []string{},
		},
	}
}

// HasGrandchildren reports whether the child lists any grandchild.
func (c Child) HasGrandchildren() bool {
	return len(c.Grandchildren) > 0
}
