// Package search filters a family hierarchy by a search term and marks
// matches for display.
package search

import (
	"regexp"
	"strings"
)

var (
	romanPrefix   = regexp.MustCompile(`^[IVX]+\s`)
	ordinalPrefix = regexp.MustCompile(`^\d+\.\s*`)
)

// CleanCoupleLabel strips a leading generation numeral ("II ") and an
// ordinal ("3. ") from a couple label.
func CleanCoupleLabel(label string) string {
	label = romanPrefix.ReplaceAllString(label, "")
	label = ordinalPrefix.ReplaceAllString(label, "")
	return strings.TrimSpace(label)
}

// CleanChildLabel strips a leading ordinal ("3. ") from a child label.
// Child labels keep a leading "I " since it is a common given-name prefix.
func CleanChildLabel(label string) string {
	return strings.TrimSpace(ordinalPrefix.ReplaceAllString(label, ""))
}

// GrandchildMarker flags a grandchild in the sheet. It is hidden on display.
const GrandchildMarker = "*"

// DisplayGrandchild removes marker characters around a grandchild name.
func DisplayGrandchild(name string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(name), GrandchildMarker))
}
