// Package parser turns spreadsheet exports into a family hierarchy.
package parser

import "fmt"

// Boundary selects which recognized columns decide where grandchild cells start.
type Boundary string

const (
	// BoundaryAll places the first grandchild column after the right-most of
	// all seven recognized columns.
	BoundaryAll Boundary = "all"
	// BoundaryLegacy considers only Menantu Pertama, Status Menantu Kedua,
	// Pasangan Awal, Anak and Status Anak, as the first published sheet did.
	BoundaryLegacy Boundary = "legacy"
)

// DuplicatePolicy decides what a repeated couple or child label does.
type DuplicatePolicy string

const (
	// DuplicateKeep records every repeated label as a separate entry.
	DuplicateKeep DuplicatePolicy = "keep"
	// DuplicateMerge reopens the earlier entry and appends to it.
	DuplicateMerge DuplicatePolicy = "merge"
	// DuplicateReplace empties the earlier entry in place and refills it.
	DuplicateReplace DuplicatePolicy = "replace"
)

// Options configures parsing.
type Options struct {
	// Boundary selects the grandchild boundary formula.
	Boundary Boundary
	// Duplicates selects how repeated labels are handled.
	Duplicates DuplicatePolicy
	// Sheet is the worksheet read from XLSX input. Empty selects it with FamilySheet.
	Sheet string
}

// DefaultOptions returns default parse options.
func DefaultOptions() Options {
	return Options{
		Boundary:   BoundaryAll,
		Duplicates: DuplicateKeep,
	}
}

// ParseBoundary validates a boundary name.
func ParseBoundary(s string) (Boundary, error) {
	switch b := Boundary(s); b {
	case BoundaryAll, BoundaryLegacy:
		return b, nil
	case "":
		return BoundaryAll, nil
	default:
		return "", fmt.Errorf("invalid boundary: %s (must be all or legacy)", s)
	}
}

// ParseDuplicatePolicy validates a duplicate policy name.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch p := DuplicatePolicy(s); p {
	case DuplicateKeep, DuplicateMerge, DuplicateReplace:
		return p, nil
	case "":
		return DuplicateKeep, nil
	default:
		return "", fmt.Errorf("invalid duplicate policy: %s (must be keep, merge, or replace)", s)
	}
}
