package silsilah

import (
	"errors"
	"fmt"
)

// ErrFetchFailure indicates the sheet could not be retrieved. The family
// data is unavailable for this cycle.
var ErrFetchFailure = errors.New("data unavailable")

// ErrEmptyInput indicates the sheet has no usable rows after the header.
var ErrEmptyInput = errors.New("no usable rows")

// ErrInvalidFormat indicates the payload is not a readable sheet export.
var ErrInvalidFormat = errors.New("invalid sheet format")

// ErrSuperseded indicates a refresh was overtaken by a newer one and its
// result was discarded.
var ErrSuperseded = errors.New("refresh superseded")

// FetchError represents a failure to retrieve the sheet.
// It matches ErrFetchFailure with errors.Is.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed for %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFetchFailure.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailure
}

// NewFetchError creates a new FetchError.
func NewFetchError(source string, err error) *FetchError {
	return &FetchError{
		Source: source,
		Err:    err,
	}
}
