package source

import (
	"errors"
	"fmt"
)

// ErrTooLarge indicates a payload above the configured size cap.
var ErrTooLarge = errors.New("payload too large")

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Code)
}
