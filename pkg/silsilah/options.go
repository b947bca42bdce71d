// Package silsilah loads a family genealogy sheet into a searchable hierarchy.
package silsilah

import (
	"go.uber.org/zap"

	"github.com/ukaji3/silsilah-go/pkg/silsilah/parser"
)

// Options configures loading.
type Options struct {
	// Parse configures the sheet parser.
	Parse parser.Options
	// Logger receives load diagnostics. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{
		Parse: parser.DefaultOptions(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
