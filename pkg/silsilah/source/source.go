// Package source fetches published family sheets.
package source

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

// Format is the payload format of a sheet export.
type Format string

const (
	// FormatAuto detects the format from the payload.
	FormatAuto Format = ""
	// FormatCSV is a comma separated export (pub?output=csv).
	FormatCSV Format = "csv"
	// FormatXLSX is a workbook export (pub?output=xlsx).
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a format name. "auto" and "" select FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be auto, csv, or xlsx)", s)
	}
}

// Payload is one fetched sheet export.
type Payload struct {
	// Data is the raw body.
	Data []byte
	// Format is the resolved payload format, never FormatAuto.
	Format Format
	// Origin names where the payload came from.
	Origin string
}

// Source fetches the current sheet export.
type Source interface {
	Fetch(ctx context.Context) (*Payload, error)
	String() string
}

// DefaultMaxBytes caps a payload at 16 MiB.
const DefaultMaxBytes = 16 << 20

// Options configures a source.
type Options struct {
	// Timeout bounds one HTTP fetch. Zero means no timeout beyond the context.
	Timeout time.Duration
	// MaxBytes caps the payload size. Zero selects DefaultMaxBytes.
	MaxBytes int64
	// Format forces the payload format. FormatAuto detects it.
	Format Format
	// Client overrides the HTTP client.
	Client *http.Client
}

func (o Options) maxBytes() int64 {
	if o.MaxBytes > 0 {
		return o.MaxBytes
	}
	return DefaultMaxBytes
}

// Open returns an HTTP source for http(s) locations and a file source otherwise.
func Open(location string, opts Options) (Source, error) {
	if location == "" {
		return nil, fmt.Errorf("source location is required")
	}
	if u, err := url.Parse(location); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return NewHTTP(location, opts), nil
	}
	return NewFile(location, opts), nil
}

var zipMagic = []byte("PK\x03\x04")

// DetectFormat resolves the format of data. Workbooks are recognized by
// their zip signature, then by the content type or location hints.
func DetectFormat(data []byte, hints ...string) Format {
	if bytes.HasPrefix(data, zipMagic) {
		return FormatXLSX
	}
	for _, hint := range hints {
		h := strings.ToLower(hint)
		if strings.Contains(h, "spreadsheetml") || strings.Contains(h, "output=xlsx") || filepath.Ext(h) == ".xlsx" {
			return FormatXLSX
		}
	}
	return FormatCSV
}
