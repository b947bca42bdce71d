package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTP fetches a published spreadsheet export with an unauthenticated GET.
type HTTP struct {
	URL      string
	client   *http.Client
	maxBytes int64
	format   Format
}

// NewHTTP returns a source for url.
func NewHTTP(url string, opts Options) *HTTP {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &HTTP{
		URL:      url,
		client:   client,
		maxBytes: opts.maxBytes(),
		format:   opts.Format,
	}
}

func (s *HTTP) String() string {
	return s.URL
}

// Fetch performs one GET. Any non-2xx status is a *StatusError.
func (s *HTTP) Fetch(ctx context.Context) (*Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{URL: s.URL, Code: resp.StatusCode}
	}

	data, err := readLimited(resp.Body, s.maxBytes)
	if err != nil {
		return nil, err
	}

	format := s.format
	if format == FormatAuto {
		format = DetectFormat(data, resp.Header.Get("Content-Type"), s.URL)
	}

	return &Payload{Data: data, Format: format, Origin: s.URL}, nil
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}
	return data, nil
}
