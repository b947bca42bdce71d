package source

import (
	"context"
	"os"
)

// File reads a sheet export saved on disk.
type File struct {
	Path     string
	maxBytes int64
	format   Format
}

// NewFile returns a source for the file at path.
func NewFile(path string, opts Options) *File {
	return &File{
		Path:     path,
		maxBytes: opts.maxBytes(),
		format:   opts.Format,
	}
}

func (s *File) String() string {
	return s.Path
}

// Fetch reads the whole file.
func (s *File) Fetch(ctx context.Context) (*Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := readLimited(f, s.maxBytes)
	if err != nil {
		return nil, err
	}

	format := s.format
	if format == FormatAuto {
		format = DetectFormat(data, s.Path)
	}

	return &Payload{Data: data, Format: format, Origin: s.Path}, nil
}
