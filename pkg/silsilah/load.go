package silsilah

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ukaji3/silsilah-go/pkg/silsilah/models"
	"github.com/ukaji3/silsilah-go/pkg/silsilah/parser"
	"github.com/ukaji3/silsilah-go/pkg/silsilah/source"
)

// Snapshot is one successfully parsed fetch of the sheet.
type Snapshot struct {
	// ID identifies this fetch.
	ID uuid.UUID
	// Hierarchy is the full parsed tree. It must be treated as read-only.
	Hierarchy *models.Hierarchy
	// Source names where the sheet came from.
	Source string
	// Format is the payload format that was parsed.
	Format source.Format
	// FetchedAt is when the fetch completed.
	FetchedAt time.Time
	// DataRows is the number of non-blank rows after the header.
	DataRows int
	// MissingColumns lists recognized headers absent from the sheet.
	MissingColumns []string
}

// Load fetches the sheet from src and parses it.
//
// A source failure is returned as a *FetchError. A sheet with no data rows
// returns ErrEmptyInput. So does a sheet whose rows yield no couple at all,
// including one without a "Pasangan Awal" column. Other absent columns are
// tolerated and only recorded on the snapshot.
func Load(ctx context.Context, src source.Source, opts Options) (*Snapshot, error) {
	logger := opts.logger().With(zap.String("source", src.String()))

	start := time.Now()
	payload, err := src.Fetch(ctx)
	if err != nil {
		return nil, NewFetchError(src.String(), err)
	}
	logger.Debug("fetched sheet",
		zap.Int("bytes", len(payload.Data)),
		zap.String("format", string(payload.Format)),
		zap.Duration("elapsed", time.Since(start)))

	rows, err := payloadRows(payload, opts.Parse.Sheet)
	if err != nil {
		return nil, err
	}

	cols, ok := parser.HeaderColumns(rows)
	dataRows := parser.DataRows(rows)
	if !ok || dataRows == 0 {
		return nil, ErrEmptyInput
	}

	missing := cols.Missing()
	if len(missing) > 0 {
		logger.Debug("recognized columns absent", zap.Strings("columns", missing))
	}

	h := parser.ParseRows(rows, opts.Parse)
	if h.Empty() {
		return nil, fmt.Errorf("%w: %d rows produced no couple", ErrEmptyInput, dataRows)
	}

	snap := &Snapshot{
		ID:             uuid.New(),
		Hierarchy:      h,
		Source:         payload.Origin,
		Format:         payload.Format,
		FetchedAt:      time.Now(),
		DataRows:       dataRows,
		MissingColumns: missing,
	}
	logger.Info("parsed family sheet",
		zap.String("snapshot", snap.ID.String()),
		zap.Int("couples", h.Len()),
		zap.Int("children", h.ChildCount()),
		zap.Int("grandchildren", h.GrandchildCount()))

	return snap, nil
}

func payloadRows(p *source.Payload, sheet string) ([][]string, error) {
	switch p.Format {
	case source.FormatXLSX:
		rows, err := parser.ReadXLSX(bytes.NewReader(p.Data), sheet)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return rows, nil
	default:
		text, err := parser.DecodeText(p.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return parser.SplitCSV(text), nil
	}
}
