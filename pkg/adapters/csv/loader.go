// Package csv implements ports.DatasetLoader over a CSV file with the
// columns `Source`, `State` and `Fiscal Year`. Extra columns are ignored.
package csv

import (
	"context"
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/gridview/pkg/domain"
)

// Column names the loader requires in the header row.
const (
	columnSource = "Source"
	columnState  = "State"
	columnYear   = "Fiscal Year"
)

// Loader reads the dataset from a CSV file at a fixed path.
type Loader struct {
	path string
}

// NewLoader creates a loader for the given file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and validates the whole file. Any problem (missing file,
// missing column, non-integer fiscal year) is an error; the caller treats
// load errors as fatal so the dashboard never serves a partial dataset.
func (l *Loader) Load(ctx context.Context) ([]domain.Record, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	reader := stdcsv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}
	cols, err := columnIndexes(header)
	if err != nil {
		return nil, err
	}

	var records []domain.Record
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset line %d: %w", line, err)
		}

		year, err := strconv.Atoi(strings.TrimSpace(row[cols.year]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid fiscal year %q", line, row[cols.year])
		}
		records = append(records, domain.Record{
			Source:     strings.TrimSpace(row[cols.source]),
			State:      strings.TrimSpace(row[cols.state]),
			FiscalYear: year,
		})
	}

	return records, nil
}

type columns struct {
	source, state, year int
}

func columnIndexes(header []string) (columns, error) {
	cols := columns{source: -1, state: -1, year: -1}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case columnSource:
			cols.source = i
		case columnState:
			cols.state = i
		case columnYear:
			cols.year = i
		}
	}
	for name, idx := range map[string]int{
		columnSource: cols.source,
		columnState:  cols.state,
		columnYear:   cols.year,
	} {
		if idx < 0 {
			return columns{}, fmt.Errorf("%w: %q", domain.ErrMissingColumn, name)
		}
	}
	return cols, nil
}
