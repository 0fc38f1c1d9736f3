package dataset

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/gogpu/tally"
)

// Load reads the regions of a .csv or .xlsx file.
func Load(path string) ([]tally.Region, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	regions, err := t.regions()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tally.Logger().Debug("dataset: loaded", "path", path, "regions", len(regions))
	return regions, nil
}

// ReadCSV reads regions from CSV text.
func ReadCSV(r io.Reader) ([]tally.Region, error) {
	records, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	t, err := newTable(records)
	if err != nil {
		return nil, err
	}
	return t.regions()
}

func (t *table) regions() ([]tally.Region, error) {
	id, ok := t.column("id")
	if !ok {
		id = t.header[t.first]
	}
	result, err := t.require("result")
	if err != nil {
		return nil, err
	}
	name, hasName := t.column("name", "county")

	out := make([]tally.Region, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2
		r := tally.Region{ID: cell(row, id)}
		if r.ID == "" {
			return nil, fmt.Errorf("%w %d: empty id", ErrInvalidRow, line)
		}
		if hasName {
			r.Name = cell(row, name)
		}
		r.Result, err = parseResult(cell(row, result))
		if err != nil {
			return nil, fmt.Errorf("%w %d (id %s): %v", ErrInvalidRow, line, r.ID, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func parseResult(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("result %q is not a number", s)
	}
	if math.IsNaN(v) || v < -100 || v > 100 {
		return 0, fmt.Errorf("result %v out of range [-100, 100]", v)
	}
	return v, nil
}
