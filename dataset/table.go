package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Format is a supported table file format.
type Format int

const (
	// CSV is comma separated text with a header row.
	CSV Format = iota
	// XLSX is an Excel workbook; only the first sheet is read.
	XLSX
)

// String returns the file extension of the format.
func (f Format) String() string {
	switch f {
	case CSV:
		return ".csv"
	case XLSX:
		return ".xlsx"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf returns the format of path based on its extension.
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return CSV, nil
	case ".xlsx":
		return XLSX, nil
	default:
		return 0, fmt.Errorf("%w: the file has to be an .xlsx or a .csv, not %q", ErrUnsupportedFormat, ext)
	}
}

// table is a header plus data rows. Rows may be shorter than the header.
type table struct {
	header map[string]int
	first  string
	rows   [][]string
}

func newTable(records [][]string) (*table, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	t := &table{header: make(map[string]int, len(records[0]))}
	for i, name := range records[0] {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if i == 0 {
			t.first = name
		}
		if _, dup := t.header[name]; !dup {
			t.header[name] = i
		}
	}
	for _, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		t.rows = append(t.rows, rec)
	}
	if len(t.rows) == 0 {
		return nil, ErrEmpty
	}
	return t, nil
}

// column returns the index of the first present name.
func (t *table) column(names ...string) (int, bool) {
	for _, n := range names {
		if i, ok := t.header[n]; ok {
			return i, true
		}
	}
	return 0, false
}

func (t *table) require(names ...string) (int, error) {
	i, ok := t.column(names...)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingColumn, names[0])
	}
	return i, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func readTable(path string) (*table, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	var records [][]string
	switch format {
	case CSV:
		records, err = readCSVFile(path)
	case XLSX:
		records, err = readXLSX(path)
	}
	if err != nil {
		return nil, err
	}
	t, err := newTable(records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func readCSVFile(path string) ([][]string, error) {
	f, err := os.Open(path) // #nosec G304 -- input path is provided by the user
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()
	return readCSV(f)
}

func readCSV(r io.Reader) ([][]string, error) {
	var (
		rs   = csv.NewReader(r)
		list [][]string
	)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("dataset: %w", err)
		}
		list = append(list, row)
	}
	return list, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("dataset: %s: %w", path, ErrEmpty)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	return rows, nil
}
