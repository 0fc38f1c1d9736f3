package dataset

import "errors"

var (
	// ErrUnsupportedFormat is returned for files that are neither .csv nor .xlsx.
	ErrUnsupportedFormat = errors.New("dataset: unsupported format")

	// ErrMissingColumn is returned when a required column is absent.
	ErrMissingColumn = errors.New("dataset: missing column")

	// ErrInvalidRow is returned for rows with unparsable or out of range values.
	ErrInvalidRow = errors.New("dataset: invalid row")

	// ErrEmpty is returned for tables without data rows.
	ErrEmpty = errors.New("dataset: no rows")
)
