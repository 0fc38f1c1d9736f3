package tally

import (
	"errors"
	"fmt"
)

// Sentinel errors for tally package.
var (
	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("tally: invalid color")

	// ErrValidation is wrapped by every *ValidationError.
	ErrValidation = errors.New("tally: invalid parameters")

	// ErrUnclassified is returned when a value falls outside every bucket.
	ErrUnclassified = errors.New("tally: value outside every threshold bucket")

	// ErrDegenerateScale is returned when a scale is fitted through two
	// points sharing the same x coordinate.
	ErrDegenerateScale = errors.New("tally: degenerate scale domain")

	// ErrInvalidLineMode is returned for a line mode other than
	// horizontal or vertical.
	ErrInvalidLineMode = errors.New("tally: line mode must be horizontal or vertical")

	// ErrInvalidDash is returned for an unknown dash style.
	ErrInvalidDash = errors.New("tally: invalid dash style")
)

// ValidationError describes a parameter that failed validation before
// anything was drawn.
type ValidationError struct {
	Composer string
	Field    string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Composer == "" {
		return fmt.Sprintf("tally: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("tally: %s: %s: %s", e.Composer, e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(composer, field, format string, args ...any) error {
	return &ValidationError{
		Composer: composer,
		Field:    field,
		Reason:   fmt.Sprintf(format, args...),
	}
}

// UnclassifiedError is returned when a value falls outside every bucket
// of a Classifier.
type UnclassifiedError struct {
	Value float64
}

func (e *UnclassifiedError) Error() string {
	return fmt.Sprintf("tally: value %v is outside every threshold bucket", e.Value)
}

// Unwrap makes errors.Is(err, ErrUnclassified) hold.
func (e *UnclassifiedError) Unwrap() error {
	return ErrUnclassified
}
