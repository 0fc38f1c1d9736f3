package tally

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders percentages for labels in a given locale.
// The zero value is not usable; use NewFormatter or DefaultFormatter.
type Formatter struct {
	tag       language.Tag
	printer   *message.Printer
	precision int
}

// FormatterOption configures a Formatter during creation.
type FormatterOption func(*Formatter)

// WithLocale sets the locale used for decimal separators.
func WithLocale(tag language.Tag) FormatterOption {
	return func(f *Formatter) {
		f.tag = tag
	}
}

// shortest selects as many fraction digits as the value needs.
const shortest = -1

// WithPrecision rounds labels to a fixed number of fraction digits.
// A negative value restores the default shortest form.
func WithPrecision(digits int) FormatterOption {
	return func(f *Formatter) {
		f.precision = max(digits, shortest)
	}
}

// NewFormatter creates a Formatter. The default is English and prints
// values as given: 73.15 is "73.15%" and 73 is "73%".
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		tag:       language.English,
		precision: shortest,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.printer = message.NewPrinter(f.tag)
	return f
}

// DefaultFormatter is used by widgets that leave their Labels field nil.
var DefaultFormatter = NewFormatter()

// Percent formats v as a percentage, for example "73.1%".
func (f *Formatter) Percent(v float64) string {
	return f.printer.Sprintf("%.*f%%", f.digits(v), v)
}

// Number formats v without a unit.
func (f *Formatter) Number(v float64) string {
	return f.printer.Sprintf("%.*f", f.digits(v), v)
}

// digits returns the fraction digits used for v.
func (f *Formatter) digits(v float64) int {
	if f.precision != shortest {
		return f.precision
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// Locale returns the formatter's locale.
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

func formatterOrDefault(f *Formatter) *Formatter {
	if f == nil {
		return DefaultFormatter
	}
	return f
}
