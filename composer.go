package tally

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Composer owns the layout of one widget.
//
// Validate checks the widget parameters without computing anything.
// Layout validates and derives every primitive of the widget, in the
// order they must be drawn. String names the widget in errors and logs.
type Composer interface {
	fmt.Stringer
	Validate() error
	Layout() (Geometry, error)
}

// Draw lays out every composer and then renders them onto c in order.
// Nothing is drawn unless every layout succeeds.
func Draw(c Canvas, composers ...Composer) error {
	layouts := make([]Geometry, 0, len(composers))
	for _, comp := range composers {
		g, err := comp.Layout()
		if err != nil {
			return err
		}
		Logger().Debug("tally: layout",
			"composer", comp.String(),
			"elements", len(g.Elements))
		layouts = append(layouts, g)
	}
	for _, g := range layouts {
		g.Render(c)
	}
	return nil
}

// sumTolerance absorbs float error when results add up to exactly 100.
const sumTolerance = 1e-9

func validateShares(name string, results []float64, colors []string) error {
	if len(results) != len(colors) {
		return invalid(name, "colors", "lengths of colors and results should be the same: %d != %d",
			len(colors), len(results))
	}
	for i, r := range results {
		if r < 0 || r > 100 || math.IsNaN(r) {
			return invalid(name, "results", "result %d out of range [0, 100]: %v", i, r)
		}
	}
	if sum := floats.Sum(results); sum > 100+sumTolerance {
		return invalid(name, "results", "the sum of results should not be greater than 100, %v > 100", sum)
	}
	for i, c := range colors {
		if _, err := ParseColor(c); err != nil {
			return invalid(name, "colors", "color %d: %v", i, err)
		}
	}
	return nil
}

func validatePositions(name, field string, texts int, positions []Point) error {
	if texts != len(positions) {
		return invalid(name, field, "%d labels but %d positions", texts, len(positions))
	}
	return nil
}

// validateQuad checks a 4-corner border list.
func validateQuad(name, field string, vs []float64) error {
	if len(vs) != 4 {
		return invalid(name, field, "need 4 corner coordinates, got %d", len(vs))
	}
	return nil
}

func percentLabels(f *Formatter, vs []float64) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = f.Percent(v)
	}
	return out
}

func reversed[T any](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
