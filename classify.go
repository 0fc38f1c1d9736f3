package tally

import (
	"fmt"
	"math"
)

// Palette is an ordered sequence of colors. Index i of a palette belongs
// to bucket i of the thresholds it is paired with.
type Palette []string

// Thresholds are strictly increasing bucket edges over the absolute result
// domain, for example [40, 50, 60, 70, 80, 90, 100].
type Thresholds []float64

// Default palettes and thresholds of a presidential map.
var (
	PaletteDemocrat   = Palette{"#AFE9AF", "#73D873", "#42CA42", "#30A630", "#217821", "#165016"}
	PaletteRepublican = Palette{"#FEE391", "#FED463", "#FE9929", "#EC7014", "#CC4C02", "#8C2D04"}
	DefaultThresholds = Thresholds{40, 50, 60, 70, 80, 90, 100}
)

// Bucket is the result of classifying a value.
type Bucket struct {
	// Index is the position of the threshold interval.
	Index int
	// Color is the palette color of that interval.
	Color string
	// Up reports whether the up palette was used.
	Up bool
}

// Classifier maps signed results onto palette colors.
// Positive values use the up palette, all others the down palette.
type Classifier struct {
	thresholds Thresholds
	up, down   Palette
}

// NewClassifier validates the thresholds and palettes and returns a
// Classifier. Thresholds must be strictly increasing with at least two
// edges, and both palettes must have exactly one color per interval.
func NewClassifier(thresholds Thresholds, up, down Palette) (*Classifier, error) {
	const name = "Classifier"
	if len(thresholds) < 2 {
		return nil, invalid(name, "thresholds", "need at least 2 edges, got %d", len(thresholds))
	}
	for i := 1; i < len(thresholds); i++ {
		if !(thresholds[i] > thresholds[i-1]) {
			return nil, invalid(name, "thresholds", "not strictly increasing at index %d (%v <= %v)",
				i, thresholds[i], thresholds[i-1])
		}
	}
	if len(up) != len(down) {
		return nil, invalid(name, "palettes", "lengths differ: %d != %d", len(up), len(down))
	}
	if len(up) != len(thresholds)-1 {
		return nil, invalid(name, "palettes", "need %d colors for %d thresholds, got %d",
			len(thresholds)-1, len(thresholds), len(up))
	}
	return &Classifier{
		thresholds: append(Thresholds(nil), thresholds...),
		up:         append(Palette(nil), up...),
		down:       append(Palette(nil), down...),
	}, nil
}

// Classify returns the bucket of v. Intervals are exclusive on the left
// and inclusive on the right, so a value equal to a threshold belongs to
// the lower bucket. A value outside every interval (including 0) returns
// an *UnclassifiedError.
func (c *Classifier) Classify(v float64) (Bucket, error) {
	palette, up := c.down, false
	if v > 0 {
		palette, up = c.up, true
	}
	abs := math.Abs(v)
	for i := 0; i+1 < len(c.thresholds); i++ {
		left, right := c.thresholds[i], c.thresholds[i+1]
		if left < abs && abs <= right {
			return Bucket{Index: i, Color: palette[i], Up: up}, nil
		}
	}
	return Bucket{}, &UnclassifiedError{Value: v}
}

// Color is a shorthand for Classify that returns only the color.
func (c *Classifier) Color(v float64) (string, error) {
	b, err := c.Classify(v)
	if err != nil {
		return "", err
	}
	return b.Color, nil
}

// Thresholds returns a copy of the classifier thresholds.
func (c *Classifier) Thresholds() Thresholds {
	return append(Thresholds(nil), c.thresholds...)
}

// Labels returns one "><edge>%" label per bucket, lowest bucket first.
func (c *Classifier) Labels() []string {
	labels := make([]string, 0, len(c.thresholds)-1)
	for _, t := range c.thresholds[:len(c.thresholds)-1] {
		labels = append(labels, fmt.Sprintf(">%v%%", t))
	}
	return labels
}
