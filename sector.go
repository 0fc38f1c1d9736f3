package tally

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultResolution is the number of arc samples used by the widgets.
// It suits circles up to roughly 100px in radius.
const DefaultResolution = 50

const (
	fullCircle = 360.0
	halfCircle = 180.0
	deg2rad    = math.Pi / halfCircle
)

// Sector describes a filled circular slice.
//
// Angles are in degrees on a clock face: 0 points up and angles grow
// clockwise. A full circle is Start=0, End=360.
type Sector struct {
	Center Point
	Radius float64
	Start  float64
	End    float64
	// Resolution is the number of samples along the arc. The arc is
	// approximated by straight segments between samples.
	Resolution int
	// Segment closes the arc with a chord. Otherwise the path runs back
	// to Center, producing a wedge.
	Segment bool
	Color   string
}

// Validate checks the sector parameters.
func (s Sector) Validate() error {
	const name = "Sector"
	if s.Resolution < 2 {
		return invalid(name, "resolution", "need at least 2 samples, got %d", s.Resolution)
	}
	if s.Radius < 0 || math.IsNaN(s.Radius) {
		return invalid(name, "radius", "must not be negative, got %v", s.Radius)
	}
	if math.IsNaN(s.Start) || math.IsNaN(s.End) {
		return invalid(name, "angles", "must be numbers")
	}
	if _, err := ParseColor(s.Color); err != nil {
		return invalid(name, "color", "%v", err)
	}
	return nil
}

// Angles returns the sample angles in radians, counter-clockwise from
// the positive X axis. The clock angle a maps to 90°-a.
//
// Start == End yields Resolution identical samples.
func (s Sector) Angles() []float64 {
	t0 := (halfCircle/2 - s.Start) * deg2rad
	t1 := (halfCircle/2 - s.End) * deg2rad
	return floats.Span(make([]float64, s.Resolution), t0, t1)
}

// SectorPath builds the polygon approximating s.
//
// A zero-span sector (Start == End) yields a zero-area path: every arc
// sample coincides. It is still a valid path, and renders as nothing.
func SectorPath(s Sector) (*Path, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	p := NewPath()
	for i, t := range s.Angles() {
		pt := s.Center.OnCircle(s.Radius, t)
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	if !s.Segment {
		p.LineTo(s.Center.X, s.Center.Y)
	}
	p.Close()
	return p, nil
}

// DrawSector fills the sector on c.
func DrawSector(c Canvas, s Sector) error {
	p, err := SectorPath(s)
	if err != nil {
		return err
	}
	fill, _ := ParseColor(s.Color)
	c.FillPath(p, fill)
	return nil
}

// sweep converts a share in percent into degrees of a full circle.
func sweep(percent float64) float64 {
	return percent / 100 * fullCircle
}
