package recording

import (
	"math"

	"github.com/gogpu/tally"
)

// Transform maps data space onto pixel space. Graphics never rotate or
// shear, so each axis is scaled and offset independently:
//
//	x' = SX*x + TX
//	y' = SY*y + TY
type Transform struct {
	SX, TX float64
	SY, TY float64
}

// Apply maps p through the transform.
func (t Transform) Apply(p tally.Point) tally.Point {
	return tally.Pt(t.SX*p.X+t.TX, t.SY*p.Y+t.TY)
}

// Invert returns the reverse transform. ok is false when either axis
// collapses to a line.
func (t Transform) Invert() (inv Transform, ok bool) {
	if math.Abs(t.SX) < 1e-12 || math.Abs(t.SY) < 1e-12 {
		return Transform{}, false
	}
	return Transform{
		SX: 1 / t.SX, TX: -t.TX / t.SX,
		SY: 1 / t.SY, TY: -t.TY / t.SY,
	}, true
}

// Determinant is negative when the transform flips orientation, as every
// Y-up to Y-down viewport transform does.
func (t Transform) Determinant() float64 {
	return t.SX * t.SY
}

// Scale returns the pixel length of one data unit along each axis.
func (t Transform) Scale() (sx, sy float64) {
	return math.Abs(t.SX), math.Abs(t.SY)
}
