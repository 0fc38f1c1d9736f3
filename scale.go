package tally

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LinearScale is a linear mapping y = Slope*x + Intercept held in
// decimal arithmetic so that values mapped through it sort and clamp
// exactly.
type LinearScale struct {
	Slope     decimal.Decimal
	Intercept decimal.Decimal
}

// FitLine returns the scale whose line passes through p1 and p2.
// It fails with ErrDegenerateScale when both points share the same x.
//
// Example:
//
//	FitLine(Pt(1, 0), Pt(2, 3)) // slope 3, intercept -3
func FitLine(p1, p2 Point) (LinearScale, error) {
	x1, y1 := decimal.NewFromFloat(p1.X), decimal.NewFromFloat(p1.Y)
	x2, y2 := decimal.NewFromFloat(p2.X), decimal.NewFromFloat(p2.Y)
	dx := x2.Sub(x1)
	if dx.IsZero() {
		return LinearScale{}, fmt.Errorf("%w: both points have x = %v", ErrDegenerateScale, p1.X)
	}
	m := y2.Sub(y1).Div(dx)
	c := y2.Sub(m.Mul(x2))
	return LinearScale{Slope: m, Intercept: c}, nil
}

// Apply maps x through the scale.
func (l LinearScale) Apply(x float64) decimal.Decimal {
	return l.Slope.Mul(decimal.NewFromFloat(x)).Add(l.Intercept)
}

// ApplyFloat maps x through the scale and converts the result to float64.
func (l LinearScale) ApplyFloat(x float64) float64 {
	return l.Apply(x).InexactFloat64()
}

// NormalizeLine fits the scale that maps lo onto 0 and hi onto 1.
func NormalizeLine(lo, hi float64) (LinearScale, error) {
	return FitLine(Pt(lo, 0), Pt(hi, 1))
}
