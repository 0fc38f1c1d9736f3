package tally

import "gonum.org/v1/gonum/floats"

// ResultPlot draws horizontal result bars stacked bottom to top. Every bar
// is a NeutralColor track with a colored fill of length
// width*result/100 on top of it. A dotted reference line marks the 50%
// point across the whole stack.
type ResultPlot struct {
	// X and Y are the 4-corner borders of the bottom bar.
	X, Y         []float64
	YMargin      float64
	Results      []float64
	Colors       []string
	NeutralColor string

	// YearText labels are placed at YearPositions in reverse order.
	YearText      []string
	YearPositions []Point
	YearTextSize  float64

	// ResultPositions receive one "<result>%" label per bar.
	ResultPositions []Point
	ResultTextSize  float64

	// Labels formats result labels (DefaultFormatter if nil).
	Labels *Formatter
}

var _ Composer = (*ResultPlot)(nil)

// Reference line style.
const (
	referenceLineWidth = 2
	referenceLineDash  = "1px"
)

// String implements fmt.Stringer.
func (*ResultPlot) String() string { return "ResultPlot" }

// Validate implements Composer.
func (rp *ResultPlot) Validate() error {
	name := rp.String()
	if len(rp.Results) == 0 {
		return invalid(name, "results", "need at least one bar")
	}
	if err := validateQuad(name, "x_borders", rp.X); err != nil {
		return err
	}
	if err := validateQuad(name, "y_borders", rp.Y); err != nil {
		return err
	}
	if len(rp.Results) != len(rp.Colors) {
		return invalid(name, "colors", "lengths of colors and results should be the same: %d != %d",
			len(rp.Colors), len(rp.Results))
	}
	for i, r := range rp.Results {
		if r < 0 || r > 100 {
			return invalid(name, "results", "result %d out of range [0, 100]: %v", i, r)
		}
	}
	if _, err := ParseColor(rp.NeutralColor); err != nil {
		return invalid(name, "neutral_color", "%v", err)
	}
	if err := validatePositions(name, "year_text", len(rp.YearText), rp.YearPositions); err != nil {
		return err
	}
	if len(rp.ResultPositions) > len(rp.Results) {
		return invalid(name, "result_text_positions", "%d positions for %d results",
			len(rp.ResultPositions), len(rp.Results))
	}
	return nil
}

// Layout implements Composer.
func (rp *ResultPlot) Layout() (Geometry, error) {
	if err := rp.Validate(); err != nil {
		return Geometry{}, err
	}
	var (
		g      Geometry
		width  = rp.X[2] - rp.X[0]
		height = rp.Y[1] - rp.Y[0]
		ys     = rp.Y
		top    float64
	)
	for i, result := range rp.Results {
		if err := g.rectangle(rp.X, ys, rp.NeutralColor); err != nil {
			return Geometry{}, err
		}
		fill := rp.X[0] + width*result/100
		xs := []float64{rp.X[0], rp.X[0], fill, fill}
		if err := g.rectangle(xs, ys, rp.Colors[i]); err != nil {
			return Geometry{}, err
		}
		top = ys[1]
		ys = translate(ys, height+rp.YMargin)
	}

	lo, hi := floats.Min(rp.X), floats.Max(rp.X)
	err := g.line(Vertical, (lo+hi)/2, [2]float64{rp.Y[0], top},
		ColorOther, referenceLineWidth, referenceLineDash)
	if err != nil {
		return Geometry{}, err
	}

	years := reversed(rp.YearText)
	for i, text := range years {
		g.text(text, rp.YearPositions[i], rp.YearTextSize)
	}
	labels := percentLabels(formatterOrDefault(rp.Labels), rp.Results)
	for i, at := range rp.ResultPositions {
		g.text(labels[i], at, rp.ResultTextSize)
	}
	return g, nil
}
