package tally

// ResultRectangle is the bar form of ResultCircle: a box split left to
// right into one segment per candidate, proportional to the result, with
// the remainder filled in ColorOther.
type ResultRectangle struct {
	// X and Y are the 4-corner borders of the whole bar.
	X, Y       []float64
	Results    []float64
	Colors     []string
	ColorOther string

	// ResultPositions optionally receive one "<result>%" label each.
	ResultPositions []Point
	ResultTextSize  float64

	// Labels formats result labels (DefaultFormatter if nil).
	Labels *Formatter
}

var _ Composer = (*ResultRectangle)(nil)

// String implements fmt.Stringer.
func (*ResultRectangle) String() string { return "ResultRectangle" }

// Validate implements Composer.
func (rr *ResultRectangle) Validate() error {
	name := rr.String()
	if err := validateShares(name, rr.Results, rr.Colors); err != nil {
		return err
	}
	if _, err := ParseColor(rr.ColorOther); err != nil {
		return invalid(name, "color_other", "%v", err)
	}
	if err := validateQuad(name, "x_borders", rr.X); err != nil {
		return err
	}
	if err := validateQuad(name, "y_borders", rr.Y); err != nil {
		return err
	}
	if rr.X[2]-rr.X[0] <= 0 {
		return invalid(name, "x_borders", "bar width must be positive, got %v", rr.X[2]-rr.X[0])
	}
	if len(rr.ResultPositions) > len(rr.Results) {
		return invalid(name, "result_text_positions", "%d positions for %d results",
			len(rr.ResultPositions), len(rr.Results))
	}
	return nil
}

// Layout implements Composer.
func (rr *ResultRectangle) Layout() (Geometry, error) {
	if err := rr.Validate(); err != nil {
		return Geometry{}, err
	}
	var (
		g     Geometry
		width = rr.X[2] - rr.X[0]
		left  = rr.X[0]
	)
	segment := func(from, to float64, color string) error {
		return g.rectangle([]float64{from, from, to, to}, rr.Y, color)
	}
	for i, result := range rr.Results {
		right := left + width*result/100
		if err := segment(left, right, rr.Colors[i]); err != nil {
			return Geometry{}, err
		}
		left = right
	}
	if err := segment(left, rr.X[2], rr.ColorOther); err != nil {
		return Geometry{}, err
	}

	labels := percentLabels(formatterOrDefault(rr.Labels), rr.Results)
	for i, at := range rr.ResultPositions {
		g.text(labels[i], at, rr.ResultTextSize)
	}
	return g, nil
}
