package tally

// CandidateBlocks draws one colored block per candidate, stacked bottom
// to top, with candidate names and results written on top of them.
// Result labels are placed at ResultPositions in reverse order.
type CandidateBlocks struct {
	// X and Y are the 4-corner borders of the bottom block.
	X, Y    []float64
	YMargin float64
	Colors  []string

	CandidateText      []string
	CandidatePositions []Point
	CandidateTextSize  float64

	ResultText      []string
	ResultPositions []Point
	ResultTextSize  float64
}

var _ Composer = (*CandidateBlocks)(nil)

// String implements fmt.Stringer.
func (*CandidateBlocks) String() string { return "CandidateBlocks" }

// Validate implements Composer.
func (cb *CandidateBlocks) Validate() error {
	name := cb.String()
	if err := validateQuad(name, "x_borders", cb.X); err != nil {
		return err
	}
	if err := validateQuad(name, "y_borders", cb.Y); err != nil {
		return err
	}
	if cb.Y[1]-cb.Y[0] <= 0 {
		return invalid(name, "y_borders", "block height must be positive, got %v", cb.Y[1]-cb.Y[0])
	}
	for i, c := range cb.Colors {
		if _, err := ParseColor(c); err != nil {
			return invalid(name, "colors", "color %d: %v", i, err)
		}
	}
	if err := validatePositions(name, "candidate_text", len(cb.CandidateText), cb.CandidatePositions); err != nil {
		return err
	}
	return validatePositions(name, "result_text", len(cb.ResultText), cb.ResultPositions)
}

// Layout implements Composer.
func (cb *CandidateBlocks) Layout() (Geometry, error) {
	if err := cb.Validate(); err != nil {
		return Geometry{}, err
	}
	var (
		g      Geometry
		height = cb.Y[1] - cb.Y[0]
		ys     = cb.Y
	)
	for _, color := range cb.Colors {
		if err := g.rectangle(cb.X, ys, color); err != nil {
			return Geometry{}, err
		}
		ys = translate(ys, height+cb.YMargin)
	}
	for i, text := range cb.CandidateText {
		g.text(text, cb.CandidatePositions[i], cb.CandidateTextSize)
	}
	positions := reversed(cb.ResultPositions)
	for i, text := range cb.ResultText {
		g.text(text, positions[i], cb.ResultTextSize)
	}
	return g, nil
}
