package tally

// GraphData draws a column chart of percentages inside a plot box.
//
// Columns share the box width evenly, separated by XMargin, and grow up
// from the bottom of the box to Height*value/100. A baseline runs along
// the bottom of the box. Each column gets its value label just above it
// and its category label just below the baseline.
type GraphData struct {
	// X and Y are the 4-corner borders of the plot box.
	X, Y    []float64
	XMargin float64

	Values     []float64
	Colors     []string
	Categories []string

	BaselineColor string
	TextSize      float64
	// LabelOffset is the gap between a column and its labels.
	LabelOffset float64

	// Labels formats value labels (DefaultFormatter if nil).
	Labels *Formatter
}

var _ Composer = (*GraphData)(nil)

// String implements fmt.Stringer.
func (*GraphData) String() string { return "GraphData" }

// Validate implements Composer.
func (gd *GraphData) Validate() error {
	name := gd.String()
	if len(gd.Values) == 0 {
		return invalid(name, "values", "need at least one column")
	}
	if err := validateQuad(name, "x_borders", gd.X); err != nil {
		return err
	}
	if err := validateQuad(name, "y_borders", gd.Y); err != nil {
		return err
	}
	if len(gd.Colors) != len(gd.Values) {
		return invalid(name, "colors", "lengths of colors and values should be the same: %d != %d",
			len(gd.Colors), len(gd.Values))
	}
	if len(gd.Categories) != 0 && len(gd.Categories) != len(gd.Values) {
		return invalid(name, "categories", "%d categories for %d values", len(gd.Categories), len(gd.Values))
	}
	for i, v := range gd.Values {
		if v < 0 || v > 100 {
			return invalid(name, "values", "value %d out of range [0, 100]: %v", i, v)
		}
	}
	if gd.BaselineColor != "" {
		if _, err := ParseColor(gd.BaselineColor); err != nil {
			return invalid(name, "baseline_color", "%v", err)
		}
	}
	if w, _ := gd.columnWidth(); w <= 0 {
		return invalid(name, "x_margin", "leaves no room for %d columns", len(gd.Values))
	}
	return nil
}

func (gd *GraphData) columnWidth() (float64, float64) {
	n := float64(len(gd.Values))
	width := ((gd.X[2] - gd.X[0]) - gd.XMargin*(n-1)) / n
	return width, gd.Y[1] - gd.Y[0]
}

// Layout implements Composer.
func (gd *GraphData) Layout() (Geometry, error) {
	if err := gd.Validate(); err != nil {
		return Geometry{}, err
	}
	var (
		g             Geometry
		width, height = gd.columnWidth()
		bottom        = gd.Y[0]
		left          = gd.X[0]
		labels        = percentLabels(formatterOrDefault(gd.Labels), gd.Values)
	)
	for i, v := range gd.Values {
		top := bottom + height*v/100
		xs := []float64{left, left, left + width, left + width}
		ys := []float64{bottom, top, top, bottom}
		if err := g.rectangle(xs, ys, gd.Colors[i]); err != nil {
			return Geometry{}, err
		}
		mid := left + width/2
		g.text(labels[i], Pt(mid, top+gd.LabelOffset), gd.TextSize)
		if len(gd.Categories) > 0 {
			g.text(gd.Categories[i], Pt(mid, bottom-gd.LabelOffset), gd.TextSize)
		}
		left += width + gd.XMargin
	}
	if gd.BaselineColor != "" {
		err := g.line(Horizontal, bottom, [2]float64{gd.X[0], gd.X[2]}, gd.BaselineColor, 1, "solid")
		if err != nil {
			return Geometry{}, err
		}
	}
	return g, nil
}
