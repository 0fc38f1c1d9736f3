package tally

// Legend draws a grid of palette swatches inside a bounding box.
//
// Each palette is one column, left to right. Within a column the colors
// are stacked bottom to top in reverse order, so the last color of a
// palette sits at the bottom. Block sizes are derived from the box, the
// border margins and the margins between blocks.
type Legend struct {
	Palettes []Palette

	// TotalX and TotalY are the 4-corner borders of the space taken by
	// the legend. Width is TotalX[2]-TotalX[0], height TotalY[1]-TotalY[0].
	TotalX []float64
	TotalY []float64

	BorderXMargin  float64
	BorderYMargin  float64
	PaletteXMargin float64
	PaletteYMargin float64

	// HorizontalText are the column headers, one per position.
	HorizontalText      []string
	HorizontalPositions []Point
	HorizontalTextSize  float64

	// VerticalText are the row labels, bottom to top. Only the first
	// position is given; each next label moves up by one block and margin.
	VerticalText     []string
	VerticalPosition Point
	VerticalTextSize float64
}

var _ Composer = (*Legend)(nil)

// LegendBlocks is the derived block grid of a Legend.
type LegendBlocks struct {
	// X and Y are the corners of the bottom-left block.
	X, Y          []float64
	Width, Height float64
}

// String implements fmt.Stringer.
func (*Legend) String() string { return "Legend" }

// Validate implements Composer.
func (l *Legend) Validate() error {
	name := l.String()
	if len(l.Palettes) == 0 {
		return invalid(name, "palettes", "need at least one palette")
	}
	n := len(l.Palettes[0])
	for i, p := range l.Palettes {
		if len(p) != n {
			return invalid(name, "palettes", "the palettes should all be the same length: palette %d has %d colors, want %d",
				i, len(p), n)
		}
		for j, c := range p {
			if _, err := ParseColor(c); err != nil {
				return invalid(name, "palettes", "palette %d color %d: %v", i, j, err)
			}
		}
	}
	if n == 0 {
		return invalid(name, "palettes", "palettes are empty")
	}
	if err := validateQuad(name, "total_x_borders", l.TotalX); err != nil {
		return err
	}
	if err := validateQuad(name, "total_y_borders", l.TotalY); err != nil {
		return err
	}
	if err := validatePositions(name, "horizontal_text", len(l.HorizontalText), l.HorizontalPositions); err != nil {
		return err
	}
	b := l.blocks()
	if b.Width <= 0 || b.Height <= 0 {
		return invalid(name, "margins", "leave no room for blocks (%vx%v)", b.Width, b.Height)
	}
	return nil
}

// Blocks validates the legend and returns its block grid.
func (l *Legend) Blocks() (LegendBlocks, error) {
	if err := l.Validate(); err != nil {
		return LegendBlocks{}, err
	}
	return l.blocks(), nil
}

func (l *Legend) blocks() LegendBlocks {
	var (
		columns = float64(len(l.Palettes))
		rows    = float64(len(l.Palettes[0]))
		width   = ((l.TotalX[2] - l.TotalX[0]) -
			2*l.BorderXMargin -
			l.PaletteXMargin*(columns-1)) / columns
		height = ((l.TotalY[1] - l.TotalY[0]) -
			2*l.BorderYMargin -
			l.PaletteYMargin*(rows-1)) / rows
		x0 = l.TotalX[0] + l.BorderXMargin
		y0 = l.TotalY[0] + l.BorderYMargin
	)
	return LegendBlocks{
		X:      []float64{x0, x0, x0 + width, x0 + width},
		Y:      []float64{y0, y0 + height, y0 + height, y0},
		Width:  width,
		Height: height,
	}
}

// Layout implements Composer.
func (l *Legend) Layout() (Geometry, error) {
	b, err := l.Blocks()
	if err != nil {
		return Geometry{}, err
	}
	Logger().Debug("tally: legend blocks", "width", b.Width, "height", b.Height)

	var (
		g     Geometry
		stepX = b.Width + l.PaletteXMargin
		stepY = b.Height + l.PaletteYMargin
		xs    = b.X
	)
	for _, palette := range l.Palettes {
		ys := b.Y
		for _, color := range reversed(palette) {
			if err := g.rectangle(xs, ys, color); err != nil {
				return Geometry{}, err
			}
			ys = translate(ys, stepY)
		}
		xs = translate(xs, stepX)
	}

	for i, text := range l.HorizontalText {
		g.text(text, l.HorizontalPositions[i], l.HorizontalTextSize)
	}
	at := l.VerticalPosition
	for _, text := range l.VerticalText {
		g.text(text, at, l.VerticalTextSize)
		at.Y += stepY
	}
	return g, nil
}
