package tally

// Canvas is the sink every widget draws into.
// Coordinates are in data space (Y up). Implementations decide how data
// space maps onto pixels; see recording.Viewport.
//
// A Canvas belongs to a single drawing session and is not safe for
// concurrent use.
type Canvas interface {
	// FillPath fills the closed subpaths of p.
	FillPath(p *Path, fill RGBA)

	// StrokePath strokes p with the given style.
	StrokePath(p *Path, stroke Stroke, color RGBA)

	// DrawText draws s centered on at.
	DrawText(s string, at Point, font Font, color RGBA)
}

// Font describes the face used for a text annotation.
type Font struct {
	// Family is the font family name written to vector output.
	Family string
	// Size is the font size in pixels.
	Size float64
}

// DefaultFontFamily is the family used when a Font leaves Family empty.
const DefaultFontFamily = "Roboto"

// NewFont returns a Font of the default family.
func NewFont(size float64) Font {
	return Font{Family: DefaultFontFamily, Size: size}
}

// Stroke defines the style for stroking paths.
type Stroke struct {
	// Width is the line width in pixels.
	Width float64
	// Dash is the dash pattern in pixels (nil for solid line).
	Dash []float64
}

// DefaultStroke returns a solid 1px stroke.
func DefaultStroke() Stroke {
	return Stroke{Width: 1}
}
