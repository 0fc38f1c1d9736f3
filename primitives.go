package tally

import (
	"fmt"
	"strings"
)

// ClosePolygon zips xs and ys into points and repeats the first point at
// the end. The inputs are never modified.
func ClosePolygon(xs, ys []float64) ([]Point, error) {
	if len(xs) != len(ys) {
		return nil, invalid("Rectangle", "coordinates", "x and y lengths differ: %d != %d", len(xs), len(ys))
	}
	if len(xs) < 3 {
		return nil, invalid("Rectangle", "coordinates", "need at least 3 points, got %d", len(xs))
	}
	pts := make([]Point, 0, len(xs)+1)
	for i := range xs {
		pts = append(pts, Pt(xs[i], ys[i]))
	}
	return append(pts, pts[0]), nil
}

// Rectangle fills the closed polygon through xs and ys. Callers usually
// pass the four corners of an axis-aligned quad.
//
// Example:
//
//	// A 20x30 blue rectangle.
//	Rectangle(c, []float64{0, 0, 20, 20}, []float64{0, 30, 30, 0}, "#0000FF")
func Rectangle(c Canvas, xs, ys []float64, color string) error {
	pts, err := ClosePolygon(xs, ys)
	if err != nil {
		return err
	}
	fill, err := ParseColor(color)
	if err != nil {
		return err
	}
	c.FillPath(PolygonPath(pts), fill)
	return nil
}

// LineMode selects the orientation of a Line.
type LineMode int

const (
	Horizontal LineMode = iota + 1
	Vertical
)

// String returns "horizontal" or "vertical".
func (m LineMode) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("LineMode(%d)", int(m))
	}
}

// ParseLineMode parses "horizontal" or "vertical".
func ParseLineMode(s string) (LineMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return 0, fmt.Errorf("%w, not %q", ErrInvalidLineMode, s)
	}
}

// LineEnds returns the two end points of a line.
// Horizontal lines run from (bounds[0], anchor) to (bounds[1], anchor),
// vertical lines from (anchor, bounds[0]) to (anchor, bounds[1]).
func LineEnds(mode LineMode, anchor float64, bounds [2]float64) (Point, Point, error) {
	switch mode {
	case Horizontal:
		return Pt(bounds[0], anchor), Pt(bounds[1], anchor), nil
	case Vertical:
		return Pt(anchor, bounds[0]), Pt(anchor, bounds[1]), nil
	default:
		return Point{}, Point{}, fmt.Errorf("%w, not %v", ErrInvalidLineMode, mode)
	}
}

// Line strokes a horizontal or vertical line.
// dash is a style understood by ParseDash.
//
// Example:
//
//	// A dashed red line of width 3 from (10, 50) to (40, 50).
//	Line(c, Horizontal, 50, [2]float64{10, 40}, "#FF0000", 3, "dash")
func Line(c Canvas, mode LineMode, anchor float64, bounds [2]float64, color string, width float64, dash string) error {
	from, to, err := LineEnds(mode, anchor, bounds)
	if err != nil {
		return err
	}
	stroke, err := ParseColor(color)
	if err != nil {
		return err
	}
	pattern, err := ParseDash(dash, width)
	if err != nil {
		return err
	}
	p := NewPath()
	p.MoveTo(from.X, from.Y)
	p.LineTo(to.X, to.Y)
	c.StrokePath(p, Stroke{Width: width, Dash: pattern}, stroke)
	return nil
}
