package tally

// ElementKind identifies the primitive behind an Element.
type ElementKind uint8

const (
	KindSector ElementKind = iota
	KindPolygon
	KindLine
	KindText
)

// String returns the string representation of an ElementKind.
func (k ElementKind) String() string {
	switch k {
	case KindSector:
		return "Sector"
	case KindPolygon:
		return "Polygon"
	case KindLine:
		return "Line"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Element is one laid-out primitive. Elements are fully resolved during
// layout, so rendering them cannot fail.
type Element interface {
	Kind() ElementKind
	Render(c Canvas)
}

// SectorElement is a resolved circular sector.
type SectorElement struct {
	Sector Sector
	Path   *Path
	Fill   RGBA
}

// Kind implements Element.
func (SectorElement) Kind() ElementKind { return KindSector }

// Render implements Element.
func (e SectorElement) Render(c Canvas) { c.FillPath(e.Path, e.Fill) }

// PolygonElement is a closed, filled polygon. The last point repeats the
// first.
type PolygonElement struct {
	Points []Point
	Fill   RGBA
}

// Kind implements Element.
func (PolygonElement) Kind() ElementKind { return KindPolygon }

// Render implements Element.
func (e PolygonElement) Render(c Canvas) { c.FillPath(PolygonPath(e.Points), e.Fill) }

// LineElement is a stroked straight segment.
type LineElement struct {
	From, To Point
	Stroke   Stroke
	Color    RGBA
}

// Kind implements Element.
func (LineElement) Kind() ElementKind { return KindLine }

// Render implements Element.
func (e LineElement) Render(c Canvas) {
	p := NewPath()
	p.MoveTo(e.From.X, e.From.Y)
	p.LineTo(e.To.X, e.To.Y)
	c.StrokePath(p, e.Stroke, e.Color)
}

// TextElement is a centered text annotation.
type TextElement struct {
	Text  string
	At    Point
	Font  Font
	Color RGBA
}

// Kind implements Element.
func (TextElement) Kind() ElementKind { return KindText }

// Render implements Element.
func (e TextElement) Render(c Canvas) { c.DrawText(e.Text, e.At, e.Font, e.Color) }

// Geometry is the ordered output of a layout. Later elements overdraw
// earlier ones.
type Geometry struct {
	Elements []Element
}

// Render draws every element in order.
func (g Geometry) Render(c Canvas) {
	for _, el := range g.Elements {
		el.Render(c)
	}
}

// Count returns the number of elements of the given kind.
func (g Geometry) Count(kind ElementKind) int {
	var n int
	for _, el := range g.Elements {
		if el.Kind() == kind {
			n++
		}
	}
	return n
}

// Texts returns the text elements in draw order.
func (g Geometry) Texts() []TextElement {
	var out []TextElement
	for _, el := range g.Elements {
		if t, ok := el.(TextElement); ok {
			out = append(out, t)
		}
	}
	return out
}

// Polygons returns the polygon elements in draw order.
func (g Geometry) Polygons() []PolygonElement {
	var out []PolygonElement
	for _, el := range g.Elements {
		if p, ok := el.(PolygonElement); ok {
			out = append(out, p)
		}
	}
	return out
}

// Sectors returns the sector elements in draw order.
func (g Geometry) Sectors() []SectorElement {
	var out []SectorElement
	for _, el := range g.Elements {
		if s, ok := el.(SectorElement); ok {
			out = append(out, s)
		}
	}
	return out
}

// Lines returns the line elements in draw order.
func (g Geometry) Lines() []LineElement {
	var out []LineElement
	for _, el := range g.Elements {
		if l, ok := el.(LineElement); ok {
			out = append(out, l)
		}
	}
	return out
}

func (g *Geometry) sector(s Sector) error {
	p, err := SectorPath(s)
	if err != nil {
		return err
	}
	fill, _ := ParseColor(s.Color)
	g.Elements = append(g.Elements, SectorElement{Sector: s, Path: p, Fill: fill})
	return nil
}

func (g *Geometry) rectangle(xs, ys []float64, color string) error {
	pts, err := ClosePolygon(xs, ys)
	if err != nil {
		return err
	}
	fill, err := ParseColor(color)
	if err != nil {
		return err
	}
	g.Elements = append(g.Elements, PolygonElement{Points: pts, Fill: fill})
	return nil
}

func (g *Geometry) line(mode LineMode, anchor float64, bounds [2]float64, color string, width float64, dash string) error {
	from, to, err := LineEnds(mode, anchor, bounds)
	if err != nil {
		return err
	}
	c, err := ParseColor(color)
	if err != nil {
		return err
	}
	pattern, err := ParseDash(dash, width)
	if err != nil {
		return err
	}
	g.Elements = append(g.Elements, LineElement{
		From:   from,
		To:     to,
		Stroke: Stroke{Width: width, Dash: pattern},
		Color:  c,
	})
	return nil
}

func (g *Geometry) text(s string, at Point, size float64) {
	g.Elements = append(g.Elements, TextElement{
		Text:  s,
		At:    at,
		Font:  NewFont(size),
		Color: Black,
	})
}

// translate returns vs with d added to every value.
func translate(vs []float64, d float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v + d
	}
	return out
}
