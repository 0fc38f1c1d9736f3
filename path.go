package tally

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a polygonal vector path. Curves are approximated by
// straight segments before they reach a Path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// PolygonPath returns a path with one closed subpath through pts.
func PolygonPath(pts []Point) *Path {
	p := NewPath()
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	if len(pts) > 0 {
		p.Close()
	}
	return p
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Points returns the vertices of the path in order, skipping Close elements.
func (p *Path) Points() []Point {
	pts := make([]Point, 0, len(p.elements))
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		}
	}
	return pts
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	elements := make([]PathElement, len(p.elements))
	copy(elements, p.elements)
	return &Path{
		elements: elements,
		start:    p.start,
		current:  p.current,
	}
}

// Transform returns a copy of the path with every point mapped by fn.
func (p *Path) Transform(fn func(Point) Point) *Path {
	out := NewPath()
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			q := fn(e.Point)
			out.MoveTo(q.X, q.Y)
		case LineTo:
			q := fn(e.Point)
			out.LineTo(q.X, q.Y)
		case Close:
			out.Close()
		}
	}
	return out
}

// Area returns the absolute area enclosed by the path's subpaths,
// computed with the shoelace formula.
func (p *Path) Area() float64 {
	var (
		total   float64
		sub     []Point
		flushed = func() {
			total += shoelace(sub)
			sub = sub[:0]
		}
	)
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			flushed()
			sub = append(sub, e.Point)
		case LineTo:
			sub = append(sub, e.Point)
		case Close:
			flushed()
		}
	}
	flushed()
	if total < 0 {
		return -total
	}
	return total
}

func shoelace(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}
