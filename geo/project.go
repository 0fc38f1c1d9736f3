package geo

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/project"

	"github.com/gogpu/tally/recording"
)

// Projection maps longitude/latitude onto a plane.
type Projection int

const (
	// Mercator is the spherical (web) Mercator projection, in meters.
	Mercator Projection = iota
	// Equirectangular keeps longitude and latitude as plane coordinates.
	Equirectangular
)

// String returns the projection name.
func (p Projection) String() string {
	switch p {
	case Mercator:
		return "mercator"
	case Equirectangular:
		return "equirectangular"
	default:
		return fmt.Sprintf("Projection(%d)", int(p))
	}
}

// ParseProjection returns the projection with the given name.
func ParseProjection(s string) (Projection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mercator", "":
		return Mercator, nil
	case "equirectangular":
		return Equirectangular, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownProjection, s)
	}
}

// Func returns the point mapping of the projection.
func (p Projection) Func() (orb.Projection, error) {
	switch p {
	case Mercator:
		return project.WGS84.ToMercator, nil
	case Equirectangular:
		return func(pt orb.Point) orb.Point { return pt }, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownProjection, p)
	}
}

// Point projects a single lon/lat point.
func (p Projection) Point(pt orb.Point) (orb.Point, error) {
	fn, err := p.Func()
	if err != nil {
		return orb.Point{}, err
	}
	return fn(pt), nil
}

// Project returns a projected copy of fc. Feature ids and properties are
// shared with fc.
func Project(fc *geojson.FeatureCollection, p Projection) (*geojson.FeatureCollection, error) {
	fn, err := p.Func()
	if err != nil {
		return nil, err
	}
	out := geojson.NewFeatureCollection()
	for _, f := range fc.Features {
		pf := *f
		if f.Geometry != nil {
			pf.Geometry = project.Geometry(orb.Clone(f.Geometry), fn)
		}
		out.Append(&pf)
	}
	return out, nil
}

// Bounds returns the bounding box of the features whose id is in ids, or
// of all features when ids is nil. ok is false when nothing matched.
func Bounds(fc *geojson.FeatureCollection, ids []string) (b orb.Bound, ok bool) {
	var keep map[string]struct{}
	if ids != nil {
		keep = make(map[string]struct{}, len(ids))
		for _, id := range ids {
			keep[id] = struct{}{}
		}
	}
	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		if keep != nil {
			if _, in := keep[FeatureID(f)]; !in {
				continue
			}
		}
		if !ok {
			b, ok = f.Geometry.Bound(), true
			continue
		}
		b = b.Union(f.Geometry.Bound())
	}
	return b, ok
}

// Fit returns a viewport of width x height pixels that shows b centered,
// as large as possible, without distortion. Extra options are applied
// after the ranges are set.
func Fit(b orb.Bound, width, height int, opts ...recording.ViewportOption) (recording.Viewport, error) {
	dx := b.Max[0] - b.Min[0]
	dy := b.Max[1] - b.Min[1]
	if width <= 0 || height <= 0 || math.IsNaN(dx) || math.IsNaN(dy) || dx < 0 || dy < 0 || (dx == 0 && dy == 0) {
		return recording.Viewport{}, fmt.Errorf("%w: %v on %dx%d", ErrEmptyBounds, b, width, height)
	}
	w, h := float64(width), float64(height)
	// Units per pixel of the tighter axis.
	scale := math.Max(dx/w, dy/h)
	cx, cy := (b.Min[0]+b.Max[0])/2, (b.Min[1]+b.Max[1])/2
	hw, hh := scale*w/2, scale*h/2
	opts = append([]recording.ViewportOption{recording.WithRanges(cx-hw, cx+hw, cy-hh, cy+hh)}, opts...)
	return recording.NewViewport(width, height, opts...), nil
}
