package geo

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/gogpu/tally"
)

// Style controls region outlines.
type Style struct {
	// Outline is the border color drawn around every filled region.
	Outline string
	// OutlineWidth is the border width in pixels; 0 draws no border.
	OutlineWidth float64
}

// DefaultStyle returns white 0.25px borders.
func DefaultStyle() Style {
	return Style{Outline: "#FFFFFF", OutlineWidth: 0.25}
}

// Fills maps region ids to their classified colors.
func Fills(colored []tally.RegionColor) map[string]string {
	fills := make(map[string]string, len(colored))
	for _, rc := range colored {
		fills[rc.ID] = rc.Color()
	}
	return fills
}

// DrawMap fills every (multi)polygon feature whose id has a color in
// fills and outlines it. Features without a color and non-areal
// geometries are skipped. It returns the number of features drawn.
//
// Rings are reoriented so that holes wind opposite to their outer ring,
// which keeps them empty under the non-zero fill rule.
func DrawMap(c tally.Canvas, fc *geojson.FeatureCollection, fills map[string]string, style Style) (int, error) {
	var outline tally.RGBA
	if style.OutlineWidth > 0 {
		var err error
		if outline, err = tally.ParseColor(style.Outline); err != nil {
			return 0, fmt.Errorf("geo: outline: %w", err)
		}
	}
	stroke := tally.Stroke{Width: style.OutlineWidth}

	var drawn, skipped int
	for _, f := range fc.Features {
		id := FeatureID(f)
		fill, ok := fills[id]
		if !ok {
			continue
		}
		color, err := tally.ParseColor(fill)
		if err != nil {
			return drawn, fmt.Errorf("geo: feature %q: %w", id, err)
		}
		path := areaPath(f.Geometry)
		if path == nil {
			skipped++
			continue
		}
		c.FillPath(path, color)
		if style.OutlineWidth > 0 {
			c.StrokePath(path, stroke, outline)
		}
		drawn++
	}
	tally.Logger().Debug("geo: map drawn", "features", drawn, "skipped", skipped)
	return drawn, nil
}

// areaPath converts polygonal geometry into a path, or nil.
func areaPath(g orb.Geometry) *tally.Path {
	var polys orb.MultiPolygon
	switch g := g.(type) {
	case orb.Polygon:
		polys = orb.MultiPolygon{g}
	case orb.MultiPolygon:
		polys = g
	default:
		return nil
	}
	p := tally.NewPath()
	for _, poly := range polys {
		for i, ring := range poly {
			appendRing(p, ring, i == 0)
		}
	}
	if p.Len() == 0 {
		return nil
	}
	return p
}

// appendRing adds ring as a closed subpath, counter-clockwise when outer
// and clockwise otherwise.
func appendRing(p *tally.Path, ring orb.Ring, outer bool) {
	if len(ring) < 3 {
		return
	}
	want := orb.CW
	if outer {
		want = orb.CCW
	}
	if ring.Orientation() != want {
		ring = ring.Clone()
		ring.Reverse()
	}
	// GeoJSON rings repeat the first point; Close covers it.
	if ring.Closed() {
		ring = ring[:len(ring)-1]
	}
	for i, pt := range ring {
		if i == 0 {
			p.MoveTo(pt[0], pt[1])
			continue
		}
		p.LineTo(pt[0], pt[1])
	}
	p.Close()
}
