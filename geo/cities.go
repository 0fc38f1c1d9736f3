package geo

import (
	"github.com/gogpu/tally"
	"github.com/gogpu/tally/dataset"
	"github.com/gogpu/tally/recording"
)

// MarkerStyle controls city markers. Sizes are in pixels.
type MarkerStyle struct {
	// Size is the marker diameter.
	Size      float64
	LineWidth float64
	Color     tally.RGBA
	TextSize  float64
}

// DefaultMarkerStyle returns hollow black 4px markers with 5px labels.
func DefaultMarkerStyle() MarkerStyle {
	return MarkerStyle{Size: 4, LineWidth: 0.5, Color: tally.Black, TextSize: 5}
}

const markerResolution = 24

// DrawCities draws a hollow marker for every city with its name centered
// below it. vp converts pixel sizes into data units.
func DrawCities(c tally.Canvas, cities []dataset.City, proj Projection, vp recording.Viewport, style MarkerStyle) error {
	fn, err := proj.Func()
	if err != nil {
		return err
	}
	px, py := vp.PixelSize()
	font := tally.NewFont(style.TextSize)
	stroke := tally.Stroke{Width: style.LineWidth}
	for _, city := range cities {
		pt := fn(city.Point())
		center := tally.Pt(pt[0], pt[1])
		path, err := tally.SectorPath(tally.Sector{
			Center:     center,
			Radius:     style.Size / 2 * px,
			Start:      0,
			End:        360,
			Resolution: markerResolution,
			Segment:    true,
			Color:      "black",
		})
		if err != nil {
			return err
		}
		c.StrokePath(path, stroke, style.Color)
		if city.Name != "" {
			// Label centered one line below the marker.
			below := (style.Size/2 + style.TextSize*0.75) * py
			c.DrawText(city.Name, tally.Pt(center.X, center.Y-below), font, style.Color)
		}
	}
	return nil
}
