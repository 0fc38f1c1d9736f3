package recording

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/tally"
)

// Viewport maps a rectangle of data space onto a pixel canvas.
//
// XRange is mapped onto [0, Width] left to right and YRange onto
// [Height, 0], so that data Y grows upwards while pixel Y grows downwards.
type Viewport struct {
	Width, Height int
	XRange        [2]float64
	YRange        [2]float64
	// Background fills the canvas before any command is played back.
	Background tally.RGBA
}

// ViewportOption configures a Viewport during creation.
type ViewportOption func(*Viewport)

// WithRanges sets the data space rectangle shown by the viewport.
func WithRanges(x0, x1, y0, y1 float64) ViewportOption {
	return func(v *Viewport) {
		v.XRange = [2]float64{x0, x1}
		v.YRange = [2]float64{y0, y1}
	}
}

// WithBackground sets the background color. Use tally.Transparent for
// none.
func WithBackground(c tally.RGBA) ViewportOption {
	return func(v *Viewport) {
		v.Background = c
	}
}

// NewViewport creates a viewport of width x height pixels. By default one
// data unit is one pixel and the background is white.
func NewViewport(width, height int, opts ...ViewportOption) Viewport {
	v := Viewport{
		Width:      width,
		Height:     height,
		XRange:     [2]float64{0, float64(width)},
		YRange:     [2]float64{0, float64(height)},
		Background: tally.White,
	}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// Validate reports whether the viewport can be rendered.
func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidViewport, v.Width, v.Height)
	}
	dx := v.XRange[1] - v.XRange[0]
	dy := v.YRange[1] - v.YRange[0]
	if dx == 0 || dy == 0 || math.IsNaN(dx) || math.IsNaN(dy) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return fmt.Errorf("%w: ranges x=%v y=%v", ErrInvalidViewport, v.XRange, v.YRange)
	}
	return nil
}

// Transform returns the data-to-pixel transform.
func (v Viewport) Transform() Transform {
	sx := float64(v.Width) / (v.XRange[1] - v.XRange[0])
	sy := float64(v.Height) / (v.YRange[1] - v.YRange[0])
	return Transform{
		SX: sx, TX: -v.XRange[0] * sx,
		SY: -sy, TY: float64(v.Height) + v.YRange[0]*sy,
	}
}

// ToPixel maps a data space point onto the pixel canvas.
func (v Viewport) ToPixel(p tally.Point) tally.Point {
	return v.Transform().Apply(p)
}

// ToData maps a pixel back into data space. The viewport must be valid.
func (v Viewport) ToData(p tally.Point) tally.Point {
	inv, _ := v.Transform().Invert()
	return inv.Apply(p)
}

// Bounds returns the pixel rectangle of the viewport.
func (v Viewport) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.Width, v.Height)
}

// PixelSize returns the extent of one pixel in data units along each axis.
func (v Viewport) PixelSize() (dx, dy float64) {
	return (v.XRange[1] - v.XRange[0]) / float64(v.Width),
		(v.YRange[1] - v.YRange[0]) / float64(v.Height)
}
