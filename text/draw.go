package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Metrics holds vertical font metrics in pixels.
type Metrics struct {
	Ascent  float64
	Descent float64
}

// dpi makes one point equal one pixel.
const dpi = 72

func (src *FontSource) face(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	return opentype.NewFace(src.outline, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
}

// Metrics returns the ascent and descent at the given size.
func (src *FontSource) Metrics(size float64) (Metrics, error) {
	face, err := src.face(size)
	if err != nil {
		return Metrics{}, err
	}
	defer face.Close()
	m := face.Metrics()
	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
	}, nil
}

// DrawCentered draws s onto dst so that its advance box is centered on
// (cx, cy). The string is shaped for its width and rasterized with the
// x/image face of the same font.
func (src *FontSource) DrawCentered(dst draw.Image, s string, cx, cy, size float64, c color.Color) error {
	if s == "" {
		return nil
	}
	face, err := src.face(size)
	if err != nil {
		return err
	}
	defer face.Close()

	m := face.Metrics()
	width := src.Measure(s, size)
	ascent, descent := fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
	baseline := cy + (ascent-descent)/2

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(cx - width/2), Y: floatToFixed(baseline)},
	}
	d.DrawString(s)
	return nil
}
