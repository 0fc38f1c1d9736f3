package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"math"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/gogpu/tally"
)

// RasterizeSVG renders an SVG document onto a width x height image. A zero
// width or height is taken from the document viewBox. Text elements are
// not rendered.
func RasterizeSVG(data []byte, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSVG, err)
	}
	if width <= 0 {
		width = int(math.Ceil(icon.ViewBox.W))
	}
	if height <= 0 {
		height = int(math.Ceil(icon.ViewBox.H))
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: empty viewBox", ErrInvalidViewBox)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	icon.SetTarget(0, 0, float64(width), float64(height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)
	return img, nil
}

// ConvertSVG rasterizes the .svg file src into the PNG file dst at the
// size of its viewBox.
func ConvertSVG(src, dst string) error {
	data, err := os.ReadFile(src) // #nosec G304 -- path is provided by the user
	if err != nil {
		return fmt.Errorf("imaging: %w", err)
	}
	img, err := RasterizeSVG(data, 0, 0)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	if err := SavePNG(dst, img); err != nil {
		return err
	}
	tally.Logger().Info("imaging: converted", "src", src, "dst", dst)
	return nil
}
