package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/tally"
)

// Combine pastes images left to right, top aligned, onto a canvas as wide
// as their summed widths and as tall as the tallest one. Uncovered pixels
// are filled with background.
func Combine(background color.Color, images ...image.Image) (*image.RGBA, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	var width, height int
	for _, img := range images {
		b := img.Bounds()
		width += b.Dx()
		height = max(height, b.Dy())
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	x := 0
	for _, img := range images {
		draw.Copy(dst, image.Pt(x, 0), img, img.Bounds(), draw.Over, nil)
		x += img.Bounds().Dx()
	}
	return dst, nil
}

// CombineFiles pastes the PNG files srcs side by side into dst.
func CombineFiles(dst string, background color.Color, srcs ...string) error {
	images := make([]image.Image, 0, len(srcs))
	for _, src := range srcs {
		img, err := LoadPNG(src)
		if err != nil {
			return err
		}
		images = append(images, img)
	}
	out, err := Combine(background, images...)
	if err != nil {
		return err
	}
	if err := SavePNG(dst, out); err != nil {
		return err
	}
	tally.Logger().Info("imaging: combined", "dst", dst, "images", len(srcs),
		"width", out.Bounds().Dx(), "height", out.Bounds().Dy())
	return nil
}

// LoadPNG decodes a PNG file.
func LoadPNG(path string) (image.Image, error) {
	f, err := os.Open(path) // #nosec G304 -- path is provided by the user
	if err != nil {
		return nil, fmt.Errorf("imaging: %w", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imaging: decode %s: %w", path, err)
	}
	return img, nil
}

// SavePNG encodes img into a PNG file.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path) // #nosec G304 -- path is provided by the user
	if err != nil {
		return fmt.Errorf("imaging: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("imaging: %w", cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("imaging: encode %s: %w", path, err)
	}
	return nil
}
