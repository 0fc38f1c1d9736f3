// Package raster provides a raster backend for the recording system.
// It renders recordings to an RGBA image with golang.org/x/image/vector.
//
// # Supported Features
//
//   - Solid color fills (non-zero winding)
//   - Solid and dashed strokes with butt caps
//   - Centered text with any TrueType/OpenType font
//   - PNG output
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/tally/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("raster")
//
//	// Or create directly
//	backend := raster.NewBackend(raster.WithFont(src))
//
//	// Playback recording
//	rec.Playback(backend)
//
//	// Get output
//	backend.SavePNG("legend.png")
//	img := backend.Image()
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/tally"
	"github.com/gogpu/tally/recording"
	"github.com/gogpu/tally/text"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	}, ".png")
}

// ErrNotRendered is returned by output methods called before Begin.
var ErrNotRendered = errors.New("raster: nothing rendered")

// Backend renders recordings to a pixel image.
// It implements recording.Backend, recording.WriterBackend,
// recording.FileBackend, and recording.ImageBackend interfaces.
type Backend struct {
	img    *image.RGBA
	font   *text.FontSource
	errs   []error
	width  int
	height int
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithFont sets the font used for text (default: Go Regular).
func WithFont(src *text.FontSource) Option {
	return func(b *Backend) {
		if src != nil {
			b.font = src
		}
	}
}

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin allocates the image and fills the viewport background.
func (b *Backend) Begin(vp recording.Viewport) error {
	b.width = vp.Width
	b.height = vp.Height
	b.errs = nil
	b.img = image.NewRGBA(vp.Bounds())
	if vp.Background.A > 0 {
		draw.Draw(b.img, b.img.Bounds(), image.NewUniform(vp.Background.Color()), image.Point{}, draw.Src)
	}
	if b.font == nil {
		b.font = text.DefaultSource()
	}
	return nil
}

// End finalizes the rendering. It reports the first text drawing error,
// if any.
func (b *Backend) End() error {
	if b.img == nil {
		return ErrNotRendered
	}
	return errors.Join(b.errs...)
}

// FillPath fills the closed subpaths of path.
func (b *Backend) FillPath(path *tally.Path, fill tally.RGBA) {
	if path == nil || path.Len() == 0 {
		return
	}
	r := vector.NewRasterizer(b.width, b.height)
	r.DrawOp = draw.Over
	for _, el := range path.Elements() {
		switch e := el.(type) {
		case tally.MoveTo:
			r.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case tally.LineTo:
			r.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case tally.Close:
			r.ClosePath()
		}
	}
	r.ClosePath()
	r.Draw(b.img, b.img.Bounds(), image.NewUniform(fill.Color()), image.Point{})
}

// StrokePath strokes every segment of path as a butt-capped quad. The dash
// pattern restarts at each vertex.
func (b *Backend) StrokePath(path *tally.Path, stroke tally.Stroke, color tally.RGBA) {
	if path == nil || stroke.Width <= 0 {
		return
	}
	r := vector.NewRasterizer(b.width, b.height)
	r.DrawOp = draw.Over
	half := stroke.Width / 2
	var drawn bool
	for _, seg := range segments(path) {
		for _, dash := range tally.DashSegments(seg[0], seg[1], stroke.Dash) {
			drawn = quad(r, dash[0], dash[1], half) || drawn
		}
	}
	if drawn {
		r.Draw(b.img, b.img.Bounds(), image.NewUniform(color.Color()), image.Point{})
	}
}

// DrawText draws s centered on at.
func (b *Backend) DrawText(s string, at tally.Point, font tally.Font, color tally.RGBA) {
	if err := b.font.DrawCentered(b.img, s, at.X, at.Y, font.Size, color.Color()); err != nil {
		b.errs = append(b.errs, fmt.Errorf("raster: text %q: %w", s, err))
	}
}

// Image returns the rendered image.
func (b *Backend) Image() image.Image {
	if b.img == nil {
		return nil
	}
	return b.img
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, ErrNotRendered
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	return b.SavePNG(path)
}

// SavePNG is a convenience method to save the image as PNG.
func (b *Backend) SavePNG(path string) (err error) {
	if b.img == nil {
		return ErrNotRendered
	}
	f, err := os.Create(path) // #nosec G304 -- output path is provided by the user
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, b.img); err != nil {
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	tally.Logger().Info("raster: saved", "path", path, "width", b.width, "height", b.height)
	return nil
}

// Width returns the backend width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the backend height.
func (b *Backend) Height() int {
	return b.height
}

// segments returns the straight segments of path, including the closing
// segment of every closed subpath.
func segments(path *tally.Path) [][2]tally.Point {
	var (
		out        [][2]tally.Point
		start, cur tally.Point
		open       bool
	)
	for _, el := range path.Elements() {
		switch e := el.(type) {
		case tally.MoveTo:
			start, cur, open = e.Point, e.Point, true
		case tally.LineTo:
			if open {
				out = append(out, [2]tally.Point{cur, e.Point})
			}
			cur = e.Point
		case tally.Close:
			if open && cur != start {
				out = append(out, [2]tally.Point{cur, start})
			}
			cur = start
		}
	}
	return out
}

// quad adds the rectangle of half-width h around a→b to r.
func quad(r *vector.Rasterizer, a, b tally.Point, h float64) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return false
	}
	nx, ny := -dy/l*h, dx/l*h
	r.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	r.LineTo(float32(b.X+nx), float32(b.Y+ny))
	r.LineTo(float32(b.X-nx), float32(b.Y-ny))
	r.LineTo(float32(a.X-nx), float32(a.Y-ny))
	r.ClosePath()
	return true
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
