// Package svg provides an SVG backend for the recording system.
//
// Paths become <path> elements and text becomes centered <text> elements,
// so the output stays editable and can later be rasterized by any SVG
// renderer (see imaging.ConvertSVG).
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/tally/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	r.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("map.svg")
package svg

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/gogpu/tally"
	"github.com/gogpu/tally/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	}, ".svg")
}

// Backend renders recordings to an SVG document.
// It implements recording.Backend, recording.WriterBackend and
// recording.FileBackend.
type Backend struct {
	buf        bytes.Buffer
	canvas     *svg.SVG
	viewport   recording.Viewport
	fontFamily string
	precision  int
	ended      bool
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithFontFamily overrides the font family of every text element.
func WithFontFamily(family string) Option {
	return func(b *Backend) {
		b.fontFamily = family
	}
}

// WithPrecision sets the number of fraction digits written for
// coordinates (default 3).
func WithPrecision(digits int) Option {
	return func(b *Backend) {
		if digits >= 0 {
			b.precision = digits
		}
	}
}

// NewBackend creates a new SVG backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{precision: 3}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin starts a new document of the viewport size.
func (b *Backend) Begin(vp recording.Viewport) error {
	b.buf.Reset()
	b.ended = false
	b.viewport = vp
	b.canvas = svg.New(&b.buf)

	w, h := float64(vp.Width), float64(vp.Height)
	b.canvas.Startview(w, h, 0, 0, w, h)
	if vp.Background.A > 0 {
		b.canvas.Rect(0, 0, w, h, fillStyle(vp.Background))
	}
	return nil
}

// End closes the document.
func (b *Backend) End() error {
	if b.canvas == nil {
		return fmt.Errorf("svg: End called before Begin")
	}
	if !b.ended {
		b.canvas.End()
		b.ended = true
	}
	return nil
}

// FillPath writes a filled <path>.
func (b *Backend) FillPath(path *tally.Path, fill tally.RGBA) {
	d := b.pathData(path)
	if d == "" {
		return
	}
	b.canvas.Path(d, fillStyle(fill))
}

// StrokePath writes a stroked, unfilled <path>.
func (b *Backend) StrokePath(path *tally.Path, stroke tally.Stroke, color tally.RGBA) {
	d := b.pathData(path)
	if d == "" {
		return
	}
	hex, opacity := paint(color)
	style := []string{
		"fill:none",
		"stroke:" + hex,
		"stroke-width:" + b.num(stroke.Width),
	}
	if opacity < 1 {
		style = append(style, "stroke-opacity:"+b.num(opacity))
	}
	if len(stroke.Dash) > 0 {
		parts := make([]string, len(stroke.Dash))
		for i, l := range stroke.Dash {
			parts[i] = b.num(l)
		}
		style = append(style, "stroke-dasharray:"+strings.Join(parts, ","))
	}
	b.canvas.Path(d, strings.Join(style, ";"))
}

// DrawText writes a <text> element centered on at.
func (b *Backend) DrawText(s string, at tally.Point, font tally.Font, color tally.RGBA) {
	family := font.Family
	if b.fontFamily != "" {
		family = b.fontFamily
	}
	hex, opacity := paint(color)
	style := []string{
		"font-family:" + family,
		"font-size:" + b.num(font.Size) + "px",
		"fill:" + hex,
		"text-anchor:middle",
		"dominant-baseline:central",
	}
	if opacity < 1 {
		style = append(style, "fill-opacity:"+b.num(opacity))
	}
	b.canvas.Text(b.round(at.X), b.round(at.Y), s, strings.Join(style, ";"))
}

// Bytes returns the document written so far.
func (b *Backend) Bytes() []byte {
	return b.buf.Bytes()
}

// WriteTo writes the SVG document to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// SaveToFile saves the SVG document to a file.
func (b *Backend) SaveToFile(path string) error {
	if err := os.WriteFile(path, b.buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	tally.Logger().Info("svg: saved", "path", path, "bytes", b.buf.Len())
	return nil
}

// pathData renders path as SVG path data ("M x y L x y Z").
func (b *Backend) pathData(path *tally.Path) string {
	if path == nil || path.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	for _, el := range path.Elements() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch e := el.(type) {
		case tally.MoveTo:
			sb.WriteString("M" + b.num(e.Point.X) + " " + b.num(e.Point.Y))
		case tally.LineTo:
			sb.WriteString("L" + b.num(e.Point.X) + " " + b.num(e.Point.Y))
		case tally.Close:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

func (b *Backend) round(v float64) float64 {
	p := math.Pow10(b.precision)
	return math.Round(v*p) / p
}

func (b *Backend) num(v float64) string {
	r := b.round(v)
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// paint splits a color into an opaque hex value and its opacity. SVG 1.1
// viewers do not all understand 8-digit hex colors.
func paint(c tally.RGBA) (string, float64) {
	opaque := c
	opaque.A = 1
	return opaque.Hex(), c.A
}

func fillStyle(c tally.RGBA) string {
	hex, opacity := paint(c)
	if opacity < 1 {
		return "fill:" + hex + ";fill-opacity:" + strconv.FormatFloat(opacity, 'f', 3, 64)
	}
	return "fill:" + hex
}
