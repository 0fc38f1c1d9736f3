package recording

import (
	"image"
	"io"

	"github.com/gogpu/tally"
)

// Backend is the interface that all output backends must implement.
// Backends receive drawing commands in pixel space (origin top left, Y
// down) and translate them to their output format.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Fill the viewport background in Begin
//  3. Draw text centered on the given point
type Backend interface {
	// Begin initializes the backend for the given viewport.
	// This must be called before any drawing operations.
	Begin(vp Viewport) error

	// End finalizes the rendering and prepares the output.
	// After End is called, output methods (WriteTo, SaveToFile) can be used.
	End() error

	// FillPath fills the closed subpaths of path.
	FillPath(path *tally.Path, fill tally.RGBA)

	// StrokePath strokes path. Width and dash are in pixels.
	StrokePath(path *tally.Path, stroke tally.Stroke, color tally.RGBA)

	// DrawText draws s centered on at.
	DrawText(s string, at tally.Point, font tally.Font, color tally.RGBA)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rasterized image.
// This is implemented by the raster backend.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before End.
	Image() image.Image
}
