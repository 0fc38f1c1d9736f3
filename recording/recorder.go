package recording

import (
	"fmt"

	"github.com/gogpu/tally"
)

// Recorder captures drawing calls as commands.
// It implements tally.Canvas, so any widget can draw onto it. Use
// FinishRecording to obtain an immutable Recording that can be replayed
// to different backends.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	viewport  Viewport
	commands  []Command
	resources *ResourcePool
}

var _ tally.Canvas = (*Recorder)(nil)

// NewRecorder creates a Recorder for the given viewport.
func NewRecorder(vp Viewport) *Recorder {
	return &Recorder{
		viewport:  vp,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
	}
}

// Viewport returns the viewport the recording will be played back with.
func (r *Recorder) Viewport() Viewport {
	return r.viewport
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// FillPath implements tally.Canvas.
func (r *Recorder) FillPath(p *tally.Path, fill tally.RGBA) {
	r.commands = append(r.commands, FillPathCommand{
		Path:  r.resources.AddPath(p),
		Color: fill,
	})
}

// StrokePath implements tally.Canvas.
func (r *Recorder) StrokePath(p *tally.Path, stroke tally.Stroke, color tally.RGBA) {
	stroke.Dash = append([]float64(nil), stroke.Dash...)
	r.commands = append(r.commands, StrokePathCommand{
		Path:   r.resources.AddPath(p),
		Stroke: stroke,
		Color:  color,
	})
}

// DrawText implements tally.Canvas.
func (r *Recorder) DrawText(s string, at tally.Point, font tally.Font, color tally.RGBA) {
	if font.Family == "" {
		font.Family = tally.DefaultFontFamily
	}
	r.commands = append(r.commands, DrawTextCommand{
		Text:  s,
		At:    at,
		Font:  font,
		Color: color,
	})
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. After calling FinishRecording, the Recorder should not be used
// again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		viewport:  r.viewport,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Backend implementation.
type Recording struct {
	viewport  Viewport
	commands  []Command
	resources *ResourcePool
}

// Viewport returns the viewport of the recording.
func (r *Recording) Viewport() Viewport {
	return r.viewport
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Count returns the number of commands of the given type.
func (r *Recording) Count(t CommandType) int {
	var n int
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording to the given backend, mapping every
// coordinate from data space to pixels.
func (r *Recording) Playback(backend Backend) error {
	if err := r.viewport.Validate(); err != nil {
		return err
	}
	if err := backend.Begin(r.viewport); err != nil {
		return fmt.Errorf("recording: begin: %w", err)
	}

	m := r.viewport.Transform()
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case FillPathCommand:
			if path := r.resources.GetPath(c.Path); path != nil {
				backend.FillPath(path.Transform(m.Apply), c.Color)
			}
		case StrokePathCommand:
			if path := r.resources.GetPath(c.Path); path != nil {
				backend.StrokePath(path.Transform(m.Apply), c.Stroke, c.Color)
			}
		case DrawTextCommand:
			backend.DrawText(c.Text, m.Apply(c.At), c.Font, c.Color)
		}
	}

	tally.Logger().Debug("recording: playback",
		"commands", len(r.commands),
		"fills", r.Count(CmdFillPath),
		"strokes", r.Count(CmdStrokePath),
		"texts", r.Count(CmdDrawText),
		"width", r.viewport.Width,
		"height", r.viewport.Height)

	if err := backend.End(); err != nil {
		return fmt.Errorf("recording: end: %w", err)
	}
	return nil
}
