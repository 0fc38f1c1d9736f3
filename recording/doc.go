// Package recording captures drawing calls as commands that can be played
// back to different output backends.
//
// Widgets draw onto a [Recorder], which implements tally.Canvas in data
// space. FinishRecording returns an immutable [Recording] that replays the
// commands to any [Backend], mapping data space onto pixels through the
// recording's [Viewport] on the way.
//
// # Basic Usage
//
//	vp := recording.NewViewport(300, 500)
//	rec := recording.NewRecorder(vp)
//	if err := tally.Draw(rec, circle, legend); err != nil {
//	    return err
//	}
//	r := rec.FinishRecording()
//
//	backend, _ := recording.NewBackend("svg")
//	if err := r.Playback(backend); err != nil {
//	    return err
//	}
//	backend.(recording.FileBackend).SaveToFile("legend.svg")
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import (
//	    _ "github.com/gogpu/tally/recording/backends/raster" // "raster"
//	    _ "github.com/gogpu/tally/recording/backends/svg"    // "svg"
//	)
//
// Backends also register the file extensions they write, so
// BackendFor("legend.png") resolves to "raster".
//
// # Coordinates
//
// Data space has its origin at the bottom left with Y growing upwards.
// Backends always receive pixel coordinates with the origin at the top
// left. Stroke widths, dash lengths and font sizes are already in pixels
// and are passed through unchanged.
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recording objects are immutable
// after FinishRecording and can be played back from multiple goroutines.
package recording
