// Package tally draws election-result graphics.
//
// # Overview
//
// tally turns election results into static pictures: choropleth maps,
// result circles, legends, candidate blocks and bar charts. Every widget is
// built from four primitives (filled polygons, circular sectors, straight
// lines and text) that are emitted to a [Canvas]. The recording package
// provides a Canvas that captures the primitives and replays them into an
// SVG or raster backend.
//
// # Quick Start
//
//	rec := recording.NewRecorder(recording.NewViewport(300, 500))
//	circle := &tally.ResultCircle{
//	    Results:    []float64{56.9, 40.5},
//	    Colors:     []string{"#F00", "#00F"},
//	    ColorOther: tally.ColorOther,
//	    Turnout:    73.1,
//	    Center:     tally.Pt(80, 305),
//	    Radii:      [4]float64{66, 63, 60, 30},
//	    TextSize:   15.5,
//	}
//	if err := tally.Draw(rec, circle); err != nil {
//	    return err
//	}
//	r := rec.FinishRecording()
//	backend := raster.NewBackend()
//	_ = r.Playback(backend)
//	_ = backend.SavePNG("legend.png")
//
// # Coordinate System
//
// Widgets are laid out in data space:
//   - Origin (0,0) at bottom-left
//   - X increases right
//   - Y increases up
//   - Sector angles in degrees, 0 at the top, increasing clockwise
//
// The viewport of a recording maps data space onto pixels.
//
// # Errors
//
// Every composer validates its parameters before anything is drawn.
// [Draw] lays out all composers first and only then renders them, so a
// failed session never leaves a half-drawn canvas behind.
package tally

// Version is the current version of the library.
const Version = "0.3.0"
