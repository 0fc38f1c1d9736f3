// Package text loads fonts, measures strings and draws centered labels
// onto raster images.
//
// A FontSource is parsed twice: once by go-text/typesetting, whose
// HarfBuzz shaper gives the advance of a shaped string, and once by
// golang.org/x/image/font/opentype, whose faces rasterize the glyphs.
//
// # Example usage
//
//	src := text.DefaultSource() // Go Regular
//	w := src.Measure("73.1%", 15.5)
//	err := src.DrawCentered(img, "73.1%", 80, 191, 15.5, color.Black)
package text
