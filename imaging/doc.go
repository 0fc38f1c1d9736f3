// Package imaging post-processes rendered images: it rewrites the viewBox
// of SVG files, minifies them, rasterizes them to PNG and pastes images
// side by side.
package imaging
