package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/tally/internal/cache"
)

// Glyph is one shaped glyph with its pen position.
type Glyph struct {
	ID       uint32
	Cluster  int
	X        float64
	XAdvance float64
}

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper keeps a
// mutable buffer and is not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Shape converts s into positioned glyphs at the given size, left to
// right.
func (src *FontSource) Shape(s string, size float64) []Glyph {
	if s == "" || size <= 0 {
		return nil
	}
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(src.shaped),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	glyphs := make([]Glyph, len(output.Glyphs))
	var x float64
	for i, g := range output.Glyphs {
		adv := fixedToFloat(g.Advance)
		glyphs[i] = Glyph{
			ID:       uint32(g.GlyphID),
			Cluster:  g.TextIndex(),
			X:        x + fixedToFloat(g.XOffset),
			XAdvance: adv,
		}
		x += adv
	}
	return glyphs
}

// Measure returns the advance width of s at the given size in pixels.
// Widths are cached per font.
func (src *FontSource) Measure(s string, size float64) float64 {
	return src.widths.GetOrCreate(measureKey{s, size}, func() float64 {
		var w float64
		for _, g := range src.Shape(s, size) {
			w += g.XAdvance
		}
		return w
	})
}

// MeasureStats reports how often Measure was answered from the cache.
func (src *FontSource) MeasureStats() cache.Stats {
	return src.widths.Stats()
}

// detectScript returns the script of the first non-space character.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
