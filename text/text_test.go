package text

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestDefaultSource(t *testing.T) {
	src := DefaultSource()
	if src == nil {
		t.Fatal("DefaultSource() = nil")
	}
	if src != DefaultSource() {
		t.Error("DefaultSource() is not shared")
	}
	if src.Name() != "Go" {
		t.Errorf("Name() = %q, want Go", src.Name())
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("NewFontSource(garbage) = nil error")
	}
	if _, err := NewFontSourceFromFile("does-not-exist.ttf"); err == nil {
		t.Error("NewFontSourceFromFile(missing) = nil error")
	}
}

func TestShape(t *testing.T) {
	glyphs := DefaultSource().Shape("73.1%", 16)
	if len(glyphs) != 5 {
		t.Fatalf("len(Shape()) = %d, want 5", len(glyphs))
	}
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].X <= glyphs[i-1].X {
			t.Errorf("glyph %d at %v, not right of %v", i, glyphs[i].X, glyphs[i-1].X)
		}
	}
	if DefaultSource().Shape("", 16) != nil {
		t.Error("Shape(\"\") != nil")
	}
}

func TestMeasureScalesWithSize(t *testing.T) {
	src := DefaultSource()
	small := src.Measure(">90%", 10)
	large := src.Measure(">90%", 20)
	if small <= 0 {
		t.Fatalf("Measure() = %v, want positive", small)
	}
	if ratio := large / small; ratio < 1.9 || ratio > 2.1 {
		t.Errorf("Measure ratio = %v, want about 2", ratio)
	}
	if src.Measure("ii", 20) >= src.Measure("WW", 20) {
		t.Error("narrow glyphs measured wider than wide glyphs")
	}
}

func TestMeasureIsCached(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	first := src.Measure("Harris", 12)
	second := src.Measure("Harris", 12)
	if first != second {
		t.Errorf("Measure() = %v then %v", first, second)
	}
	src.Measure("Harris", 14)

	s := src.MeasureStats()
	if s.Hits != 1 || s.Misses != 2 {
		t.Errorf("MeasureStats() = %+v, want 1 hit and 2 misses", s)
	}
	if s.Len != 2 {
		t.Errorf("MeasureStats().Len = %d, want 2", s.Len)
	}
}

func TestMetrics(t *testing.T) {
	m, err := DefaultSource().Metrics(20)
	if err != nil {
		t.Fatalf("Metrics() = %v", err)
	}
	if m.Ascent <= 0 || m.Descent <= 0 || m.Ascent > 25 {
		t.Errorf("Metrics(20) = %+v", m)
	}
	if _, err := DefaultSource().Metrics(0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Metrics(0) error = %v, want ErrInvalidSize", err)
	}
}

func TestDrawCentered(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 40))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	if err := DefaultSource().DrawCentered(img, "HH", 50, 20, 20, color.Black); err != nil {
		t.Fatalf("DrawCentered() = %v", err)
	}

	minX, maxX := img.Bounds().Max.X, -1
	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r < 0x8000 {
				minX = min(minX, x)
				maxX = max(maxX, x)
			}
		}
	}
	if maxX < 0 {
		t.Fatal("nothing was drawn")
	}
	if mid := (minX + maxX) / 2; mid < 45 || mid > 55 {
		t.Errorf("ink centered at x=%d, want about 50", mid)
	}

	if err := DefaultSource().DrawCentered(img, "x", 0, 0, -1, color.Black); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("DrawCentered(size -1) = %v, want ErrInvalidSize", err)
	}
}
