package imaging

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
)

const sample = `<?xml version="1.0"?>
<!-- map -->
<svg xmlns="http://www.w3.org/2000/svg" width="20" height="10" viewBox="0 0 20 10">
  <rect x="0" y="0" width="20" height="10" style="fill:#ffffff"/>
  <rect x="0" y="0" width="10" height="10" style="fill:#ff0000"/>
</svg>
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func rgba(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestParseViewBox(t *testing.T) {
	tests := []struct {
		in      string
		want    ViewBox
		wantErr bool
	}{
		{"350 245 300 30", ViewBox{350, 245, 300, 30}, false},
		{"  0 0 1.5 2 ", ViewBox{0, 0, 1.5, 2}, false},
		{"-10 -10 20 20", ViewBox{-10, -10, 20, 20}, false},
		{"0 0 10", ViewBox{}, true},
		{"0 0 10 10 10", ViewBox{}, true},
		{"0 0 a 10", ViewBox{}, true},
		{"0 0 0 10", ViewBox{}, true},
	}
	for _, tt := range tests {
		got, err := ParseViewBox(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseViewBox(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidViewBox) {
			t.Errorf("ParseViewBox(%q) error = %v, want ErrInvalidViewBox", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseViewBox(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	if s := (ViewBox{350, 245, 300, 30.5}).String(); s != "350 245 300 30.5" {
		t.Errorf("String() = %q", s)
	}
}

func TestEditViewBox(t *testing.T) {
	path := writeFile(t, "map.svg", sample)
	if err := EditViewBox(path, "5 0 10 10"); err != nil {
		t.Fatalf("EditViewBox() = %v", err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		t.Fatal(err)
	}
	if got := doc.Root().SelectAttrValue("viewBox", ""); got != "5 0 10 10" {
		t.Errorf("viewBox = %q, want %q", got, "5 0 10 10")
	}
	if n := len(doc.Root().SelectElements("rect")); n != 2 {
		t.Errorf("rects = %d, want 2", n)
	}
}

func TestEditViewBoxErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		viewBox string
		want    error
	}{
		{"extension", "map.png", sample, "0 0 1 1", ErrNotSVG},
		{"viewBox", "map.svg", sample, "0 0 1", ErrInvalidViewBox},
		{"root", "map.svg", "<html></html>", "0 0 1 1", ErrNotSVG},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EditViewBox(writeFile(t, tt.file, tt.content), tt.viewBox)
			if !errors.Is(err, tt.want) {
				t.Errorf("EditViewBox() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSetViewBox(t *testing.T) {
	out, err := SetViewBox([]byte(sample), ViewBox{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("SetViewBox() = %v", err)
	}
	if !strings.Contains(string(out), `viewBox="1 2 3 4"`) {
		t.Errorf("output lacks the new viewBox:\n%s", out)
	}
	if _, err := SetViewBox([]byte("<g/>"), ViewBox{0, 0, 1, 1}); !errors.Is(err, ErrNotSVG) {
		t.Errorf("SetViewBox(<g/>) = %v, want ErrNotSVG", err)
	}
}

func TestMinifySVG(t *testing.T) {
	out, err := MinifySVG([]byte(sample))
	if err != nil {
		t.Fatalf("MinifySVG() = %v", err)
	}
	if len(out) >= len(sample) {
		t.Errorf("MinifySVG() = %d bytes, input %d", len(out), len(sample))
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(out); err != nil {
		t.Fatalf("minified output is not XML: %v\n%s", err, out)
	}
	if doc.Root() == nil || doc.Root().Tag != "svg" {
		t.Errorf("minified root = %v, want <svg>", doc.Root())
	}

	path := writeFile(t, "map.svg", sample)
	if err := MinifyFile(path); err != nil {
		t.Fatalf("MinifyFile() = %v", err)
	}
	if info, _ := os.Stat(path); info.Size() >= int64(len(sample)) {
		t.Errorf("MinifyFile() left %d bytes", info.Size())
	}
}

func TestRasterizeSVG(t *testing.T) {
	img, err := RasterizeSVG([]byte(sample), 0, 0)
	if err != nil {
		t.Fatalf("RasterizeSVG() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Fatalf("bounds = %v, want 20x10", b)
	}
	if got := rgba(img, 5, 5); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel (5, 5) = %v, want red", got)
	}
	if got := rgba(img, 15, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel (15, 5) = %v, want white", got)
	}

	img, err = RasterizeSVG([]byte(sample), 40, 20)
	if err != nil {
		t.Fatalf("RasterizeSVG(40x20) = %v", err)
	}
	if got := rgba(img, 15, 10); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("scaled pixel (15, 10) = %v, want red", got)
	}
}

func TestConvertSVG(t *testing.T) {
	src := writeFile(t, "map.svg", sample)
	dst := filepath.Join(t.TempDir(), "map.png")
	if err := ConvertSVG(src, dst); err != nil {
		t.Fatalf("ConvertSVG() = %v", err)
	}
	img, err := LoadPNG(dst)
	if err != nil {
		t.Fatalf("LoadPNG() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("bounds = %v, want 20x10", b)
	}
	if err := ConvertSVG(filepath.Join(t.TempDir(), "none.svg"), dst); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ConvertSVG(missing) = %v, want os.ErrNotExist", err)
	}
}

func TestCombine(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	out, err := Combine(color.White, solid(10, 20, red), solid(5, 10, blue))
	if err != nil {
		t.Fatalf("Combine() = %v", err)
	}
	if b := out.Bounds(); b.Dx() != 15 || b.Dy() != 20 {
		t.Fatalf("bounds = %v, want 15x20", b)
	}
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, red},
		{9, 19, red},
		{10, 0, blue},
		{14, 9, blue},
		{12, 15, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := rgba(out, tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	if _, err := Combine(color.White); !errors.Is(err, ErrNoImages) {
		t.Errorf("Combine() = %v, want ErrNoImages", err)
	}
}

func TestCombineFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	dst := filepath.Join(dir, "out.png")
	if err := SavePNG(a, solid(8, 4, color.Black)); err != nil {
		t.Fatal(err)
	}
	if err := SavePNG(b, solid(2, 6, color.Black)); err != nil {
		t.Fatal(err)
	}
	if err := CombineFiles(dst, color.White, a, b); err != nil {
		t.Fatalf("CombineFiles() = %v", err)
	}
	img, err := LoadPNG(dst)
	if err != nil {
		t.Fatal(err)
	}
	if bnd := img.Bounds(); bnd.Dx() != 10 || bnd.Dy() != 6 {
		t.Errorf("bounds = %v, want 10x6", bnd)
	}
	if err := CombineFiles(dst, color.White, a, filepath.Join(dir, "missing.png")); err == nil {
		t.Error("CombineFiles(missing) = nil, want error")
	}
}
