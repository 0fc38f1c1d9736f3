package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/tally/internal/cache"
)

// FontSource represents a loaded font file.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	name string

	// shaped is read-only and safe for concurrent use, unlike the
	// go-text Face built from it per call.
	shaped  *gotext.Font
	outline *opentype.Font

	widths *cache.Cache[measureKey, float64]
}

type measureKey struct {
	s    string
	size float64
}

// measureCacheSize bounds the number of remembered label widths per font.
const measureCacheSize = 1024

// NewFontSource creates a FontSource from font data (TTF or OTF).
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	outline, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	s := &FontSource{
		shaped:  face.Font,
		outline: outline,
		widths:  cache.New[measureKey, float64](measureCacheSize),
	}
	if name, err := outline.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	return s.name
}

var (
	defaultOnce   sync.Once
	defaultSource *FontSource
)

// DefaultSource returns the bundled Go Regular font.
func DefaultSource() *FontSource {
	defaultOnce.Do(func() {
		src, err := NewFontSource(goregular.TTF)
		if err != nil {
			panic("text: bundled font does not parse: " + err.Error())
		}
		defaultSource = src
	})
	return defaultSource
}
