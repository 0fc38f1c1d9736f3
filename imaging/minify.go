package imaging

import (
	"fmt"
	"os"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"

	"github.com/gogpu/tally"
)

const svgMediaType = "image/svg+xml"

var minifier *minify.M

func init() {
	minifier = minify.New()
	minifier.AddFunc(svgMediaType, svg.Minify)
}

// MinifySVG returns a smaller equivalent of an SVG document.
func MinifySVG(data []byte) ([]byte, error) {
	out, err := minifier.Bytes(svgMediaType, data)
	if err != nil {
		return nil, fmt.Errorf("imaging: minify: %w", err)
	}
	return out, nil
}

// MinifyFile minifies the .svg file at path in place.
func MinifyFile(path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- path is provided by the user
	if err != nil {
		return fmt.Errorf("imaging: %w", err)
	}
	out, err := MinifySVG(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("imaging: %w", err)
	}
	tally.Logger().Debug("imaging: minified", "path", path, "before", len(data), "after", len(out))
	return nil
}
