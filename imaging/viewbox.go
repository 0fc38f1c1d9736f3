package imaging

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/gogpu/tally"
)

// ViewBox is the visible rectangle of an SVG document in user units.
type ViewBox struct {
	X, Y, Width, Height float64
}

// ParseViewBox parses four space separated numbers.
func ParseViewBox(s string) (ViewBox, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return ViewBox{}, fmt.Errorf("%w: %q should consist of four numbers divided by spaces", ErrInvalidViewBox, s)
	}
	var v [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return ViewBox{}, fmt.Errorf("%w: %q", ErrInvalidViewBox, s)
		}
		v[i] = n
	}
	vb := ViewBox{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
	if vb.Width <= 0 || vb.Height <= 0 {
		return ViewBox{}, fmt.Errorf("%w: %q has no area", ErrInvalidViewBox, s)
	}
	return vb, nil
}

// String formats the viewBox as an attribute value.
func (vb ViewBox) String() string {
	return strings.Join([]string{
		strconv.FormatFloat(vb.X, 'f', -1, 64),
		strconv.FormatFloat(vb.Y, 'f', -1, 64),
		strconv.FormatFloat(vb.Width, 'f', -1, 64),
		strconv.FormatFloat(vb.Height, 'f', -1, 64),
	}, " ")
}

// SetViewBox replaces the viewBox of the root <svg> element of data.
func SetViewBox(data []byte, vb ViewBox) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSVG, err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "svg" {
		return nil, ErrNotSVG
	}
	root.CreateAttr("viewBox", vb.String())
	return doc.WriteToBytes()
}

// EditViewBox rewrites the viewBox of the .svg file at path in place.
func EditViewBox(path, viewBox string) error {
	if ext := filepath.Ext(path); ext != ".svg" {
		return fmt.Errorf("%w: the file has to be an .svg, not %q", ErrNotSVG, ext)
	}
	vb, err := ParseViewBox(viewBox)
	if err != nil {
		return err
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return fmt.Errorf("imaging: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "svg" {
		return fmt.Errorf("%w: %s", ErrNotSVG, path)
	}
	old := root.SelectAttrValue("viewBox", "")
	root.CreateAttr("viewBox", vb.String())
	if err := doc.WriteToFile(path); err != nil {
		return fmt.Errorf("imaging: %w", err)
	}
	tally.Logger().Debug("imaging: viewBox", "path", path, "old", old, "new", vb.String())
	return nil
}
