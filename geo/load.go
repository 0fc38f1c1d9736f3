package geo

import (
	"fmt"
	"os"
	"strconv"

	"github.com/paulmach/orb/geojson"

	"github.com/gogpu/tally"
)

// Load reads a GeoJSON FeatureCollection from a file.
func Load(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- input path is provided by the user
	if err != nil {
		return nil, fmt.Errorf("geo: %w", err)
	}
	fc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tally.Logger().Debug("geo: loaded", "path", path, "features", len(fc.Features))
	return fc, nil
}

// Parse decodes a GeoJSON FeatureCollection.
func Parse(data []byte) (*geojson.FeatureCollection, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFeatureCollection, err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("%w: type %q", ErrNotFeatureCollection, fc.Type)
	}
	return fc, nil
}

// AssignIDs copies the given property of every feature into its id.
// Numeric properties are formatted without exponent; strings are kept
// verbatim so leading zeros survive.
func AssignIDs(fc *geojson.FeatureCollection, property string) error {
	for i, f := range fc.Features {
		v, ok := f.Properties[property]
		if !ok || v == nil {
			return fmt.Errorf("%w: feature %d has no %q", ErrMissingProperty, i, property)
		}
		f.ID = idString(v)
	}
	return nil
}

// FeatureID returns the id of f as a string, or "" when it has none.
func FeatureID(f *geojson.Feature) string {
	if f == nil || f.ID == nil {
		return ""
	}
	return idString(f.ID)
}

// IDs returns the ids of all features that have one, in order.
func IDs(fc *geojson.FeatureCollection) []string {
	ids := make([]string, 0, len(fc.Features))
	for _, f := range fc.Features {
		if id := FeatureID(f); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func idString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
