package tally

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Region is one row of tabular results.
type Region struct {
	// ID is the region identifier shared with the boundary dataset
	// (for counties, a five digit FIPS code).
	ID string
	// Name is optional.
	Name string
	// Result is a signed margin in [-100, 100]. Positive values belong to
	// the up palette.
	Result float64
}

// RegionColor is a region with its classified color.
type RegionColor struct {
	Region
	Bucket Bucket
}

// Color returns the classified fill color.
func (rc RegionColor) Color() string {
	return rc.Bucket.Color
}

// ColorscaleEntry is one stop of a colorscale: a position in [0, 1] and
// the color starting or ending there.
type ColorscaleEntry struct {
	Value float64
	Color string
}

// ChoroplethMap colors regions by result and synthesizes the matching
// colorscale.
type ChoroplethMap struct {
	classifier *Classifier
}

// NewChoroplethMap creates a map colorer from explicit thresholds and
// palettes.
func NewChoroplethMap(thresholds Thresholds, up, down Palette) (*ChoroplethMap, error) {
	c, err := NewClassifier(thresholds, up, down)
	if err != nil {
		return nil, err
	}
	return &ChoroplethMap{classifier: c}, nil
}

// Classifier returns the classifier used by the map.
func (m *ChoroplethMap) Classifier() *Classifier {
	return m.classifier
}

// Colorize classifies every region. The first region that falls outside
// every bucket aborts with an error naming it.
func (m *ChoroplethMap) Colorize(regions []Region) ([]RegionColor, error) {
	out := make([]RegionColor, 0, len(regions))
	for _, r := range regions {
		b, err := m.classifier.Classify(r.Result)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", r.ID, err)
		}
		out = append(out, RegionColor{Region: r, Bucket: b})
	}
	return out, nil
}

// Colorscale builds the colorscale of colored regions.
//
// The result range [min, max] is mapped onto [0, 1]. For every color, in
// order of first appearance, the smallest and largest result of that
// color are mapped through the same line and added as two entries.
// Negative positions are clamped to 0, the entries are sorted by position
// and the first entry is pinned to exactly 0.
func Colorscale(colored []RegionColor) ([]ColorscaleEntry, error) {
	if len(colored) == 0 {
		return nil, invalid("Colorscale", "regions", "no regions to scale")
	}
	results := make([]float64, len(colored))
	for i, rc := range colored {
		results[i] = rc.Result
	}
	line, err := NormalizeLine(floats.Min(results), floats.Max(results))
	if err != nil {
		return nil, fmt.Errorf("colorscale: %w", err)
	}

	type span struct{ lo, hi float64 }
	var order []string
	spans := make(map[string]*span)
	for _, rc := range colored {
		color := rc.Color()
		s, ok := spans[color]
		if !ok {
			spans[color] = &span{lo: rc.Result, hi: rc.Result}
			order = append(order, color)
			continue
		}
		if rc.Result < s.lo {
			s.lo = rc.Result
		}
		if rc.Result > s.hi {
			s.hi = rc.Result
		}
	}

	entries := make([]ColorscaleEntry, 0, 2*len(order))
	for _, color := range order {
		s := spans[color]
		lo := line.ApplyFloat(s.lo)
		hi := line.ApplyFloat(s.hi)
		if lo < 0 {
			lo = 0
		}
		entries = append(entries,
			ColorscaleEntry{Value: lo, Color: color},
			ColorscaleEntry{Value: hi, Color: color})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value < entries[j].Value
	})
	entries[0].Value = 0
	return entries, nil
}

// JoinError reports regions that cannot be matched with the boundary
// dataset.
type JoinError struct {
	// Missing are region ids without a boundary feature.
	Missing []string
	// Duplicates are region ids that occur more than once.
	Duplicates []string
}

func (e *JoinError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("%d region(s) without boundary: %s",
			len(e.Missing), abbreviate(e.Missing)))
	}
	if len(e.Duplicates) > 0 {
		parts = append(parts, fmt.Sprintf("duplicate region id(s): %s", abbreviate(e.Duplicates)))
	}
	return "tally: join failed: " + strings.Join(parts, "; ")
}

// JoinCheck verifies that every region id is unique and present in
// boundaryIDs. Boundary features without a region are allowed; they are
// simply left unfilled.
func JoinCheck(regions []Region, boundaryIDs []string) error {
	known := make(map[string]struct{}, len(boundaryIDs))
	for _, id := range boundaryIDs {
		known[id] = struct{}{}
	}
	var (
		seen = make(map[string]struct{}, len(regions))
		je   JoinError
	)
	for _, r := range regions {
		if _, dup := seen[r.ID]; dup {
			je.Duplicates = append(je.Duplicates, r.ID)
			continue
		}
		seen[r.ID] = struct{}{}
		if _, ok := known[r.ID]; !ok {
			je.Missing = append(je.Missing, r.ID)
		}
	}
	if len(je.Missing) > 0 || len(je.Duplicates) > 0 {
		return &je
	}
	return nil
}

func abbreviate(ids []string) string {
	const limit = 5
	if len(ids) <= limit {
		return strings.Join(ids, ", ")
	}
	return strings.Join(ids[:limit], ", ") + fmt.Sprintf(", ... (%d more)", len(ids)-limit)
}
