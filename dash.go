package tally

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Named dash styles, in multiples of the line width.
var namedDashes = map[string][]float64{
	"solid":       nil,
	"dot":         {1, 2},
	"dash":        {3, 3},
	"longdash":    {6, 3},
	"dashdot":     {3, 2, 1, 2},
	"longdashdot": {6, 2, 1, 2},
}

// ParseDash converts a dash style into a dash pattern in pixels.
//
// Named styles ("solid", "dot", "dash", "longdash", "dashdot",
// "longdashdot") scale with width. Explicit patterns are comma or space
// separated pixel lengths, with or without a "px" suffix:
//
//	ParseDash("1px", 2)       // [1, 1]
//	ParseDash("5px,3px", 2)   // [5, 3]
//	ParseDash("dash", 2)      // [6, 6]
//
// An empty style is solid. Odd-length patterns are duplicated to an
// even length; negative lengths are taken as absolute values.
func ParseDash(style string, width float64) ([]float64, error) {
	style = strings.TrimSpace(strings.ToLower(style))
	if style == "" {
		return nil, nil
	}
	if pattern, ok := namedDashes[style]; ok {
		if pattern == nil {
			return nil, nil
		}
		out := make([]float64, len(pattern))
		for i, l := range pattern {
			out[i] = l * width
		}
		return out, nil
	}

	fields := strings.FieldsFunc(style, func(r rune) bool {
		return r == ',' || r == ' '
	})
	lengths := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSuffix(f, "px"), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDash, style)
		}
		lengths = append(lengths, math.Abs(v))
	}
	return normalizeDash(lengths), nil
}

// normalizeDash duplicates odd-length patterns and drops all-zero ones.
func normalizeDash(lengths []float64) []float64 {
	var total float64
	for _, l := range lengths {
		total += l
	}
	if total == 0 {
		return nil
	}
	if len(lengths)%2 == 1 {
		lengths = append(lengths, lengths...)
	}
	return lengths
}

// DashSegments splits the segment a→b into its visible dashes.
// A nil pattern yields the whole segment.
func DashSegments(a, b Point, pattern []float64) [][2]Point {
	length := a.Distance(b)
	if normalizeDash(append([]float64(nil), pattern...)) == nil || length == 0 {
		return [][2]Point{{a, b}}
	}
	dir := Pt((b.X-a.X)/length, (b.Y-a.Y)/length)
	at := func(d float64) Point {
		return Pt(a.X+dir.X*d, a.Y+dir.Y*d)
	}

	var (
		out  [][2]Point
		pos  float64
		i    int
		draw = true
	)
	for pos < length {
		end := math.Min(pos+pattern[i%len(pattern)], length)
		if draw && end > pos {
			out = append(out, [2]Point{at(pos), at(end)})
		}
		pos = end
		draw = !draw
		i++
	}
	return out
}
