package tally

import "math"

// ResultCircle draws concentric result rings around a center point:
//
//  1. a turnout wedge of ColorOther on Radii[0], sweeping Turnout percent,
//  2. a white spacer disk on Radii[1],
//  3. one wedge per candidate on Radii[2], clockwise from the top, followed
//     by the remainder in ColorOther,
//  4. a white hole on Radii[3],
//
// and finally the turnout label at the center. Later rings overdraw
// earlier ones, so the order is part of the picture.
type ResultCircle struct {
	Results    []float64
	Colors     []string
	ColorOther string
	Turnout    float64
	Center     Point
	Radii      [4]float64
	TextSize   float64

	// Resolution is the number of samples per arc (DefaultResolution if 0).
	Resolution int
	// Labels formats the turnout label (DefaultFormatter if nil).
	Labels *Formatter
}

var _ Composer = (*ResultCircle)(nil)

// String implements fmt.Stringer.
func (*ResultCircle) String() string { return "ResultCircle" }

// Validate implements Composer.
func (rc *ResultCircle) Validate() error {
	name := rc.String()
	if err := validateShares(name, rc.Results, rc.Colors); err != nil {
		return err
	}
	if rc.Turnout > 100 {
		return invalid(name, "turnout", "the turnout should not be greater than 100, %v > 100", rc.Turnout)
	}
	if rc.Turnout < 0 || math.IsNaN(rc.Turnout) {
		return invalid(name, "turnout", "must not be negative, got %v", rc.Turnout)
	}
	if _, err := ParseColor(rc.ColorOther); err != nil {
		return invalid(name, "color_other", "%v", err)
	}
	for i, r := range rc.Radii {
		if r < 0 {
			return invalid(name, "radii", "radius %d is negative: %v", i, r)
		}
	}
	if rc.Resolution != 0 && rc.Resolution < 2 {
		return invalid(name, "resolution", "need at least 2 samples, got %d", rc.Resolution)
	}
	return nil
}

// Layout implements Composer.
func (rc *ResultCircle) Layout() (Geometry, error) {
	if err := rc.Validate(); err != nil {
		return Geometry{}, err
	}
	n := rc.Resolution
	if n == 0 {
		n = DefaultResolution
	}
	wedge := func(radius, start, end float64, color string) Sector {
		return Sector{
			Center:     rc.Center,
			Radius:     radius,
			Start:      start,
			End:        end,
			Resolution: n,
			Color:      color,
		}
	}

	sectors := []Sector{
		wedge(rc.Radii[0], 0, sweep(rc.Turnout), rc.ColorOther),
		wedge(rc.Radii[1], 0, fullCircle, "white"),
	}
	var start, end float64
	for i, result := range rc.Results {
		end += sweep(result)
		sectors = append(sectors, wedge(rc.Radii[2], start, end, rc.Colors[i]))
		start = end
	}
	sectors = append(sectors,
		wedge(rc.Radii[2], end, fullCircle, rc.ColorOther),
		wedge(rc.Radii[3], 0, fullCircle, "white"),
	)

	var g Geometry
	for _, s := range sectors {
		if err := g.sector(s); err != nil {
			return Geometry{}, err
		}
	}
	g.text(formatterOrDefault(rc.Labels).Percent(rc.Turnout), rc.Center, rc.TextSize)
	return g, nil
}
