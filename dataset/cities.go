package dataset

import (
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/gogpu/tally"
)

// City is a labeled location drawn on top of a map.
type City struct {
	Name     string
	Lat, Lon float64
}

// Point returns the city location as an orb point (lon, lat).
func (c City) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// LoadCities reads a city table from a .csv or .xlsx file.
func LoadCities(path string) ([]City, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	cities, err := t.cities()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tally.Logger().Debug("dataset: loaded", "path", path, "cities", len(cities))
	return cities, nil
}

func (t *table) cities() ([]City, error) {
	name, err := t.require("name")
	if err != nil {
		return nil, err
	}
	lat, err := t.require("lat", "latitude")
	if err != nil {
		return nil, err
	}
	lon, err := t.require("lon", "longitude")
	if err != nil {
		return nil, err
	}

	out := make([]City, 0, len(t.rows))
	for i, row := range t.rows {
		c := City{Name: cell(row, name)}
		if c.Lat, err = parseCoord(cell(row, lat), 90); err != nil {
			return nil, fmt.Errorf("%w %d: lat: %v", ErrInvalidRow, i+2, err)
		}
		if c.Lon, err = parseCoord(cell(row, lon), 180); err != nil {
			return nil, fmt.Errorf("%w %d: lon: %v", ErrInvalidRow, i+2, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func parseCoord(s string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.Abs(v) > limit {
		return 0, fmt.Errorf("%v out of range [-%v, %v]", v, limit, limit)
	}
	return v, nil
}
