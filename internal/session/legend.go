package session

import (
	"errors"
	"fmt"

	"github.com/gogpu/tally"
	"github.com/gogpu/tally/config"
)

// Legend panel size in pixels.
const (
	LegendWidth  = 300
	LegendHeight = 500
)

// ErrLegendShape is returned when the legend input does not fit the
// standard panel.
var ErrLegendShape = errors.New("session: legend does not fit the standard panel")

// LegendComposers lays out the standard legend panel: the result circle,
// the palette legend, the candidate blocks and the result history bars.
func LegendComposers(l config.Legend, p config.Palettes, f *tally.Formatter) ([]tally.Composer, error) {
	if err := checkLegend(l, p); err != nil {
		return nil, err
	}
	up, down := p.Up[1], p.Down[1]
	rows := make([]string, 0, len(p.Thresholds)-1)
	for _, t := range p.Thresholds[:len(p.Thresholds)-1] {
		rows = append(rows, ">"+f.Number(t)+"%")
	}
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	results := make([]string, len(l.Results))
	for i, r := range l.Results {
		results[i] = f.Percent(r)
	}

	history := append([]float64{max(l.Results[0], l.Results[1])}, l.PastResults...)
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}

	return []tally.Composer{
		&tally.ResultCircle{
			Results:    l.Results,
			Colors:     []string{up, down},
			ColorOther: p.Other,
			Turnout:    l.Turnout,
			Center:     tally.Pt(80, 309),
			Radii:      [4]float64{66, 63, 60, 30},
			TextSize:   15.5,
			Labels:     f,
		},
		&tally.Legend{
			Palettes:            []tally.Palette{p.Up, p.Down},
			TotalX:              []float64{190, 190, 295, 295},
			TotalY:              []float64{174, 384, 384, 174},
			BorderXMargin:       5,
			BorderYMargin:       5,
			PaletteXMargin:      5,
			PaletteYMargin:      10,
			HorizontalText:      l.Parties,
			HorizontalPositions: []tally.Point{tally.Pt(217.5, 164), tally.Pt(265, 164)},
			HorizontalTextSize:  13,
			VerticalText:        rows,
			VerticalPosition:    tally.Pt(171, 192),
			VerticalTextSize:    13.5,
		},
		&tally.CandidateBlocks{
			X:                  []float64{10, 10, 290, 290},
			Y:                  []float64{389, 439, 439, 389},
			YMargin:            5,
			Colors:             []string{down, up},
			CandidateText:      l.Candidates,
			CandidatePositions: []tally.Point{tally.Pt(108, 469), tally.Pt(97, 414)},
			CandidateTextSize:  20,
			ResultText:         results,
			ResultPositions:    []tally.Point{tally.Pt(250, 414), tally.Pt(250, 469)},
			ResultTextSize:     20,
		},
		&tally.ResultPlot{
			X:               []float64{10, 10, 240, 240},
			Y:               []float64{30, 60, 60, 30},
			YMargin:         10,
			Results:         history,
			Colors:          l.BarColors,
			NeutralColor:    tally.ColorNeutral,
			YearText:        l.BarYears,
			YearPositions:   []tally.Point{tally.Pt(265, 46), tally.Pt(265, 86), tally.Pt(265, 126)},
			YearTextSize:    14,
			ResultPositions: []tally.Point{tally.Pt(35, 46), tally.Pt(35, 86), tally.Pt(35, 126)},
			ResultTextSize:  14,
			Labels:          f,
		},
	}, nil
}

// DefaultBarColors colors the history bars down, up, up, as the standard
// session does for a win of the up party after two losses.
func DefaultBarColors(p config.Palettes) []string {
	return []string{p.Down[1], p.Up[1], p.Up[1]}
}

func checkLegend(l config.Legend, p config.Palettes) error {
	switch {
	case len(l.Candidates) != 2:
		return fmt.Errorf("%w: %d candidates, want 2", ErrLegendShape, len(l.Candidates))
	case len(l.Results) != 2:
		return fmt.Errorf("%w: %d results, want 2", ErrLegendShape, len(l.Results))
	case len(l.Parties) != 2:
		return fmt.Errorf("%w: %d parties, want 2", ErrLegendShape, len(l.Parties))
	case len(l.PastResults) != 2:
		return fmt.Errorf("%w: %d past results, want 2", ErrLegendShape, len(l.PastResults))
	case len(l.BarColors) != 3:
		return fmt.Errorf("%w: %d bar colors, want 3", ErrLegendShape, len(l.BarColors))
	case len(l.BarYears) != 3:
		return fmt.Errorf("%w: %d bar years, want 3", ErrLegendShape, len(l.BarYears))
	case len(p.Up) < 2 || len(p.Down) < 2:
		return fmt.Errorf("%w: palettes need at least 2 colors", ErrLegendShape)
	case len(p.Thresholds) != len(p.Up)+1:
		return fmt.Errorf("%w: %d thresholds for %d colors", ErrLegendShape, len(p.Thresholds), len(p.Up))
	}
	return nil
}
