package tally

import (
	"errors"
	"math"
	"strings"
	"testing"
)

type fillCall struct {
	path  *Path
	color RGBA
}

type strokeCall struct {
	path   *Path
	stroke Stroke
	color  RGBA
}

type textCall struct {
	s    string
	at   Point
	font Font
}

// spyCanvas records what is drawn on it.
type spyCanvas struct {
	fills   []fillCall
	strokes []strokeCall
	texts   []textCall
}

func (c *spyCanvas) FillPath(p *Path, fill RGBA) {
	c.fills = append(c.fills, fillCall{p, fill})
}

func (c *spyCanvas) StrokePath(p *Path, stroke Stroke, color RGBA) {
	c.strokes = append(c.strokes, strokeCall{p, stroke, color})
}

func (c *spyCanvas) DrawText(s string, at Point, font Font, _ RGBA) {
	c.texts = append(c.texts, textCall{s, at, font})
}

func (c *spyCanvas) calls() int {
	return len(c.fills) + len(c.strokes) + len(c.texts)
}

func sampleCircle() *ResultCircle {
	return &ResultCircle{
		Results:    []float64{48.3, 50.1},
		Colors:     []string{"#165016", "#8C2D04"},
		ColorOther: ColorOther,
		Turnout:    73.1,
		Center:     Pt(80, 309),
		Radii:      [4]float64{66, 63, 60, 30},
		TextSize:   15.5,
	}
}

func TestResultCircleLayout(t *testing.T) {
	g, err := sampleCircle().Layout()
	if err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	sectors := g.Sectors()
	if len(sectors) != 6 {
		t.Fatalf("sectors = %d, want 6", len(sectors))
	}
	want := []struct {
		radius, start, end float64
		color              string
	}{
		{66, 0, 263.16, ColorOther},
		{63, 0, 360, "white"},
		{60, 0, 173.88, "#165016"},
		{60, 173.88, 354.24, "#8C2D04"},
		{60, 354.24, 360, ColorOther},
		{30, 0, 360, "white"},
	}
	for i, w := range want {
		s := sectors[i].Sector
		if s.Radius != w.radius || math.Abs(s.Start-w.start) > 1e-9 ||
			math.Abs(s.End-w.end) > 1e-9 || s.Color != w.color {
			t.Errorf("sector %d = {r=%v %v..%v %s}, want {r=%v %v..%v %s}",
				i, s.Radius, s.Start, s.End, s.Color, w.radius, w.start, w.end, w.color)
		}
		if s.Resolution != DefaultResolution {
			t.Errorf("sector %d resolution = %d, want %d", i, s.Resolution, DefaultResolution)
		}
	}
	texts := g.Texts()
	if len(texts) != 1 || texts[0].Text != "73.1%" || texts[0].At != Pt(80, 309) {
		t.Errorf("texts = %+v, want one 73.1%% at (80, 309)", texts)
	}
	if texts[0].Font.Size != 15.5 {
		t.Errorf("font size = %v, want 15.5", texts[0].Font.Size)
	}
	// The turnout label is drawn last, on top of the hole.
	if g.Elements[len(g.Elements)-1].Kind() != KindText {
		t.Error("last element is not the turnout label")
	}
}

func TestResultCircleExactlyFull(t *testing.T) {
	rc := sampleCircle()
	rc.Results = []float64{33.3, 33.3, 33.4}
	rc.Colors = []string{"#000001", "#000002", "#000003"}
	g, err := rc.Layout()
	if err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	if n := len(g.Sectors()); n != 7 {
		t.Errorf("sectors = %d, want 7", n)
	}
}

func TestResultCircleTurnoutLabel(t *testing.T) {
	for _, tt := range []struct {
		turnout float64
		want    string
	}{
		{73.15, "73.15%"},
		{73, "73%"},
		{54.25, "54.25%"},
	} {
		rc := sampleCircle()
		rc.Turnout = tt.turnout
		g, err := rc.Layout()
		if err != nil {
			t.Fatalf("Layout() = %v", err)
		}
		if texts := g.Texts(); len(texts) != 1 || texts[0].Text != tt.want {
			t.Errorf("turnout %v label = %+v, want %q", tt.turnout, texts, tt.want)
		}
	}
}

func TestResultCircleValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ResultCircle)
		field  string
		reason string
	}{
		{"sum over 100", func(rc *ResultCircle) { rc.Results = []float64{60, 50} }, "results", "should not be greater than 100"},
		{"turnout over 100", func(rc *ResultCircle) { rc.Turnout = 101 }, "turnout", "the turnout should not be greater than 100"},
		{"negative turnout", func(rc *ResultCircle) { rc.Turnout = -1 }, "turnout", "negative"},
		{"color count", func(rc *ResultCircle) { rc.Colors = rc.Colors[:1] }, "colors", "should be the same"},
		{"bad color", func(rc *ResultCircle) { rc.Colors[0] = "green" }, "colors", "color 0"},
		{"bad other", func(rc *ResultCircle) { rc.ColorOther = "" }, "color_other", "invalid color"},
		{"negative result", func(rc *ResultCircle) { rc.Results[0] = -2 }, "results", "out of range"},
		{"negative radius", func(rc *ResultCircle) { rc.Radii[3] = -1 }, "radii", "negative"},
		{"resolution", func(rc *ResultCircle) { rc.Resolution = 1 }, "resolution", "at least 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := sampleCircle()
			tt.mutate(rc)
			_, err := rc.Layout()
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Layout() error = %v, want *ValidationError", err)
			}
			if ve.Composer != "ResultCircle" || ve.Field != tt.field {
				t.Errorf("error on %s.%s, want ResultCircle.%s", ve.Composer, ve.Field, tt.field)
			}
			if !strings.Contains(ve.Reason, tt.reason) {
				t.Errorf("Reason = %q, want it to contain %q", ve.Reason, tt.reason)
			}
		})
	}
}

func sampleLegend() *Legend {
	return &Legend{
		Palettes:            []Palette{PaletteDemocrat, PaletteRepublican},
		TotalX:              []float64{190, 190, 295, 295},
		TotalY:              []float64{174, 384, 384, 174},
		BorderXMargin:       5,
		BorderYMargin:       5,
		PaletteXMargin:      5,
		PaletteYMargin:      10,
		HorizontalText:      []string{"D", "R"},
		HorizontalPositions: []Point{Pt(217.5, 164), Pt(265, 164)},
		HorizontalTextSize:  13,
		VerticalText:        []string{">90%", ">80%", ">70%", ">60%", ">50%", ">40%"},
		VerticalPosition:    Pt(171, 192),
		VerticalTextSize:    13.5,
	}
}

func TestLegendBlocks(t *testing.T) {
	b, err := sampleLegend().Blocks()
	if err != nil {
		t.Fatalf("Blocks() = %v", err)
	}
	if b.Width != 45 || b.Height != 25 {
		t.Errorf("block = %vx%v, want 45x25", b.Width, b.Height)
	}
	if !floatsEqual(b.X, []float64{195, 195, 240, 240}, 0) {
		t.Errorf("X = %v", b.X)
	}
	if !floatsEqual(b.Y, []float64{179, 204, 204, 179}, 0) {
		t.Errorf("Y = %v", b.Y)
	}
}

func TestLegendLayout(t *testing.T) {
	l := sampleLegend()
	g, err := l.Layout()
	if err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	polys := g.Polygons()
	if len(polys) != 12 {
		t.Fatalf("polygons = %d, want 12", len(polys))
	}
	// Bottom-left block carries the last color of the first palette.
	if got := polys[0].Fill.Hex(); got != "#165016" {
		t.Errorf("first block = %s, want #165016", got)
	}
	if polys[0].Points[0] != Pt(195, 179) {
		t.Errorf("first block origin = %v, want (195, 179)", polys[0].Points[0])
	}
	// Top-left block: first color, five steps up.
	if got := polys[5].Fill.Hex(); got != "#afe9af" {
		t.Errorf("top block = %s, want #afe9af", got)
	}
	if polys[5].Points[0] != Pt(195, 179+5*35) {
		t.Errorf("top block origin = %v, want (195, 354)", polys[5].Points[0])
	}
	// Second column starts one block and margin to the right.
	if polys[6].Points[0] != Pt(245, 179) {
		t.Errorf("second column origin = %v, want (245, 179)", polys[6].Points[0])
	}

	texts := g.Texts()
	if len(texts) != 8 {
		t.Fatalf("texts = %d, want 8", len(texts))
	}
	if texts[2].Text != ">90%" || texts[2].At != Pt(171, 192) {
		t.Errorf("first row label = %+v", texts[2])
	}
	if texts[3].At != Pt(171, 227) {
		t.Errorf("second row label at %v, want (171, 227)", texts[3].At)
	}
	if l.VerticalPosition != Pt(171, 192) {
		t.Error("Layout mutated VerticalPosition")
	}
}

func TestLegendValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Legend)
		field  string
	}{
		{"uneven palettes", func(l *Legend) { l.Palettes[1] = l.Palettes[1][:3] }, "palettes"},
		{"no palettes", func(l *Legend) { l.Palettes = nil }, "palettes"},
		{"short borders", func(l *Legend) { l.TotalX = l.TotalX[:2] }, "total_x_borders"},
		{"headers", func(l *Legend) { l.HorizontalPositions = nil }, "horizontal_text"},
		{"margins", func(l *Legend) { l.PaletteYMargin = 50 }, "margins"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := sampleLegend()
			tt.mutate(l)
			_, err := l.Layout()
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Errorf("Layout() error = %v, want validation of %s", err, tt.field)
			}
		})
	}
}

func TestCandidateBlocksLayout(t *testing.T) {
	cb := &CandidateBlocks{
		X:                  []float64{10, 10, 290, 290},
		Y:                  []float64{389, 439, 439, 389},
		YMargin:            5,
		Colors:             []string{"#8C2D04", "#165016"},
		CandidateText:      []string{"Trump", "Harris"},
		CandidatePositions: []Point{Pt(108, 469), Pt(97, 414)},
		CandidateTextSize:  20,
		ResultText:         []string{"48.3%", "50.1%"},
		ResultPositions:    []Point{Pt(250, 414), Pt(250, 469)},
		ResultTextSize:     20,
	}
	g, err := cb.Layout()
	if err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	polys := g.Polygons()
	if len(polys) != 2 {
		t.Fatalf("polygons = %d, want 2", len(polys))
	}
	if polys[1].Points[0] != Pt(10, 444) || polys[1].Points[1] != Pt(10, 494) {
		t.Errorf("second block = %v, want to start at (10, 444)", polys[1].Points)
	}
	texts := g.Texts()
	if len(texts) != 4 {
		t.Fatalf("texts = %d, want 4", len(texts))
	}
	if texts[2].Text != "48.3%" || texts[2].At != Pt(250, 469) {
		t.Errorf("first result = %+v, want 48.3%% at (250, 469)", texts[2])
	}
	if texts[3].At != Pt(250, 414) {
		t.Errorf("second result at %v, want (250, 414)", texts[3].At)
	}
	if cb.ResultPositions[0] != Pt(250, 414) {
		t.Error("Layout mutated ResultPositions")
	}
}

func sampleResultPlot() *ResultPlot {
	return &ResultPlot{
		X:               []float64{10, 10, 240, 240},
		Y:               []float64{30, 60, 60, 30},
		YMargin:         10,
		Results:         []float64{50.1, 47.2, 51.0},
		Colors:          []string{"#165016", "#8C2D04", "#165016"},
		NeutralColor:    ColorNeutral,
		YearText:        []string{"2016", "2020", "2024"},
		YearPositions:   []Point{Pt(265, 46), Pt(265, 86), Pt(265, 126)},
		YearTextSize:    14,
		ResultPositions: []Point{Pt(35, 46), Pt(35, 86), Pt(35, 126)},
		ResultTextSize:  14,
	}
}

func TestResultPlotLayout(t *testing.T) {
	g, err := sampleResultPlot().Layout()
	if err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	polys := g.Polygons()
	if len(polys) != 6 {
		t.Fatalf("polygons = %d, want 6", len(polys))
	}
	if got := polys[0].Fill.Hex(); got != "#eeeeee" {
		t.Errorf("first track = %s, want #eeeeee", got)
	}
	fill := polys[1].Points
	if len(fill) != 5 {
		t.Fatalf("fill points = %d, want 5", len(fill))
	}
	if math.Abs(fill[2].X-125.23) > 1e-9 || fill[2].Y != 60 {
		t.Errorf("fill corner = %v, want (125.23, 60)", fill[2])
	}
	if polys[4].Points[0] != Pt(10, 110) {
		t.Errorf("third bar origin = %v, want (10, 110)", polys[4].Points[0])
	}

	lines := g.Lines()
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(lines))
	}
	ref := lines[0]
	if ref.From != Pt(125, 30) || ref.To != Pt(125, 140) {
		t.Errorf("reference line = %v-%v, want (125,30)-(125,140)", ref.From, ref.To)
	}
	if ref.Stroke.Width != 2 || !floatsEqual(ref.Stroke.Dash, []float64{1, 1}, 0) {
		t.Errorf("reference stroke = %+v", ref.Stroke)
	}
	if ref.Color.Hex() != "#696969" {
		t.Errorf("reference color = %s", ref.Color.Hex())
	}

	texts := g.Texts()
	if len(texts) != 6 {
		t.Fatalf("texts = %d, want 6", len(texts))
	}
	if texts[0].Text != "2024" || texts[0].At != Pt(265, 46) {
		t.Errorf("first year = %+v, want 2024 at (265, 46)", texts[0])
	}
	if texts[3].Text != "50.1%" {
		t.Errorf("first result = %q, want 50.1%%", texts[3].Text)
	}
}

func TestResultPlotValidate(t *testing.T) {
	rp := sampleResultPlot()
	rp.Results[1] = 120
	if _, err := rp.Layout(); !errors.Is(err, ErrValidation) {
		t.Errorf("Layout() error = %v, want ErrValidation", err)
	}
	rp = sampleResultPlot()
	rp.YearPositions = rp.YearPositions[:2]
	if _, err := rp.Layout(); !errors.Is(err, ErrValidation) {
		t.Errorf("Layout() error = %v, want ErrValidation", err)
	}
}

func TestResultRectangleLayout(t *testing.T) {
	rr := &ResultRectangle{
		X:               []float64{0, 0, 100, 100},
		Y:               []float64{0, 10, 10, 0},
		Results:         []float64{40, 35},
		Colors:          []string{"#000001", "#000002"},
		ColorOther:      ColorOther,
		ResultPositions: []Point{Pt(20, 5)},
		ResultTextSize:  10,
	}
	g, err := rr.Layout()
	if err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	polys := g.Polygons()
	if len(polys) != 3 {
		t.Fatalf("polygons = %d, want 3", len(polys))
	}
	wantLeft := []float64{0, 40, 75}
	for i, p := range polys {
		if p.Points[0].X != wantLeft[i] {
			t.Errorf("segment %d starts at %v, want %v", i, p.Points[0].X, wantLeft[i])
		}
	}
	if polys[2].Points[2].X != 100 || polys[2].Fill.Hex() != "#696969" {
		t.Errorf("remainder = %+v", polys[2])
	}
	if texts := g.Texts(); len(texts) != 1 || texts[0].Text != "40%" {
		t.Errorf("texts = %+v, want one 40%%", texts)
	}
}

func TestGraphDataLayout(t *testing.T) {
	gd := &GraphData{
		X:             []float64{0, 0, 100, 100},
		Y:             []float64{0, 50, 50, 0},
		XMargin:       10,
		Values:        []float64{50, 100},
		Colors:        []string{"#000001", "#000002"},
		Categories:    []string{"2020", "2024"},
		BaselineColor: "black",
		TextSize:      10,
		LabelOffset:   5,
	}
	g, err := gd.Layout()
	if err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	polys := g.Polygons()
	if len(polys) != 2 {
		t.Fatalf("polygons = %d, want 2", len(polys))
	}
	if got := polys[0].Points[2]; got != Pt(45, 25) {
		t.Errorf("first column top-right = %v, want (45, 25)", got)
	}
	if got := polys[1].Points[0]; got != Pt(55, 0) {
		t.Errorf("second column origin = %v, want (55, 0)", got)
	}
	texts := g.Texts()
	if len(texts) != 4 {
		t.Fatalf("texts = %d, want 4", len(texts))
	}
	if texts[0].Text != "50%" || texts[0].At != Pt(22.5, 30) {
		t.Errorf("value label = %+v", texts[0])
	}
	if texts[1].Text != "2020" || texts[1].At != Pt(22.5, -5) {
		t.Errorf("category label = %+v", texts[1])
	}
	if lines := g.Lines(); len(lines) != 1 || lines[0].From != Pt(0, 0) || lines[0].To != Pt(100, 0) {
		t.Errorf("baseline = %+v", lines)
	}
}

func TestGraphDataValidate(t *testing.T) {
	gd := &GraphData{
		X:       []float64{0, 0, 10, 10},
		Y:       []float64{0, 5, 5, 0},
		XMargin: 20,
		Values:  []float64{10, 20},
		Colors:  []string{"black", "black"},
	}
	var ve *ValidationError
	if err := gd.Validate(); !errors.As(err, &ve) || ve.Field != "x_margin" {
		t.Errorf("Validate() = %v, want x_margin error", err)
	}
}

func TestDrawRendersInOrder(t *testing.T) {
	c := &spyCanvas{}
	if err := Draw(c, sampleCircle(), sampleResultPlot()); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	if len(c.fills) != 12 {
		t.Errorf("fills = %d, want 12", len(c.fills))
	}
	if len(c.strokes) != 1 {
		t.Errorf("strokes = %d, want 1", len(c.strokes))
	}
	if len(c.texts) != 7 || c.texts[0].s != "73.1%" {
		t.Errorf("texts = %+v", c.texts)
	}
}

func TestDrawFailsBeforeDrawing(t *testing.T) {
	bad := sampleCircle()
	bad.Turnout = 150
	c := &spyCanvas{}
	err := Draw(c, sampleCircle(), bad)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Draw() error = %v, want ErrValidation", err)
	}
	if c.calls() != 0 {
		t.Errorf("canvas received %d calls, want 0", c.calls())
	}
}

func TestGeometryCount(t *testing.T) {
	g, err := sampleCircle().Layout()
	if err != nil {
		t.Fatal(err)
	}
	if g.Count(KindSector) != 6 || g.Count(KindText) != 1 || g.Count(KindLine) != 0 {
		t.Errorf("Count() = %d sectors %d texts %d lines",
			g.Count(KindSector), g.Count(KindText), g.Count(KindLine))
	}
	if KindPolygon.String() != "Polygon" || ElementKind(99).String() != "Unknown" {
		t.Error("ElementKind.String() mismatch")
	}
}

func TestComposerNames(t *testing.T) {
	tests := []struct {
		c    Composer
		want string
	}{
		{&ResultCircle{}, "ResultCircle"},
		{&Legend{}, "Legend"},
		{&CandidateBlocks{}, "CandidateBlocks"},
		{&ResultPlot{}, "ResultPlot"},
		{&ResultRectangle{}, "ResultRectangle"},
		{&GraphData{}, "GraphData"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		var ve *ValidationError
		if err := tt.c.Validate(); !errors.As(err, &ve) || ve.Composer != tt.want {
			t.Errorf("%s.Validate() = %v, want a ValidationError naming it", tt.want, err)
		}
	}
}
