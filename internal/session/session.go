// Package session runs the standard tally session: a choropleth map, the
// legend panel and both images combined side by side.
package session

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v2"

	"github.com/gogpu/tally"
	"github.com/gogpu/tally/config"
	"github.com/gogpu/tally/dataset"
	"github.com/gogpu/tally/geo"
	"github.com/gogpu/tally/imaging"
	"github.com/gogpu/tally/recording"
	_ "github.com/gogpu/tally/recording/backends/raster"
	"github.com/gogpu/tally/recording/backends/svg"
)

// Session renders the images described by a config.
type Session struct {
	cfg       *config.Config
	formatter *tally.Formatter
}

// New creates a session. The config must be valid.
func New(cfg *config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tag, err := cfg.Language()
	if err != nil {
		return nil, err
	}
	return &Session{
		cfg:       cfg,
		formatter: tally.NewFormatter(tally.WithLocale(tag)),
	}, nil
}

// Config returns the session config.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// Run renders the map and the legend concurrently, then combines them.
func (s *Session) Run() error {
	var (
		g                 errgroup.Group
		mapPNG, legendPNG string
	)
	g.Go(func() (err error) {
		if mapPNG, err = s.RenderMap(); err != nil {
			return fmt.Errorf("map: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if legendPNG, err = s.RenderLegend(); err != nil {
			return fmt.Errorf("legend: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	dst := s.cfg.Output(s.cfg.Combined)
	if err := imaging.CombineFiles(dst, color.White, mapPNG, legendPNG); err != nil {
		return fmt.Errorf("combine: %w", err)
	}
	return nil
}

// DrawLegend draws the legend panel onto c.
func (s *Session) DrawLegend(c tally.Canvas) error {
	l := s.cfg.Legend
	if len(l.BarColors) == 0 {
		l.BarColors = DefaultBarColors(s.cfg.Palettes)
	}
	composers, err := LegendComposers(l, s.cfg.Palettes, s.formatter)
	if err != nil {
		return err
	}
	return tally.Draw(c, composers...)
}

// RenderLegend writes the legend panel as PNG and returns its path.
func (s *Session) RenderLegend() (string, error) {
	dst := s.cfg.Output(s.cfg.Legend.Output)
	if err := s.WriteLegend("", dst); err != nil {
		return "", err
	}
	return dst, nil
}

// WriteLegend renders the legend panel with a registered backend and
// saves it to dst. An empty backend is chosen by the extension of dst.
func (s *Session) WriteLegend(backend, dst string) error {
	if backend == "" {
		name, err := recording.BackendFor(dst)
		if err != nil {
			return err
		}
		backend = name
	}
	b, err := recording.NewBackend(backend)
	if err != nil {
		return err
	}
	fb, ok := b.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("session: backend %q cannot write files", backend)
	}
	rec := recording.NewRecorder(recording.NewViewport(LegendWidth, LegendHeight))
	if err := s.DrawLegend(rec); err != nil {
		return err
	}
	if err := rec.FinishRecording().Playback(b); err != nil {
		return err
	}
	if err := ensureDir(dst); err != nil {
		return err
	}
	return fb.SaveToFile(dst)
}

// Colorize loads the results and classifies every region.
func (s *Session) Colorize() ([]tally.RegionColor, error) {
	regions, err := dataset.Load(s.cfg.Map.Data)
	if err != nil {
		return nil, err
	}
	p := s.cfg.Palettes
	m, err := tally.NewChoroplethMap(p.Thresholds, p.Up, p.Down)
	if err != nil {
		return nil, err
	}
	return m.Colorize(regions)
}

// DrawMap draws the choropleth map. It returns the recording ready for
// playback and the colorscale of the region colors.
func (s *Session) DrawMap() (*recording.Recording, []tally.ColorscaleEntry, error) {
	mc := s.cfg.Map
	colored, err := s.Colorize()
	if err != nil {
		return nil, nil, err
	}
	scale, err := tally.Colorscale(colored)
	if err != nil {
		return nil, nil, err
	}
	tally.Logger().Debug("session: colorscale", "regions", len(colored), "stops", len(scale))

	fc, err := geo.Load(mc.Boundaries)
	if err != nil {
		return nil, nil, err
	}
	if err := geo.AssignIDs(fc, mc.IDProperty); err != nil {
		return nil, nil, err
	}
	regions := make([]tally.Region, len(colored))
	ids := make([]string, len(colored))
	for i, rc := range colored {
		regions[i] = rc.Region
		ids[i] = rc.ID
	}
	if err := tally.JoinCheck(regions, geo.IDs(fc)); err != nil {
		return nil, nil, err
	}

	proj, err := geo.ParseProjection(mc.Projection)
	if err != nil {
		return nil, nil, err
	}
	projected, err := geo.Project(fc, proj)
	if err != nil {
		return nil, nil, err
	}
	bounds, ok := geo.Bounds(projected, ids)
	if !ok {
		return nil, nil, fmt.Errorf("%w: no region has a geometry", geo.ErrEmptyBounds)
	}
	vp, err := geo.Fit(bounds, mc.Width, mc.Height)
	if err != nil {
		return nil, nil, err
	}

	rec := recording.NewRecorder(vp)
	if _, err := geo.DrawMap(rec, projected, geo.Fills(colored), geo.DefaultStyle()); err != nil {
		return nil, nil, err
	}
	if mc.Cities != "" {
		cities, err := dataset.LoadCities(mc.Cities)
		if err != nil {
			return nil, nil, err
		}
		if err := geo.DrawCities(rec, cities, proj, vp, geo.DefaultMarkerStyle()); err != nil {
			return nil, nil, err
		}
	}
	return rec.FinishRecording(), scale, nil
}

// RenderMap writes the map SVG, applies the viewBox and minification
// settings, converts it to PNG and returns the PNG path.
func (s *Session) RenderMap() (string, error) {
	mc := s.cfg.Map
	rec, scale, err := s.DrawMap()
	if err != nil {
		return "", err
	}
	if mc.Colorscale != "" {
		if err := WriteColorscale(s.cfg.Output(mc.Colorscale), scale); err != nil {
			return "", err
		}
	}
	backend := svg.NewBackend()
	if err := rec.Playback(backend); err != nil {
		return "", err
	}
	svgPath := s.cfg.Output(mc.SVG)
	if err := ensureDir(svgPath); err != nil {
		return "", err
	}
	if err := backend.SaveToFile(svgPath); err != nil {
		return "", err
	}
	if mc.ViewBox != "" {
		if err := imaging.EditViewBox(svgPath, mc.ViewBox); err != nil {
			return "", err
		}
	}
	if mc.Minify {
		if err := imaging.MinifyFile(svgPath); err != nil {
			return "", err
		}
	}
	pngPath := s.cfg.Output(mc.PNG)
	if err := imaging.ConvertSVG(svgPath, pngPath); err != nil {
		return "", err
	}
	tally.Logger().Info("session: map complete", "svg", svgPath, "png", pngPath)
	return pngPath, nil
}

// ColorscaleStop is one stop of a colorscale file.
type ColorscaleStop struct {
	Value float64 `yaml:"value"`
	Color string  `yaml:"color"`
}

// WriteColorscale saves scale to dst as a YAML list of stops.
func WriteColorscale(dst string, scale []tally.ColorscaleEntry) error {
	stops := make([]ColorscaleStop, len(scale))
	for i, e := range scale {
		stops[i] = ColorscaleStop{Value: e.Value, Color: e.Color}
	}
	data, err := yaml.Marshal(stops)
	if err != nil {
		return fmt.Errorf("session: colorscale: %w", err)
	}
	if err := ensureDir(dst); err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, 0o600); err != nil {
		return fmt.Errorf("session: colorscale: %w", err)
	}
	tally.Logger().Info("session: colorscale written", "path", dst, "stops", len(stops))
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}
