// Package config describes a tally session: which data to read, how to
// color it and where to write the images.
//
// A session is a YAML file layered over Default. Environment variables
// (optionally from a .env file) override the ambient settings:
//
//	TALLY_LOG_LEVEL   debug, info, warn or error
//	TALLY_LOCALE      BCP 47 tag for number formatting, e.g. "de"
//	TALLY_OUTPUT_DIR  directory receiving all output files
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig is returned when a session cannot be used.
var ErrInvalidConfig = errors.New("config: invalid")

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel  = "TALLY_LOG_LEVEL"
	EnvLocale    = "TALLY_LOCALE"
	EnvOutputDir = "TALLY_OUTPUT_DIR"
)

// Config holds a complete session.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	Locale    string `yaml:"locale"`
	OutputDir string `yaml:"output_dir"`

	Palettes Palettes `yaml:"palettes"`
	Map      Map      `yaml:"map"`
	Legend   Legend   `yaml:"legend"`

	// Combined is the file receiving the map and legend side by side.
	Combined string `yaml:"combined"`
}

// Palettes are the colors shared by the map and the legend.
type Palettes struct {
	Up         []string  `yaml:"up"`
	Down       []string  `yaml:"down"`
	Other      string    `yaml:"other"`
	Thresholds []float64 `yaml:"thresholds"`
}

// Map describes the choropleth map.
type Map struct {
	Data       string `yaml:"data"`
	Boundaries string `yaml:"boundaries"`
	IDProperty string `yaml:"id_property"`
	Projection string `yaml:"projection"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	// ViewBox, when set, replaces the viewBox of the map SVG.
	ViewBox string `yaml:"viewbox"`
	// Cities is an optional table of labeled markers.
	Cities string `yaml:"cities"`
	SVG    string `yaml:"svg"`
	PNG    string `yaml:"png"`
	Minify bool   `yaml:"minify"`
	// Colorscale, when set, receives the continuous colorscale matching
	// the map colors.
	Colorscale string `yaml:"colorscale"`
}

// Legend describes the legend panel.
type Legend struct {
	Candidates  []string  `yaml:"candidates"`
	Results     []float64 `yaml:"results"`
	PastResults []float64 `yaml:"past_results"`
	Turnout     float64   `yaml:"turnout"`
	Parties     []string  `yaml:"parties"`
	BarColors   []string  `yaml:"bar_colors"`
	BarYears    []string  `yaml:"bar_years"`
	Output      string    `yaml:"output"`
}

// Default returns the built-in session settings.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Locale:   "en",
		Palettes: Palettes{
			Up:         []string{"#AFE9AF", "#73D873", "#42CA42", "#30A630", "#217821", "#165016"},
			Down:       []string{"#FEE391", "#FED463", "#FE9929", "#EC7014", "#CC4C02", "#8C2D04"},
			Other:      "#696969",
			Thresholds: []float64{40, 50, 60, 70, 80, 90, 100},
		},
		Map: Map{
			IDProperty: "GEOID",
			Projection: "mercator",
			Width:      1000,
			Height:     500,
			SVG:        "map.svg",
			PNG:        "map.png",
		},
		Legend: Legend{
			Output: "legend.png",
		},
		Combined: "combined.png",
	}
}

// Parse layers YAML data over Default. Unknown keys are errors.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Load reads a session file, applies the environment and validates the
// result. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- path is provided by the user
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if cfg, err = Parse(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv loads .env files into the environment without overriding
// variables that are already set. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides ambient settings from the environment.
func (c *Config) ApplyEnv() {
	c.LogLevel = getEnv(EnvLogLevel, c.LogLevel)
	c.Locale = getEnv(EnvLocale, c.Locale)
	c.OutputDir = getEnv(EnvOutputDir, c.OutputDir)
}

// Validate checks the settings every session needs.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	p := c.Palettes
	if len(p.Up) == 0 || len(p.Up) != len(p.Down) {
		return fmt.Errorf("%w: palettes up and down need the same non-zero length, got %d and %d",
			ErrInvalidConfig, len(p.Up), len(p.Down))
	}
	if len(p.Thresholds) != len(p.Up)+1 {
		return fmt.Errorf("%w: %d thresholds for %d colors, want %d",
			ErrInvalidConfig, len(p.Thresholds), len(p.Up), len(p.Up)+1)
	}
	if c.Map.Width <= 0 || c.Map.Height <= 0 {
		return fmt.Errorf("%w: map size %dx%d", ErrInvalidConfig, c.Map.Width, c.Map.Height)
	}
	return nil
}

// Level returns the log level.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return l, nil
}

// Language returns the locale used for number formatting.
func (c *Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: locale %q: %v", ErrInvalidConfig, c.Locale, err)
	}
	return tag, nil
}

// Output returns name inside the output directory. Absolute names are
// kept as they are.
func (c *Config) Output(name string) string {
	if c.OutputDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.OutputDir, name)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
