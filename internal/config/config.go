// Package config loads the cplane CLI settings from a TOML or YAML file.
//
// Keys missing from the file keep their Default() values, so a file only
// has to name what it changes:
//
//	[gamma]
//	method = "series"
//	series_terms = 200000
//
//	[grid]
//	workers = 4
//	size = 41
//
//	[output]
//	format = "json"
//
//	[log]
//	level = "debug"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cplane/cplx"
	"github.com/katalvlaran/cplane/gamma"
	"github.com/katalvlaran/cplane/grid"
)

var (
	// ErrInvalidConfig indicates a setting outside its allowed range.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnsupportedFormat indicates a file extension other than
	// .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)

// OutputText renders results with Number.String.
const OutputText = "text"

// Format is a configuration file syntax.
type Format int

const (
	// FormatTOML is the default syntax.
	FormatTOML Format = iota

	// FormatYAML covers .yaml and .yml files.
	FormatYAML
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config is the full CLI configuration.
type Config struct {
	Gamma  GammaConfig  `toml:"gamma" yaml:"gamma"`
	Grid   GridConfig   `toml:"grid" yaml:"grid"`
	Output OutputConfig `toml:"output" yaml:"output"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// GammaConfig selects the Gamma approximation.
type GammaConfig struct {
	Method      string `toml:"method" yaml:"method"`
	SeriesTerms int    `toml:"series_terms" yaml:"series_terms"`
}

// GridConfig controls lattice sampling. Workers = 0 means GOMAXPROCS.
type GridConfig struct {
	Workers int `toml:"workers" yaml:"workers"`
	Size    int `toml:"size" yaml:"size"`
}

// OutputConfig selects how results are printed: "text", "json", "yaml" or "toml".
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
}

// LogConfig sets the logrus level name.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Gamma: GammaConfig{
			Method:      gamma.DefaultMethod.String(),
			SeriesTerms: gamma.DefaultSeriesTerms,
		},
		Grid: GridConfig{
			Workers: 0,
			Size:    grid.DefaultSize,
		},
		Output: OutputConfig{Format: OutputText},
		Log:    LogConfig{Level: logrus.InfoLevel.String()},
	}
}

// DetectFormat maps a file extension to its Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Load reads path, overlays it on Default() and validates the result.
func Load(path string) (*Config, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data, format)
}

// Parse decodes data in the given syntax over Default() and validates it.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("config: parse toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every setting and reports the first violation wrapped in
// ErrInvalidConfig.
func (c *Config) Validate() error {
	if _, err := gamma.ParseMethod(c.Gamma.Method); err != nil {
		return fmt.Errorf("%w: gamma.method: %v", ErrInvalidConfig, err)
	}
	if c.Gamma.SeriesTerms < 1 {
		return fmt.Errorf("%w: gamma.series_terms must be >= 1, got %d", ErrInvalidConfig, c.Gamma.SeriesTerms)
	}
	if c.Grid.Workers < 0 {
		return fmt.Errorf("%w: grid.workers must be >= 0, got %d", ErrInvalidConfig, c.Grid.Workers)
	}
	if c.Grid.Size < 1 {
		return fmt.Errorf("%w: grid.size must be >= 1, got %d", ErrInvalidConfig, c.Grid.Size)
	}
	if !strings.EqualFold(c.Output.Format, OutputText) {
		if _, err := cplx.ParseEncoding(c.Output.Format); err != nil {
			return fmt.Errorf("%w: output.format: %v", ErrInvalidConfig, err)
		}
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}

	return nil
}

// GammaOptions converts the gamma section into gamma options.
// The receiver must be valid.
func (c *Config) GammaOptions() []gamma.Option {
	m, _ := gamma.ParseMethod(c.Gamma.Method)

	return []gamma.Option{gamma.WithMethod(m), gamma.WithTerms(c.Gamma.SeriesTerms)}
}

// GridOptions converts the grid section into grid options, logging to l.
// The receiver must be valid.
func (c *Config) GridOptions(l logrus.FieldLogger) []grid.Option {
	opts := []grid.Option{grid.WithSize(c.Grid.Size, c.Grid.Size), grid.WithLogger(l)}
	if c.Grid.Workers > 0 {
		opts = append(opts, grid.WithWorkers(c.Grid.Workers))
	}

	return opts
}

// Level returns the parsed log level. The receiver must be valid.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}
