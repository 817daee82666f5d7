// Package config loads drawdata settings from an optional TOML file and
// DRAWDATA_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"drawdata/internal/dataset"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "DRAWDATA_"

// Config holds the drawing defaults and logging setup.
type Config struct {
	// Sigma is the initial cluster standard deviation, in canvas units.
	Sigma float64 `toml:"sigma"`
	// Count is the initial number of points per cluster.
	Count int `toml:"count"`
	// MarkerSize is passed to the renderer for every marker.
	MarkerSize float64 `toml:"marker_size"`
	// Label is the initial label name.
	Label string `toml:"label"`
	// Dir is where the file sidebar starts. Empty means the working directory.
	Dir string `toml:"dir"`
	// Seed fixes the sampler seed when non-zero.
	Seed uint64 `toml:"seed"`

	Log LogConfig `toml:"log"`
}

// LogConfig selects where logs go. With no File, logging is disabled since
// the terminal is owned by the UI.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default returns the built-in drawing defaults.
func Default() Config {
	return Config{
		Sigma:      10,
		Count:      5,
		MarkerSize: dataset.DefaultMarkerSize,
		Label:      dataset.Blue.String(),
		Log:        LogConfig{Level: "info"},
	}
}

// DefaultPath returns $DRAWDATA_CONFIG, or config.toml under the user config
// directory.
func DefaultPath() string {
	if p, ok := os.LookupEnv(EnvPrefix + "CONFIG"); ok {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "drawdata", "config.toml")
}

// Load reads defaults, then the TOML file at path if it exists, then the
// environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	float := func(name string, dst *float64) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*dst = f
		return nil
	}
	if err := float("SIGMA", &c.Sigma); err != nil {
		return err
	}
	if err := float("MARKER_SIZE", &c.MarkerSize); err != nil {
		return err
	}
	if v, ok := lookup(EnvPrefix + "COUNT"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%sCOUNT: %w", EnvPrefix, err)
		}
		c.Count = n
	}
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Seed = n
	}
	str("LABEL", &c.Label)
	str("DIR", &c.Dir)
	str("LOG_FILE", &c.Log.File)
	str("LOG_LEVEL", &c.Log.Level)
	return nil
}

// Validate checks names and ranges. Sigma and Count may exceed the cluster
// limits; the store clamps them.
func (c Config) Validate() error {
	if _, err := dataset.ParseLabel(c.Label); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if math.IsNaN(c.Sigma) || math.IsInf(c.Sigma, 0) {
		return fmt.Errorf("config: sigma must be finite, got %v", c.Sigma)
	}
	if c.Sigma < 0 {
		return fmt.Errorf("config: sigma must not be negative, got %v", c.Sigma)
	}
	if c.Count < 0 {
		return fmt.Errorf("config: count must not be negative, got %d", c.Count)
	}
	if c.MarkerSize <= 0 {
		return fmt.Errorf("config: marker_size must be positive, got %v", c.MarkerSize)
	}
	return nil
}

// InitialLabel returns the parsed Label field.
func (c Config) InitialLabel() dataset.Label {
	l, err := dataset.ParseLabel(c.Label)
	if err != nil {
		return dataset.Blue
	}
	return l
}

// LogLevel parses Log.Level; empty means info.
func (c Config) LogLevel() (zerolog.Level, error) {
	if c.Log.Level == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(c.Log.Level))
}
