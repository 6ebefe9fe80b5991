package config

import (
	"time"

	"github.com/pidash/pidash/internal/theme"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .pidash.yaml configuration file.
type Config struct {
	Version int           `yaml:"version" mapstructure:"version"`
	Title   string        `yaml:"title" mapstructure:"title"`
	Theme   string        `yaml:"theme" mapstructure:"theme"`
	Panel   PanelConfig   `yaml:"panel" mapstructure:"panel"`
	Probes  ProbesConfig  `yaml:"probes" mapstructure:"probes"`
	Display DisplayConfig `yaml:"display" mapstructure:"display"`

	// Interval overrides the theme's refresh cadence when non-zero.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// PanelConfig describes the target framebuffer geometry.
type PanelConfig struct {
	Width  int `yaml:"width" mapstructure:"width"`
	Height int `yaml:"height" mapstructure:"height"`
}

// ProbesConfig configures the health probes sampled every tick.
type ProbesConfig struct {
	// API is the HTTP endpoint checked for a 2xx response.
	API string `yaml:"api" mapstructure:"api"`

	// Redis is the cache server address in host:port form.
	Redis string `yaml:"redis" mapstructure:"redis"`

	// RedisDB selects the logical database for the ping connection.
	RedisDB int `yaml:"redis_db" mapstructure:"redis_db"`

	// Timeout bounds each individual probe check.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// DiskPath is the mount point measured for disk usage.
	DiskPath string `yaml:"disk_path" mapstructure:"disk_path"`

	// Parallel runs the API and cache probes concurrently.
	Parallel bool `yaml:"parallel" mapstructure:"parallel"`
}

// DisplayConfig selects where rendered frames go.
type DisplayConfig struct {
	// Sink is "png" or "term".
	Sink string `yaml:"sink" mapstructure:"sink"`

	// Path is the output file for the png sink.
	Path string `yaml:"path" mapstructure:"path"`
}

// SinkPNG and SinkTerm are the supported values for DisplayConfig.Sink.
const (
	SinkPNG  = "png"
	SinkTerm = "term"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Title:   "PRODUCT SEARCH API",
		Theme:   theme.DefaultName,
		Panel: PanelConfig{
			Width:  320,
			Height: 240,
		},
		Probes: ProbesConfig{
			API:      "http://localhost:8000/health",
			Redis:    "localhost:6379",
			Timeout:  5 * time.Second,
			DiskPath: "/",
		},
		Display: DisplayConfig{
			Sink: SinkPNG,
			Path: "dashboard.png",
		},
	}
}
