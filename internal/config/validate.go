package config

import (
	"fmt"
	"strings"

	"github.com/pidash/pidash/internal/errors"
	"github.com/pidash/pidash/internal/theme"
)

// Validate checks a Config for problems that would break the refresh loop
// at runtime. It returns the first problem found as a structured error.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Config version %d is newer than supported version %d", cfg.Version, CurrentConfigVersion),
			"Upgrade pidash, or set 'version: 1' in the config file")
	}

	if _, err := theme.ByName(cfg.Theme); err != nil {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown theme %q", cfg.Theme),
			"Available themes: "+strings.Join(theme.Names(), ", "))
	}

	if cfg.Panel.Width <= 0 || cfg.Panel.Height <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid panel size %dx%d", cfg.Panel.Width, cfg.Panel.Height),
			"Both panel.width and panel.height must be positive")
	}

	if cfg.Probes.API == "" {
		return errors.New(errors.ErrConfig,
			"No API endpoint configured",
			"Set probes.api to the health URL, e.g. http://localhost:8000/health")
	}

	if cfg.Probes.Redis == "" {
		return errors.New(errors.ErrConfig,
			"No cache address configured",
			"Set probes.redis to host:port, e.g. localhost:6379")
	}

	if cfg.Probes.Timeout < 0 {
		return errors.New(errors.ErrConfig,
			"Probe timeout cannot be negative",
			"Use a duration like '5s', or omit probes.timeout for the default")
	}

	if cfg.Interval < 0 {
		return errors.New(errors.ErrConfig,
			"Refresh interval cannot be negative",
			"Use a duration like '50ms', or omit interval to use the theme's cadence")
	}

	switch cfg.Display.Sink {
	case SinkPNG:
		if cfg.Display.Path == "" {
			return errors.New(errors.ErrConfig,
				"The png sink needs an output path",
				"Set display.path, e.g. dashboard.png")
		}
	case SinkTerm:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown display sink %q", cfg.Display.Sink),
			"Supported sinks: png, term")
	}

	return nil
}
