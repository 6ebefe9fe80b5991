package config

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pidash/pidash/internal/errors"
)

const fileHeader = `# pidash configuration
# Docs: https://github.com/pidash/pidash
`

// fileConfig mirrors Config with durations as human-readable strings, so the
// written YAML says "5s" instead of nanosecond integers.
type fileConfig struct {
	Version  int           `yaml:"version"`
	Title    string        `yaml:"title"`
	Theme    string        `yaml:"theme"`
	Panel    PanelConfig   `yaml:"panel"`
	Probes   fileProbes    `yaml:"probes"`
	Display  DisplayConfig `yaml:"display"`
	Interval string        `yaml:"interval,omitempty"`
}

type fileProbes struct {
	API      string `yaml:"api"`
	Redis    string `yaml:"redis"`
	RedisDB  int    `yaml:"redis_db,omitempty"`
	Timeout  string `yaml:"timeout"`
	DiskPath string `yaml:"disk_path"`
	Parallel bool   `yaml:"parallel,omitempty"`
}

func toFileConfig(cfg *Config) fileConfig {
	fc := fileConfig{
		Version: cfg.Version,
		Title:   cfg.Title,
		Theme:   cfg.Theme,
		Panel:   cfg.Panel,
		Probes: fileProbes{
			API:      cfg.Probes.API,
			Redis:    cfg.Probes.Redis,
			RedisDB:  cfg.Probes.RedisDB,
			Timeout:  cfg.Probes.Timeout.String(),
			DiskPath: cfg.Probes.DiskPath,
			Parallel: cfg.Probes.Parallel,
		},
		Display: cfg.Display,
	}
	if cfg.Interval > 0 {
		fc.Interval = cfg.Interval.String()
	}
	return fc
}

// Write serializes cfg to path as commented YAML. It refuses to overwrite
// an existing file unless force is set.
func Write(path string, cfg *Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrConfig,
				"Config file already exists: "+path,
				"Use --force to overwrite it")
		}
	}

	var buf bytes.Buffer
	buf.WriteString(fileHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toFileConfig(cfg)); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"This is a bug, please report it")
	}
	if err := enc.Close(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"This is a bug, please report it")
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check directory permissions")
	}

	return nil
}
