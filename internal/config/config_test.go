package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pidash/pidash/internal/errors"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeTemp(t, `
version: 1
title: ORDER SERVICE
theme: cyber
interval: 100ms
panel:
  width: 480
  height: 320
probes:
  api: http://localhost:9000/healthz
  redis: cache.local:6380
  redis_db: 2
  timeout: 3s
  disk_path: /data
  parallel: true
display:
  sink: term
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ORDER SERVICE", cfg.Title)
	assert.Equal(t, "cyber", cfg.Theme)
	assert.Equal(t, 100*time.Millisecond, cfg.Interval)
	assert.Equal(t, 480, cfg.Panel.Width)
	assert.Equal(t, 320, cfg.Panel.Height)
	assert.Equal(t, "http://localhost:9000/healthz", cfg.Probes.API)
	assert.Equal(t, "cache.local:6380", cfg.Probes.Redis)
	assert.Equal(t, 2, cfg.Probes.RedisDB)
	assert.Equal(t, 3*time.Second, cfg.Probes.Timeout)
	assert.Equal(t, "/data", cfg.Probes.DiskPath)
	assert.True(t, cfg.Probes.Parallel)
	assert.Equal(t, SinkTerm, cfg.Display.Sink)
}

func TestLoadMergesDefaults(t *testing.T) {
	path := writeTemp(t, `
version: 1
probes:
  api: http://localhost:9000/healthz
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Unset fields come from DefaultConfig.
	assert.Equal(t, "PRODUCT SEARCH API", cfg.Title)
	assert.Equal(t, "plain", cfg.Theme)
	assert.Equal(t, 320, cfg.Panel.Width)
	assert.Equal(t, "localhost:6379", cfg.Probes.Redis)
	assert.Equal(t, 5*time.Second, cfg.Probes.Timeout)
	assert.Equal(t, SinkPNG, cfg.Display.Sink)
	assert.Equal(t, "dashboard.png", cfg.Display.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeTemp(t, "version: [not closed")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFindExplicitMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFindExplicitExisting(t *testing.T) {
	path := writeTemp(t, "version: 1\n")
	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults pass", func(c *Config) {}, ""},
		{"future version", func(c *Config) { c.Version = 99 }, "newer than supported"},
		{"unknown theme", func(c *Config) { c.Theme = "vaporwave" }, "Unknown theme"},
		{"zero width", func(c *Config) { c.Panel.Width = 0 }, "Invalid panel size"},
		{"negative height", func(c *Config) { c.Panel.Height = -1 }, "Invalid panel size"},
		{"no api", func(c *Config) { c.Probes.API = "" }, "No API endpoint"},
		{"no redis", func(c *Config) { c.Probes.Redis = "" }, "No cache address"},
		{"negative timeout", func(c *Config) { c.Probes.Timeout = -time.Second }, "cannot be negative"},
		{"negative interval", func(c *Config) { c.Interval = -time.Second }, "cannot be negative"},
		{"bad sink", func(c *Config) { c.Display.Sink = "hdmi" }, "Unknown display sink"},
		{"png without path", func(c *Config) { c.Display.Path = "" }, "needs an output path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	cfg := DefaultConfig()
	cfg.Theme = "modern"
	cfg.Title = "SEARCH API"

	require.NoError(t, Write(path, cfg, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# pidash configuration")
	assert.Contains(t, string(data), "timeout: 5s")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "modern", loaded.Theme)
	assert.Equal(t, "SEARCH API", loaded.Title)
	assert.Equal(t, 5*time.Second, loaded.Probes.Timeout)
}

func TestWriteRefusesOverwrite(t *testing.T) {
	path := writeTemp(t, "version: 1\n")
	err := Write(path, DefaultConfig(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, Write(path, DefaultConfig(), true))
}
