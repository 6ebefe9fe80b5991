package cli

import (
	"os"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/pidash/pidash/internal/anim"
	"github.com/pidash/pidash/internal/canvas"
	"github.com/pidash/pidash/internal/compose"
	"github.com/pidash/pidash/internal/config"
	"github.com/pidash/pidash/internal/display"
	"github.com/pidash/pidash/internal/errors"
	"github.com/pidash/pidash/internal/logger"
	"github.com/pidash/pidash/internal/metrics"
	"github.com/pidash/pidash/internal/probe"
	"github.com/pidash/pidash/internal/sampler"
	"github.com/pidash/pidash/internal/theme"
)

// engine bundles everything a rendering command needs: the animation clock,
// the health sampler, and the frame composer, all built from one Config.
type engine struct {
	clock    *anim.Clock
	smp      *sampler.Sampler
	comp     *compose.Composer
	th       theme.Theme
	interval time.Duration

	cache *probe.Cache
}

// buildEngine assembles the render pipeline. themeOverride, when non-empty,
// wins over the config file's theme.
func buildEngine(cfg *config.Config, themeOverride string, log logger.Logger) (*engine, error) {
	name := cfg.Theme
	if themeOverride != "" {
		name = themeOverride
	}
	th, err := theme.ByName(name)
	if err != nil {
		return nil, err
	}

	provider, err := metrics.NewHost(cfg.Probes.DiskPath)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Probes.Timeout
	if timeout <= 0 {
		timeout = probe.DefaultTimeout
	}
	api := probe.NewHTTP("api", cfg.Probes.API, timeout)
	cache := probe.NewCache("cache", cfg.Probes.Redis, cfg.Probes.RedisDB, timeout)

	opts := []sampler.Option{sampler.WithLogger(log)}
	if cfg.Probes.Parallel {
		opts = append(opts, sampler.WithParallelProbes())
	}
	smp := sampler.New(api, cache, provider, opts...)

	cv := canvas.New(cfg.Panel.Width, cfg.Panel.Height)
	comp := compose.New(cv, th, compose.WithTitle(cfg.Title))

	interval := th.Interval
	if cfg.Interval > 0 {
		interval = cfg.Interval
	}

	return &engine{
		clock:    anim.NewClock(cfg.Panel.Width),
		smp:      smp,
		comp:     comp,
		th:       th,
		interval: interval,
		cache:    cache,
	}, nil
}

// Close releases probe connections.
func (e *engine) Close() error {
	return e.cache.Close()
}

// newSink builds the configured display sink for the run command.
func newSink(cfg *config.Config) (display.Sink, error) {
	switch cfg.Display.Sink {
	case config.SinkPNG:
		return display.NewPNGSink(cfg.Display.Path), nil
	case config.SinkTerm:
		return display.NewTermSink(os.Stdout, termenv.ColorProfile(), termCols(cfg.Panel.Width)), nil
	default:
		return nil, errors.New(errors.ErrConfig,
			"Unknown display sink: "+cfg.Display.Sink,
			"Supported sinks: png, term")
	}
}

// termCols returns the usable terminal width, capped at the panel width
// since upscaling pixel art gains nothing.
func termCols(panelWidth int) int {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 && cols < panelWidth {
			return cols
		}
	}
	return panelWidth
}
