package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pidash/pidash/internal/config"
	"github.com/pidash/pidash/internal/errors"
	"github.com/pidash/pidash/internal/logger"
	"github.com/pidash/pidash/internal/loop"
	"github.com/pidash/pidash/internal/ui"
)

var (
	runThemeFlag    string
	runIntervalFlag string
	runOnceFlag     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive the refresh loop against the configured sink",
	Long: `Start the refresh loop: every tick samples service health and system
metrics, composes a frame, and presents it to the configured sink.

A failed tick never stops the loop. The frame is retried after a
one second fallback delay.

Examples:
  pidash run
  pidash run --theme cyber
  pidash run --interval 100ms`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(runThemeFlag, runIntervalFlag, runOnceFlag)
	},
}

func init() {
	runCmd.Flags().StringVar(&runThemeFlag, "theme", "", "theme override (plain, modern, cyber)")
	runCmd.Flags().StringVar(&runIntervalFlag, "interval", "", "refresh interval override (e.g., 50ms, 1s)")
	runCmd.Flags().BoolVar(&runOnceFlag, "once", false, "render a single frame and exit")
	rootCmd.AddCommand(runCmd)
}

func runCommand(themeFlag, intervalFlag string, once bool) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}
	if intervalFlag != "" {
		parsed, err := time.ParseDuration(intervalFlag)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Invalid interval: "+intervalFlag,
				"Use a duration like 50ms, 1s, or 2s")
		}
		cfg.Interval = parsed
	}

	log := logger.NewEnvLogger("loop")
	eng, err := buildEngine(cfg, themeFlag, log)
	if err != nil {
		return err
	}
	defer eng.Close()

	sink, err := newSink(cfg)
	if err != nil {
		return err
	}
	defer sink.Close()

	if once {
		snap := eng.smp.Sample(context.Background())
		frame := eng.comp.Compose(snap, eng.clock.Advance())
		if err := sink.Present(frame.Image()); err != nil {
			return err
		}
		ui.Success(os.Stdout, "rendered one frame")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Display.Sink == config.SinkPNG {
		ui.Info(os.Stdout, "writing frames to %s every %s (Ctrl+C to stop)", cfg.Display.Path, eng.interval)
	}

	l := loop.New(eng.clock, eng.smp, eng.comp, sink, eng.interval, loop.WithLogger(log))
	if err := l.Run(ctx); err != context.Canceled {
		return err
	}
	return nil
}
