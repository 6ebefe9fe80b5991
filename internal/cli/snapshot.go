package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pidash/pidash/internal/config"
	"github.com/pidash/pidash/internal/display"
	"github.com/pidash/pidash/internal/logger"
	"github.com/pidash/pidash/internal/ui"
)

var (
	snapshotOutFlag   string
	snapshotThemeFlag string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render a single frame to a PNG file",
	Long: `Sample health and metrics once, compose one frame, and write it as PNG.

Handy for checking layout changes or wiring the output into docs.

Examples:
  pidash snapshot
  pidash snapshot --out /tmp/frame.png --theme cyber`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(snapshotOutFlag, snapshotThemeFlag)
	},
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotOutFlag, "out", "o", "", "output path (default: display.path from config)")
	snapshotCmd.Flags().StringVar(&snapshotThemeFlag, "theme", "", "theme override (plain, modern, cyber)")
	rootCmd.AddCommand(snapshotCmd)
}

func snapshotCommand(out, themeFlag string) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}
	if out == "" {
		out = cfg.Display.Path
	}

	eng, err := buildEngine(cfg, themeFlag, logger.NewEnvLogger("snapshot"))
	if err != nil {
		return err
	}
	defer eng.Close()

	snap := eng.smp.Sample(context.Background())
	frame := eng.comp.Compose(snap, eng.clock.Advance())

	sink := display.NewPNGSink(out)
	if err := sink.Present(frame.Image()); err != nil {
		return err
	}

	ui.Success(os.Stdout, "wrote %s", out)
	ui.Muted(os.Stdout, "  %s · %s · cpu %.0f%% ram %.0f%% disk %.0f%%",
		ui.StatusDot(snap.APIUp, "api"), ui.StatusDot(snap.CacheUp, "cache"),
		snap.CPUPct, snap.MemPct, snap.DiskPct)
	return nil
}
