package cli

import (
	"context"
	"image"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/pidash/pidash/internal/config"
	"github.com/pidash/pidash/internal/display"
	"github.com/pidash/pidash/internal/errors"
	"github.com/pidash/pidash/internal/logger"
	"github.com/pidash/pidash/internal/loop"
	"github.com/pidash/pidash/internal/preview"
)

var previewThemeFlag string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Live terminal preview of the dashboard",
	Long: `Render the dashboard into the terminal instead of a panel, refreshing
at the theme's cadence. Useful for picking a theme or checking probe
wiring without hardware attached.

Keyboard shortcuts:
  q / Esc / Ctrl+C  Quit

Examples:
  pidash preview
  pidash preview --theme modern`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return previewCommand(previewThemeFlag)
	},
}

func init() {
	previewCmd.Flags().StringVar(&previewThemeFlag, "theme", "", "theme override (plain, modern, cyber)")
	rootCmd.AddCommand(previewCmd)
}

func previewCommand(themeFlag string) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}

	eng, err := buildEngine(cfg, themeFlag, logger.Noop())
	if err != nil {
		return err
	}
	defer eng.Close()

	renderer := display.NewTermSink(nil, termenv.ColorProfile(), termCols(cfg.Panel.Width))
	frames := make(chan string, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The sink renders each frame to ANSI and hands it to the TUI. A slow
	// terminal drops frames rather than stalling the loop.
	sink := display.Func(func(frame *image.RGBA) error {
		select {
		case frames <- renderer.Render(frame):
		default:
		}
		return nil
	})

	l := loop.New(eng.clock, eng.smp, eng.comp, sink, eng.interval)
	go func() {
		defer close(frames)
		_ = l.Run(ctx)
	}()

	model := preview.NewModel(frames, eng.th.Name, cancel)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrDisplay,
			"Preview terminated unexpectedly",
			"Check the terminal supports raw mode")
	}
	return nil
}
