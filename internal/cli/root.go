// Package cli implements the pidash command-line interface.
//
// Commands:
//
//	pidash run       - Drive the refresh loop against the configured sink
//	pidash preview   - Live terminal preview of the dashboard
//	pidash snapshot  - Render a single frame to PNG
//	pidash themes    - List available themes with color swatches
//	pidash init      - Create a .pidash.yaml configuration
//	pidash version   - Print version information
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pidash/pidash/internal/ui"
)

// Persistent flags shared by all commands.
var (
	configFlag  string
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "pidash",
	Short: "Status dashboard renderer for small pixel panels",
	Long: `pidash renders an animated service status dashboard into a small
pixel framebuffer: API and cache health up top, CPU, RAM, and disk
gauges below, a clock at the bottom.

Frames go to a PNG file for panel daemons to pick up, or straight
to the terminal for development.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColorFlag {
			ui.DisableColors()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default: .pidash.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}

// Execute runs the root command and exits non-zero on error. Structured
// errors already carry their own ✗ formatting and suggestion text.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
