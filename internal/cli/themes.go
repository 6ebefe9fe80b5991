package cli

import (
	"fmt"
	"image/color"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pidash/pidash/internal/theme"
	"github.com/pidash/pidash/internal/ui"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes with color swatches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return themesCommand(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func themesCommand(out *os.File) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPALETTE\tCADENCE\tSTYLE")
	for _, name := range theme.Names() {
		th, err := theme.ByName(name)
		if err != nil {
			return err
		}
		palette := ui.Swatch(hexColor(th.Title)) +
			ui.Swatch(hexColor(th.Accent)) +
			ui.Swatch(hexColor(th.Success)) +
			ui.Swatch(hexColor(th.Error))
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, palette, th.Interval, styleLabel(th))
	}
	return w.Flush()
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func styleLabel(th theme.Theme) string {
	switch {
	case th.BoxStyle == theme.BoxCyber:
		return "bracket chrome, rainbow accents"
	case th.BoxStyle == theme.BoxRounded:
		return "rounded chrome, gradient background"
	default:
		return "static, minimal redraw"
	}
}
