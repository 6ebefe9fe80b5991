package cli

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/pidash/pidash/internal/config"
	"github.com/pidash/pidash/internal/errors"
	"github.com/pidash/pidash/internal/theme"
	"github.com/pidash/pidash/internal/ui"
)

var (
	initForceFlag          bool
	initNonInteractiveFlag bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .pidash.yaml configuration",
	Long: `Initialize a new pidash configuration file in the current directory.

Walks through theme, probe targets, and output sink with interactive
prompts. Use --non-interactive to write the defaults straight away.

Examples:
  pidash init
  pidash init --non-interactive
  pidash init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForceFlag, initNonInteractiveFlag)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForceFlag, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractiveFlag, "non-interactive", false, "skip prompts, use defaults")
	rootCmd.AddCommand(initCmd)
}

func initCommand(force, nonInteractive bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)
	cfg := config.DefaultConfig()

	if _, err := os.Stat(configPath); err == nil && !force {
		if nonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
		force = true
	}

	if !nonInteractive {
		themeOptions := make([]huh.Option[string], 0, len(theme.Names()))
		for _, name := range theme.Names() {
			themeOptions = append(themeOptions, huh.NewOption(name, name))
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Dashboard title").
					Description("Shown in the header, e.g. the service name").
					Placeholder(cfg.Title).
					Value(&cfg.Title),
				huh.NewSelect[string]().
					Title("Theme").
					Options(themeOptions...).
					Value(&cfg.Theme),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("API health endpoint").
					Description("HTTP URL checked for a 2xx response every tick").
					Placeholder(cfg.Probes.API).
					Value(&cfg.Probes.API).
					Validate(func(s string) error {
						u, err := url.Parse(strings.TrimSpace(s))
						if err != nil || u.Scheme == "" || u.Host == "" {
							return fmt.Errorf("enter a full URL like http://localhost:8000/health")
						}
						return nil
					}),
				huh.NewInput().
					Title("Redis address").
					Description("host:port of the cache to ping").
					Placeholder(cfg.Probes.Redis).
					Value(&cfg.Probes.Redis),
			),
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Display sink").
					Description("Where rendered frames go").
					Options(
						huh.NewOption("PNG file (panel daemon picks it up)", config.SinkPNG),
						huh.NewOption("Terminal (development)", config.SinkTerm),
					).
					Value(&cfg.Display.Sink),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --non-interactive to use defaults")
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.Write(configPath, cfg, force); err != nil {
		return err
	}

	ui.Success(os.Stdout, "created %s", configPath)
	ui.Muted(os.Stdout, "  run 'pidash preview' to see the %s theme live", cfg.Theme)
	return nil
}
