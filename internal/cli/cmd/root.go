// Package cmd provides Cobra CLI commands for themestore.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teampw/themestore/internal/cli"
	"github.com/teampw/themestore/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	verbose    bool
	rootCmd    = &cobra.Command{
		Use:   "themestore",
		Short: "Light/dark theme preference manager",
		Long: `themestore resolves, stores and applies a light/dark theme preference.

The theme comes from, in order:
  - an explicit choice made with 'set' or 'toggle'
  - the operating-system color scheme (desktop portal, gsettings, macOS, ...)
  - appearance.default_theme from the config file

An explicit choice sticks until 'themestore clear'. The resolved theme is
published to the display directory (theme, theme.css) for other programs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			if !needsApp(cmd) {
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile:  configFile,
				Interactive: cmd == uiCmd,
				Verbose:     verbose || cmd == watchCmd,
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/themestore/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")
}

func needsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "about":
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return false
		}
	}
	return true
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Version
}
