package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/teampw/themestore/internal/cli"
	"github.com/teampw/themestore/internal/domain/entity"
	"github.com/teampw/themestore/internal/infrastructure/config"
	"github.com/teampw/themestore/internal/logging"
	"github.com/teampw/themestore/internal/ui/theme"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the theme in sync with the system until interrupted",
	Long: `Run the theme manager in the foreground. System color scheme changes are
applied unless an explicit choice is set, config file edits re-apply the
palettes, and every change is printed.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(a.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := a.Loop.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	cleanup := startSync(gctx, a, cmd.OutOrStdout())
	defer cleanup()

	g.Go(func() error {
		<-gctx.Done()
		logging.FromContext(gctx).Info().Msg("stopping theme watcher")
		a.Loop.Stop()
		return nil
	})

	return g.Wait()
}

// startSync prints changes, follows the system preference and reloads
// palettes on config edits. The returned function undoes all of it.
func startSync(ctx context.Context, a *cli.App, out io.Writer) func() {
	log := logging.FromContext(ctx)
	var cleanups []func()

	if out != nil {
		printLine := func(p entity.ThemePreference) {
			_, _ = fmt.Fprintf(out, "%s\t%s\n", p.Value, p.Source)
		}
		printLine(a.Theme.Preference())
		cleanups = append(cleanups, a.Theme.OnChange(printLine))
	}

	if a.Config.System.FollowSystem {
		dispose, err := a.Theme.SubscribeToSystemPreference(ctx, a.System.Watcher)
		if err != nil {
			log.Warn().Err(err).Msg("system color scheme changes will not be followed")
		} else {
			cleanups = append(cleanups, dispose)
		}
	}

	if _, err := os.Stat(a.ConfigManager.ConfigFile()); err == nil {
		a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
			a.Loop.Post(func() {
				a.Theme.UpdatePalettes(ctx, theme.PalettesFromConfig(&cfg.Appearance))
			})
		})
		if err := a.ConfigManager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config changes will not be applied")
		}
	}

	a.Theme.StartTransitions(ctx)

	return func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
}
