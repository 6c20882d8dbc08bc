package cmd

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/teampw/themestore/internal/application/port"
	"github.com/teampw/themestore/internal/cli/model"
	"github.com/teampw/themestore/internal/domain/entity"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Interactive light/dark settings control",
	Long: `Open an interactive control to switch themes.

Keys: t toggle, l light, d dark, c follow system, ? help, q quit.
System color scheme changes are shown live.`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(a.Ctx())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := a.Loop.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	program := tea.NewProgram(
		model.NewThemeModel(gctx, a.Controller()),
		tea.WithContext(gctx),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	// Key handlers change the theme from inside Update; Send must not block it.
	unregister := a.Theme.OnChange(func(p entity.ThemePreference) {
		go program.Send(model.ThemeChangedMsg(p))
	})
	defer unregister()

	if a.Surfaces.Terminal != nil {
		offApply := a.Surfaces.Terminal.OnApply(func(port.DisplayState) {
			go program.Send(model.DisplayAppliedMsg{})
		})
		defer offApply()
	}

	cleanup := startSync(gctx, a, nil)
	defer cleanup()

	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})

	return g.Wait()
}
