package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teampw/themestore/internal/application/usecase"
	"github.com/teampw/themestore/internal/cli/styles"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the resolved theme and every input behind it",
	Long: `Show the resolved theme, its source, the persisted value and the answer of
every enabled system color scheme detector.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	addOutputFlags(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	input := usecase.DescribeThemeInput{Backend: a.Store.Backend}
	if a.Config.System.FollowSystem && a.System != nil {
		input.Watcher = strings.Join(a.System.Watcher.Candidates(), " > ")
	}

	out, err := a.DescribeThemeUC.Execute(a.Ctx(), input)
	if err != nil {
		return err
	}

	if handled, err := writeStructured(cmd.OutOrStdout(), out); handled {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.NewStatusRenderer(a.Styles).Render(out))
	return err
}
