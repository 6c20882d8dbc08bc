package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teampw/themestore/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		renderer := styles.NewAboutRenderer(styles.DefaultTheme())
		_, err := fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(buildInfo))
		return err
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
