package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teampw/themestore/internal/cli"
	"github.com/teampw/themestore/internal/cli/styles"
	"github.com/teampw/themestore/internal/domain/entity"
)

var (
	outputJSON bool
	outputYAML bool
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the resolved theme",
	Long: `Print the resolved theme ("light" or "dark").

With --json or --yaml, also print where the value came from.`,
	Args: cobra.NoArgs,
	RunE: runGet,
}

var setCmd = &cobra.Command{
	Use:       "set light|dark",
	Short:     "Choose a theme explicitly",
	Long:      `Persist an explicit theme choice. It overrides the system color scheme until 'themestore clear'.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(entity.ThemeLight), string(entity.ThemeDark)},
	RunE:      runSet,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch to the other theme",
	Long:  `Switch between light and dark. The result is stored as an explicit choice.`,
	Args:  cobra.NoArgs,
	RunE:  runToggle,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the explicit choice and follow the system again",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(getCmd, setCmd, toggleCmd, clearCmd)
	addOutputFlags(getCmd)
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&outputJSON, "json", false, "print as JSON")
	cmd.Flags().BoolVar(&outputYAML, "yaml", false, "print as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

// themeOutput is the machine-readable form of the resolved theme.
type themeOutput struct {
	Theme    entity.Theme       `json:"theme" yaml:"theme"`
	Source   entity.ThemeSource `json:"source" yaml:"source"`
	Detector string             `json:"detector,omitempty" yaml:"detector,omitempty"`
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}

func runGet(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	pref := a.Theme.Preference()
	out := themeOutput{Theme: pref.Value, Source: pref.Source, Detector: pref.Detector}

	if handled, err := writeStructured(cmd.OutOrStdout(), out); handled {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), pref.Value)
	return err
}

// writeStructured prints v as JSON or YAML when requested.
func writeStructured(w io.Writer, v any) (bool, error) {
	switch {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	value, ok := entity.ParseTheme(args[0])
	if !ok {
		return fmt.Errorf("%w: %q (expected light or dark)", entity.ErrInvalidTheme, args[0])
	}

	a, err := requireApp()
	if err != nil {
		return err
	}

	a.Theme.SetTheme(a.Ctx(), value)
	return printTheme(cmd.OutOrStdout(), a)
}

func runToggle(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	a.Theme.ToggleTheme(a.Ctx())
	return printTheme(cmd.OutOrStdout(), a)
}

func runClear(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	a.Theme.ClearTheme(a.Ctx())
	return printTheme(cmd.OutOrStdout(), a)
}

func printTheme(w io.Writer, a *cli.App) error {
	a.RefreshStyles()
	pref := a.Theme.Preference()
	_, err := fmt.Fprintln(w, "  "+styles.NewStatusRenderer(a.Styles).RenderTheme(pref.Value, pref.Source, pref.Detector))
	return err
}
