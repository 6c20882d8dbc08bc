package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teampw/themestore/internal/cli/styles"
	"github.com/teampw/themestore/internal/application/port"
	"github.com/teampw/themestore/internal/infrastructure/config"
	"github.com/teampw/themestore/internal/infrastructure/xdg"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the config file location, create it with defaults, or print its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with all defaults",
	Long: `Write the default configuration and its JSON schema next to it.

An existing config file is kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the config JSON schema",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

var configDirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "Show the XDG directories in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		entries, err := xdgEntries(xdg.New())
		if err != nil {
			return err
		}
		renderer := styles.NewConfigRenderer(styles.DefaultTheme())
		_, err = fmt.Fprint(cmd.OutOrStdout(), renderer.RenderDirs(entries))
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configInitCmd, configSchemaCmd, configDirsCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
}

// resolveConfigFile returns --config or the XDG location.
func resolveConfigFile() (string, error) {
	if configFile != "" {
		return filepath.Abs(configFile)
	}
	return config.GetConfigFile()
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigFile()
	if err != nil {
		return err
	}

	_, statErr := os.Stat(path)
	renderer := styles.NewConfigRenderer(styles.DefaultTheme())
	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPath(path, statErr == nil))
	return err
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(styles.DefaultTheme())

	path, err := resolveConfigFile()
	if err != nil {
		return err
	}

	created, err := config.InitConfigFile(path, configForce)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}

	schemaPath := ""
	if created {
		schemaPath = config.SchemaPath(path)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderInit(path, schemaPath, created))
	return err
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(append(data, '\n'))
	return err
}

func xdgEntries(paths port.XDGPaths) ([]styles.DirEntry, error) {
	lookups := []struct {
		name string
		fn   func() (string, error)
	}{
		{"config", paths.ConfigDir},
		{"data", paths.DataDir},
		{"state", paths.StateDir},
		{"cache", paths.CacheDir},
		{"logs", paths.LogDir},
	}

	entries := make([]styles.DirEntry, 0, len(lookups))
	for _, l := range lookups {
		dir, err := l.fn()
		if err != nil {
			return nil, fmt.Errorf("resolve %s dir: %w", l.name, err)
		}
		entries = append(entries, styles.DirEntry{Name: l.name, Path: dir})
	}
	return entries, nil
}
