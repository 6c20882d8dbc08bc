package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setXDG(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	return base
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "light", mgr.viper.GetString("appearance.default_theme"))
	assert.Equal(t, "sqlite", mgr.viper.GetString("storage.backend"))
	assert.Equal(t, 5000, mgr.viper.GetInt("system.poll_interval_ms"))
}

func TestManager_LoadWithoutFileUsesDefaults(t *testing.T) {
	base := setXDG(t)

	mgr, err := NewManagerForFile(filepath.Join(base, "missing.toml"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "light", cfg.Appearance.DefaultTheme)
	assert.Equal(t, filepath.Join(base, "data", "themestore", "themestore.sqlite"), cfg.Storage.Path)
	assert.Equal(t, filepath.Join(base, "state", "themestore"), cfg.Display.Dir)
	assert.Equal(t, filepath.Join(base, "state", "themestore", "logs"), cfg.Logging.LogDir)
}

func TestManager_LoadFile(t *testing.T) {
	base := setXDG(t)
	configFile := filepath.Join(base, "config.toml")
	content := `
[appearance]
default_theme = "DARK"

[storage]
backend = "file"

[system]
detectors = ["Portal", " gsettings ", "portal"]
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

	mgr, err := NewManagerForFile(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "dark", cfg.Appearance.DefaultTheme)
	assert.Equal(t, StorageFile, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(base, "data", "themestore", "preferences.toml"), cfg.Storage.Path)
	assert.Equal(t, []string{"portal", "gsettings"}, cfg.System.Detectors)
	assert.Equal(t, configFile, mgr.ConfigFile())
}

func TestManager_EnvOverridesFile(t *testing.T) {
	base := setXDG(t)
	t.Setenv("THEMESTORE_STORAGE_BACKEND", "memory")
	t.Setenv("THEMESTORE_LOG_LEVEL", "debug")

	mgr, err := NewManagerForFile(filepath.Join(base, "config.toml"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, StorageMemory, cfg.Storage.Backend)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_LoadRejectsInvalidFile(t *testing.T) {
	base := setXDG(t)
	configFile := filepath.Join(base, "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[appearance]\ndefault_theme = \"purple\"\n"), 0o644))

	mgr, err := NewManagerForFile(configFile)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appearance.default_theme")
}

func TestManager_SaveRoundTrip(t *testing.T) {
	base := setXDG(t)
	configFile := filepath.Join(base, "nested", "config.toml")

	mgr, err := NewManagerForFile(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Appearance.DefaultTheme = "dark"
	cfg.System.Detectors = []string{"override"}
	require.NoError(t, mgr.Save(cfg))

	reloaded, err := NewManagerForFile(configFile)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, "dark", reloaded.Get().Appearance.DefaultTheme)
	assert.Equal(t, []string{"override"}, reloaded.Get().System.Detectors)
}

func TestManager_GetReturnsCopy(t *testing.T) {
	base := setXDG(t)
	mgr, err := NewManagerForFile(filepath.Join(base, "config.toml"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Display.Backends[0] = "terminal"

	assert.Equal(t, []string{DisplayFile}, mgr.Get().Display.Backends)
}
