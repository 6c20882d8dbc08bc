// Package config provides configuration management for themestore with Viper integration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
	configFile     string
}

// NewManager creates a configuration manager reading $XDG_CONFIG_HOME/themestore/config.toml.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForFile(configFile)
}

// NewManagerForFile creates a configuration manager for an explicit config file path.
// The file does not need to exist; defaults are used until it does.
func NewManagerForFile(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// Environment variables override file values (THEMESTORE_STORAGE_BACKEND, ...)
	v.SetEnvPrefix("THEMESTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names shared with logging.NewFromEnv
	if err := v.BindEnv("logging.level", "THEMESTORE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind THEMESTORE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "THEMESTORE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind THEMESTORE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		callbacks:  make([]func(*Config), 0),
		configFile: configFile,
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is not an error.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensurePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	return config, nil
}

// ensurePaths fills empty path settings from the XDG directories.
func ensurePaths(config *Config) error {
	if config.Storage.Path == "" {
		var (
			path string
			err  error
		)
		switch strings.ToLower(config.Storage.Backend) {
		case StorageFile:
			path, err = GetPreferencesFile()
		default:
			path, err = GetDatabaseFile()
		}
		if err != nil {
			return fmt.Errorf("failed to get storage path: %w", err)
		}
		config.Storage.Path = path
	}

	if config.Display.Dir == "" {
		dir, err := GetStateDir()
		if err != nil {
			return fmt.Errorf("failed to get display directory: %w", err)
		}
		config.Display.Dir = dir
	}

	if config.Logging.LogDir == "" {
		dir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = dir
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Appearance.DefaultTheme = strings.ToLower(strings.TrimSpace(config.Appearance.DefaultTheme))
	if config.Appearance.DefaultTheme == "" {
		config.Appearance.DefaultTheme = defaultTheme
	}

	config.Storage.Backend = strings.ToLower(strings.TrimSpace(config.Storage.Backend))
	if config.Storage.Backend == "" {
		config.Storage.Backend = StorageSQLite
	}

	config.System.Detectors = normalizeList(config.System.Detectors)
	config.Display.Backends = normalizeList(config.Display.Backends)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	config.Storage.Path = filepath.Clean(config.Storage.Path)
	config.Display.Dir = filepath.Clean(config.Display.Dir)
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config.clone()
}

// Save validates and writes the configuration to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Validate before writing so callers get immediate errors.
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(cfg, m.configFile); err != nil {
		return err
	}

	m.config = cfg.clone()
	if m.watching {
		// The in-memory config is already current; the fsnotify echo only resyncs viper.
		m.skipNextReload = true
		return nil
	}
	return m.readConfigFile()
}

// ConfigFile returns the path to the configuration file.
func (m *Manager) ConfigFile() string {
	return m.configFile
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setAppearanceDefaults(defaults)
	m.setStorageDefaults(defaults)
	m.setSystemDefaults(defaults)
	m.setDisplayDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.default_theme", defaults.Appearance.DefaultTheme)
	m.viper.SetDefault("appearance.light_palette", defaults.Appearance.LightPalette)
	m.viper.SetDefault("appearance.dark_palette", defaults.Appearance.DarkPalette)
	m.viper.SetDefault("appearance.transition_delay_ms", defaults.Appearance.TransitionDelayMs)
}

func (m *Manager) setStorageDefaults(defaults *Config) {
	m.viper.SetDefault("storage.backend", defaults.Storage.Backend)
	m.viper.SetDefault("storage.path", defaults.Storage.Path)
}

func (m *Manager) setSystemDefaults(defaults *Config) {
	m.viper.SetDefault("system.follow_system", defaults.System.FollowSystem)
	m.viper.SetDefault("system.detectors", defaults.System.Detectors)
	m.viper.SetDefault("system.poll_interval_ms", defaults.System.PollIntervalMs)
}

func (m *Manager) setDisplayDefaults(defaults *Config) {
	m.viper.SetDefault("display.backends", defaults.Display.Backends)
	m.viper.SetDefault("display.dir", defaults.Display.Dir)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
}

// clone returns a deep copy so callers cannot mutate shared slices.
func (c *Config) clone() *Config {
	out := *c
	out.System.Detectors = append([]string(nil), c.System.Detectors...)
	out.Display.Backends = append([]string(nil), c.Display.Backends...)
	return &out
}
