package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "unknown default theme",
			mutate:  func(c *Config) { c.Appearance.DefaultTheme = "sepia" },
			wantErr: "appearance.default_theme must be light or dark",
		},
		{
			name:    "unknown storage backend",
			mutate:  func(c *Config) { c.Storage.Backend = "redis" },
			wantErr: "storage.backend must be one of",
		},
		{
			name:    "bad palette color",
			mutate:  func(c *Config) { c.Appearance.DarkPalette.Accent = "green" },
			wantErr: "appearance.dark_palette.accent must be a hex color",
		},
		{
			name:   "empty palette color falls back to default",
			mutate: func(c *Config) { c.Appearance.LightPalette.Accent = "" },
		},
		{
			name:    "unknown detector",
			mutate:  func(c *Config) { c.System.Detectors = []string{"portal", "kde"} },
			wantErr: "system.detectors[1] must be one of",
		},
		{
			name:    "negative poll interval",
			mutate:  func(c *Config) { c.System.PollIntervalMs = -1 },
			wantErr: "system.poll_interval_ms must be >= 0",
		},
		{
			name:    "unknown display backend",
			mutate:  func(c *Config) { c.Display.Backends = []string{"gtk"} },
			wantErr: "display.backends[0]",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_Nil(t *testing.T) {
	assert.Error(t, validateConfig(nil))
}
