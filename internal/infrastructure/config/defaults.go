package config

// Default configuration constants
const (
	defaultTheme             = "light"
	defaultTransitionDelayMs = 100 // ms after first paint
	defaultPollIntervalMs    = 5000

	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 7 // days
)

// DefaultConfig returns the default configuration.
// Paths are left empty and resolved against XDG directories on load.
func DefaultConfig() *Config {
	return &Config{
		Appearance: AppearanceConfig{
			DefaultTheme: defaultTheme,
			LightPalette: ColorPalette{
				Background:     "#ffffff",
				Surface:        "#f4f4f5",
				SurfaceVariant: "#e4e4e7",
				Text:           "#18181b",
				Muted:          "#71717a",
				Accent:         "#18181b",
				Border:         "#e4e4e7",
			},
			DarkPalette: ColorPalette{
				Background:     "#18181b",
				Surface:        "#27272a",
				SurfaceVariant: "#3f3f46",
				Text:           "#ffffff",
				Muted:          "#a1a1aa",
				Accent:         "#e5ffca",
				Border:         "#3f3f46",
			},
			TransitionDelayMs: defaultTransitionDelayMs,
		},
		Storage: StorageConfig{
			Backend: StorageSQLite,
		},
		System: SystemConfig{
			FollowSystem:   true,
			Detectors:      []string{},
			PollIntervalMs: defaultPollIntervalMs,
		},
		Display: DisplayConfig{
			Backends: []string{DisplayFile},
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: false,
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAgeDays:    defaultMaxLogAgeDays,
		},
	}
}
