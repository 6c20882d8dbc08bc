package config

// Config represents the complete configuration for themestore.
type Config struct {
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
	Storage    StorageConfig    `mapstructure:"storage" yaml:"storage" toml:"storage" json:"storage"`
	// System controls operating-system color scheme detection and following.
	System  SystemConfig  `mapstructure:"system" yaml:"system" toml:"system" json:"system"`
	Display DisplayConfig `mapstructure:"display" yaml:"display" toml:"display" json:"display"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// AppearanceConfig holds theme defaults and palettes.
type AppearanceConfig struct {
	// DefaultTheme is used when nothing is persisted and no detector answers.
	DefaultTheme string       `mapstructure:"default_theme" yaml:"default_theme" toml:"default_theme" json:"default_theme" validate:"theme_value" jsonschema:"enum=light,enum=dark"`
	LightPalette ColorPalette `mapstructure:"light_palette" yaml:"light_palette" toml:"light_palette" json:"light_palette"`
	DarkPalette  ColorPalette `mapstructure:"dark_palette" yaml:"dark_palette" toml:"dark_palette" json:"dark_palette"`
	// TransitionDelayMs delays enabling animated transitions after the first apply.
	TransitionDelayMs int `mapstructure:"transition_delay_ms" yaml:"transition_delay_ms" toml:"transition_delay_ms" json:"transition_delay_ms" validate:"min=0,max=10000"`
}

// ColorPalette holds user-editable colors. Empty values fall back to built-in defaults.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background" validate:"omitempty,hexcolor"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface" validate:"omitempty,hexcolor"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant" validate:"omitempty,hexcolor"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text" validate:"omitempty,hexcolor"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted" validate:"omitempty,hexcolor"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent" validate:"omitempty,hexcolor"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border" validate:"omitempty,hexcolor"`
}

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
	StorageMemory = "memory"
)

// StorageConfig selects where the theme preference is persisted.
type StorageConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend" toml:"backend" json:"backend" validate:"storage_backend" jsonschema:"enum=sqlite,enum=file,enum=memory"`
	// Path is the database or preferences file. Empty uses the XDG data directory.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}

// SystemConfig controls system color scheme detection.
type SystemConfig struct {
	// FollowSystem subscribes to OS color scheme changes while no explicit choice is stored.
	FollowSystem bool `mapstructure:"follow_system" yaml:"follow_system" toml:"follow_system" json:"follow_system"`
	// Detectors lists enabled detectors. Empty enables all of them.
	Detectors []string `mapstructure:"detectors" yaml:"detectors" toml:"detectors" json:"detectors" validate:"dive,oneof=override portal gsettings macos gtk-theme terminal"`
	// PollIntervalMs is used when no push notification mechanism is available.
	PollIntervalMs int `mapstructure:"poll_interval_ms" yaml:"poll_interval_ms" toml:"poll_interval_ms" json:"poll_interval_ms" validate:"min=0"`
}

// Display backends.
const (
	DisplayFile     = "file"
	DisplayTerminal = "terminal"
)

// DisplayConfig selects where the resolved theme is published.
type DisplayConfig struct {
	Backends []string `mapstructure:"backends" yaml:"backends" toml:"backends" json:"backends" validate:"dive,oneof=file terminal"`
	// Dir receives the theme, theme.css and transitions files. Empty uses the XDG state directory.
	Dir string `mapstructure:"dir" yaml:"dir" toml:"dir" json:"dir"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" validate:"omitempty,oneof=trace debug info warn warning error disabled off"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" validate:"omitempty,oneof=console text json"`

	// File output configuration
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" validate:"min=0"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups" validate:"min=0"`
	MaxAgeDays    int    `mapstructure:"max_age_days" yaml:"max_age_days" toml:"max_age_days" json:"max_age_days" validate:"min=0"`
}
