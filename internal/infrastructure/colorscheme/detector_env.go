package colorscheme

import (
	"os"
	"strings"

	"github.com/teampw/themestore/internal/domain/entity"
)

const (
	detectorNameEnv      = "GTK_THEME"
	priorityEnv          = 20
	detectorNameOverride = "THEMESTORE_SYSTEM_SCHEME"
	priorityOverride     = 200
)

// EnvDetector detects color scheme from GTK_THEME environment variable.
// This is useful when users explicitly set their theme via environment.
type EnvDetector struct {
	getenv func(string) string
}

// NewEnvDetector creates a new environment variable-based detector.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{getenv: os.Getenv}
}

// Name implements port.ColorSchemeDetector.
func (*EnvDetector) Name() string {
	return detectorNameEnv
}

// Priority implements port.ColorSchemeDetector.
func (*EnvDetector) Priority() int {
	return priorityEnv
}

// Available implements port.ColorSchemeDetector.
// Returns true if GTK_THEME environment variable is set.
func (d *EnvDetector) Available() bool {
	return d.getenv("GTK_THEME") != ""
}

// Detect implements port.ColorSchemeDetector.
// Checks if GTK_THEME contains "dark" (case-insensitive).
func (d *EnvDetector) Detect() (prefersDark, ok bool) {
	gtkTheme := d.getenv("GTK_THEME")
	if gtkTheme == "" {
		return false, false
	}

	prefersDark = strings.Contains(strings.ToLower(gtkTheme), "dark")
	return prefersDark, true
}

// OverrideDetector reads THEMESTORE_SYSTEM_SCHEME ("light" or "dark").
// It outranks every desktop detector so headless runs and CI are deterministic.
type OverrideDetector struct {
	getenv func(string) string
}

// NewOverrideDetector creates the environment override detector.
func NewOverrideDetector() *OverrideDetector {
	return &OverrideDetector{getenv: os.Getenv}
}

// Name implements port.ColorSchemeDetector.
func (*OverrideDetector) Name() string {
	return detectorNameOverride
}

// Priority implements port.ColorSchemeDetector.
func (*OverrideDetector) Priority() int {
	return priorityOverride
}

// Available implements port.ColorSchemeDetector.
func (d *OverrideDetector) Available() bool {
	return d.getenv(detectorNameOverride) != ""
}

// Detect implements port.ColorSchemeDetector.
func (d *OverrideDetector) Detect() (prefersDark, ok bool) {
	theme, valid := entity.ParseTheme(d.getenv(detectorNameOverride))
	if !valid {
		return false, false
	}
	return theme.IsDark(), true
}
