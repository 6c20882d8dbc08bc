package colorscheme

import (
	"os/exec"
	"strings"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 50
)

// GsettingsDetector detects color scheme from GNOME gsettings.
type GsettingsDetector struct {
	run  commandRunner
	look lookPath
}

// NewGsettingsDetector creates a new gsettings-based detector.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{run: runCommand, look: exec.LookPath}
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string {
	return detectorNameGsettings
}

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int {
	return priorityGsettings
}

// Available implements port.ColorSchemeDetector.
// Returns true if gsettings command is available.
func (d *GsettingsDetector) Available() bool {
	_, err := d.look("gsettings")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
// Queries org.gnome.desktop.interface color-scheme, then the gtk-theme name.
func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	output, err := d.run("gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
	if err == nil {
		switch unquote(output) {
		case "prefer-dark":
			return true, true
		case "prefer-light":
			return false, true
		}
	}

	// "default" or pre-GNOME-42: fall back to the theme name suffix
	output, err = d.run("gsettings", "get", "org.gnome.desktop.interface", "gtk-theme")
	if err != nil {
		return false, false
	}
	name := unquote(output)
	if name == "" {
		return false, false
	}
	return strings.Contains(strings.ToLower(name), "dark"), true
}

// unquote strips gsettings quoting: "'prefer-dark'\n" -> "prefer-dark".
func unquote(output []byte) string {
	result := strings.TrimSpace(string(output))
	return strings.Trim(result, "'\"")
}
