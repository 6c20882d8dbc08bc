package colorscheme

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

const (
	detectorNameMacOS = "macos-defaults"
	priorityMacOS     = 50
)

// MacOSDetector reads AppleInterfaceStyle via the defaults tool.
type MacOSDetector struct {
	goos string
	run  commandRunner
	look lookPath
}

// NewMacOSDetector creates a new macOS appearance detector.
func NewMacOSDetector() *MacOSDetector {
	return &MacOSDetector{goos: runtime.GOOS, run: runCommand, look: exec.LookPath}
}

// Name implements port.ColorSchemeDetector.
func (*MacOSDetector) Name() string {
	return detectorNameMacOS
}

// Priority implements port.ColorSchemeDetector.
func (*MacOSDetector) Priority() int {
	return priorityMacOS
}

// Available implements port.ColorSchemeDetector.
func (d *MacOSDetector) Available() bool {
	if d.goos != "darwin" {
		return false
	}
	_, err := d.look("defaults")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
// The AppleInterfaceStyle key only exists in dark mode, so a non-zero exit means light.
func (d *MacOSDetector) Detect() (prefersDark, ok bool) {
	output, err := d.run("defaults", "read", "-g", "AppleInterfaceStyle")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, true
		}
		return false, false
	}
	return strings.EqualFold(strings.TrimSpace(string(output)), "Dark"), true
}
