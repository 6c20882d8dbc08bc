package colorscheme

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	detectorNameTerminal = "terminal"
	priorityTerminal     = 10
)

// TerminalDetector infers the preference from the terminal background color.
// The terminal is queried once; later changes are not observed.
type TerminalDetector struct {
	out      *os.File
	once     sync.Once
	renderer *lipgloss.Renderer
}

// NewTerminalDetector creates a detector for the process's stdout terminal.
func NewTerminalDetector() *TerminalDetector {
	return &TerminalDetector{out: os.Stdout}
}

// Name implements port.ColorSchemeDetector.
func (*TerminalDetector) Name() string {
	return detectorNameTerminal
}

// Priority implements port.ColorSchemeDetector.
func (*TerminalDetector) Priority() int {
	return priorityTerminal
}

// Available implements port.ColorSchemeDetector.
// Only an interactive terminal can answer a background color query.
func (d *TerminalDetector) Available() bool {
	return d.out != nil && term.IsTerminal(int(d.out.Fd()))
}

// Detect implements port.ColorSchemeDetector.
// Uses a private renderer so the display surface's SetHasDarkBackground
// on the default renderer does not feed back into detection.
func (d *TerminalDetector) Detect() (prefersDark, ok bool) {
	if !d.Available() {
		return false, false
	}
	d.once.Do(func() {
		d.renderer = lipgloss.NewRenderer(d.out)
	})
	return d.renderer.HasDarkBackground(), true
}
