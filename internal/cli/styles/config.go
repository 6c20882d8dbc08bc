package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file path and whether it exists.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	if exists {
		return fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), pathStyle.Render(path))
	}
	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		r.theme.Subtle.Render("No config file yet, defaults are in use. Run 'themestore config init' to create one."),
	)
}

// RenderInit renders the result of config init.
func (r *ConfigRenderer) RenderInit(path, schemaPath string, created bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	pathStyle := r.theme.Subtle

	if !created {
		return fmt.Sprintf(
			"\n  %s Config %s already exists (use --force to overwrite)\n",
			lipgloss.NewStyle().Foreground(r.theme.Warning).Render(IconWarning),
			pathStyle.Render(path),
		)
	}
	return fmt.Sprintf(
		"\n  %s Wrote %s\n  %s Schema %s\n",
		iconStyle.Render(IconCheck),
		pathStyle.Render(path),
		iconStyle.Render(IconInfo),
		pathStyle.Render(schemaPath),
	)
}

// DirEntry is a named directory shown by RenderDirs.
type DirEntry struct {
	Name string
	Path string
}

// RenderDirs renders the resolved base directories.
func (r *ConfigRenderer) RenderDirs(dirs []DirEntry) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	nameStyle := lipgloss.NewStyle().Foreground(r.theme.Text).Width(8)

	var b strings.Builder
	b.WriteString("\n")
	for _, d := range dirs {
		fmt.Fprintf(&b, "  %s %s %s\n", iconStyle.Render(IconConfig), nameStyle.Render(d.Name), r.theme.Subtle.Render(d.Path))
	}
	return b.String()
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
