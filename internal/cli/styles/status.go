package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/teampw/themestore/internal/application/usecase"
	"github.com/teampw/themestore/internal/domain/entity"
)

// StatusRenderer renders the theme report.
type StatusRenderer struct {
	theme *Theme
}

// NewStatusRenderer creates a new status renderer with the given theme.
func NewStatusRenderer(theme *Theme) *StatusRenderer {
	return &StatusRenderer{theme: theme}
}

// SourceIcon returns the icon for a theme source.
func SourceIcon(source entity.ThemeSource) string {
	switch source {
	case entity.SourceUserExplicit:
		return IconUser
	case entity.SourceSystemDetected:
		return IconDesktop
	default:
		return IconDefault
	}
}

// SourceLabel describes a theme source for humans.
func SourceLabel(source entity.ThemeSource, detector string) string {
	switch source {
	case entity.SourceUserExplicit:
		return "explicit choice"
	case entity.SourceSystemDetected:
		if detector != "" {
			return "system (" + detector + ")"
		}
		return "system"
	default:
		return "default"
	}
}

// RenderTheme renders the one-line theme summary.
func (r *StatusRenderer) RenderTheme(value entity.Theme, source entity.ThemeSource, detector string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf(
		"%s %s %s",
		iconStyle.Render(ThemeIcon(value.IsDark())),
		r.theme.Highlight.Render(value.String()),
		r.theme.Subtle.Render(SourceLabel(source, detector)),
	)
}

// Render renders the full report.
func (r *StatusRenderer) Render(out *usecase.DescribeThemeOutput) string {
	if out == nil {
		return ""
	}

	keyStyle := r.theme.Subtle
	okStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	badStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	warnStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	sb.WriteString("\n  " + r.RenderTheme(out.Theme, out.Source, out.Detector) + "\n")

	sb.WriteString(fmt.Sprintf("\n  %s %s", iconStyle.Render(IconDatabase), keyStyle.Render("Persisted")))
	if out.Persisted.Backend != "" {
		sb.WriteString(" " + r.theme.BadgeMuted.Render(out.Persisted.Backend))
	}
	switch {
	case out.Persisted.Error != "":
		sb.WriteString(" " + badStyle.Render(out.Persisted.Error))
	case !out.Persisted.Present:
		sb.WriteString(" " + r.theme.Subtle.Render("not set"))
	case !out.Persisted.Valid:
		sb.WriteString(" " + warnStyle.Render(fmt.Sprintf("%q (ignored)", out.Persisted.Value)))
	default:
		sb.WriteString(" " + r.theme.Normal.Render(out.Persisted.Value))
	}
	sb.WriteString("\n")

	if out.Watcher != "" {
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			iconStyle.Render(IconSignal), keyStyle.Render("Watcher"), r.theme.Normal.Render(out.Watcher)))
	}

	if len(out.Detectors) > 0 {
		sb.WriteString(fmt.Sprintf("\n  %s\n", r.theme.Subtitle.Render("Detectors")))
	}
	for _, d := range out.Detectors {
		var icon, result string
		switch {
		case d.Error != "":
			icon = badStyle.Render(IconX)
			result = badStyle.Render(d.Error)
		case !d.Available:
			icon = r.theme.Subtle.Render(IconX)
			result = r.theme.Subtle.Render("unavailable")
		case !d.Detected:
			icon = warnStyle.Render(IconWarning)
			result = warnStyle.Render("no preference")
		default:
			icon = okStyle.Render(IconCheck)
			result = r.theme.Normal.Render(entity.ThemeFromDark(d.PrefersDark).String())
		}
		sb.WriteString(fmt.Sprintf("    %s %-18s %s %s\n",
			icon, d.Name, keyStyle.Render(fmt.Sprintf("%3d", d.Priority)), result))
	}

	return sb.String()
}
