// Package theme owns the resolved light/dark theme and the palettes applied with it.
package theme

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/teampw/themestore/internal/infrastructure/config"
)

// Palette holds semantic color tokens for theming.
type Palette struct {
	Background     string // Main background color
	Surface        string // Elevated surfaces (cards, popups)
	SurfaceVariant string // Secondary surfaces
	Text           string // Primary text color
	Muted          string // Secondary/disabled text
	Accent         string // Primary accent color (actions, highlights)
	Border         string // Border and divider lines
	// Semantic status colors (not user-editable, derived defaults)
	Success     string
	Warning     string
	Destructive string
}

// Palettes pairs the light and dark palette.
type Palettes struct {
	Light Palette
	Dark  Palette
}

// For returns the palette used by theme t.
func (p Palettes) For(dark bool) Palette {
	if dark {
		return p.Dark
	}
	return p.Light
}

// DefaultDarkPalette returns the default dark theme palette.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:     "#18181b",
		Surface:        "#27272a",
		SurfaceVariant: "#3f3f46",
		Text:           "#ffffff",
		Muted:          "#a1a1aa",
		Accent:         "#e5ffca",
		Border:         "#3f3f46",
		Success:        "#4ade80",
		Warning:        "#fbbf24",
		Destructive:    "#ef4444",
	}
}

// DefaultLightPalette returns the default light theme palette.
func DefaultLightPalette() Palette {
	return Palette{
		Background:     "#ffffff",
		Surface:        "#f4f4f5",
		SurfaceVariant: "#e4e4e7",
		Text:           "#18181b",
		Muted:          "#71717a",
		Accent:         "#18181b",
		Border:         "#e4e4e7",
		Success:        "#22c55e",
		Warning:        "#f59e0b",
		Destructive:    "#dc2626",
	}
}

// DefaultPalettes returns the built-in light and dark palettes.
func DefaultPalettes() Palettes {
	return Palettes{Light: DefaultLightPalette(), Dark: DefaultDarkPalette()}
}

// PaletteFromConfig creates a Palette from config values, filling missing values with defaults.
func PaletteFromConfig(cfg *config.ColorPalette, isDark bool) Palette {
	var defaults Palette
	if isDark {
		defaults = DefaultDarkPalette()
	} else {
		defaults = DefaultLightPalette()
	}

	if cfg == nil {
		return defaults
	}

	return Palette{
		Background:     Coalesce(cfg.Background, defaults.Background),
		Surface:        Coalesce(cfg.Surface, defaults.Surface),
		SurfaceVariant: Coalesce(cfg.SurfaceVariant, defaults.SurfaceVariant),
		Text:           Coalesce(cfg.Text, defaults.Text),
		Muted:          Coalesce(cfg.Muted, defaults.Muted),
		Accent:         Coalesce(cfg.Accent, defaults.Accent),
		Border:         Coalesce(cfg.Border, defaults.Border),
		// Semantic colors always use defaults (not user-editable)
		Success:     defaults.Success,
		Warning:     defaults.Warning,
		Destructive: defaults.Destructive,
	}
}

// PalettesFromConfig builds both palettes from the appearance section.
func PalettesFromConfig(cfg *config.AppearanceConfig) Palettes {
	if cfg == nil {
		return DefaultPalettes()
	}
	return Palettes{
		Light: PaletteFromConfig(&cfg.LightPalette, false),
		Dark:  PaletteFromConfig(&cfg.DarkPalette, true),
	}
}

// Coalesce returns the first non-empty string.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// hexColorRegex matches valid hex colors (#RGB, #RRGGBB, #RRGGBBAA).
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// ValidateHexColor checks if a string is a valid hex color.
func ValidateHexColor(color string) error {
	if color == "" {
		return nil // Empty is valid (will use default)
	}
	if !hexColorRegex.MatchString(color) {
		return fmt.Errorf("invalid hex color: %s", color)
	}
	return nil
}

// Validate checks all palette colors are valid hex values.
func (p Palette) Validate() error {
	for _, v := range p.vars() {
		if err := ValidateHexColor(v.value); err != nil {
			return fmt.Errorf("%s: %w", v.name, err)
		}
	}
	return nil
}

type cssVar struct {
	name  string
	value string
}

// vars lists the CSS custom properties in output order.
// --theme-bg and --theme-text are the two properties minimal consumers read.
func (p Palette) vars() []cssVar {
	return []cssVar{
		{"--theme-bg", p.Background},
		{"--theme-text", p.Text},
		{"--surface", p.Surface},
		{"--surface-variant", p.SurfaceVariant},
		{"--muted", p.Muted},
		{"--accent", p.Accent},
		{"--border", p.Border},
		{"--success", p.Success},
		{"--warning", p.Warning},
		{"--destructive", p.Destructive},
	}
}

// ToCSSVarMap returns the palette as CSS variable name -> color.
func (p Palette) ToCSSVarMap() map[string]string {
	vars := p.vars()
	out := make(map[string]string, len(vars))
	for _, v := range vars {
		out[v.name] = v.value
	}
	return out
}

// ToCSSVars generates CSS custom property declarations.
func (p Palette) ToCSSVars() string {
	var sb strings.Builder
	for _, v := range p.vars() {
		if v.value == "" {
			continue
		}
		sb.WriteString("  " + v.name + ": " + v.value + ";\n")
	}
	return sb.String()
}
