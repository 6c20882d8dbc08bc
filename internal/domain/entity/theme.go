package entity

import (
	"strings"
	"time"
)

// Theme is the resolved light/dark display setting.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemePreferenceKey is the key of the persisted theme slot.
const ThemePreferenceKey = "theme"

// ParseTheme converts a stored or user-supplied value into a Theme.
// Only "light" and "dark" are accepted; anything else reports false.
func ParseTheme(raw string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(raw))) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return "", false
	}
}

// ThemeFromDark maps a prefers-dark flag to a Theme.
func ThemeFromDark(prefersDark bool) Theme {
	if prefersDark {
		return ThemeDark
	}
	return ThemeLight
}

// Valid reports whether t is one of the two supported settings.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// IsDark returns true for ThemeDark.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// Opposite returns the other setting. Invalid values map to ThemeDark,
// the opposite of the default.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	return string(t)
}

// ThemeSource records where the current theme value came from.
// It decides whether a system preference change may override the value.
type ThemeSource string

const (
	SourceUserExplicit   ThemeSource = "user"
	SourceSystemDetected ThemeSource = "system"
	SourceDefault        ThemeSource = "default"
)

func (s ThemeSource) String() string {
	return string(s)
}

// ThemePreference is the resolved theme together with its provenance.
type ThemePreference struct {
	Value     Theme
	Source    ThemeSource
	Detector  string // detector that supplied a system value, empty otherwise
	UpdatedAt time.Time
}

// IsExplicit reports whether the value was chosen by the user.
// Explicit values are not replaced by system preference changes.
func (p ThemePreference) IsExplicit() bool {
	return p.Source == SourceUserExplicit
}

// Equal compares value and provenance, ignoring the timestamp.
func (p ThemePreference) Equal(other ThemePreference) bool {
	return p.Value == other.Value && p.Source == other.Source && p.Detector == other.Detector
}
