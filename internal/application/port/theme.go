package port

import (
	"context"

	"github.com/teampw/themestore/internal/domain/entity"
)

// ThemeSlot is the persisted "theme" key/value slot.
// The underlying store may be unavailable; every method can fail.
type ThemeSlot interface {
	// Load returns the stored raw value and whether one was present.
	// The value is not validated.
	Load(ctx context.Context) (value string, ok bool, err error)

	// Save persists a raw value.
	Save(ctx context.Context, value string) error

	// Clear removes the stored value.
	Clear(ctx context.Context) error
}

// DisplayState is everything a display surface needs to render a theme.
type DisplayState struct {
	Theme       entity.Theme
	PrefersDark bool
	// Palette is the active palette as CSS variable name -> color.
	Palette map[string]string
	// CSSVars is a ready-to-inject stylesheet with light and dark variables.
	CSSVars string
}

// DisplaySurface applies the resolved theme to whatever renders the UI.
type DisplaySurface interface {
	// Apply publishes the full theme state.
	Apply(ctx context.Context, state DisplayState) error

	// ApplyMinimal publishes only the light/dark flag.
	// Used when Apply fails, so consumers never see a broken state.
	ApplyMinimal(ctx context.Context, theme entity.Theme) error

	// SetTransitions toggles animated theme transitions.
	// Transitions stay off until after the first apply to avoid a visible flash.
	SetTransitions(ctx context.Context, enabled bool) error
}

// ThemeReader exposes the resolved theme.
type ThemeReader interface {
	Preference() entity.ThemePreference
}

// AppliedThemeReader reads back the theme a display surface last published,
// possibly by an earlier process.
type AppliedThemeReader interface {
	// AppliedTheme reports ok=false when nothing valid was published.
	AppliedTheme(ctx context.Context) (theme entity.Theme, ok bool, err error)
}
