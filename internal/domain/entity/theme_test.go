package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   Theme
		wantOK bool
	}{
		{name: "light", raw: "light", want: ThemeLight, wantOK: true},
		{name: "dark", raw: "dark", want: ThemeDark, wantOK: true},
		{name: "mixed case and spaces", raw: "  Dark\n", want: ThemeDark, wantOK: true},
		{name: "empty", raw: "", wantOK: false},
		{name: "system is not a theme", raw: "system", wantOK: false},
		{name: "prefer-dark is not a stored value", raw: "prefer-dark", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTheme(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTheme_OppositeIsInvolution(t *testing.T) {
	for _, theme := range []Theme{ThemeLight, ThemeDark} {
		assert.Equal(t, theme, theme.Opposite().Opposite())
		assert.NotEqual(t, theme, theme.Opposite())
	}
}

func TestTheme_OppositeOfInvalidIsDark(t *testing.T) {
	assert.Equal(t, ThemeDark, Theme("").Opposite())
}

func TestThemeFromDark(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeFromDark(true))
	assert.Equal(t, ThemeLight, ThemeFromDark(false))
	assert.True(t, ThemeDark.IsDark())
	assert.False(t, ThemeLight.IsDark())
}

func TestThemePreference_Equal(t *testing.T) {
	a := ThemePreference{Value: ThemeDark, Source: SourceSystemDetected, Detector: "portal"}
	b := a
	b.Detector = "gsettings"

	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
	assert.False(t, a.IsExplicit())
	assert.True(t, ThemePreference{Source: SourceUserExplicit}.IsExplicit())
}

func TestThemeError_IsMatchesKind(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("save theme: %w", NewThemeError("save", ErrPersistenceUnavailable, cause))

	assert.ErrorIs(t, err, ErrPersistenceUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrDisplayApplyFailure)
	assert.Contains(t, err.Error(), "disk full")
}
