package display

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teampw/themestore/internal/application/port"
	"github.com/teampw/themestore/internal/domain/entity"
)

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestFileSurface_Apply(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "display")
	surface := NewFileSurface(dir)

	err := surface.Apply(context.Background(), port.DisplayState{
		Theme:       entity.ThemeDark,
		PrefersDark: true,
		CSSVars:     ":root {\n  --theme-bg: #ffffff;\n}\n.dark {\n  --theme-bg: #18181b;\n}\n",
	})
	require.NoError(t, err)

	assert.Equal(t, "dark\n", readFile(t, dir, ThemeFile))

	css := readFile(t, dir, StylesheetFile)
	assert.Contains(t, css, "--theme-bg: #18181b;")
	assert.Contains(t, css, "color-scheme: dark;")
	assert.Contains(t, css, `:root[data-theme="dark"]`)

	// No temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestFileSurface_ApplyRejectsInvalidTheme(t *testing.T) {
	surface := NewFileSurface(t.TempDir())

	err := surface.Apply(context.Background(), port.DisplayState{Theme: "sepia"})
	assert.ErrorIs(t, err, entity.ErrInvalidTheme)
}

func TestFileSurface_ApplyMinimalWritesOnlyFlag(t *testing.T) {
	dir := t.TempDir()
	surface := NewFileSurface(dir)

	require.NoError(t, surface.ApplyMinimal(context.Background(), entity.ThemeLight))

	assert.Equal(t, "light\n", readFile(t, dir, ThemeFile))
	assert.NoFileExists(t, filepath.Join(dir, StylesheetFile))
}

func TestFileSurface_Transitions(t *testing.T) {
	dir := t.TempDir()
	surface := NewFileSurface(dir)
	ctx := context.Background()

	// Disabling before enabling is not an error
	require.NoError(t, surface.SetTransitions(ctx, false))

	require.NoError(t, surface.SetTransitions(ctx, true))
	assert.FileExists(t, filepath.Join(dir, TransitionsFile))

	require.NoError(t, surface.SetTransitions(ctx, false))
	assert.NoFileExists(t, filepath.Join(dir, TransitionsFile))
}

func TestFileSurface_UnwritableDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	surface := NewFileSurface(filepath.Join(blocker, "display"))
	assert.Error(t, surface.Apply(context.Background(), port.DisplayState{Theme: entity.ThemeDark}))
	assert.Error(t, surface.ApplyMinimal(context.Background(), entity.ThemeDark))
}

func TestFileSurface_AppliedTheme(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	surface := NewFileSurface(dir)

	_, ok, err := surface.AppliedTheme(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "nothing published yet")

	require.NoError(t, surface.ApplyMinimal(ctx, entity.ThemeDark))
	theme, ok, err := surface.AppliedTheme(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entity.ThemeDark, theme)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ThemeFile), []byte("sepia\n"), 0o644))
	_, ok, err = surface.AppliedTheme(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
