package display

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/teampw/themestore/internal/application/port"
	"github.com/teampw/themestore/internal/application/port/mocks"
	"github.com/teampw/themestore/internal/domain/entity"
	"github.com/teampw/themestore/internal/infrastructure/config"
)

func TestTerminalSurface(t *testing.T) {
	ctx := context.Background()
	surface := NewTerminalSurface()

	var seen []entity.Theme
	unregister := surface.OnApply(func(state port.DisplayState) { seen = append(seen, state.Theme) })

	palette := map[string]string{"--theme-bg": "#18181b"}
	require.NoError(t, surface.Apply(ctx, port.DisplayState{Theme: entity.ThemeDark, PrefersDark: true, Palette: palette}))

	// The surface keeps its own copy of the palette
	palette["--theme-bg"] = "#000000"
	assert.Equal(t, "#18181b", surface.snapshot().Palette["--theme-bg"])

	require.NoError(t, surface.ApplyMinimal(ctx, entity.ThemeLight))
	assert.Equal(t, entity.ThemeLight, surface.snapshot().Theme)
	assert.False(t, surface.snapshot().PrefersDark)

	require.NoError(t, surface.SetTransitions(ctx, true))
	assert.True(t, surface.transitionsEnabled())

	assert.Equal(t, []entity.Theme{entity.ThemeDark}, seen, "minimal apply does not notify listeners")

	unregister()
	require.NoError(t, surface.Apply(ctx, port.DisplayState{Theme: entity.ThemeLight}))
	assert.Len(t, seen, 1)
}

func TestMultiSurface_JoinsErrorsAndContinues(t *testing.T) {
	ctx := context.Background()
	state := port.DisplayState{Theme: entity.ThemeDark}
	boom := errors.New("boom")

	failing := mocks.NewMockDisplaySurface(t)
	failing.EXPECT().Apply(mock.Anything, state).Return(boom)
	failing.EXPECT().ApplyMinimal(mock.Anything, entity.ThemeDark).Return(nil)

	ok := mocks.NewMockDisplaySurface(t)
	ok.EXPECT().Apply(mock.Anything, state).Return(nil)
	ok.EXPECT().ApplyMinimal(mock.Anything, entity.ThemeDark).Return(nil)

	multi := MultiSurface{failing, ok}

	err := multi.Apply(ctx, state)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, multi.ApplyMinimal(ctx, entity.ThemeDark))
	assert.NoError(t, MultiSurface(nil).SetTransitions(ctx, true))
}

func TestNewFromConfig(t *testing.T) {
	dir := t.TempDir()

	surfaces, err := NewFromConfig(config.DisplayConfig{Backends: []string{"file", "file"}, Dir: dir}, false)
	require.NoError(t, err)
	assert.Len(t, surfaces.All, 1)
	assert.Equal(t, dir, surfaces.File.Dir())
	assert.Nil(t, surfaces.Terminal)

	surfaces, err = NewFromConfig(config.DisplayConfig{Backends: []string{"terminal"}}, false)
	require.NoError(t, err)
	assert.NotNil(t, surfaces.Terminal)
	assert.Nil(t, surfaces.File)

	surfaces, err = NewFromConfig(config.DisplayConfig{}, true)
	require.NoError(t, err)
	assert.Len(t, surfaces.All, 1)

	_, err = NewFromConfig(config.DisplayConfig{Backends: []string{"gtk"}}, false)
	assert.Error(t, err)
}
