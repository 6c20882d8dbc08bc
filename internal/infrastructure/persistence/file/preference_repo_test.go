package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teampw/themestore/internal/domain/entity"
)

func TestPreferenceRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "preferences.toml")
	repo := NewPreferenceRepository(path)

	got, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Nil(t, got)

	stamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Set(ctx, &entity.Preference{Key: "theme", Value: "dark", UpdatedAt: stamp}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[preferences]")
	assert.Contains(t, string(content), "theme = 'dark'")

	// A fresh repository reads what the first one wrote
	got, err = NewPreferenceRepository(path).Get(ctx, "theme")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "dark", got.Value)
	assert.True(t, stamp.Equal(got.UpdatedAt))

	require.NoError(t, repo.Delete(ctx, "theme"))
	got, err = repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPreferenceRepository_KeepsOtherKeys(t *testing.T) {
	ctx := context.Background()
	repo := NewPreferenceRepository(filepath.Join(t.TempDir(), "preferences.toml"))

	require.NoError(t, repo.Set(ctx, entity.NewPreference("theme", "light")))
	require.NoError(t, repo.Set(ctx, entity.NewPreference("density", "compact")))
	require.NoError(t, repo.Delete(ctx, "theme"))

	got, err := repo.Get(ctx, "density")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "compact", got.Value)
}

func TestPreferenceRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte("[preferences\ntheme = "), 0o600))

	_, err := NewPreferenceRepository(path).Get(context.Background(), "theme")
	assert.Error(t, err)
}

func TestPreferenceRepository_UnwritableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	repo := NewPreferenceRepository(filepath.Join(blocker, "preferences.toml"))
	assert.Error(t, repo.Set(context.Background(), entity.NewPreference("theme", "dark")))
}
