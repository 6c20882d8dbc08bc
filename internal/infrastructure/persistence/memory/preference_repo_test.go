package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teampw/themestore/internal/domain/entity"
)

func TestPreferenceRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPreferenceRepository()

	got, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Nil(t, got)

	pref := entity.NewPreference("theme", "dark")
	require.NoError(t, repo.Set(ctx, pref))

	// Stored by value: later mutation of the caller's struct is not visible
	pref.Value = "light"
	got, err = repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", got.Value)

	require.NoError(t, repo.Delete(ctx, "theme"))
	got, err = repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Error(t, repo.Set(ctx, nil))
}
