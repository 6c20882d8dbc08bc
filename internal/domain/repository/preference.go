package repository

import (
	"context"

	"github.com/teampw/themestore/internal/domain/entity"
)

// PreferenceRepository defines operations for key/value preference persistence.
type PreferenceRepository interface {
	// Get retrieves the preference stored under key.
	// Returns nil if the key is not set.
	Get(ctx context.Context, key string) (*entity.Preference, error)

	// Set saves or updates a preference.
	Set(ctx context.Context, pref *entity.Preference) error

	// Delete removes the preference stored under key.
	// Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
