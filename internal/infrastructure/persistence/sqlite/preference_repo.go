package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/teampw/themestore/internal/application/port"
	"github.com/teampw/themestore/internal/domain/entity"
	"github.com/teampw/themestore/internal/domain/repository"
	"github.com/teampw/themestore/internal/logging"
)

const (
	getPreference    = `SELECT key, value, updated_at FROM preferences WHERE key = ?`
	upsertPreference = `INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deletePreference = `DELETE FROM preferences WHERE key = ?`
)

type preferenceRepo struct {
	provider port.DatabaseProvider
}

// NewPreferenceRepository creates a SQLite-backed preference repository.
// The database is opened on first use through the provider.
func NewPreferenceRepository(provider port.DatabaseProvider) repository.PreferenceRepository {
	return &preferenceRepo{provider: provider}
}

func (r *preferenceRepo) Get(ctx context.Context, key string) (*entity.Preference, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	var (
		pref      entity.Preference
		updatedAt string
	)
	err = db.QueryRowContext(ctx, getPreference, key).Scan(&pref.Key, &pref.Value, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get preference %q: %w", key, err)
	}
	// A malformed timestamp leaves UpdatedAt zero; the value itself is still usable.
	pref.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return &pref, nil
}

func (r *preferenceRepo) Set(ctx context.Context, pref *entity.Preference) error {
	if pref == nil {
		return errors.New("preference is nil")
	}
	log := logging.FromContext(ctx)
	log.Debug().Str("key", pref.Key).Str("value", pref.Value).Msg("setting preference")

	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	updatedAt := pref.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	if _, err := db.ExecContext(ctx, upsertPreference, pref.Key, pref.Value, updatedAt.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("set preference %q: %w", pref.Key, err)
	}
	return nil
}

func (r *preferenceRepo) Delete(ctx context.Context, key string) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, deletePreference, key); err != nil {
		return fmt.Errorf("delete preference %q: %w", key, err)
	}
	return nil
}
