// Package memory provides a process-scoped preference repository.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/teampw/themestore/internal/domain/entity"
	"github.com/teampw/themestore/internal/domain/repository"
)

// PreferenceRepository keeps preferences in a map for the lifetime of the process.
type PreferenceRepository struct {
	mu    sync.RWMutex
	prefs map[string]entity.Preference
}

var _ repository.PreferenceRepository = (*PreferenceRepository)(nil)

// NewPreferenceRepository creates an empty in-memory repository.
func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{prefs: make(map[string]entity.Preference)}
}

func (r *PreferenceRepository) Get(_ context.Context, key string) (*entity.Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pref, ok := r.prefs[key]
	if !ok {
		return nil, nil
	}
	return &pref, nil
}

func (r *PreferenceRepository) Set(_ context.Context, pref *entity.Preference) error {
	if pref == nil {
		return errors.New("preference is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs[pref.Key] = *pref
	return nil
}

func (r *PreferenceRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.prefs, key)
	return nil
}
