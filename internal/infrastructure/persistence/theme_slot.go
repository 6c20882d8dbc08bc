// Package persistence wires preference repositories to the theme slot.
package persistence

import (
	"context"
	"sync"

	"github.com/teampw/themestore/internal/application/port"
	"github.com/teampw/themestore/internal/domain/entity"
	"github.com/teampw/themestore/internal/domain/repository"
)

// Compile-time interface check.
var _ port.ThemeSlot = (*ThemeSlot)(nil)

// ThemeSlot implements port.ThemeSlot over a preference repository.
// It keeps an in-memory copy of the last written value so that a failed
// Save is still visible to Load within the same process.
type ThemeSlot struct {
	repo repository.PreferenceRepository
	key  string

	mu       sync.Mutex
	fallback *string // nil: no write this process; pointer to "": cleared
}

// NewThemeSlot creates the "theme" slot over repo. A nil repo behaves as
// a store that is always unavailable.
func NewThemeSlot(repo repository.PreferenceRepository) *ThemeSlot {
	return &ThemeSlot{repo: repo, key: entity.ThemePreferenceKey}
}

// Load returns the stored value. When the store fails, the value written
// earlier in this process is returned alongside the error.
func (s *ThemeSlot) Load(ctx context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo == nil {
		value, ok := s.fallbackValue()
		return value, ok, entity.NewThemeError("load", entity.ErrPersistenceUnavailable, nil)
	}

	pref, err := s.repo.Get(ctx, s.key)
	if err != nil {
		value, ok := s.fallbackValue()
		return value, ok, entity.NewThemeError("load", entity.ErrPersistenceUnavailable, err)
	}
	if pref == nil {
		return "", false, nil
	}
	return pref.Value, true, nil
}

// Save persists value. The in-memory copy is updated even when the store fails.
func (s *ThemeSlot) Save(ctx context.Context, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fallback = &value
	if s.repo == nil {
		return entity.NewThemeError("save", entity.ErrPersistenceUnavailable, nil)
	}
	if err := s.repo.Set(ctx, entity.NewPreference(s.key, value)); err != nil {
		return entity.NewThemeError("save", entity.ErrPersistenceUnavailable, err)
	}
	return nil
}

// Clear removes the stored value.
func (s *ThemeSlot) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleared := ""
	s.fallback = &cleared
	if s.repo == nil {
		return entity.NewThemeError("clear", entity.ErrPersistenceUnavailable, nil)
	}
	if err := s.repo.Delete(ctx, s.key); err != nil {
		return entity.NewThemeError("clear", entity.ErrPersistenceUnavailable, err)
	}
	return nil
}

func (s *ThemeSlot) fallbackValue() (string, bool) {
	if s.fallback == nil || *s.fallback == "" {
		return "", false
	}
	return *s.fallback, true
}
