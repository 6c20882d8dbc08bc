// Package file stores preferences in a TOML document.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/teampw/themestore/internal/domain/entity"
	"github.com/teampw/themestore/internal/domain/repository"
	"github.com/teampw/themestore/internal/logging"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// document is the on-disk layout:
//
//	[preferences]
//	theme = 'dark'
//
//	[updated_at]
//	theme = 2026-03-01T12:00:00Z
type document struct {
	Preferences map[string]string    `toml:"preferences"`
	UpdatedAt   map[string]time.Time `toml:"updated_at"`
}

type preferenceRepo struct {
	path string
	mu   sync.Mutex
}

// NewPreferenceRepository creates a TOML file backed preference repository.
// The file is created on first Set.
func NewPreferenceRepository(path string) repository.PreferenceRepository {
	return &preferenceRepo{path: path}
}

func (r *preferenceRepo) Get(_ context.Context, key string) (*entity.Preference, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return nil, err
	}
	value, ok := doc.Preferences[key]
	if !ok {
		return nil, nil
	}
	return &entity.Preference{Key: key, Value: value, UpdatedAt: doc.UpdatedAt[key]}, nil
}

func (r *preferenceRepo) Set(ctx context.Context, pref *entity.Preference) error {
	if pref == nil {
		return errors.New("preference is nil")
	}
	log := logging.FromContext(ctx)
	log.Debug().Str("key", pref.Key).Str("path", r.path).Msg("writing preference file")

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return err
	}
	updatedAt := pref.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	doc.Preferences[pref.Key] = pref.Value
	doc.UpdatedAt[pref.Key] = updatedAt.UTC()
	return r.write(doc)
}

func (r *preferenceRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return err
	}
	if _, ok := doc.Preferences[key]; !ok {
		return nil
	}
	delete(doc.Preferences, key)
	delete(doc.UpdatedAt, key)
	return r.write(doc)
}

func (r *preferenceRepo) read() (*document, error) {
	doc := &document{}
	data, err := os.ReadFile(r.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read preferences %s: %w", r.path, err)
	default:
		if err := toml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("parse preferences %s: %w", r.path, err)
		}
	}
	if doc.Preferences == nil {
		doc.Preferences = make(map[string]string)
	}
	if doc.UpdatedAt == nil {
		doc.UpdatedAt = make(map[string]time.Time)
	}
	return doc, nil
}

// write replaces the file atomically (temp file + rename).
func (r *preferenceRepo) write(doc *document) error {
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create preferences directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*")
	if err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}
