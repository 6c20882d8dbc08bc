package persistence

import (
	"fmt"

	"github.com/teampw/themestore/internal/domain/repository"
	"github.com/teampw/themestore/internal/infrastructure/config"
	"github.com/teampw/themestore/internal/infrastructure/persistence/file"
	"github.com/teampw/themestore/internal/infrastructure/persistence/memory"
	"github.com/teampw/themestore/internal/infrastructure/persistence/sqlite"
)

// Store is an opened preference backend.
type Store struct {
	Repo    repository.PreferenceRepository
	Backend string
	Path    string

	close func() error
}

// Close releases the backend's resources.
func (s *Store) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

// Open builds the repository selected by storage.backend.
// Nothing touches disk until the first read or write.
func Open(cfg config.StorageConfig) (*Store, error) {
	switch cfg.Backend {
	case config.StorageSQLite, "":
		lazy := sqlite.NewLazyDB(cfg.Path)
		return &Store{
			Repo:    sqlite.NewPreferenceRepository(lazy),
			Backend: config.StorageSQLite,
			Path:    cfg.Path,
			close:   lazy.Close,
		}, nil
	case config.StorageFile:
		return &Store{
			Repo:    file.NewPreferenceRepository(cfg.Path),
			Backend: config.StorageFile,
			Path:    cfg.Path,
		}, nil
	case config.StorageMemory:
		return &Store{
			Repo:    memory.NewPreferenceRepository(),
			Backend: config.StorageMemory,
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
