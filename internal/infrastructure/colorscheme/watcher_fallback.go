package colorscheme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/teampw/themestore/internal/application/port"
	"github.com/teampw/themestore/internal/logging"
)

var errNoWatchers = errors.New("no system scheme watchers configured")

// Compile-time interface check.
var _ port.SystemSchemeWatcher = (*FallbackWatcher)(nil)

// FallbackWatcher tries watchers in order and uses the first one that starts.
type FallbackWatcher struct {
	watchers []port.SystemSchemeWatcher

	mu     sync.Mutex
	active string
}

// NewFallbackWatcher creates a watcher chain. Nil entries are skipped.
func NewFallbackWatcher(watchers ...port.SystemSchemeWatcher) *FallbackWatcher {
	fw := &FallbackWatcher{}
	for _, w := range watchers {
		if w != nil {
			fw.watchers = append(fw.watchers, w)
		}
	}
	return fw
}

// Name implements port.SystemSchemeWatcher.
// Reports the watcher that started, or "none" before Watch succeeds.
func (f *FallbackWatcher) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.active == "" {
		return "none"
	}
	return f.active
}

// Candidates lists the watcher names in the order they are tried.
func (f *FallbackWatcher) Candidates() []string {
	names := make([]string, 0, len(f.watchers))
	for _, w := range f.watchers {
		names = append(names, w.Name())
	}
	return names
}

// Watch implements port.SystemSchemeWatcher.
func (f *FallbackWatcher) Watch(ctx context.Context, onChange func(prefersDark bool)) (func(), error) {
	log := logging.FromContext(ctx)

	if len(f.watchers) == 0 {
		return nil, errNoWatchers
	}

	var errs []error
	for _, w := range f.watchers {
		stop, err := w.Watch(ctx, onChange)
		if err != nil {
			log.Debug().Err(err).Str("watcher", w.Name()).Msg("system scheme watcher unavailable")
			errs = append(errs, fmt.Errorf("%s: %w", w.Name(), err))
			continue
		}

		f.mu.Lock()
		f.active = w.Name()
		f.mu.Unlock()

		log.Info().Str("watcher", w.Name()).Msg("watching system color scheme")
		return stop, nil
	}
	return nil, errors.Join(errs...)
}
