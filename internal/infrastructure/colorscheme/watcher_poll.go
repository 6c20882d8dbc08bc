package colorscheme

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/teampw/themestore/internal/application/port"
	"github.com/teampw/themestore/internal/logging"
)

const (
	watcherNamePoll     = "poll"
	DefaultPollInterval = 5 * time.Second
)

var errNoResolver = errors.New("poll watcher: no resolver")

// Compile-time interface check.
var _ port.SystemSchemeWatcher = (*PollWatcher)(nil)

// PollWatcher re-runs the resolver on an interval and reports dark-flag changes.
// Used when no push-based mechanism is available.
type PollWatcher struct {
	resolver port.ColorSchemeResolver
	interval time.Duration
}

// NewPollWatcher creates a polling watcher. A non-positive interval uses DefaultPollInterval.
func NewPollWatcher(resolver port.ColorSchemeResolver, interval time.Duration) *PollWatcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &PollWatcher{resolver: resolver, interval: interval}
}

// Name implements port.SystemSchemeWatcher.
func (*PollWatcher) Name() string {
	return watcherNamePoll
}

// Watch implements port.SystemSchemeWatcher.
func (w *PollWatcher) Watch(ctx context.Context, onChange func(prefersDark bool)) (func(), error) {
	if w.resolver == nil {
		return nil, errNoResolver
	}
	log := logging.FromContext(ctx)

	unregister := w.resolver.OnChange(func(pref port.ColorSchemePreference) {
		log.Debug().
			Bool("prefers_dark", pref.PrefersDark).
			Str("source", pref.Source).
			Msg("poll: color scheme changed")
		onChange(pref.PrefersDark)
	})

	// Prime the baseline so ticks only report real changes, and hand the
	// primed value to the subscriber: the system may have changed since it
	// last resolved.
	if pref, ok := w.resolver.Refresh(); ok {
		onChange(pref.PrefersDark)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-watchCtx.Done():
				return
			case <-ticker.C:
				w.resolver.Refresh()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			wg.Wait()
			unregister()
		})
	}, nil
}
