package colorscheme

import (
	"sort"
	"sync"

	"github.com/teampw/themestore/internal/application/port"
)

// callbackWrapper wraps a callback function to enable pointer comparison for removal.
type callbackWrapper struct {
	fn func(port.ColorSchemePreference)
}

// Resolver implements port.ColorSchemeResolver.
// It queries detectors in priority order and remembers the last answer for Refresh.
type Resolver struct {
	mu        sync.RWMutex
	detectors []port.ColorSchemeDetector
	current   port.ColorSchemePreference
	known     bool
	callbacks []*callbackWrapper
}

// NewResolver creates a new color scheme resolver with optional initial detectors.
func NewResolver(detectors ...port.ColorSchemeDetector) *Resolver {
	r := &Resolver{
		detectors: make([]port.ColorSchemeDetector, 0, len(detectors)),
	}
	for _, d := range detectors {
		if d != nil {
			r.detectors = append(r.detectors, d)
		}
	}
	return r
}

// Resolve implements port.ColorSchemeResolver.
func (r *Resolver) Resolve() (port.ColorSchemePreference, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveInternal()
}

// resolveInternal performs the actual resolution without locking.
// Caller must hold at least a read lock.
func (r *Resolver) resolveInternal() (port.ColorSchemePreference, bool) {
	// Sort detectors by priority (highest first)
	sorted := make([]port.ColorSchemeDetector, len(r.detectors))
	copy(sorted, r.detectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})

	for _, detector := range sorted {
		if prefersDark, ok := safeDetect(detector); ok {
			return port.ColorSchemePreference{
				PrefersDark: prefersDark,
				Source:      detector.Name(),
			}, true
		}
	}

	return port.ColorSchemePreference{}, false
}

// safeDetect runs a detector, treating a panic as "unavailable".
func safeDetect(detector port.ColorSchemeDetector) (prefersDark, ok bool) {
	defer func() {
		if recover() != nil {
			prefersDark, ok = false, false
		}
	}()

	if !detector.Available() {
		return false, false
	}
	return detector.Detect()
}

// RegisterDetector implements port.ColorSchemeResolver.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	if detector == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
}

// Detectors returns the registered detectors in priority order.
func (r *Resolver) Detectors() []port.ColorSchemeDetector {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := make([]port.ColorSchemeDetector, len(r.detectors))
	copy(sorted, r.detectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})
	return sorted
}

// Refresh implements port.ColorSchemeResolver.
// A refresh where no detector answers keeps the previous preference.
func (r *Resolver) Refresh() (port.ColorSchemePreference, bool) {
	r.mu.Lock()

	newPref, ok := r.resolveInternal()
	if !ok {
		r.mu.Unlock()
		return newPref, false
	}

	changed := !r.known || newPref.PrefersDark != r.current.PrefersDark
	notify := r.known && changed
	r.current = newPref
	r.known = true

	// Copy callbacks to avoid holding lock during callback invocation
	var callbacks []*callbackWrapper
	if notify {
		callbacks = make([]*callbackWrapper, len(r.callbacks))
		copy(callbacks, r.callbacks)
	}
	r.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn(newPref)
	}

	return newPref, true
}

// OnChange implements port.ColorSchemeResolver.
func (r *Resolver) OnChange(callback func(port.ColorSchemePreference)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Wrap callback to enable pointer comparison for removal
	wrapper := &callbackWrapper{fn: callback}
	r.callbacks = append(r.callbacks, wrapper)

	// Return unregister function
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		// Find and remove callback by pointer equality
		for i, cb := range r.callbacks {
			if cb == wrapper {
				r.callbacks = append(r.callbacks[:i], r.callbacks[i+1:]...)
				return
			}
		}
	}
}

var _ port.ColorSchemeResolver = (*Resolver)(nil)
