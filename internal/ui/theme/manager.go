package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/teampw/themestore/internal/application/port"
	"github.com/teampw/themestore/internal/domain/entity"
	"github.com/teampw/themestore/internal/logging"
	"github.com/teampw/themestore/internal/ui/mainloop"
)

// systemEventKey coalesces bursts of system color scheme notifications.
const systemEventKey = "system-color-scheme"

var errNilWatcher = errors.New("system scheme watcher is nil")

// Dependencies are the collaborators of a Manager. Every field is optional.
type Dependencies struct {
	// Slot persists the explicit choice.
	Slot port.ThemeSlot
	// Resolver answers the operating-system preference at startup and on ClearTheme.
	Resolver port.ColorSchemeResolver
	// Surface receives every resolved theme.
	Surface port.DisplaySurface
	// Applied is consulted at startup, after the resolver and before
	// DefaultTheme, for the theme a previous run left on the display.
	Applied port.AppliedThemeReader
	// Post schedules work on the event loop. Nil runs work inline.
	Post func(func())

	Palettes        Palettes
	DefaultTheme    entity.Theme
	TransitionDelay time.Duration
	Clock           func() time.Time
}

type changeCallback struct {
	id uint64
	fn func(entity.ThemePreference)
}

// Manager is the single source of truth for the resolved theme.
//
// Mutations are serialized by opMu and include the display apply, so the
// surface always sees values in the order they were set. State reads only
// take mu, so surface listeners may call Theme or Preference during Apply.
type Manager struct {
	ctx context.Context

	slot     port.ThemeSlot
	resolver port.ColorSchemeResolver
	surface  port.DisplaySurface
	post     func(func())
	clock    func() time.Time

	defaultTheme    entity.Theme
	transitionDelay time.Duration

	opMu sync.Mutex

	mu                sync.RWMutex
	pref              entity.ThemePreference
	palettes          Palettes
	callbacks         []changeCallback
	nextID            uint64
	subscriptions     map[uint64]func()
	transitionTimer   *time.Timer
	transitionsActive bool
	closed            bool
}

// NewManager resolves the initial theme and applies it before returning.
// Resolution order: persisted slot, system preference, configured default.
// No dependency failure stops construction; failures are logged.
func NewManager(ctx context.Context, deps Dependencies) *Manager {
	ctx = logging.WithComponent(ctx, "theme")

	post := deps.Post
	if post == nil {
		post = func(fn func()) { fn() }
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	defaultTheme := deps.DefaultTheme
	if !defaultTheme.Valid() {
		defaultTheme = entity.ThemeLight
	}
	palettes := deps.Palettes
	if palettes == (Palettes{}) {
		palettes = DefaultPalettes()
	}

	m := &Manager{
		ctx:             ctx,
		slot:            deps.Slot,
		resolver:        deps.Resolver,
		surface:         deps.Surface,
		post:            post,
		clock:           clock,
		defaultTheme:    defaultTheme,
		transitionDelay: deps.TransitionDelay,
		palettes:        palettes,
		subscriptions:   make(map[uint64]func()),
	}

	m.opMu.Lock()
	defer m.opMu.Unlock()

	pref, ok := m.loadPersisted(ctx)
	if !ok {
		pref = m.resolveSystemOrDefault(ctx)
	}
	if pref.Source == entity.SourceDefault && deps.Applied != nil {
		if applied, found := m.loadApplied(ctx, deps.Applied); found {
			pref.Value = applied
		}
	}
	m.pref = pref
	m.apply(ctx, pref.Value, palettes)

	logging.FromContext(ctx).Debug().
		Str("theme", pref.Value.String()).
		Str("source", pref.Source.String()).
		Str("detector", pref.Detector).
		Msg("theme manager initialized")

	return m
}

// Theme returns the resolved theme.
func (m *Manager) Theme() entity.Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pref.Value
}

// Preference returns the resolved theme with its provenance.
func (m *Manager) Preference() entity.ThemePreference {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pref
}

// PrefersDark returns true if dark mode is active.
func (m *Manager) PrefersDark() bool {
	return m.Theme().IsDark()
}

// Palettes returns the light and dark palettes.
func (m *Manager) Palettes() Palettes {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.palettes
}

// CurrentPalette returns the palette of the active theme.
func (m *Manager) CurrentPalette() Palette {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.palettes.For(m.pref.Value.IsDark())
}

// CSS returns the light and dark variable stylesheet.
func (m *Manager) CSS() string {
	return GenerateCSS(m.Palettes())
}

// SetTheme records an explicit choice, persists it and applies it.
// Persistence and display failures are logged; the in-memory value is
// always updated. Invalid values are ignored.
func (m *Manager) SetTheme(ctx context.Context, theme entity.Theme) {
	if !theme.Valid() {
		logging.FromContext(ctx).Warn().
			Err(entity.NewThemeError("set", entity.ErrInvalidTheme, nil)).
			Str("theme", theme.String()).
			Msg("ignoring invalid theme")
		return
	}

	m.opMu.Lock()
	prev, next := m.setExplicitLocked(ctx, theme)
	m.opMu.Unlock()

	m.notifyIfChanged(prev, next)
}

// ToggleTheme switches to the opposite of the current value as an explicit choice.
func (m *Manager) ToggleTheme(ctx context.Context) {
	m.opMu.Lock()
	prev, next := m.setExplicitLocked(ctx, m.Theme().Opposite())
	m.opMu.Unlock()

	m.notifyIfChanged(prev, next)
}

// ClearTheme forgets the explicit choice and resolves again from the
// system preference or the default. System events apply again afterwards.
func (m *Manager) ClearTheme(ctx context.Context) {
	log := logging.FromContext(ctx)

	m.opMu.Lock()
	if m.slot != nil {
		if err := safeCall(func() error { return m.slot.Clear(ctx) }); err != nil {
			log.Warn().
				Err(entity.NewThemeError("clear", entity.ErrPersistenceUnavailable, err)).
				Msg("failed to clear persisted theme")
		}
	}

	next := m.resolveSystemOrDefault(ctx)
	prev := m.swap(next)
	m.apply(ctx, next.Value, m.Palettes())
	m.opMu.Unlock()

	log.Info().
		Str("theme", next.Value.String()).
		Str("source", next.Source.String()).
		Msg("explicit theme cleared")

	m.notifyIfChanged(prev, next)
}

// UpdatePalettes replaces both palettes and re-applies the current theme.
func (m *Manager) UpdatePalettes(ctx context.Context, palettes Palettes) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.Lock()
	m.palettes = palettes
	theme := m.pref.Value
	m.mu.Unlock()

	m.apply(ctx, theme, palettes)
	logging.FromContext(ctx).Debug().Msg("theme palettes updated")
}

// OnChange registers a callback invoked after the value or its source changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback func(entity.ThemePreference)) func() {
	if callback == nil {
		return func() {}
	}

	m.mu.Lock()
	m.nextID++
	id := m.nextID
	m.callbacks = append(m.callbacks, changeCallback{id: id, fn: callback})
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, cb := range m.callbacks {
			if cb.id == id {
				m.callbacks = append(m.callbacks[:i], m.callbacks[i+1:]...)
				return
			}
		}
	}
}

// SubscribeToSystemPreference starts watcher and routes its notifications
// through the event loop. A notification changes the theme only while the
// current value is not an explicit choice.
//
// The returned disposer stops the watcher and drops notifications that are
// queued but not yet run. It is safe to call more than once.
func (m *Manager) SubscribeToSystemPreference(ctx context.Context, watcher port.SystemSchemeWatcher) (func(), error) {
	if watcher == nil {
		return nil, entity.NewThemeError("subscribe", entity.ErrPreferenceQueryUnavailable, errNilWatcher)
	}

	log := logging.FromContext(ctx)
	coalescer := mainloop.NewCoalescer(m.post)
	var active atomic.Bool
	active.Store(true)

	stop, err := watcher.Watch(ctx, func(prefersDark bool) {
		if !active.Load() {
			return
		}
		coalescer.Post(systemEventKey, func() {
			if !active.Load() {
				return
			}
			m.handleSystemEvent(ctx, prefersDark, watcher.Name())
		})
	})
	if err != nil {
		coalescer.Destroy()
		return nil, entity.NewThemeError("subscribe", entity.ErrPreferenceQueryUnavailable, err)
	}

	m.mu.Lock()
	m.nextID++
	id := m.nextID
	var once sync.Once
	dispose := func() {
		once.Do(func() {
			active.Store(false)
			coalescer.Destroy()
			if stop != nil {
				stop()
			}
			m.mu.Lock()
			delete(m.subscriptions, id)
			m.mu.Unlock()
			log.Debug().Str("watcher", watcher.Name()).Msg("system preference subscription disposed")
		})
	}
	closed := m.closed
	if !closed {
		m.subscriptions[id] = dispose
	}
	m.mu.Unlock()

	if closed {
		dispose()
		return dispose, nil
	}

	log.Debug().Str("watcher", watcher.Name()).Msg("subscribed to system color scheme")
	return dispose, nil
}

// StartTransitions enables animated transitions on the surface after the
// configured delay. Call it once the first apply is visible.
func (m *Manager) StartTransitions(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || m.transitionTimer != nil || m.surface == nil {
		return
	}

	m.transitionTimer = time.AfterFunc(m.transitionDelay, func() {
		m.post(func() { m.enableTransitions(ctx) })
	})
}

func (m *Manager) enableTransitions(ctx context.Context) {
	m.mu.Lock()
	if m.closed || m.transitionsActive {
		m.mu.Unlock()
		return
	}
	m.transitionsActive = true
	m.mu.Unlock()

	if err := safeCall(func() error { return m.surface.SetTransitions(ctx, true) }); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to enable theme transitions")
		return
	}
	logging.FromContext(ctx).Debug().Msg("theme transitions enabled")
}

// Close cancels the pending transition timer, disposes every system
// subscription and disables transitions. Safe to call more than once.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	if m.transitionTimer != nil {
		m.transitionTimer.Stop()
	}
	wasActive := m.transitionsActive
	m.transitionsActive = false
	disposers := make([]func(), 0, len(m.subscriptions))
	for _, dispose := range m.subscriptions {
		disposers = append(disposers, dispose)
	}
	m.mu.Unlock()

	for _, dispose := range disposers {
		dispose()
	}

	if wasActive {
		if err := safeCall(func() error { return m.surface.SetTransitions(m.ctx, false) }); err != nil {
			logging.FromContext(m.ctx).Warn().Err(err).Msg("failed to disable theme transitions")
		}
	}
}

func (m *Manager) handleSystemEvent(ctx context.Context, prefersDark bool, watcherName string) {
	log := logging.FromContext(ctx)

	m.opMu.Lock()
	m.mu.RLock()
	current := m.pref
	closed := m.closed
	m.mu.RUnlock()

	if closed {
		m.opMu.Unlock()
		return
	}
	if current.IsExplicit() {
		m.opMu.Unlock()
		log.Debug().
			Bool("prefers_dark", prefersDark).
			Str("theme", current.Value.String()).
			Msg("system color scheme change ignored, explicit theme set")
		return
	}

	next := entity.ThemePreference{
		Value:     entity.ThemeFromDark(prefersDark),
		Source:    entity.SourceSystemDetected,
		Detector:  watcherName,
		UpdatedAt: m.clock(),
	}
	// Same value from another mechanism is not a change.
	if current.Source == entity.SourceSystemDetected && current.Value == next.Value {
		m.opMu.Unlock()
		return
	}

	m.swap(next)
	m.apply(ctx, next.Value, m.Palettes())
	m.opMu.Unlock()

	log.Info().
		Str("theme", next.Value.String()).
		Str("watcher", watcherName).
		Msg("system color scheme changed")

	m.notifyIfChanged(current, next)
}

// setExplicitLocked must be called with opMu held.
func (m *Manager) setExplicitLocked(ctx context.Context, theme entity.Theme) (prev, next entity.ThemePreference) {
	log := logging.FromContext(ctx)

	next = entity.ThemePreference{
		Value:     theme,
		Source:    entity.SourceUserExplicit,
		UpdatedAt: m.clock(),
	}
	prev = m.swap(next)

	if m.slot != nil {
		if err := safeCall(func() error { return m.slot.Save(ctx, theme.String()) }); err != nil {
			log.Warn().
				Err(entity.NewThemeError("save", entity.ErrPersistenceUnavailable, err)).
				Str("theme", theme.String()).
				Msg("failed to persist theme, keeping in-memory value")
		}
	}

	m.apply(ctx, theme, m.Palettes())

	log.Info().Str("theme", theme.String()).Msg("theme set")
	return prev, next
}

func (m *Manager) swap(next entity.ThemePreference) entity.ThemePreference {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := m.pref
	m.pref = next
	return prev
}

func (m *Manager) loadPersisted(ctx context.Context) (entity.ThemePreference, bool) {
	if m.slot == nil {
		return entity.ThemePreference{}, false
	}
	log := logging.FromContext(ctx)

	var (
		raw     string
		present bool
	)
	err := safeCall(func() error {
		var loadErr error
		raw, present, loadErr = m.slot.Load(ctx)
		return loadErr
	})
	if err != nil {
		log.Warn().
			Err(entity.NewThemeError("load", entity.ErrPersistenceUnavailable, err)).
			Msg("failed to read persisted theme")
	}
	if !present {
		return entity.ThemePreference{}, false
	}

	theme, ok := entity.ParseTheme(raw)
	if !ok {
		log.Warn().Str("value", raw).Msg("ignoring malformed persisted theme")
		return entity.ThemePreference{}, false
	}

	return entity.ThemePreference{
		Value:     theme,
		Source:    entity.SourceUserExplicit,
		UpdatedAt: m.clock(),
	}, true
}

// loadApplied reads the theme already on the display. Failures fall through.
func (m *Manager) loadApplied(ctx context.Context, reader port.AppliedThemeReader) (entity.Theme, bool) {
	var (
		theme entity.Theme
		ok    bool
	)
	err := safeCall(func() error {
		var err error
		theme, ok, err = reader.AppliedTheme(ctx)
		return err
	})
	if err != nil {
		logging.FromContext(ctx).Warn().
			Err(entity.NewThemeError("restore", entity.ErrDisplayApplyFailure, err)).
			Msg("could not read the applied theme")
		return "", false
	}
	if !ok || !theme.Valid() {
		return "", false
	}
	logging.FromContext(ctx).Debug().Str("theme", theme.String()).Msg("theme restored from display")
	return theme, true
}

func (m *Manager) resolveSystemOrDefault(ctx context.Context) entity.ThemePreference {
	if m.resolver != nil {
		var (
			pref port.ColorSchemePreference
			ok   bool
		)
		err := safeCall(func() error {
			pref, ok = m.resolver.Resolve()
			return nil
		})
		switch {
		case err != nil:
			logging.FromContext(ctx).Warn().
				Err(entity.NewThemeError("detect", entity.ErrPreferenceQueryUnavailable, err)).
				Msg("system color scheme query failed")
		case ok:
			return entity.ThemePreference{
				Value:     entity.ThemeFromDark(pref.PrefersDark),
				Source:    entity.SourceSystemDetected,
				Detector:  pref.Source,
				UpdatedAt: m.clock(),
			}
		default:
			logging.FromContext(ctx).Debug().Msg("no system color scheme available")
		}
	}

	return entity.ThemePreference{
		Value:     m.defaultTheme,
		Source:    entity.SourceDefault,
		UpdatedAt: m.clock(),
	}
}

// apply publishes theme to the surface, falling back to a minimal apply.
func (m *Manager) apply(ctx context.Context, theme entity.Theme, palettes Palettes) {
	if m.surface == nil {
		return
	}
	log := logging.FromContext(ctx)

	state := port.DisplayState{
		Theme:       theme,
		PrefersDark: theme.IsDark(),
		Palette:     palettes.For(theme.IsDark()).ToCSSVarMap(),
		CSSVars:     GenerateCSS(palettes),
	}
	err := safeCall(func() error { return m.surface.Apply(ctx, state) })
	if err == nil {
		return
	}

	log.Warn().
		Err(entity.NewThemeError("apply", entity.ErrDisplayApplyFailure, err)).
		Str("theme", theme.String()).
		Msg("display apply failed, using minimal apply")

	if err := safeCall(func() error { return m.surface.ApplyMinimal(ctx, theme) }); err != nil {
		log.Error().
			Err(entity.NewThemeError("apply-minimal", entity.ErrDisplayApplyFailure, err)).
			Str("theme", theme.String()).
			Msg("minimal display apply failed")
	}
}

func (m *Manager) notifyIfChanged(prev, next entity.ThemePreference) {
	if prev.Equal(next) {
		return
	}

	m.mu.RLock()
	callbacks := make([]changeCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.RUnlock()

	for _, cb := range callbacks {
		if err := safeCall(func() error { cb.fn(next); return nil }); err != nil {
			logging.FromContext(m.ctx).Error().Err(err).Msg("theme change callback failed")
		}
	}
}

func safeCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
