package port

import "context"

// ColorSchemePreference represents a detected system color scheme preference.
type ColorSchemePreference struct {
	// PrefersDark indicates whether dark mode is preferred.
	PrefersDark bool

	// Source identifies which detector provided this preference.
	Source string
}

// ColorSchemeDetector detects the system's color scheme preference.
// Multiple detectors can be registered with different priorities.
type ColorSchemeDetector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority returns the detector's priority.
	// Higher values = higher priority (checked first).
	// Recommended ranges:
	//   - 100+: Desktop portal
	//   -  50+: Desktop settings tools (gsettings, defaults)
	//   -  10+: Environment and terminal heuristics
	Priority() int

	// Available returns true if this detector can be used in the current environment.
	Available() bool

	// Detect returns the detected preference and whether detection succeeded.
	// Returns (preference, true) on success, (_, false) if unavailable or detection failed.
	Detect() (prefersDark bool, ok bool)
}

// ColorSchemeResolver resolves the system color scheme across registered detectors.
type ColorSchemeResolver interface {
	// Resolve queries detectors by priority and returns the first answer.
	// ok is false when no detector could determine a preference.
	Resolve() (pref ColorSchemePreference, ok bool)

	// RegisterDetector adds a detector to the resolver.
	RegisterDetector(detector ColorSchemeDetector)

	// Refresh re-evaluates the detectors and notifies OnChange callbacks
	// if the dark flag changed since the previous refresh.
	Refresh() (pref ColorSchemePreference, ok bool)

	// OnChange registers a callback for color scheme changes.
	// Returns a function to unregister the callback.
	OnChange(callback func(ColorSchemePreference)) func()
}

// SystemSchemeWatcher delivers operating-system color scheme change notifications.
type SystemSchemeWatcher interface {
	// Name identifies the notification mechanism (for logs and status output).
	Name() string

	// Watch starts delivering notifications to onChange until stop is called
	// or ctx is cancelled. onChange may be invoked from another goroutine.
	// Returns an error when the mechanism is unavailable.
	Watch(ctx context.Context, onChange func(prefersDark bool)) (stop func(), err error)
}
