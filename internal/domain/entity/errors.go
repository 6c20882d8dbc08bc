package entity

import (
	"errors"
	"fmt"
)

// Failure kinds of the theme subsystem. None of them is fatal: each is
// recovered by falling back to the next source or a reduced apply.
var (
	ErrPersistenceUnavailable     = errors.New("theme persistence unavailable")
	ErrPreferenceQueryUnavailable = errors.New("system color scheme query unavailable")
	ErrDisplayApplyFailure        = errors.New("theme display apply failed")
	ErrInvalidTheme               = errors.New("invalid theme value")
)

// ThemeError describes a failed theme operation.
type ThemeError struct {
	Op   string // e.g. "load", "save", "detect", "apply"
	Kind error  // one of the Err* sentinels above
	Err  error
}

// NewThemeError constructs a ThemeError.
func NewThemeError(op string, kind, err error) error {
	return &ThemeError{Op: op, Kind: kind, Err: err}
}

func (e *ThemeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ThemeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the failure kind so callers can use errors.Is with the sentinels.
func (e *ThemeError) Is(target error) bool {
	if e == nil {
		return false
	}
	return e.Kind == target
}
