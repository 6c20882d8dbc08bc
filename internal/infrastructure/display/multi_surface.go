package display

import (
	"context"
	"errors"
	"fmt"

	"github.com/teampw/themestore/internal/application/port"
	"github.com/teampw/themestore/internal/domain/entity"
	"github.com/teampw/themestore/internal/infrastructure/config"
)

// Compile-time interface check.
var _ port.DisplaySurface = (MultiSurface)(nil)

// MultiSurface fans every call out to all surfaces.
// A failing surface does not stop the others; errors are joined.
type MultiSurface []port.DisplaySurface

// Apply implements port.DisplaySurface.
func (m MultiSurface) Apply(ctx context.Context, state port.DisplayState) error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Apply(ctx, state))
	}
	return errors.Join(errs...)
}

// ApplyMinimal implements port.DisplaySurface.
func (m MultiSurface) ApplyMinimal(ctx context.Context, theme entity.Theme) error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.ApplyMinimal(ctx, theme))
	}
	return errors.Join(errs...)
}

// SetTransitions implements port.DisplaySurface.
func (m MultiSurface) SetTransitions(ctx context.Context, enabled bool) error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.SetTransitions(ctx, enabled))
	}
	return errors.Join(errs...)
}

// Surfaces is the display set built from configuration.
type Surfaces struct {
	All      MultiSurface
	File     *FileSurface
	Terminal *TerminalSurface
}

// NewFromConfig builds the surfaces listed in display.backends.
// withTerminal forces a terminal surface for interactive commands.
func NewFromConfig(cfg config.DisplayConfig, withTerminal bool) (*Surfaces, error) {
	out := &Surfaces{}
	for _, backend := range cfg.Backends {
		switch backend {
		case config.DisplayFile:
			if out.File == nil {
				out.File = NewFileSurface(cfg.Dir)
				out.All = append(out.All, out.File)
			}
		case config.DisplayTerminal:
			withTerminal = true
		default:
			return nil, fmt.Errorf("unknown display backend %q", backend)
		}
	}
	if withTerminal {
		out.Terminal = NewTerminalSurface()
		out.All = append(out.All, out.Terminal)
	}
	return out, nil
}
