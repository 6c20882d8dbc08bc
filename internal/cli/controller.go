package cli

import (
	"context"

	"github.com/teampw/themestore/internal/domain/entity"
	"github.com/teampw/themestore/internal/logging"
	"github.com/teampw/themestore/internal/ui/mainloop"
	"github.com/teampw/themestore/internal/ui/theme"
)

// LoopController runs theme mutations on the event loop, so they are ordered
// with the system notifications the manager posts there. Reads go straight
// to the manager.
type LoopController struct {
	manager *theme.Manager
	loop    *mainloop.Loop
}

// NewLoopController wraps manager. The loop must be running; calls made
// after it stops are dropped.
func NewLoopController(manager *theme.Manager, loop *mainloop.Loop) *LoopController {
	return &LoopController{manager: manager, loop: loop}
}

// Controller returns a loop-backed controller for interactive views.
func (a *App) Controller() *LoopController {
	return NewLoopController(a.Theme, a.Loop)
}

func (c *LoopController) Preference() entity.ThemePreference {
	return c.manager.Preference()
}

func (c *LoopController) CurrentPalette() theme.Palette {
	return c.manager.CurrentPalette()
}

func (c *LoopController) SetTheme(ctx context.Context, value entity.Theme) {
	c.invoke(ctx, "set", func() { c.manager.SetTheme(ctx, value) })
}

func (c *LoopController) ToggleTheme(ctx context.Context) {
	c.invoke(ctx, "toggle", func() { c.manager.ToggleTheme(ctx) })
}

func (c *LoopController) ClearTheme(ctx context.Context) {
	c.invoke(ctx, "clear", func() { c.manager.ClearTheme(ctx) })
}

func (c *LoopController) invoke(ctx context.Context, op string, fn func()) {
	if !c.loop.Invoke(fn) {
		logging.FromContext(ctx).Warn().Str("op", op).Msg("event loop stopped, theme change dropped")
	}
}
