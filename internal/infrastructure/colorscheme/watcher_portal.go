package colorscheme

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/teampw/themestore/internal/application/port"
	"github.com/teampw/themestore/internal/logging"
)

const watcherNamePortal = "portal"

// Compile-time interface check.
var _ port.SystemSchemeWatcher = (*PortalWatcher)(nil)

// PortalWatcher delivers color-scheme changes from the Settings portal SettingChanged signal.
type PortalWatcher struct {
	client *PortalClient
}

// NewPortalWatcher creates a watcher sharing the client's bus connection.
func NewPortalWatcher(client *PortalClient) *PortalWatcher {
	return &PortalWatcher{client: client}
}

// Name implements port.SystemSchemeWatcher.
func (*PortalWatcher) Name() string {
	return watcherNamePortal
}

// Watch implements port.SystemSchemeWatcher.
func (w *PortalWatcher) Watch(ctx context.Context, onChange func(prefersDark bool)) (func(), error) {
	log := logging.FromContext(ctx)

	if w.client == nil {
		return nil, fmt.Errorf("portal watcher: no client")
	}
	conn, err := w.client.connection()
	if err != nil {
		return nil, fmt.Errorf("portal watcher: %w", err)
	}

	matchRule := fmt.Sprintf(
		"type='signal',interface='%s',member='SettingChanged',path='%s',arg0='%s'",
		settingsInterface, portalPath, appearanceNamespace,
	)
	if err := conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.AddMatch", 0, matchRule).Err; err != nil {
		return nil, fmt.Errorf("portal watcher: add match: %w", err)
	}

	signals := make(chan *dbus.Signal, 8)
	conn.Signal(signals)

	stopCh := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			select {
			case sig, ok := <-signals:
				if !ok {
					return
				}
				prefersDark, valid := parseSettingChanged(sig)
				if !valid {
					continue
				}
				log.Debug().Bool("prefers_dark", prefersDark).Msg("portal: color-scheme changed")
				onChange(prefersDark)
			case <-stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			close(stopCh)
			<-done
			conn.RemoveSignal(signals)
			_ = conn.BusObject().Call("org.freedesktop.DBus.RemoveMatch", 0, matchRule).Err
		})
	}

	log.Debug().Msg("portal: watching color-scheme changes")
	return stop, nil
}
