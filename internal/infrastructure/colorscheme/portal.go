package colorscheme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	portalDest          = "org.freedesktop.portal.Desktop"
	portalPath          = "/org/freedesktop/portal/desktop"
	settingsInterface   = "org.freedesktop.portal.Settings"
	appearanceNamespace = "org.freedesktop.appearance"
	colorSchemeKey      = "color-scheme"
	settingChanged      = settingsInterface + ".SettingChanged"
)

// Portal color-scheme values.
const (
	portalNoPreference uint32 = 0
	portalPreferDark   uint32 = 1
	portalPreferLight  uint32 = 2
)

var errUnexpectedVariant = errors.New("unexpected color-scheme value type")

// busConnector opens a D-Bus session connection.
type busConnector func() (*dbus.Conn, error)

// PortalClient talks to the freedesktop Settings portal over the session bus.
// The connection is opened on first use and shared between detector and watcher.
type PortalClient struct {
	connect busConnector

	mu   sync.Mutex
	conn *dbus.Conn
}

// NewPortalClient creates a client that connects to the session bus lazily.
func NewPortalClient() *PortalClient {
	return &PortalClient{connect: func() (*dbus.Conn, error) {
		return dbus.ConnectSessionBus()
	}}
}

func (c *PortalClient) connection() (*dbus.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return c.conn, nil
	}
	conn, err := c.connect()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	c.conn = conn
	return conn, nil
}

// ReadColorScheme returns the raw portal color-scheme value.
// ReadOne is tried first; older portals only implement the deprecated Read.
func (c *PortalClient) ReadColorScheme(ctx context.Context) (uint32, error) {
	conn, err := c.connection()
	if err != nil {
		return 0, err
	}
	obj := conn.Object(portalDest, portalPath)

	var value dbus.Variant
	err = obj.CallWithContext(ctx, settingsInterface+".ReadOne", 0,
		appearanceNamespace, colorSchemeKey).Store(&value)
	if err != nil {
		readErr := obj.CallWithContext(ctx, settingsInterface+".Read", 0,
			appearanceNamespace, colorSchemeKey).Store(&value)
		if readErr != nil {
			return 0, fmt.Errorf("read %s %s: %w", appearanceNamespace, colorSchemeKey, errors.Join(err, readErr))
		}
	}
	return decodeColorScheme(value)
}

// Close releases the bus connection.
func (c *PortalClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// decodeColorScheme unwraps the (possibly nested) variant returned by the portal.
// Read wraps the value in an extra variant layer; ReadOne does not.
func decodeColorScheme(v dbus.Variant) (uint32, error) {
	value := v.Value()
	for {
		inner, ok := value.(dbus.Variant)
		if !ok {
			break
		}
		value = inner.Value()
	}

	switch n := value.(type) {
	case uint32:
		return n, nil
	case int32:
		if n < 0 {
			return 0, fmt.Errorf("%w: %d", errUnexpectedVariant, n)
		}
		return uint32(n), nil
	case uint8:
		return uint32(n), nil
	default:
		return 0, fmt.Errorf("%w: %T", errUnexpectedVariant, value)
	}
}

// colorSchemeFromPortal maps a portal value to a dark flag.
// "No preference" is reported as not ok so lower-priority detectors can answer.
func colorSchemeFromPortal(value uint32) (prefersDark, ok bool) {
	switch value {
	case portalPreferDark:
		return true, true
	case portalPreferLight:
		return false, true
	default:
		return false, false
	}
}

// parseSettingChanged extracts the dark flag from a SettingChanged signal.
// Inside a change event "no preference" means the user left dark mode, so it maps to light.
func parseSettingChanged(sig *dbus.Signal) (prefersDark, ok bool) {
	if sig == nil || sig.Name != settingChanged || len(sig.Body) < 3 {
		return false, false
	}
	namespace, _ := sig.Body[0].(string)
	key, _ := sig.Body[1].(string)
	if namespace != appearanceNamespace || key != colorSchemeKey {
		return false, false
	}
	variant, isVariant := sig.Body[2].(dbus.Variant)
	if !isVariant {
		return false, false
	}
	value, err := decodeColorScheme(variant)
	if err != nil {
		return false, false
	}
	return value == portalPreferDark, true
}
