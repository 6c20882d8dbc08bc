package colorscheme

import (
	"context"
	"time"
)

const (
	detectorNamePortal = "portal"
	priorityPortal     = 100
	portalCallTimeout  = time.Second
)

// portalReader reads the raw portal color-scheme value.
type portalReader interface {
	ReadColorScheme(ctx context.Context) (uint32, error)
}

// PortalDetector reads org.freedesktop.appearance color-scheme from the Settings portal.
// Works on GNOME, KDE and wlroots desktops that ship xdg-desktop-portal.
type PortalDetector struct {
	client portalReader
}

// NewPortalDetector creates a detector backed by the given portal client.
func NewPortalDetector(client *PortalClient) *PortalDetector {
	if client == nil {
		return &PortalDetector{}
	}
	return &PortalDetector{client: client}
}

// Name implements port.ColorSchemeDetector.
func (*PortalDetector) Name() string {
	return detectorNamePortal
}

// Priority implements port.ColorSchemeDetector.
func (*PortalDetector) Priority() int {
	return priorityPortal
}

// Available implements port.ColorSchemeDetector.
// Availability is only known after a call, so Detect reports failures itself.
func (d *PortalDetector) Available() bool {
	return d.client != nil
}

// Detect implements port.ColorSchemeDetector.
func (d *PortalDetector) Detect() (prefersDark, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), portalCallTimeout)
	defer cancel()

	value, err := d.client.ReadColorScheme(ctx)
	if err != nil {
		return false, false
	}
	return colorSchemeFromPortal(value)
}
