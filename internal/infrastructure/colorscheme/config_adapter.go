package colorscheme

import (
	"strings"
	"time"

	"github.com/teampw/themestore/internal/infrastructure/config"
)

// Detector names accepted in system.detectors.
const (
	DetectorOverride  = "override"
	DetectorPortal    = "portal"
	DetectorGsettings = "gsettings"
	DetectorMacOS     = "macos"
	DetectorGTKTheme  = "gtk-theme"
	DetectorTerminal  = "terminal"
)

// AllDetectors lists every detector name in default order.
var AllDetectors = []string{
	DetectorOverride,
	DetectorPortal,
	DetectorGsettings,
	DetectorMacOS,
	DetectorGTKTheme,
	DetectorTerminal,
}

// System bundles the resolver and change watcher built from configuration.
type System struct {
	Resolver *Resolver
	Watcher  *FallbackWatcher

	portal *PortalClient
}

// NewFromConfig builds detectors and a watcher from the system section.
// An empty detector list enables all of them. Unknown names are ignored.
func NewFromConfig(cfg config.SystemConfig) *System {
	names := cfg.Detectors
	if len(names) == 0 {
		names = AllDetectors
	}

	sys := &System{Resolver: NewResolver()}
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case DetectorOverride:
			sys.Resolver.RegisterDetector(NewOverrideDetector())
		case DetectorPortal:
			if sys.portal == nil {
				sys.portal = NewPortalClient()
			}
			sys.Resolver.RegisterDetector(NewPortalDetector(sys.portal))
		case DetectorGsettings:
			sys.Resolver.RegisterDetector(NewGsettingsDetector())
		case DetectorMacOS:
			sys.Resolver.RegisterDetector(NewMacOSDetector())
		case DetectorGTKTheme:
			sys.Resolver.RegisterDetector(NewEnvDetector())
		case DetectorTerminal:
			sys.Resolver.RegisterDetector(NewTerminalDetector())
		}
	}

	interval := time.Duration(cfg.PollIntervalMs) * time.Millisecond
	poll := NewPollWatcher(sys.Resolver, interval)
	if sys.portal != nil {
		sys.Watcher = NewFallbackWatcher(NewPortalWatcher(sys.portal), poll)
	} else {
		sys.Watcher = NewFallbackWatcher(poll)
	}
	return sys
}

// Close releases the portal connection, if one was opened.
func (s *System) Close() error {
	if s == nil || s.portal == nil {
		return nil
	}
	return s.portal.Close()
}
