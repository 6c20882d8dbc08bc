package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGo        = "\ue627" // go gopher
	IconGithub    = "\uf09b" // github

	// Theme
	IconSun     = "\uf185" // sun
	IconMoon    = "\uf186" // moon
	IconDesktop = "\uf108" // desktop
	IconUser    = "\uf007" // user
	IconDefault = "\uf192" // dot-circle

	// Diagnostics
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconInfo     = "\uf05a" // info
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconSignal   = "\uf012" // signal

	// UI
	IconCursor = "\uf054" // chevron-right
)

// ThemeIcon returns the sun or moon icon.
func ThemeIcon(dark bool) string {
	if dark {
		return IconMoon
	}
	return IconSun
}
