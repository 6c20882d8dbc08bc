package theme

import "strings"

// DarkClass is the class consumers put on the root element while the dark theme is active.
const DarkClass = "dark"

// GenerateCSS returns the variable stylesheet for both palettes.
// Light values live on :root and dark overrides on the .dark class, so a
// consumer switches themes by toggling one class.
func GenerateCSS(p Palettes) string {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	sb.WriteString(p.Light.ToCSSVars())
	sb.WriteString("}\n\n")
	sb.WriteString("." + DarkClass + " {\n")
	sb.WriteString(p.Dark.ToCSSVars())
	sb.WriteString("}\n")
	return sb.String()
}
