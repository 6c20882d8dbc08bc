package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teampw/themestore/internal/application/usecase"
	"github.com/teampw/themestore/internal/cli/styles"
	"github.com/teampw/themestore/internal/domain/entity"
	"github.com/teampw/themestore/internal/ui/theme"
)

func testTheme() *styles.Theme {
	return styles.NewTheme(theme.DefaultDarkPalette(), true)
}

func TestStatusRenderer_Render(t *testing.T) {
	r := styles.NewStatusRenderer(testTheme())

	out := r.Render(&usecase.DescribeThemeOutput{
		Theme:    entity.ThemeDark,
		Source:   entity.SourceSystemDetected,
		Detector: "portal",
		Watcher:  "portal",
		Persisted: usecase.PersistedStatus{
			Backend: "sqlite",
			Present: true,
			Value:   "blue",
		},
		Detectors: []usecase.DetectorStatus{
			{Name: "portal", Priority: 100, Available: true, Detected: true, PrefersDark: true},
			{Name: "gsettings", Priority: 50, Available: false},
			{Name: "terminal", Priority: 10, Available: true},
		},
	})

	assert.Contains(t, out, "dark")
	assert.Contains(t, out, "system (portal)")
	assert.Contains(t, out, "sqlite")
	assert.Contains(t, out, `"blue" (ignored)`)
	assert.Contains(t, out, "unavailable")
	assert.Contains(t, out, "no preference")
	assert.Contains(t, out, "Watcher")
}

func TestStatusRenderer_RenderNil(t *testing.T) {
	assert.Empty(t, styles.NewStatusRenderer(testTheme()).Render(nil))
}

func TestSourceLabel(t *testing.T) {
	assert.Equal(t, "explicit choice", styles.SourceLabel(entity.SourceUserExplicit, ""))
	assert.Equal(t, "system", styles.SourceLabel(entity.SourceSystemDetected, ""))
	assert.Equal(t, "default", styles.SourceLabel(entity.SourceDefault, ""))
	assert.Equal(t, styles.IconUser, styles.SourceIcon(entity.SourceUserExplicit))
}

func TestNewTheme_UsesPalette(t *testing.T) {
	th := styles.NewTheme(theme.DefaultLightPalette(), false)

	assert.False(t, th.Dark)
	assert.Equal(t, "#ffffff", string(th.Background))
	assert.Equal(t, "#18181b", string(th.Text))
	assert.Equal(t, styles.IconSun, styles.ThemeIcon(th.Dark))
}

func TestConfigRenderer(t *testing.T) {
	r := styles.NewConfigRenderer(testTheme())

	assert.Contains(t, r.RenderPath("/tmp/config.toml", false), "config init")
	assert.Contains(t, r.RenderInit("/tmp/config.toml", "/tmp/schema.json", true), "/tmp/schema.json")
	assert.Contains(t, r.RenderInit("/tmp/config.toml", "", false), "--force")
}
