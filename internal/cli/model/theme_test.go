package model_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teampw/themestore/internal/cli/model"
	"github.com/teampw/themestore/internal/domain/entity"
	"github.com/teampw/themestore/internal/ui/theme"
)

// fakeController mirrors the manager's explicit/clear semantics.
type fakeController struct {
	pref   entity.ThemePreference
	system entity.Theme
}

func (f *fakeController) Preference() entity.ThemePreference { return f.pref }
func (f *fakeController) CurrentPalette() theme.Palette {
	return theme.DefaultPalettes().For(f.pref.Value.IsDark())
}
func (f *fakeController) SetTheme(_ context.Context, v entity.Theme) {
	f.pref = entity.ThemePreference{Value: v, Source: entity.SourceUserExplicit}
}
func (f *fakeController) ToggleTheme(ctx context.Context) { f.SetTheme(ctx, f.pref.Value.Opposite()) }
func (f *fakeController) ClearTheme(context.Context) {
	f.pref = entity.ThemePreference{Value: f.system, Source: entity.SourceSystemDetected, Detector: "portal"}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m model.ThemeModel, msg tea.Msg) (model.ThemeModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	tm, ok := next.(model.ThemeModel)
	require.True(t, ok)
	return tm, cmd
}

func TestThemeModel_Keys(t *testing.T) {
	ctrl := &fakeController{
		pref:   entity.ThemePreference{Value: entity.ThemeLight, Source: entity.SourceDefault},
		system: entity.ThemeDark,
	}
	m := model.NewThemeModel(context.Background(), ctrl)

	m, _ = update(t, m, keyRune('t'))
	assert.Equal(t, entity.ThemeDark, m.Preference().Value)
	assert.True(t, m.Preference().IsExplicit())

	m, _ = update(t, m, keyRune('l'))
	assert.Equal(t, entity.ThemeLight, m.Preference().Value)

	m, _ = update(t, m, keyRune('d'))
	assert.Equal(t, entity.ThemeDark, m.Preference().Value)

	m, _ = update(t, m, keyRune('c'))
	assert.Equal(t, entity.SourceSystemDetected, m.Preference().Source)
	assert.Contains(t, m.View(), "system (portal)")

	// Unbound keys leave state alone
	before := m.Preference()
	m, cmd := update(t, m, keyRune('x'))
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.Preference())
}

func TestThemeModel_Quit(t *testing.T) {
	m := model.NewThemeModel(context.Background(), &fakeController{pref: entity.ThemePreference{Value: entity.ThemeLight}})

	m, cmd := update(t, m, keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Quitting())
	assert.Empty(t, m.View())
}

func TestThemeModel_ExternalChange(t *testing.T) {
	ctrl := &fakeController{pref: entity.ThemePreference{Value: entity.ThemeLight, Source: entity.SourceSystemDetected}}
	m := model.NewThemeModel(context.Background(), ctrl)

	ctrl.pref = entity.ThemePreference{Value: entity.ThemeDark, Source: entity.SourceSystemDetected}
	m, _ = update(t, m, model.ThemeChangedMsg(ctrl.pref))

	assert.Equal(t, entity.ThemeDark, m.Preference().Value)
	assert.Contains(t, m.View(), "system preference changed")
}

func TestThemeModel_EchoedKeyChangeIsNotReportedAsSystem(t *testing.T) {
	ctrl := &fakeController{
		pref:   entity.ThemePreference{Value: entity.ThemeLight, Source: entity.SourceSystemDetected},
		system: entity.ThemeDark,
	}
	m := model.NewThemeModel(context.Background(), ctrl)

	m, _ = update(t, m, keyRune('t'))
	m, _ = update(t, m, model.ThemeChangedMsg(ctrl.Preference()))

	assert.Equal(t, entity.SourceUserExplicit, m.Preference().Source)
	assert.NotContains(t, m.View(), "system preference changed")

	m, _ = update(t, m, keyRune('c'))
	m, _ = update(t, m, model.ThemeChangedMsg(ctrl.Preference()))

	assert.Equal(t, entity.SourceSystemDetected, m.Preference().Source)
	assert.Contains(t, m.View(), "following system preference")
	assert.NotContains(t, m.View(), "system preference changed")
}

func TestThemeModel_View(t *testing.T) {
	m := model.NewThemeModel(context.Background(), &fakeController{pref: entity.ThemePreference{Value: entity.ThemeDark, Source: entity.SourceUserExplicit}})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	assert.Contains(t, view, "Appearance")
	assert.Contains(t, view, "Light")
	assert.Contains(t, view, "Dark")
	assert.Contains(t, view, "explicit choice")
	assert.Contains(t, view, "toggle")
}

func TestThemeModel_DisplayAppliedRebuildsStyles(t *testing.T) {
	ctrl := &fakeController{pref: entity.ThemePreference{Value: entity.ThemeLight, Source: entity.SourceDefault}}
	m := model.NewThemeModel(context.Background(), ctrl)

	ctrl.pref = entity.ThemePreference{Value: entity.ThemeDark, Source: entity.SourceSystemDetected}
	m, cmd := update(t, m, model.DisplayAppliedMsg{})

	assert.Nil(t, cmd)
	assert.Equal(t, entity.ThemeDark, m.Preference().Value)
	assert.NotContains(t, m.View(), "system preference changed")
}
