// Package model contains the Bubble Tea models of the CLI.
package model

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/teampw/themestore/internal/cli/styles"
	"github.com/teampw/themestore/internal/domain/entity"
	"github.com/teampw/themestore/internal/ui/theme"
)

// ThemeController is the part of the theme manager the control uses.
type ThemeController interface {
	Preference() entity.ThemePreference
	CurrentPalette() theme.Palette
	SetTheme(ctx context.Context, value entity.Theme)
	ToggleTheme(ctx context.Context)
	ClearTheme(ctx context.Context)
}

// ThemeChangedMsg reports a theme change made outside the model.
type ThemeChangedMsg entity.ThemePreference

// DisplayAppliedMsg reports that the display was re-applied, for example
// after a palette reload. The model rebuilds its styles.
type DisplayAppliedMsg struct{}

// ThemeModel is the interactive light/dark settings control.
type ThemeModel struct {
	ctx    context.Context
	ctrl   ThemeController
	keys   styles.ThemeKeyMap
	help   help.Model
	theme  *styles.Theme
	pref   entity.ThemePreference
	width  int
	quit   bool
	status string
}

// NewThemeModel creates the control for ctrl.
func NewThemeModel(ctx context.Context, ctrl ThemeController) ThemeModel {
	m := ThemeModel{
		ctx:  ctx,
		ctrl: ctrl,
		keys: styles.DefaultThemeKeyMap(),
	}
	return m.sync()
}

// Init implements tea.Model.
func (ThemeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ThemeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case ThemeChangedMsg:
		// Our own key presses are echoed back here too.
		prev := m.pref.Value
		m = m.sync()
		if msg.Source == entity.SourceSystemDetected && msg.Value != prev {
			m.status = "system preference changed"
		}
		return m, nil

	case DisplayAppliedMsg:
		return m.sync(), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m ThemeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		m.ctrl.ToggleTheme(m.ctx)
		m.status = ""
	case key.Matches(msg, m.keys.Light):
		m.ctrl.SetTheme(m.ctx, entity.ThemeLight)
		m.status = ""
	case key.Matches(msg, m.keys.Dark):
		m.ctrl.SetTheme(m.ctx, entity.ThemeDark)
		m.status = ""
	case key.Matches(msg, m.keys.Clear):
		m.ctrl.ClearTheme(m.ctx)
		m.status = "following system preference"
	default:
		return m, nil
	}
	return m.sync(), nil
}

// sync reads the controller state and rebuilds the styles from its palette.
func (m ThemeModel) sync() ThemeModel {
	m.pref = m.ctrl.Preference()
	m.theme = styles.NewTheme(m.ctrl.CurrentPalette(), m.pref.Value.IsDark())

	width := m.help.Width
	showAll := m.help.ShowAll
	m.help = styles.NewStyledHelp(m.theme)
	m.help.Width = width
	m.help.ShowAll = showAll
	return m
}

// Preference returns the preference shown by the model.
func (m ThemeModel) Preference() entity.ThemePreference {
	return m.pref
}

// Quitting reports whether the user asked to quit.
func (m ThemeModel) Quitting() bool {
	return m.quit
}

// View implements tea.Model.
func (m ThemeModel) View() string {
	if m.quit {
		return ""
	}

	t := m.theme
	option := func(value entity.Theme, label string) string {
		text := styles.ThemeIcon(value.IsDark()) + " " + label
		if m.pref.Value == value {
			return t.ActiveOption.Render(text)
		}
		return t.InactiveOption.Render(text)
	}

	var sb strings.Builder
	sb.WriteString(t.BoxHeader.Render("Appearance"))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		option(entity.ThemeLight, "Light"), " ", option(entity.ThemeDark, "Dark")))
	sb.WriteString("\n\n")
	sb.WriteString(t.Subtle.Render(styles.SourceIcon(m.pref.Source) + " " + styles.SourceLabel(m.pref.Source, m.pref.Detector)))
	if m.status != "" {
		sb.WriteString("\n")
		sb.WriteString(t.Highlight.Render(m.status))
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))

	box := t.Box
	if m.width > 0 {
		box = box.Width(min(m.width-2, 60))
	}
	return box.Render(sb.String()) + "\n"
}
