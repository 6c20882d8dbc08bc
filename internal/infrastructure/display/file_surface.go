// Package display publishes the resolved theme to its consumers.
package display

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/teampw/themestore/internal/application/port"
	"github.com/teampw/themestore/internal/domain/entity"
	"github.com/teampw/themestore/internal/logging"
)

// Files written into the display directory.
const (
	ThemeFile       = "theme"
	StylesheetFile  = "theme.css"
	TransitionsFile = "transitions"

	dirPerm  = 0o755
	filePerm = 0o644
)

// Compile-time interface checks.
var (
	_ port.DisplaySurface     = (*FileSurface)(nil)
	_ port.AppliedThemeReader = (*FileSurface)(nil)
)

// FileSurface writes the theme contract to a directory:
//
//	theme        "light" or "dark", one line
//	theme.css    CSS custom properties for both palettes plus color-scheme
//	transitions  present while animated transitions are enabled
//
// Every file is replaced atomically so readers never see a partial write.
type FileSurface struct {
	dir string
}

// NewFileSurface creates a surface writing into dir.
func NewFileSurface(dir string) *FileSurface {
	return &FileSurface{dir: dir}
}

// Dir returns the output directory.
func (s *FileSurface) Dir() string {
	return s.dir
}

// Apply implements port.DisplaySurface.
func (s *FileSurface) Apply(ctx context.Context, state port.DisplayState) error {
	if !state.Theme.Valid() {
		return fmt.Errorf("file surface: %w: %q", entity.ErrInvalidTheme, state.Theme)
	}
	log := logging.FromContext(ctx)

	// Stylesheet first: a consumer reacting to the flag change then finds matching CSS.
	if err := s.write(StylesheetFile, stylesheet(state)); err != nil {
		return err
	}
	if err := s.write(ThemeFile, state.Theme.String()+"\n"); err != nil {
		return err
	}

	log.Debug().Str("dir", s.dir).Str("theme", state.Theme.String()).Msg("display files written")
	return nil
}

// ApplyMinimal implements port.DisplaySurface. Only the flag file is written.
func (s *FileSurface) ApplyMinimal(_ context.Context, theme entity.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("file surface: %w: %q", entity.ErrInvalidTheme, theme)
	}
	return s.write(ThemeFile, theme.String()+"\n")
}

// SetTransitions implements port.DisplaySurface.
func (s *FileSurface) SetTransitions(_ context.Context, enabled bool) error {
	if enabled {
		return s.write(TransitionsFile, "theme-transition\n")
	}
	err := os.Remove(filepath.Join(s.dir, TransitionsFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("file surface: disable transitions: %w", err)
	}
	return nil
}

// AppliedTheme implements port.AppliedThemeReader by reading the flag file back.
// A missing or malformed file is not an error.
func (s *FileSurface) AppliedTheme(_ context.Context) (entity.Theme, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, ThemeFile))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("file surface: read %s: %w", ThemeFile, err)
	}
	theme, ok := entity.ParseTheme(string(data))
	return theme, ok, nil
}

// stylesheet combines both palettes with the active color-scheme and data attributes.
func stylesheet(state port.DisplayState) string {
	var sb strings.Builder
	sb.WriteString("/* themestore: " + state.Theme.String() + " */\n")
	if state.CSSVars != "" {
		sb.WriteString(state.CSSVars)
		if !strings.HasSuffix(state.CSSVars, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, ":root {\n  color-scheme: %s;\n}\n", state.Theme)
	fmt.Fprintf(&sb, ":root[data-theme=%q], :root[data-color-scheme=%q] {\n  color-scheme: %s;\n}\n",
		state.Theme, state.Theme, state.Theme)
	return sb.String()
}

func (s *FileSurface) write(name, content string) error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("file surface: create %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("file surface: write %s: %w", name, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("file surface: write %s: %w", name, err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("file surface: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file surface: write %s: %w", name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("file surface: write %s: %w", name, err)
	}
	return nil
}
