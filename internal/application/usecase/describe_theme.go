package usecase

import (
	"context"
	"fmt"

	"github.com/teampw/themestore/internal/application/port"
	"github.com/teampw/themestore/internal/domain/entity"
	"github.com/teampw/themestore/internal/logging"
)

// DescribeThemeUseCase reports the resolved theme together with every input
// that took part in resolving it.
type DescribeThemeUseCase struct {
	theme     port.ThemeReader
	slot      port.ThemeSlot
	detectors []port.ColorSchemeDetector
}

// NewDescribeThemeUseCase creates a new DescribeThemeUseCase.
// detectors are reported in the order given.
func NewDescribeThemeUseCase(
	theme port.ThemeReader,
	slot port.ThemeSlot,
	detectors []port.ColorSchemeDetector,
) *DescribeThemeUseCase {
	return &DescribeThemeUseCase{
		theme:     theme,
		slot:      slot,
		detectors: detectors,
	}
}

// DescribeThemeInput contains input parameters for the report.
type DescribeThemeInput struct {
	// Watcher names the active system notification mechanism, if any.
	Watcher string
	// Backend names the persistence backend.
	Backend string
}

// DetectorStatus is the result of one detector.
type DetectorStatus struct {
	Name        string `json:"name" yaml:"name"`
	Priority    int    `json:"priority" yaml:"priority"`
	Available   bool   `json:"available" yaml:"available"`
	Detected    bool   `json:"detected" yaml:"detected"`
	PrefersDark bool   `json:"prefers_dark" yaml:"prefers_dark"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}

// PersistedStatus describes the persisted theme slot.
type PersistedStatus struct {
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty"`
	Present bool   `json:"present" yaml:"present"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// DescribeThemeOutput is the full theme report.
type DescribeThemeOutput struct {
	Theme     entity.Theme       `json:"theme" yaml:"theme"`
	Source    entity.ThemeSource `json:"source" yaml:"source"`
	Detector  string             `json:"detector,omitempty" yaml:"detector,omitempty"`
	Watcher   string             `json:"watcher,omitempty" yaml:"watcher,omitempty"`
	Persisted PersistedStatus    `json:"persisted" yaml:"persisted"`
	Detectors []DetectorStatus   `json:"detectors" yaml:"detectors"`
}

// Execute builds the report. Failing inputs are described, not returned as errors.
func (uc *DescribeThemeUseCase) Execute(ctx context.Context, input DescribeThemeInput) (*DescribeThemeOutput, error) {
	if uc.theme == nil {
		return nil, fmt.Errorf("theme reader is nil")
	}
	log := logging.FromContext(ctx)

	pref := uc.theme.Preference()
	out := &DescribeThemeOutput{
		Theme:     pref.Value,
		Source:    pref.Source,
		Detector:  pref.Detector,
		Watcher:   input.Watcher,
		Persisted: PersistedStatus{Backend: input.Backend},
		Detectors: make([]DetectorStatus, 0, len(uc.detectors)),
	}

	if uc.slot != nil {
		raw, ok, err := uc.slot.Load(ctx)
		if err != nil {
			out.Persisted.Error = err.Error()
			log.Debug().Err(err).Msg("persisted theme unavailable")
		}
		if ok {
			_, valid := entity.ParseTheme(raw)
			out.Persisted.Present = true
			out.Persisted.Value = raw
			out.Persisted.Valid = valid
		}
	}

	for _, d := range uc.detectors {
		out.Detectors = append(out.Detectors, checkDetector(d))
	}

	return out, nil
}

func checkDetector(d port.ColorSchemeDetector) (status DetectorStatus) {
	status = DetectorStatus{Name: d.Name(), Priority: d.Priority()}
	defer func() {
		if r := recover(); r != nil {
			status.Detected = false
			status.Error = fmt.Sprintf("panic: %v", r)
		}
	}()

	status.Available = d.Available()
	if !status.Available {
		return status
	}
	status.PrefersDark, status.Detected = d.Detect()
	return status
}
