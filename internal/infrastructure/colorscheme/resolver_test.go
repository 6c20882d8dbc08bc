package colorscheme

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teampw/themestore/internal/application/port"
)

// mockDetector implements port.ColorSchemeDetector for testing.
type mockDetector struct {
	name        string
	priority    int
	available   bool
	prefersDark bool
	detectOk    bool
}

func (m *mockDetector) Name() string         { return m.name }
func (m *mockDetector) Priority() int        { return m.priority }
func (m *mockDetector) Available() bool      { return m.available }
func (m *mockDetector) Detect() (bool, bool) { return m.prefersDark, m.detectOk }

type panickingDetector struct{}

func (panickingDetector) Name() string         { return "panics" }
func (panickingDetector) Priority() int        { return 1000 }
func (panickingDetector) Available() bool      { return true }
func (panickingDetector) Detect() (bool, bool) { panic("boom") }

func TestResolver_DetectorPriority(t *testing.T) {
	resolver := NewResolver()

	// Register low first, high second (order shouldn't matter)
	resolver.RegisterDetector(&mockDetector{name: "low", priority: 10, available: true, prefersDark: true, detectOk: true})
	resolver.RegisterDetector(&mockDetector{name: "high", priority: 100, available: true, prefersDark: false, detectOk: true})

	pref, ok := resolver.Resolve()

	require.True(t, ok)
	assert.False(t, pref.PrefersDark)
	assert.Equal(t, "high", pref.Source)
}

func TestResolver_SkipsUnavailableDetector(t *testing.T) {
	resolver := NewResolver(
		&mockDetector{name: "unavailable", priority: 100, available: false, detectOk: true},
		&mockDetector{name: "available", priority: 10, available: true, prefersDark: true, detectOk: true},
	)

	pref, ok := resolver.Resolve()

	require.True(t, ok)
	assert.True(t, pref.PrefersDark)
	assert.Equal(t, "available", pref.Source)
}

func TestResolver_SkipsFailedDetection(t *testing.T) {
	resolver := NewResolver(
		&mockDetector{name: "failing", priority: 100, available: true, detectOk: false},
		&mockDetector{name: "succeeding", priority: 10, available: true, prefersDark: true, detectOk: true},
	)

	pref, ok := resolver.Resolve()

	require.True(t, ok)
	assert.True(t, pref.PrefersDark)
	assert.Equal(t, "succeeding", pref.Source)
}

func TestResolver_PanickingDetectorIsSkipped(t *testing.T) {
	resolver := NewResolver(
		panickingDetector{},
		&mockDetector{name: "fallback", priority: 1, available: true, prefersDark: false, detectOk: true},
	)

	pref, ok := resolver.Resolve()

	require.True(t, ok)
	assert.Equal(t, "fallback", pref.Source)
}

func TestResolver_NotOkWhenNoDetectors(t *testing.T) {
	resolver := NewResolver()

	_, ok := resolver.Resolve()

	assert.False(t, ok)
}

func TestResolver_NotOkWhenAllFail(t *testing.T) {
	resolver := NewResolver(
		&mockDetector{name: "fail1", priority: 100, available: true, detectOk: false},
		&mockDetector{name: "fail2", priority: 50, available: false},
	)

	_, ok := resolver.Resolve()

	assert.False(t, ok)
}

func TestResolver_NilDetectorIgnored(t *testing.T) {
	resolver := NewResolver(nil)
	resolver.RegisterDetector(nil)

	assert.Empty(t, resolver.Detectors())
}

func TestResolver_DetectorsSortedByPriority(t *testing.T) {
	resolver := NewResolver(
		&mockDetector{name: "b", priority: 10},
		&mockDetector{name: "a", priority: 100},
		&mockDetector{name: "c", priority: 10},
	)

	var names []string
	for _, d := range resolver.Detectors() {
		names = append(names, d.Name())
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestResolver_Refresh(t *testing.T) {
	detector := &mockDetector{name: "test", priority: 50, available: true, prefersDark: false, detectOk: true}
	resolver := NewResolver(detector)

	pref1, ok := resolver.Refresh()
	require.True(t, ok)
	assert.False(t, pref1.PrefersDark)

	detector.prefersDark = true

	pref2, ok := resolver.Refresh()
	require.True(t, ok)
	assert.True(t, pref2.PrefersDark)
}

func TestResolver_OnChange(t *testing.T) {
	detector := &mockDetector{name: "test", priority: 50, available: true, prefersDark: false, detectOk: true}
	resolver := NewResolver(detector)

	var callbackPref port.ColorSchemePreference
	var callbackCount int
	resolver.OnChange(func(pref port.ColorSchemePreference) {
		callbackPref = pref
		callbackCount++
	})

	// First refresh only establishes the baseline
	resolver.Refresh()
	assert.Equal(t, 0, callbackCount)

	// Same preference - callback should NOT be called
	resolver.Refresh()
	assert.Equal(t, 0, callbackCount)

	detector.prefersDark = true
	resolver.Refresh()
	assert.Equal(t, 1, callbackCount)
	assert.True(t, callbackPref.PrefersDark)
}

func TestResolver_RefreshKeepsStateWhenDetectionFails(t *testing.T) {
	detector := &mockDetector{name: "test", priority: 50, available: true, prefersDark: true, detectOk: true}
	resolver := NewResolver(detector)

	var callbackCount int
	resolver.OnChange(func(port.ColorSchemePreference) { callbackCount++ })

	resolver.Refresh()

	detector.detectOk = false
	_, ok := resolver.Refresh()
	assert.False(t, ok)

	// Detection recovers with the same value: no change reported
	detector.detectOk = true
	resolver.Refresh()
	assert.Equal(t, 0, callbackCount)
}

func TestResolver_OnChangeUnregister(t *testing.T) {
	detector := &mockDetector{name: "test", priority: 50, available: true, prefersDark: false, detectOk: true}
	resolver := NewResolver(detector)

	var callbackCount int
	unregister := resolver.OnChange(func(_ port.ColorSchemePreference) {
		callbackCount++
	})

	resolver.Refresh()
	detector.prefersDark = true
	resolver.Refresh()
	assert.Equal(t, 1, callbackCount)

	unregister()

	detector.prefersDark = false
	resolver.Refresh()
	assert.Equal(t, 1, callbackCount) // Still 1, not 2
}

func TestResolver_ConcurrentAccess(_ *testing.T) {
	resolver := NewResolver(&mockDetector{name: "test", priority: 50, available: true, detectOk: true})

	var wg sync.WaitGroup
	const goroutines = 10

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				resolver.Resolve()
			}
		}()
	}

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				resolver.Refresh()
			}
		}()
	}

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			resolver.RegisterDetector(&mockDetector{
				name:        "concurrent",
				priority:    id,
				available:   true,
				prefersDark: id%2 == 0,
				detectOk:    true,
			})
		}(i)
	}

	wg.Wait()
	// Test passes if no race conditions detected
}
