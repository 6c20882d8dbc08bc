package colorscheme

import (
	"context"
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePortal struct {
	value uint32
	err   error
}

func (f fakePortal) ReadColorScheme(context.Context) (uint32, error) { return f.value, f.err }

func TestDecodeColorScheme(t *testing.T) {
	tests := []struct {
		name    string
		variant dbus.Variant
		want    uint32
		wantErr bool
	}{
		{name: "ReadOne uint32", variant: dbus.MakeVariant(uint32(1)), want: 1},
		{name: "Read nested variant", variant: dbus.MakeVariant(dbus.MakeVariant(uint32(2))), want: 2},
		{name: "int32", variant: dbus.MakeVariant(int32(1)), want: 1},
		{name: "negative", variant: dbus.MakeVariant(int32(-1)), wantErr: true},
		{name: "string", variant: dbus.MakeVariant("dark"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeColorScheme(tt.variant)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errUnexpectedVariant)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorSchemeFromPortal(t *testing.T) {
	dark, ok := colorSchemeFromPortal(portalPreferDark)
	assert.True(t, ok)
	assert.True(t, dark)

	dark, ok = colorSchemeFromPortal(portalPreferLight)
	assert.True(t, ok)
	assert.False(t, dark)

	_, ok = colorSchemeFromPortal(portalNoPreference)
	assert.False(t, ok)
}

func TestParseSettingChanged(t *testing.T) {
	signal := func(ns, key string, value uint32) *dbus.Signal {
		return &dbus.Signal{
			Name: settingChanged,
			Body: []interface{}{ns, key, dbus.MakeVariant(value)},
		}
	}

	dark, ok := parseSettingChanged(signal(appearanceNamespace, colorSchemeKey, portalPreferDark))
	assert.True(t, ok)
	assert.True(t, dark)

	// No preference inside a change event means light
	dark, ok = parseSettingChanged(signal(appearanceNamespace, colorSchemeKey, portalNoPreference))
	assert.True(t, ok)
	assert.False(t, dark)

	_, ok = parseSettingChanged(signal(appearanceNamespace, "accent-color", 1))
	assert.False(t, ok)

	_, ok = parseSettingChanged(signal("org.gnome.desktop.interface", colorSchemeKey, 1))
	assert.False(t, ok)

	_, ok = parseSettingChanged(&dbus.Signal{Name: "org.freedesktop.DBus.NameAcquired"})
	assert.False(t, ok)

	_, ok = parseSettingChanged(nil)
	assert.False(t, ok)
}

func TestPortalDetector(t *testing.T) {
	d := &PortalDetector{client: fakePortal{value: portalPreferDark}}
	dark, ok := d.Detect()
	assert.True(t, ok)
	assert.True(t, dark)

	d = &PortalDetector{client: fakePortal{err: errors.New("no portal")}}
	_, ok = d.Detect()
	assert.False(t, ok)

	assert.False(t, NewPortalDetector(nil).Available())
}

func TestPortalClient_ConnectFailure(t *testing.T) {
	client := &PortalClient{connect: func() (*dbus.Conn, error) { return nil, errors.New("no bus") }}

	_, err := client.ReadColorScheme(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no bus")
	assert.NoError(t, client.Close())

	_, err = NewPortalWatcher(client).Watch(context.Background(), func(bool) {})
	assert.Error(t, err)
}

func TestNewPortalClient_UnreachableSessionBus(t *testing.T) {
	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "unix:path="+t.TempDir()+"/missing-bus")

	client := NewPortalClient()
	require.NotNil(t, client.connect)

	_, err := client.ReadColorScheme(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect session bus")
	assert.NoError(t, client.Close())
}
