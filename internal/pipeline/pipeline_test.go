package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FreeMasen/orbi-helpers/internal/apperr"
	"github.com/FreeMasen/orbi-helpers/internal/config"
	"github.com/FreeMasen/orbi-helpers/internal/model"
	"github.com/FreeMasen/orbi-helpers/internal/router"
)

type stubFetcher struct {
	calls   int
	creds   router.Credentials
	devices func() *model.AttachedDevices
	err     error
}

func (s *stubFetcher) Fetch(_ context.Context, creds router.Credentials) (*model.AttachedDevices, error) {
	s.calls++
	s.creds = creds
	if s.err != nil {
		return nil, s.err
	}
	return s.devices(), nil
}

func newStore(t *testing.T, cfg *config.Config) *config.Store {
	t.Helper()
	store := config.NewStore(filepath.Join(t.TempDir(), config.FileName))
	if cfg != nil {
		require.NoError(t, store.Save(cfg))
	}
	return store
}

func TestAttachedDevices(t *testing.T) {
	store := newStore(t, &config.Config{
		Username: "admin",
		Password: "pw",
		DeviceNameOverrides: map[string]string{
			"AA:00":  "Work Laptop",
			"Router": "ignored for satellites",
		},
	})
	fetcher := &stubFetcher{devices: func() *model.AttachedDevices {
		return &model.AttachedDevices{
			Satellites: []model.Device{{MAC: "CC:00", Name: "Router"}},
			Devices:    []model.Device{{MAC: "AA:00", Name: "Laptop"}, {MAC: "BB:00", Name: "Phone"}},
		}
	}}

	p := New(store, fetcher, nil)
	devices, err := p.AttachedDevices(context.Background())
	require.NoError(t, err)

	assert.Equal(t, router.Credentials{Username: "admin", Password: "pw"}, fetcher.creds)
	assert.Equal(t, "Work Laptop", devices.Devices[0].Name)
	assert.Equal(t, "Phone", devices.Devices[1].Name)
	assert.Equal(t, "Router", devices.Satellites[0].Name)
}

func TestAttachedDevicesReloadsConfigEachCall(t *testing.T) {
	store := newStore(t, &config.Config{Username: "admin", Password: "pw"})
	fetcher := &stubFetcher{devices: func() *model.AttachedDevices {
		return &model.AttachedDevices{Devices: []model.Device{{MAC: "AA:00", Name: "Laptop"}}}
	}}
	p := New(store, fetcher, nil)

	devices, err := p.AttachedDevices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Laptop", devices.Devices[0].Name)

	require.NoError(t, store.SetOverride("AA:00", "Renamed"))

	devices, err = p.AttachedDevices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Renamed", devices.Devices[0].Name)
	assert.Equal(t, 2, fetcher.calls)
}

func TestAttachedDevicesConfigMissing(t *testing.T) {
	fetcher := &stubFetcher{}
	p := New(newStore(t, nil), fetcher, nil)

	_, err := p.AttachedDevices(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperr.KindConfigMissing, apperr.KindOf(err))
	assert.Zero(t, fetcher.calls)
}

func TestAttachedDevicesFetchError(t *testing.T) {
	fetcher := &stubFetcher{err: apperr.New(apperr.KindNetwork, "http://orbilogin.com", errors.New("connection refused"))}
	p := New(newStore(t, config.New()), fetcher, nil)

	_, err := p.AttachedDevices(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNetwork, apperr.KindOf(err))
}
