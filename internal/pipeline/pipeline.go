// Package pipeline joins the config store, the router client and the
// override resolver into the one sequence every surface runs.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/FreeMasen/orbi-helpers/internal/config"
	"github.com/FreeMasen/orbi-helpers/internal/model"
	"github.com/FreeMasen/orbi-helpers/internal/override"
	"github.com/FreeMasen/orbi-helpers/internal/router"
)

// Fetcher is the part of a router client the pipeline needs.
type Fetcher interface {
	Fetch(ctx context.Context, creds router.Credentials) (*model.AttachedDevices, error)
}

// Pipeline loads the config, fetches and resolves overrides on every call.
// Nothing is cached between calls, so concurrent callers each do their own
// config read and remote request.
type Pipeline struct {
	Store   *config.Store
	Fetcher Fetcher
	Logger  *slog.Logger
}

// New returns a Pipeline. A nil logger discards.
func New(store *config.Store, fetcher Fetcher, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{Store: store, Fetcher: fetcher, Logger: logger}
}

// AttachedDevices returns the router's current device list with display
// names overridden.
func (p *Pipeline) AttachedDevices(ctx context.Context) (*model.AttachedDevices, error) {
	cfg, err := p.Store.Load()
	if err != nil {
		return nil, err
	}

	devices, err := p.Fetcher.Fetch(ctx, cfg.Credentials())
	if err != nil {
		return nil, err
	}

	renamed := override.Apply(devices, cfg.DeviceNameOverrides)
	p.Logger.Debug("applied name overrides",
		"renamed", renamed,
		"overrides", len(cfg.DeviceNameOverrides))
	return devices, nil
}
