package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-money-keeper/internal/adapter"
	"github.com/MKhiriev/go-money-keeper/internal/config"
	"github.com/MKhiriev/go-money-keeper/internal/logger"
	"github.com/MKhiriev/go-money-keeper/internal/service"
	"github.com/MKhiriev/go-money-keeper/internal/store"
	"github.com/MKhiriev/go-money-keeper/internal/tui"
	"github.com/MKhiriev/go-money-keeper/internal/workers"
)

type App struct {
	services *service.ClientServices
	storages store.ClientStorages
	endpoint adapter.SyncEndpoint
	syncCfg  config.ClientSync
	tui      *tui.TUI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, storages store.ClientStorages, endpoint adapter.SyncEndpoint, syncCfg config.ClientSync, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}

	return &App{
		services: services,
		storages: storages,
		endpoint: endpoint,
		syncCfg:  syncCfg,
		tui:      ui,
		logger:   logger,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()
	defer a.storages.LocalStorage.Close()

	if err := a.restoreSession(ctx); err != nil {
		return err
	}

	if a.endpoint.Token() == "" {
		if err := a.signIn(ctx); err != nil {
			return err
		}
	}

	// seed an empty device before the timers start; an unresolved
	// conflict is left for the user to settle from the main screen
	if err := a.services.SyncCoordinator.Download(ctx, nil); err != nil && !errors.Is(err, service.ErrSyncConflict) {
		a.logger.Debug().Err(err).Msg("initial download failed")
	}

	background := workers.New(workers.WorkerFunc(func() {
		a.services.SyncJob.Start(ctx, a.syncCfg.DebounceDelay, a.syncCfg.PollInterval)
	}))
	background.Run()
	defer a.services.SyncJob.Stop()

	return a.tui.MainLoop(ctx)
}

// restoreSession loads the cached bearer token so restarts stay signed in.
func (a *App) restoreSession(ctx context.Context) error {
	token, err := a.storages.LocalStorage.Get(ctx, store.KeySessionToken)
	if errors.Is(err, store.ErrLocalKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	a.endpoint.SetToken(token)
	return nil
}

func (a *App) signIn(ctx context.Context) error {
	identity, err := a.tui.SignInFlow(ctx)
	if err != nil {
		return err
	}

	token, err := a.endpoint.SignIn(ctx, identity)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	if err = a.storages.LocalStorage.Set(ctx, store.KeySessionToken, token, store.OriginPull); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	return nil
}
