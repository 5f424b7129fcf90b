package service

import (
	"github.com/MKhiriev/go-money-keeper/internal/adapter"
	"github.com/MKhiriev/go-money-keeper/internal/logger"
	"github.com/MKhiriev/go-money-keeper/internal/store"
)

// ClientServices aggregates all client-side services.
type ClientServices struct {
	SyncCoordinator SyncCoordinator
	SyncJob         SyncJob
}

func NewClientServices(storages store.ClientStorages, endpoint adapter.SyncEndpoint, logger *logger.Logger) *ClientServices {
	coordinator := NewSyncCoordinator(storages.LocalStorage, endpoint, logger)

	return &ClientServices{
		SyncCoordinator: coordinator,
		SyncJob:         NewSyncJob(coordinator, storages.LocalStorage, logger),
	}
}
