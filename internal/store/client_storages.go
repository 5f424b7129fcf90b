package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-money-keeper/internal/config"
	"github.com/MKhiriev/go-money-keeper/internal/logger"
)

// NewClientStorages opens the device-local store and wires up all
// client-side storage backends.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (ClientStorages, error) {
	localStorage, err := NewLocalStorage(ctx, cfg, log)
	if err != nil {
		return ClientStorages{}, fmt.Errorf("error creating local storage: %w", err)
	}

	return ClientStorages{LocalStorage: localStorage}, nil
}
