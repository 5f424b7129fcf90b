package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-money-keeper/internal/config"
	"github.com/MKhiriev/go-money-keeper/internal/logger"
	"github.com/MKhiriev/go-money-keeper/migrations"
)

// NewStorages connects to the snapshot store and wires up all server-side
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to snapshot store: %w", err)
	}

	if err = migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error migrating snapshot store: %w", err)
	}

	return &Storages{
		UserRecordRepository: NewUserRecordRepository(db, log),
	}, nil
}
