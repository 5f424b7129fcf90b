package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-money-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_record_repository_mock.go -package=mock

// UserRecordRepository is the server-side persistence boundary of the
// sync endpoint: one document per identity, replaced wholesale on push,
// with a bounded snapshot history.
type UserRecordRepository interface {
	// GetUserRecord returns the full record for the identity, or
	// [ErrUserRecordNotFound] if the identity has never pushed.
	GetUserRecord(ctx context.Context, email string) (models.UserRecord, error)

	// PushPayload upserts the record: replaces data, refreshes profile
	// fields from the identity claims, sets last_sync to the snapshot's
	// SavedAt, appends the snapshot, and trims the history to the newest
	// [models.MaxSnapshots]. created_at is set only when the record is
	// first inserted.
	PushPayload(ctx context.Context, identity models.Identity, payload *models.Payload, snapshot models.Snapshot) error

	// RollbackPayload replaces data with the snapshot whose normalized
	// SavedAt string equals rollbackTo and sets last_sync to now. The
	// snapshot list itself is left untouched. Returns the restored
	// payload, [ErrSnapshotNotFound] on a key miss, or
	// [ErrUserRecordNotFound] if the identity has never pushed.
	RollbackPayload(ctx context.Context, email, rollbackTo string, now time.Time) (*models.Payload, error)
}

// Storages aggregates all server-side repositories.
type Storages struct {
	UserRecordRepository UserRecordRepository
}
