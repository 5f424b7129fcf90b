package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-money-keeper/models"
)

// AuthService verifies identity tokens issued by the OAuth identity
// provider and, in the development sign-in flow, issues them itself.
type AuthService interface {
	// ParseToken validates tokenString and returns the token with the
	// caller's identity extracted from its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// IssueToken signs a new identity token for the given identity.
	// Development stand-in for the external provider.
	IssueToken(ctx context.Context, identity models.Identity) (models.Token, error)
}

// SyncService is the server-side sync endpoint logic: fetch the current
// state, accept a push, or restore a snapshot — always for exactly one
// authenticated identity.
type SyncService interface {
	// Fetch returns the current payload, lastSync, and the metadata-only
	// snapshot history (newest first, de-duplicated). An identity that
	// has never pushed gets an empty response, not an error.
	Fetch(ctx context.Context, identity models.Identity) (models.SyncFetchResponse, error)

	// Push validates raw against the payload schema and upserts it as
	// the identity's current data, appending a snapshot and trimming the
	// history. Returns the new lastSync.
	Push(ctx context.Context, identity models.Identity, raw json.RawMessage) (time.Time, error)

	// Rollback restores the snapshot addressed by the normalized SavedAt
	// string. Returns the restored payload and the new lastSync, or
	// [store.ErrSnapshotNotFound] if no snapshot matches.
	Rollback(ctx context.Context, identity models.Identity, rollbackTo string) (*models.Payload, time.Time, error)
}

// Services aggregates all server-side services.
type Services struct {
	AuthService AuthService
	SyncService SyncService
}
