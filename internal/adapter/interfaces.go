// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the
// go-money-keeper server.
//
// The primary abstraction is [SyncEndpoint], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPSyncEndpoint]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrSnapshotNotFound] for 404, [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-money-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_endpoint_mock.go -package=mock

// SyncEndpoint defines transport-agnostic communication with the sync
// server. Implementations are responsible for serialisation, bearer-token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type SyncEndpoint interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called after a successful
	// SignIn or when a persisted session token is restored on startup.
	SetToken(token string)

	// Token returns the bearer token currently stored in the endpoint, or
	// an empty string if no token has been set yet.
	Token() string

	// SignIn exchanges an identity asserted by the OAuth provider for a
	// bearer token. On success the token is stored via SetToken and
	// returned so the caller can persist the session.
	SignIn(ctx context.Context, identity models.Identity) (string, error)

	// Fetch retrieves the caller's current cloud payload, lastSync marker,
	// and snapshot history. A never-synced account yields an empty
	// response, not an error. Requires a valid bearer token.
	Fetch(ctx context.Context) (models.SyncFetchResponse, error)

	// Push uploads data as the caller's new cloud payload and returns the
	// server-assigned lastSync. Requires a valid bearer token.
	Push(ctx context.Context, data json.RawMessage) (time.Time, error)

	// Rollback asks the server to restore the snapshot addressed by
	// rollbackTo and returns the restored payload together with the new
	// lastSync. Returns [ErrSnapshotNotFound] (wrapped) if no snapshot
	// matches. Requires a valid bearer token.
	Rollback(ctx context.Context, rollbackTo string) (*models.Payload, time.Time, error)
}
