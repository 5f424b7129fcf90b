package models

import "time"

// SyncFetchResponse is the body of GET /api/sync. Data is null when the
// identity has never pushed, which is how "never synced" is kept distinct
// from "sync failed" (a failure is an error status, not an empty 200).
type SyncFetchResponse struct {
	// Data is the current payload, or null if none was ever pushed.
	Data *Payload `json:"data"`

	// LastSync is the timestamp of the most recent accepted write,
	// or null if none.
	LastSync *time.Time `json:"lastSync"`

	// Snapshots is the metadata-only history view, most recent first,
	// de-duplicated by SavedAt.
	Snapshots []SnapshotInfo `json:"snapshots"`
}

// SyncPushResponse is the body of a successful non-rollback push.
type SyncPushResponse struct {
	Success  bool      `json:"success"`
	LastSync time.Time `json:"lastSync"`
}

// SyncRollbackResponse is the body of a successful rollback. It carries
// the restored payload so the client can apply it without a second fetch.
type SyncRollbackResponse struct {
	Success  bool      `json:"success"`
	Data     *Payload  `json:"data"`
	LastSync time.Time `json:"lastSync"`
}

// ErrorResponse is the uniform error body: a short human-readable error
// plus an optional diagnostic detail from the underlying failure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
