// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// SyncPushRequest is the body of POST /api/sync. Exactly one of the two
// fields is expected:
//
//   - Data set, RollbackTo empty — a normal push replacing the remote
//     payload and appending a snapshot.
//   - RollbackTo set — a restore of the snapshot whose normalized SavedAt
//     string equals RollbackTo. Data is ignored in that case.
//
// Data stays a raw message until the handler has decided which variant it
// is, so a rollback request is never rejected for a missing payload.
type SyncPushRequest struct {
	// Data is the full payload to store.
	Data json.RawMessage `json:"data,omitempty"`

	// RollbackTo is the normalized SavedAt string of the snapshot to
	// restore, as returned in fetch snapshot metadata.
	RollbackTo string `json:"rollbackTo,omitempty"`
}

// IsRollback reports whether the request addresses a historical snapshot
// instead of carrying a new payload.
func (r SyncPushRequest) IsRollback() bool {
	return r.RollbackTo != ""
}
