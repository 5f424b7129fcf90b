package models

import "time"

// SnapshotTimeFormat is the normalized form of a snapshot's SavedAt
// timestamp. The formatted string is the only handle used to address a
// historical version: rollback requests carry it verbatim and it is
// matched exactly against the stored sequence.
const SnapshotTimeFormat = time.RFC3339Nano

// Snapshot is a full historical copy of a user's payload plus the cheap
// metadata shown in a history list. Snapshots accumulate on every push
// and the newest twenty are retained.
type Snapshot struct {
	// SavedAt is when the snapshot was taken. Unique within a user's
	// snapshot sequence and used as the rollback key.
	SavedAt time.Time `json:"savedAt"`

	// TransactionsCount is the length of the payload's transactions
	// array at save time.
	TransactionsCount int `json:"transactionsCount"`

	// InvestmentsCount is the length of the payload's investments
	// array at save time.
	InvestmentsCount int `json:"investmentsCount"`

	// Data is the complete payload as it was when the snapshot was taken.
	Data *Payload `json:"data"`
}

// Key returns the normalized timestamp string identifying the snapshot.
func (s Snapshot) Key() string {
	return s.SavedAt.UTC().Format(SnapshotTimeFormat)
}

// Info strips the embedded payload, leaving only list metadata.
func (s Snapshot) Info() SnapshotInfo {
	return SnapshotInfo{
		SavedAt:           s.SavedAt,
		TransactionsCount: s.TransactionsCount,
		InvestmentsCount:  s.InvestmentsCount,
	}
}

// SnapshotInfo is the metadata-only view of a snapshot returned by fetch
// responses. The embedded payload is never shipped with the list so the
// history stays cheap to transfer.
type SnapshotInfo struct {
	SavedAt           time.Time `json:"savedAt"`
	TransactionsCount int       `json:"transactionsCount"`
	InvestmentsCount  int       `json:"investmentsCount"`
}

// Key returns the normalized timestamp string identifying the snapshot.
func (s SnapshotInfo) Key() string {
	return s.SavedAt.UTC().Format(SnapshotTimeFormat)
}
