package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-money-keeper/models"
)

// Resolution is the outcome of a conflict decision: exactly one of the
// two directions, never a merge.
type Resolution int

const (
	// ResolutionAdoptRemote replaces the local working copy with the
	// cloud payload.
	ResolutionAdoptRemote Resolution = iota

	// ResolutionKeepLocal keeps the local working copy and pushes it,
	// replacing the cloud payload.
	ResolutionKeepLocal
)

// ConflictInfo is everything a resolver gets to decide with: record
// counts on both sides and when the cloud copy was last written. The
// payloads themselves are deliberately absent; the decision is
// either/or, not a merge.
type ConflictInfo struct {
	LocalTransactions  int
	LocalInvestments   int
	RemoteTransactions int
	RemoteInvestments  int

	// RemoteLastSync is when the cloud copy was last accepted.
	RemoteLastSync *time.Time
}

// ConflictResolver decides a download conflict. Implementations may ask
// the user (the TUI does) or apply a fixed policy. Returning an error
// aborts the download with nothing applied.
type ConflictResolver func(info ConflictInfo) (Resolution, error)

// SyncStatus is a point-in-time snapshot of the coordinator state, used
// by the TUI status screen.
type SyncStatus struct {
	// SignedIn reports whether a bearer token is held.
	SignedIn bool

	// Syncing reports whether a sync operation is currently in flight.
	Syncing bool

	// PendingEdit reports whether a local edit is awaiting its debounced
	// push.
	PendingEdit bool

	// LastSync is the server timestamp of the most recent successful
	// push, pull, or rollback, or nil before the first one.
	LastSync *time.Time

	// LastError is the failure of the most recent push or poll, or nil
	// when it succeeded. Background failures land here so the status
	// screen can show them.
	LastError error

	// LastErrorAt is when LastError was recorded.
	LastErrorAt *time.Time
}

// SyncCoordinator is the client-side state machine between the local
// store and the sync endpoint. At most one sync operation runs at a
// time; a trigger arriving while one is in flight is dropped with
// [ErrSyncInProgress], never queued.
type SyncCoordinator interface {
	// NoteLocalEdit records that the working copy changed by a user
	// action. The next Push clears the mark.
	NoteLocalEdit()

	// Push uploads the full local working copy as the new cloud payload.
	// Used by both the debounced auto-push and the manual upload.
	Push(ctx context.Context) error

	// Poll reconciles with the cloud. While a local edit is awaiting its
	// push, the poll retries that push instead of pulling. Otherwise it
	// fetches the cloud state: unchanged remote is a no-op; a remote
	// change with byte-identical tracked data only advances the
	// remote-version marker; a real remote change replaces the local
	// working copy.
	Poll(ctx context.Context) error

	// Download is the manual pull. When both sides hold tracked data
	// that differs, resolver decides the direction; a nil resolver makes
	// that case fail with [ErrSyncConflict]. An empty remote is a no-op
	// and an empty local side adopts the remote without asking.
	Download(ctx context.Context, resolver ConflictResolver) error

	// Rollback restores the cloud snapshot addressed by the normalized
	// savedAt string and applies the restored payload locally.
	Rollback(ctx context.Context, savedAt string) error

	// Snapshots returns the cloud snapshot history, most recent first.
	Snapshots(ctx context.Context) ([]models.SnapshotInfo, error)

	// Status returns the current coordinator state.
	Status() SyncStatus
}

// SyncJob owns the coordinator's timers: the debounce window after local
// edits and the periodic poll. It is idle until Start is called.
type SyncJob interface {
	// Start launches the background goroutine. debounce and poll fall
	// back to the configured defaults when zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, debounce, poll time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated. Safe to call when the job is not running.
	Stop()
}
