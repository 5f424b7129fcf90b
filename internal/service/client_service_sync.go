// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-money-keeper/internal/adapter"
	"github.com/MKhiriev/go-money-keeper/internal/logger"
	"github.com/MKhiriev/go-money-keeper/internal/store"
	"github.com/MKhiriev/go-money-keeper/models"
)

// syncCoordinator implements [SyncCoordinator].
//
// Loop prevention rests on two mechanisms: pulled payloads are written to
// the local store with [store.OriginPull] so the job's edit listener
// ignores them, and lastKnownRemote remembers the last remote version
// this device has seen so an unchanged (or echoed) remote never triggers
// another apply.
type syncCoordinator struct {
	localStore store.LocalStorage
	endpoint   adapter.SyncEndpoint
	logger     *logger.Logger

	mu              sync.Mutex
	syncing         bool
	editPending     bool
	lastKnownRemote string
	lastSync        *time.Time
	lastError       error
	lastErrorAt     *time.Time
}

// NewSyncCoordinator constructs a [SyncCoordinator] between the given
// local store and sync endpoint.
func NewSyncCoordinator(localStore store.LocalStorage, endpoint adapter.SyncEndpoint, logger *logger.Logger) SyncCoordinator {
	return &syncCoordinator{
		localStore: localStore,
		endpoint:   endpoint,
		logger:     logger,
	}
}

// NoteLocalEdit implements [SyncCoordinator].
func (c *syncCoordinator) NoteLocalEdit() {
	c.mu.Lock()
	c.editPending = true
	c.mu.Unlock()
}

// Push implements [SyncCoordinator].
func (c *syncCoordinator) Push(ctx context.Context) error {
	if c.endpoint.Token() == "" {
		return ErrNotSignedIn
	}
	if !c.acquire() {
		return ErrSyncInProgress
	}
	defer c.release()

	err := c.pushLocked(ctx)
	c.recordOutcome(err)
	return err
}

// pushLocked uploads the local working copy. The caller must hold the
// in-flight guard.
func (c *syncCoordinator) pushLocked(ctx context.Context) error {
	payload, err := c.localStore.BuildPayload(ctx)
	if err != nil {
		return fmt.Errorf("build local payload: %w", err)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode local payload: %w", err)
	}

	lastSync, err := c.endpoint.Push(ctx, raw)
	if err != nil {
		return fmt.Errorf("push payload: %w", err)
	}

	c.mu.Lock()
	c.editPending = false
	c.advanceRemote(lastSync)
	c.mu.Unlock()

	return nil
}

// Poll implements [SyncCoordinator].
func (c *syncCoordinator) Poll(ctx context.Context) error {
	if c.endpoint.Token() == "" {
		return ErrNotSignedIn
	}
	if !c.acquire() {
		return ErrSyncInProgress
	}
	defer c.release()

	err := c.pollLocked(ctx)
	c.recordOutcome(err)
	return err
}

func (c *syncCoordinator) pollLocked(ctx context.Context) error {
	c.mu.Lock()
	pending := c.editPending
	c.mu.Unlock()

	if pending {
		// a local edit is still awaiting upload (its debounced push may
		// have failed); the poll retries the push instead of pulling, so
		// the working copy is never silently discarded and a failed push
		// cannot wedge the loop
		logger.FromContext(ctx).Debug().
			Str("func", "*syncCoordinator.Poll").
			Msg("local edit pending, poll pushes instead of pulling")
		return c.pushLocked(ctx)
	}

	fetched, err := c.endpoint.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch remote state: %w", err)
	}
	if fetched.Data == nil || fetched.LastSync == nil {
		// nothing in the cloud yet
		return nil
	}

	remote := remoteVersion(*fetched.LastSync)

	c.mu.Lock()
	known := c.lastKnownRemote
	c.mu.Unlock()

	if remote == known {
		return nil
	}

	local, err := c.localStore.BuildPayload(ctx)
	if err != nil {
		return fmt.Errorf("build local payload: %w", err)
	}
	if local.TrackedEqual(fetched.Data) {
		// another device pushed the same records; remember the version
		// so this poll result never reads as a change again
		c.mu.Lock()
		c.advanceRemote(*fetched.LastSync)
		c.mu.Unlock()
		return nil
	}

	if err = c.localStore.ApplyPayload(ctx, fetched.Data, store.OriginPull); err != nil {
		return fmt.Errorf("apply remote payload: %w", err)
	}

	c.mu.Lock()
	c.advanceRemote(*fetched.LastSync)
	c.mu.Unlock()

	return nil
}

// Download implements [SyncCoordinator].
func (c *syncCoordinator) Download(ctx context.Context, resolver ConflictResolver) error {
	if c.endpoint.Token() == "" {
		return ErrNotSignedIn
	}
	if !c.acquire() {
		return ErrSyncInProgress
	}
	defer c.release()

	fetched, err := c.endpoint.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch remote state: %w", err)
	}
	if fetched.Data == nil || !fetched.Data.HasTrackedData() {
		// empty cloud never overwrites a working copy
		if fetched.LastSync != nil {
			c.mu.Lock()
			c.advanceRemote(*fetched.LastSync)
			c.mu.Unlock()
		}
		return nil
	}

	local, err := c.localStore.BuildPayload(ctx)
	if err != nil {
		return fmt.Errorf("build local payload: %w", err)
	}

	switch {
	case !local.HasTrackedData():
		// nothing local to lose
		return c.adoptRemote(ctx, fetched)

	case local.TrackedEqual(fetched.Data):
		c.mu.Lock()
		if fetched.LastSync != nil {
			c.advanceRemote(*fetched.LastSync)
		}
		c.mu.Unlock()
		return nil
	}

	info := ConflictInfo{
		LocalTransactions:  local.TransactionsCount(),
		LocalInvestments:   local.InvestmentsCount(),
		RemoteTransactions: fetched.Data.TransactionsCount(),
		RemoteInvestments:  fetched.Data.InvestmentsCount(),
		RemoteLastSync:     fetched.LastSync,
	}

	if resolver == nil {
		return &ConflictError{Info: info}
	}

	resolution, err := resolver(info)
	if err != nil {
		return fmt.Errorf("resolve conflict: %w", err)
	}

	switch resolution {
	case ResolutionAdoptRemote:
		return c.adoptRemote(ctx, fetched)
	case ResolutionKeepLocal:
		return c.pushLocked(ctx)
	default:
		return fmt.Errorf("unknown conflict resolution %d", resolution)
	}
}

// Rollback implements [SyncCoordinator].
func (c *syncCoordinator) Rollback(ctx context.Context, savedAt string) error {
	if c.endpoint.Token() == "" {
		return ErrNotSignedIn
	}
	if !c.acquire() {
		return ErrSyncInProgress
	}
	defer c.release()

	restored, lastSync, err := c.endpoint.Rollback(ctx, savedAt)
	if err != nil {
		return fmt.Errorf("rollback to %s: %w", savedAt, err)
	}

	if restored != nil {
		if err = c.localStore.ApplyPayload(ctx, restored, store.OriginPull); err != nil {
			return fmt.Errorf("apply restored payload: %w", err)
		}
	}

	c.mu.Lock()
	c.advanceRemote(lastSync)
	c.mu.Unlock()

	return nil
}

// Snapshots implements [SyncCoordinator]. The history fetch takes the
// same in-flight slot as every other sync operation, so it never runs
// concurrently with a push.
func (c *syncCoordinator) Snapshots(ctx context.Context) ([]models.SnapshotInfo, error) {
	if c.endpoint.Token() == "" {
		return nil, ErrNotSignedIn
	}
	if !c.acquire() {
		return nil, ErrSyncInProgress
	}
	defer c.release()

	fetched, err := c.endpoint.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot history: %w", err)
	}

	return fetched.Snapshots, nil
}

// Status implements [SyncCoordinator].
func (c *syncCoordinator) Status() SyncStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	return SyncStatus{
		SignedIn:    c.endpoint.Token() != "",
		Syncing:     c.syncing,
		PendingEdit: c.editPending,
		LastSync:    c.lastSync,
		LastError:   c.lastError,
		LastErrorAt: c.lastErrorAt,
	}
}

// recordOutcome keeps the error state the status screen shows: a failed
// push or poll is remembered with its timestamp, the next successful one
// clears it.
func (c *syncCoordinator) recordOutcome(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		now := time.Now()
		c.lastError = err
		c.lastErrorAt = &now
		return
	}
	c.lastError = nil
	c.lastErrorAt = nil
}

func (c *syncCoordinator) adoptRemote(ctx context.Context, fetched models.SyncFetchResponse) error {
	if err := c.localStore.ApplyPayload(ctx, fetched.Data, store.OriginPull); err != nil {
		return fmt.Errorf("apply remote payload: %w", err)
	}

	c.mu.Lock()
	if fetched.LastSync != nil {
		c.advanceRemote(*fetched.LastSync)
	}
	c.mu.Unlock()

	return nil
}

// acquire takes the single in-flight slot. A false return means another
// sync is running and the trigger must be dropped.
func (c *syncCoordinator) acquire() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.syncing {
		return false
	}
	c.syncing = true
	return true
}

func (c *syncCoordinator) release() {
	c.mu.Lock()
	c.syncing = false
	c.mu.Unlock()
}

// advanceRemote records a server timestamp as both the last successful
// sync and the newest remote version this device has seen. Caller holds
// c.mu.
func (c *syncCoordinator) advanceRemote(lastSync time.Time) {
	ls := lastSync
	c.lastSync = &ls
	c.lastKnownRemote = remoteVersion(lastSync)
}

// remoteVersion normalizes a server timestamp into the comparable string
// the coordinator tracks; it matches the snapshot key format.
func remoteVersion(t time.Time) string {
	return t.UTC().Format(models.SnapshotTimeFormat)
}
