// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-money-keeper/internal/logger"
	"github.com/MKhiriev/go-money-keeper/internal/store"
	"github.com/MKhiriev/go-money-keeper/models"
)

// syncService implements [SyncService] on top of the user-record
// repository. It owns the snapshot policy: every accepted push appends a
// snapshot and the history is trimmed to the newest [models.MaxSnapshots];
// a rollback restores a snapshot's payload without creating a new
// snapshot, so the pre-rollback state is deliberately not preserved.
type syncService struct {
	repo   store.UserRecordRepository
	logger *logger.Logger

	now func() time.Time
}

// NewSyncService constructs a [SyncService] backed by the given
// repository.
func NewSyncService(repo store.UserRecordRepository, logger *logger.Logger) SyncService {
	logger.Debug().Msg("creating sync service")
	return &syncService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Fetch implements [SyncService].
func (s *syncService) Fetch(ctx context.Context, identity models.Identity) (models.SyncFetchResponse, error) {
	if identity.Email == "" {
		return models.SyncFetchResponse{}, ErrNotAuthenticated
	}

	record, err := s.repo.GetUserRecord(ctx, identity.Email)
	if errors.Is(err, store.ErrUserRecordNotFound) {
		// never synced - an explicit empty result, not a failure
		return models.SyncFetchResponse{Snapshots: []models.SnapshotInfo{}}, nil
	}
	if err != nil {
		return models.SyncFetchResponse{}, fmt.Errorf("get user record: %w", err)
	}
	if record.Data == nil {
		return models.SyncFetchResponse{Snapshots: []models.SnapshotInfo{}}, nil
	}

	return models.SyncFetchResponse{
		Data:      record.Data,
		LastSync:  record.LastSync,
		Snapshots: snapshotHistory(record.Snapshots),
	}, nil
}

// Push implements [SyncService].
func (s *syncService) Push(ctx context.Context, identity models.Identity, raw json.RawMessage) (time.Time, error) {
	log := logger.FromContext(ctx)

	if identity.Email == "" {
		return time.Time{}, ErrNotAuthenticated
	}
	if len(raw) == 0 {
		return time.Time{}, ErrInvalidPayload
	}

	payload, err := models.ParsePayload(raw)
	if err != nil {
		log.Err(err).Str("func", "*syncService.Push").Msg("payload does not match schema")
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	savedAt := s.now()
	snapshot := models.Snapshot{
		SavedAt:           savedAt,
		TransactionsCount: payload.TransactionsCount(),
		InvestmentsCount:  payload.InvestmentsCount(),
		Data:              payload,
	}

	if err = s.repo.PushPayload(ctx, identity, payload, snapshot); err != nil {
		return time.Time{}, fmt.Errorf("push payload: %w", err)
	}

	return savedAt, nil
}

// Rollback implements [SyncService].
func (s *syncService) Rollback(ctx context.Context, identity models.Identity, rollbackTo string) (*models.Payload, time.Time, error) {
	if identity.Email == "" {
		return nil, time.Time{}, ErrNotAuthenticated
	}
	if rollbackTo == "" {
		return nil, time.Time{}, ErrInvalidPayload
	}

	now := s.now()
	restored, err := s.repo.RollbackPayload(ctx, identity.Email, rollbackTo, now)
	if errors.Is(err, store.ErrUserRecordNotFound) {
		// nothing was ever pushed, so there is nothing to restore
		return nil, time.Time{}, store.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("rollback payload: %w", err)
	}

	return restored, now, nil
}

// snapshotHistory converts the stored oldest-first snapshot sequence into
// the metadata-only, newest-first, de-duplicated view fetch responses
// carry. Duplicate SavedAt keys keep their most recent occurrence.
func snapshotHistory(snapshots []models.Snapshot) []models.SnapshotInfo {
	infos := make([]models.SnapshotInfo, 0, len(snapshots))
	seen := make(map[string]struct{}, len(snapshots))

	for i := len(snapshots) - 1; i >= 0; i-- {
		key := snapshots[i].Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		infos = append(infos, snapshots[i].Info())
	}

	return infos
}
