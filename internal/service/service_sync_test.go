// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-money-keeper/internal/logger"
	"github.com/MKhiriev/go-money-keeper/internal/mock"
	"github.com/MKhiriev/go-money-keeper/internal/store"
	"github.com/MKhiriev/go-money-keeper/models"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSyncService — хелпер: сервис с моком репозитория и
// фиксированными часами.
func newTestSyncService(t *testing.T, ctrl *gomock.Controller, now time.Time) (*syncService, *mock.MockUserRecordRepository) {
	t.Helper()
	repo := mock.NewMockUserRecordRepository(ctrl)
	svc := NewSyncService(repo, logger.Nop()).(*syncService)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func syncTestContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func payloadWithTransactions(n int) *models.Payload {
	p := &models.Payload{}
	for i := 0; i < n; i++ {
		p.Transactions = append(p.Transactions, models.Transaction{
			ID:       int64(i + 1),
			Type:     models.TransactionExpense,
			Category: "food",
			Amount:   decimal.NewFromInt(int64(i + 1)),
			Date:     "2026-08-01",
		})
	}
	return p
}

// ── Fetch ────────────────────────────────────────────────────────────────────

func TestSyncService_Fetch(t *testing.T) {
	identity := models.Identity{Email: "user@example.com"}
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	t.Run("no identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newTestSyncService(t, ctrl, now)

		_, err := svc.Fetch(syncTestContext(), models.Identity{})
		require.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("never synced: explicit empty result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo := newTestSyncService(t, ctrl, now)
		ctx := syncTestContext()

		repo.EXPECT().GetUserRecord(ctx, identity.Email).Return(models.UserRecord{}, store.ErrUserRecordNotFound)

		resp, err := svc.Fetch(ctx, identity)
		require.NoError(t, err)
		assert.Nil(t, resp.Data)
		assert.Nil(t, resp.LastSync)
		assert.NotNil(t, resp.Snapshots) // пустой список, а не null
		assert.Empty(t, resp.Snapshots)
	})

	t.Run("success: data with newest-first history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo := newTestSyncService(t, ctrl, now)
		ctx := syncTestContext()

		older := models.Snapshot{SavedAt: now.Add(-2 * time.Hour), TransactionsCount: 1, Data: payloadWithTransactions(1)}
		newer := models.Snapshot{SavedAt: now.Add(-time.Hour), TransactionsCount: 2, Data: payloadWithTransactions(2)}
		lastSync := now.Add(-time.Hour)

		repo.EXPECT().GetUserRecord(ctx, identity.Email).Return(models.UserRecord{
			Email:     identity.Email,
			Data:      payloadWithTransactions(2),
			LastSync:  &lastSync,
			Snapshots: []models.Snapshot{older, newer},
		}, nil)

		resp, err := svc.Fetch(ctx, identity)
		require.NoError(t, err)
		require.NotNil(t, resp.Data)
		require.Len(t, resp.Snapshots, 2)
		assert.Equal(t, newer.Key(), resp.Snapshots[0].Key())
		assert.Equal(t, older.Key(), resp.Snapshots[1].Key())
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo := newTestSyncService(t, ctrl, now)
		ctx := syncTestContext()

		repo.EXPECT().GetUserRecord(ctx, identity.Email).Return(models.UserRecord{}, store.ErrExecutingQuery)

		_, err := svc.Fetch(ctx, identity)
		require.ErrorIs(t, err, store.ErrExecutingQuery)
	})
}

// ── Push ─────────────────────────────────────────────────────────────────────

func TestSyncService_Push(t *testing.T) {
	identity := models.Identity{Email: "user@example.com", Name: "Ana"}
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	t.Run("empty payload rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newTestSyncService(t, ctrl, now)

		_, err := svc.Push(syncTestContext(), identity, nil)
		require.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newTestSyncService(t, ctrl, now)

		raw := json.RawMessage(`{"transactions": [], "totally_unknown": true}`)
		_, err := svc.Push(syncTestContext(), identity, raw)
		require.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("success: snapshot carries counts and server time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo := newTestSyncService(t, ctrl, now)
		ctx := syncTestContext()

		raw, err := json.Marshal(payloadWithTransactions(3))
		require.NoError(t, err)

		repo.EXPECT().
			PushPayload(ctx, identity, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ models.Identity, payload *models.Payload, snapshot models.Snapshot) error {
				assert.Equal(t, 3, payload.TransactionsCount())
				assert.Equal(t, 3, snapshot.TransactionsCount)
				assert.Equal(t, 0, snapshot.InvestmentsCount)
				assert.True(t, snapshot.SavedAt.Equal(now))
				assert.Same(t, payload, snapshot.Data)
				return nil
			})

		savedAt, err := svc.Push(ctx, identity, raw)
		require.NoError(t, err)
		assert.True(t, savedAt.Equal(now))
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo := newTestSyncService(t, ctrl, now)
		ctx := syncTestContext()

		repo.EXPECT().PushPayload(ctx, identity, gomock.Any(), gomock.Any()).Return(store.ErrExecutingQuery)

		_, err := svc.Push(ctx, identity, json.RawMessage(`{}`))
		require.ErrorIs(t, err, store.ErrExecutingQuery)
	})
}

// ── Rollback ─────────────────────────────────────────────────────────────────

func TestSyncService_Rollback(t *testing.T) {
	identity := models.Identity{Email: "user@example.com"}
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	rollbackTo := now.Add(-time.Hour).Format(models.SnapshotTimeFormat)

	t.Run("empty key rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newTestSyncService(t, ctrl, now)

		_, _, err := svc.Rollback(syncTestContext(), identity, "")
		require.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("never pushed reads as snapshot miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo := newTestSyncService(t, ctrl, now)
		ctx := syncTestContext()

		repo.EXPECT().RollbackPayload(ctx, identity.Email, rollbackTo, now).Return(nil, store.ErrUserRecordNotFound)

		_, _, err := svc.Rollback(ctx, identity, rollbackTo)
		require.ErrorIs(t, err, store.ErrSnapshotNotFound)
	})

	t.Run("snapshot miss passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo := newTestSyncService(t, ctrl, now)
		ctx := syncTestContext()

		repo.EXPECT().RollbackPayload(ctx, identity.Email, rollbackTo, now).Return(nil, store.ErrSnapshotNotFound)

		_, _, err := svc.Rollback(ctx, identity, rollbackTo)
		require.ErrorIs(t, err, store.ErrSnapshotNotFound)
	})

	t.Run("success: restored payload and new last sync", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo := newTestSyncService(t, ctrl, now)
		ctx := syncTestContext()

		restored := payloadWithTransactions(2)
		repo.EXPECT().RollbackPayload(ctx, identity.Email, rollbackTo, now).Return(restored, nil)

		payload, lastSync, err := svc.Rollback(ctx, identity, rollbackTo)
		require.NoError(t, err)
		assert.Same(t, restored, payload)
		assert.True(t, lastSync.Equal(now))
	})
}

// ── snapshotHistory ──────────────────────────────────────────────────────────

func TestSnapshotHistory(t *testing.T) {
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	snap := func(offset time.Duration, txCount int) models.Snapshot {
		return models.Snapshot{SavedAt: base.Add(offset), TransactionsCount: txCount}
	}

	t.Run("empty input", func(t *testing.T) {
		infos := snapshotHistory(nil)
		assert.NotNil(t, infos)
		assert.Empty(t, infos)
	})

	t.Run("newest first", func(t *testing.T) {
		infos := snapshotHistory([]models.Snapshot{snap(0, 1), snap(time.Minute, 2), snap(2*time.Minute, 3)})

		require.Len(t, infos, 3)
		assert.Equal(t, 3, infos[0].TransactionsCount)
		assert.Equal(t, 1, infos[2].TransactionsCount)
	})

	t.Run("duplicate keys keep the most recent occurrence", func(t *testing.T) {
		// один и тот же SavedAt дважды — счётчик из более позднего элемента
		infos := snapshotHistory([]models.Snapshot{snap(0, 1), snap(0, 7), snap(time.Minute, 2)})

		require.Len(t, infos, 2)
		assert.Equal(t, 2, infos[0].TransactionsCount)
		assert.Equal(t, 7, infos[1].TransactionsCount)
	})

	t.Run("payload is stripped from the view", func(t *testing.T) {
		s := snap(0, 1)
		s.Data = payloadWithTransactions(1)

		infos := snapshotHistory([]models.Snapshot{s})
		require.Len(t, infos, 1)
		assert.Equal(t, s.Key(), infos[0].Key())
	})
}
