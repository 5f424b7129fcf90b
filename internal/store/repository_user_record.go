package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-money-keeper/internal/logger"
	"github.com/MKhiriev/go-money-keeper/models"
)

// userRecordRepository is the PostgreSQL-backed implementation of
// [UserRecordRepository]. The payload and the snapshot history live in
// JSONB columns of the "users" table; the row is the unit of locking, so
// snapshot append/trim is serialized per identity with SELECT ... FOR
// UPDATE and concurrent pushes from different devices resolve to
// last-write-wins.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRecordRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRecordRepository constructs a [UserRecordRepository] backed by
// the provided database connection and logger.
func NewUserRecordRepository(db *DB, logger *logger.Logger) UserRecordRepository {
	logger.Debug().Msg("creating user record repository")
	return &userRecordRepository{
		db:     db,
		logger: logger,
	}
}

// GetUserRecord retrieves the full record for one identity.
//
// Error handling:
//   - No row → [ErrUserRecordNotFound].
//   - Driver-level error → wrapped [ErrExecutingQuery].
//   - JSONB decode failure → wrapped [ErrDecodingDocument].
func (r *userRecordRepository) GetUserRecord(ctx context.Context, email string) (models.UserRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectUserRecord(email)
	if err != nil {
		log.Err(err).Str("func", "*userRecordRepository.GetUserRecord").Msg("error building query")
		return models.UserRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		record       models.UserRecord
		name, image  sql.NullString
		dataRaw      []byte
		snapshotsRaw []byte
		lastSync     sql.NullTime
	)

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&record.Email, &name, &image, &dataRaw, &lastSync, &snapshotsRaw, &record.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserRecord{}, ErrUserRecordNotFound
		}
		log.Err(err).Str("func", "*userRecordRepository.GetUserRecord").Msg("error: scanning error")
		return models.UserRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	record.Name = name.String
	record.Image = image.String
	if lastSync.Valid {
		t := lastSync.Time
		record.LastSync = &t
	}

	if len(dataRaw) > 0 {
		if err = json.Unmarshal(dataRaw, &record.Data); err != nil {
			log.Err(err).Str("func", "*userRecordRepository.GetUserRecord").Msg("error decoding payload document")
			return models.UserRecord{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
		}
	}
	if len(snapshotsRaw) > 0 {
		if err = json.Unmarshal(snapshotsRaw, &record.Snapshots); err != nil {
			log.Err(err).Str("func", "*userRecordRepository.GetUserRecord").Msg("error decoding snapshots document")
			return models.UserRecord{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
		}
	}

	return record, nil
}

// maxPushAttempts bounds the retry loop in [userRecordRepository.PushPayload].
const maxPushAttempts = 2

// PushPayload implements the upsert described on [UserRecordRepository].
// The snapshot list is read under a row lock, appended to in memory,
// trimmed to the newest [models.MaxSnapshots], and written back together
// with the new payload in a single transaction. A transaction that fails
// with a [Retryable] PostgreSQL error (deadlock, serialization failure,
// dropped connection) is attempted once more before giving up.
func (r *userRecordRepository) PushPayload(ctx context.Context, identity models.Identity, payload *models.Payload, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= maxPushAttempts; attempt++ {
		if err = r.pushPayloadTx(ctx, identity, payload, snapshot); err == nil {
			return nil
		}
		if ClassifyPostgresError(err) != Retryable {
			return err
		}
		log.Warn().Str("func", "*userRecordRepository.PushPayload").Int("attempt", attempt).Str("pg_code", postgresError(err)).Msg("transient database error, retrying push")
	}

	return err
}

func (r *userRecordRepository) pushPayloadTx(ctx context.Context, identity models.Identity, payload *models.Payload, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRecordRepository.PushPayload").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	snapshots, _, err := lockedSnapshots(ctx, tx, identity.Email)
	if err != nil && !errors.Is(err, ErrUserRecordNotFound) {
		return err
	}

	snapshots = append(snapshots, snapshot)
	if len(snapshots) > models.MaxSnapshots {
		snapshots = snapshots[len(snapshots)-models.MaxSnapshots:]
	}

	dataRaw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	snapshotsRaw, err := json.Marshal(snapshots)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := upsertUserRecord(identity.Email, identity.Name, identity.Picture, dataRaw, snapshotsRaw, snapshot.SavedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRecordRepository.PushPayload").Str("pg_code", postgresError(err)).Msg("error upserting user record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRecordRepository.PushPayload").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// RollbackPayload implements the restore described on
// [UserRecordRepository]. The matching snapshot's payload becomes the
// current data; the snapshot list is not modified, so the pre-rollback
// state is not itself snapshotted (a rollback is a restore, not a new
// save point).
func (r *userRecordRepository) RollbackPayload(ctx context.Context, email, rollbackTo string, now time.Time) (*models.Payload, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRecordRepository.RollbackPayload").Msg("error beginning transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	snapshots, _, err := lockedSnapshots(ctx, tx, email)
	if err != nil {
		return nil, err
	}

	var restored *models.Payload
	for i := range snapshots {
		if snapshots[i].Key() == rollbackTo {
			restored = snapshots[i].Data
			break
		}
	}
	if restored == nil {
		return nil, ErrSnapshotNotFound
	}

	dataRaw, err := json.Marshal(restored)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := updatePayloadOnly(email, dataRaw, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRecordRepository.RollbackPayload").Str("pg_code", postgresError(err)).Msg("error updating payload")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRecordRepository.RollbackPayload").Msg("error committing transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return restored, nil
}

// lockedSnapshots reads the identity's current payload and snapshot list
// under FOR UPDATE so the caller can modify them without racing another
// request for the same user. Returns [ErrUserRecordNotFound] when the
// row does not exist yet.
func lockedSnapshots(ctx context.Context, tx *sql.Tx, email string) ([]models.Snapshot, []byte, error) {
	query, args, err := selectSnapshotsForUpdate(email)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var dataRaw, snapshotsRaw []byte
	row := tx.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&dataRaw, &snapshotsRaw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrUserRecordNotFound
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var snapshots []models.Snapshot
	if len(snapshotsRaw) > 0 {
		if err = json.Unmarshal(snapshotsRaw, &snapshots); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
		}
	}

	return snapshots, dataRaw, nil
}
