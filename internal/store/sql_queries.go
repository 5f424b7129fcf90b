package store

import (
	sq "github.com/Masterminds/squirrel"
)

// psql is the shared statement builder configured for PostgreSQL
// positional placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// selectUserRecord fetches the full record for one identity.
func selectUserRecord(email string) (string, []any, error) {
	return psql.
		Select("email", "name", "image", "data", "last_sync", "snapshots", "created_at").
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
}

// selectSnapshotsForUpdate locks the identity's row for the duration of a
// push or rollback so snapshot append/trim is serialized per user.
func selectSnapshotsForUpdate(email string) (string, []any, error) {
	return psql.
		Select("data", "snapshots").
		From("users").
		Where(sq.Eq{"email": email}).
		Suffix("FOR UPDATE").
		ToSql()
}

// upsertUserRecord replaces the payload and profile wholesale, advances
// last_sync, and stores the already-trimmed snapshot list. created_at is
// only written on insert.
func upsertUserRecord(email, name, image string, data, snapshots []byte, lastSync any) (string, []any, error) {
	return psql.
		Insert("users").
		Columns("email", "name", "image", "data", "last_sync", "snapshots").
		Values(email, name, image, data, lastSync, snapshots).
		Suffix(`ON CONFLICT (email) DO UPDATE
			SET name = EXCLUDED.name,
			    image = EXCLUDED.image,
			    data = EXCLUDED.data,
			    last_sync = EXCLUDED.last_sync,
			    snapshots = EXCLUDED.snapshots`).
		ToSql()
}

// updatePayloadOnly rewrites the current payload and last_sync without
// touching the snapshot list. Used by rollback.
func updatePayloadOnly(email string, data []byte, lastSync any) (string, []any, error) {
	return psql.
		Update("users").
		Set("data", data).
		Set("last_sync", lastSync).
		Where(sq.Eq{"email": email}).
		ToSql()
}
