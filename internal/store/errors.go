package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against
// these values.
var (
	// ErrUserRecordNotFound is returned when no record exists for the
	// requested identity. Callers translate this into the explicit
	// "never synced" result rather than a failure.
	ErrUserRecordNotFound = errors.New("user record was not found")

	// ErrSnapshotNotFound is returned when a rollback targets a SavedAt
	// key that is not present in the user's snapshot sequence. It is kept
	// distinct from generic failures so the endpoint can answer 404.
	ErrSnapshotNotFound = errors.New("snapshot was not found")

	// ErrLocalKeyNotFound is returned by the client local store when a
	// well-known key has never been written on this device.
	ErrLocalKeyNotFound = errors.New("local key was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back at
	// this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a
	// result row fails.
	ErrScanningRow = errors.New("failed to scan user record row")

	// ErrEncodingDocument is returned when a payload or snapshot list
	// cannot be serialized for storage.
	ErrEncodingDocument = errors.New("failed to encode document for storage")

	// ErrDecodingDocument is returned when a stored payload or snapshot
	// list cannot be deserialized.
	ErrDecodingDocument = errors.New("failed to decode stored document")
)
