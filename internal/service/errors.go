package service

import "errors"

// Sentinel errors returned by service methods. Callers match them with
// [errors.Is]; the HTTP layer maps them to status codes.
var (
	// ErrNotAuthenticated is returned before any store access when the
	// caller has no valid identity.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidPayload is returned when a push carries no payload or a
	// payload that does not match the document schema.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrTokenIsExpired is returned when the identity token's exp claim
	// is in the past.
	ErrTokenIsExpired = errors.New("identity token is expired")

	// ErrTokenIsExpiredOrInvalid is returned when the identity token
	// cannot be validated for any other reason.
	ErrTokenIsExpiredOrInvalid = errors.New("identity token is expired or invalid")
)

// Client-side coordinator errors.
var (
	// ErrSyncInProgress is returned when a manual operation is requested
	// while another sync is in flight. The trigger is dropped, not
	// queued; the caller may simply retry.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrSyncConflict is returned by a manual download when both sides
	// hold tracked data that differs and no resolver was provided.
	ErrSyncConflict = errors.New("local and cloud data conflict, resolution required")

	// ErrNotSignedIn is returned by coordinator operations that require
	// an authenticated session.
	ErrNotSignedIn = errors.New("not signed in")
)

// ConflictError carries the record counts of an unresolved download
// conflict so callers can present the choice to the user. It matches
// [ErrSyncConflict] under [errors.Is].
type ConflictError struct {
	Info ConflictInfo
}

func (e *ConflictError) Error() string {
	return ErrSyncConflict.Error()
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrSyncConflict
}
