package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrSnapshotNotFound    = errors.New("snapshot not found on server")
	ErrInternalServerError = errors.New("internal server error")
)
