package config

import "errors"

// Validation errors returned when a required group of settings is missing
// or inconsistent. Matched with [errors.Is] by the cmd entrypoints.
var (
	// ErrInvalidServerConfigs is returned when the server is started
	// without a listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configs: http address is required")

	// ErrInvalidStorageConfigs is returned when the server is started
	// without a database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database dsn is required")

	// ErrInvalidAppConfigs is returned when identity-token verification
	// settings are missing.
	ErrInvalidAppConfigs = errors.New("invalid app configs: token sign key and issuer are required")

	// ErrInvalidAdapterConfigs is returned when the client has no sync
	// server address or no request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs: server address and request timeout are required")
)
