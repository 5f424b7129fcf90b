// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// go-money-keeper. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as identity-token
	// parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the
	// server's relational database and the client's local device store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's connection settings for the sync
	// endpoint.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the client-side sync coordinator timing settings.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds application-level configuration values that control identity
// token verification and versioning.
type App struct {
	// TokenSignKey is the secret key used to verify (and, in the
	// development sign-in flow, sign) identity tokens. Must be kept
	// confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"token_sign_key"`

	// TokenIssuer is the "iss" claim expected on every identity token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" json:"token_issuer"`

	// TokenDuration specifies how long a development-issued identity
	// token remains valid (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" json:"token_duration"`

	// Version is the reported application version.
	// Env: APP_VERSION
	Version string `env:"VERSION" json:"version"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the server's relational database connection settings.
	DB DB `envPrefix:"DB_" json:"db"`

	// Local holds the client's device-local store settings.
	Local Local `envPrefix:"LOCAL_" json:"local"`
}

// DB holds the relational database connection settings for the snapshot
// store.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN" json:"dsn"`
}

// Local holds the client-side device store settings.
type Local struct {
	// DSN is the SQLite file path of the local store. ":memory:" keeps
	// the store in memory only.
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN" json:"dsn"`
}

// Server holds network settings for the sync endpoint's HTTP server.
type Server struct {
	// HTTPAddress is the listen address, e.g. ":8080".
	// Env: SERVER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS" json:"http_address"`

	// ReadTimeout bounds reading of an incoming request.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT" json:"read_timeout"`

	// WriteTimeout bounds writing of a response.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" json:"write_timeout"`
}

// Adapter holds the client's connection settings for the sync endpoint.
type Adapter struct {
	// HTTPAddress is the base URL of the sync server,
	// e.g. "http://localhost:8080".
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS" json:"http_address"`

	// RequestTimeout bounds every request issued by the adapter.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// Sync holds the client-side coordinator timing settings.
type Sync struct {
	// DebounceDelay is the quiet period after a local edit before the
	// coordinator pushes. Defaults to 2 seconds.
	// Env: SYNC_DEBOUNCE_DELAY
	DebounceDelay time.Duration `env:"DEBOUNCE_DELAY" json:"debounce_delay"`

	// PollInterval is how often the coordinator fetches the remote
	// state while authenticated. Defaults to 10 seconds.
	// Env: SYNC_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL" json:"poll_interval"`
}

// GetStructuredConfig builds the effective configuration by merging, in
// order of precedence: environment variables, command-line flags, and an
// optional JSON file referenced by either of the former.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
