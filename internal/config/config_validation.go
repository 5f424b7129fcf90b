// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied after merging all configuration sources. The sync
// timings match the behavior users already expect from the application:
// a couple of seconds of quiet time before a push, a fetch roughly every
// ten seconds while signed in.
const (
	DefaultDebounceDelay  = 2 * time.Second
	DefaultPollInterval   = 10 * time.Second
	DefaultRequestTimeout = 15 * time.Second
	DefaultTokenDuration  = 24 * time.Hour
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Sync.DebounceDelay <= 0 {
		cfg.Sync.DebounceDelay = DefaultDebounceDelay
	}
	if cfg.Sync.PollInterval <= 0 {
		cfg.Sync.PollInterval = DefaultPollInterval
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.TokenDuration <= 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
}

// ValidateServer checks the invariants required to start the sync server:
// a listen address, a database DSN, and identity-token settings.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
