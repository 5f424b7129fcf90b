package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the sync server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage holds the device-local store settings.
type ClientStorage struct {
	// DSN is the SQLite file path of the local store; ":memory:" keeps
	// the store in memory only.
	DSN string
}

// ClientSync holds the coordinator's timing settings.
type ClientSync struct {
	// DebounceDelay is the quiet period after a local edit before a push.
	DebounceDelay time.Duration
	// PollInterval is the background fetch interval.
	PollInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains the local store settings.
	Storage ClientStorage
	// Sync contains coordinator timings.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the
// fields relevant to the client runtime, and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error getting structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN: cfg.Storage.Local.DSN,
		},
		Sync: ClientSync{
			DebounceDelay: cfg.Sync.DebounceDelay,
			PollInterval:  cfg.Sync.PollInterval,
		},
	}

	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = "http://localhost:8080"
	}

	return clientCfg, clientCfg.validate()
}
