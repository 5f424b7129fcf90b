package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. It embeds *resty.Client to expose all of
// its methods directly, while allowing extension with sync-specific
// behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient for talking to the sync endpoint.
// Transport-level failures are retried twice with a short wait, since the
// client runs on unreliable home networks; HTTP error statuses are not
// retried and are mapped to sentinel errors by the caller.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	c := resty.New().
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond)

	return &HTTPClient{Client: c}
}
