package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-money-keeper/internal/config"
	"github.com/MKhiriev/go-money-keeper/internal/logger"
	"github.com/MKhiriev/go-money-keeper/internal/utils"
	"github.com/MKhiriev/go-money-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpSyncEndpoint struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPSyncEndpoint constructs an HTTP/REST implementation of
// [SyncEndpoint]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with
// the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPSyncEndpoint(adapterCfg config.ClientAdapter, logger *logger.Logger) (SyncEndpoint, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpSyncEndpoint{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [SyncEndpoint]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpSyncEndpoint) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [SyncEndpoint]. It returns the bearer token currently
// held by the endpoint, or an empty string if none has been set.
func (h *httpSyncEndpoint) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SignIn implements [SyncEndpoint]. It POSTs the identity to
// POST /api/auth/token. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error
// if the request fails, the server returns a non-2xx status, or the token
// is missing from the response.
func (h *httpSyncEndpoint) SignIn(ctx context.Context, identity models.Identity) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(identity).
		Post("/api/auth/token")
	if err != nil {
		return "", fmt.Errorf("sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if token == "" {
		return "", fmt.Errorf("sign in: no bearer token in response")
	}

	h.SetToken(token)
	return token, nil
}

// Fetch implements [SyncEndpoint]. It GETs GET /api/sync and decodes the
// response into a [models.SyncFetchResponse]. Requires a valid bearer
// token. Returns an error if the request, response mapping, or JSON
// decoding fails.
func (h *httpSyncEndpoint) Fetch(ctx context.Context) (models.SyncFetchResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/sync")
	if err != nil {
		return models.SyncFetchResponse{}, fmt.Errorf("fetch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncFetchResponse{}, err
	}

	var fr models.SyncFetchResponse
	if err = json.Unmarshal(resp.Body(), &fr); err != nil {
		return models.SyncFetchResponse{}, fmt.Errorf("decode fetch response: %w", err)
	}

	return fr, nil
}

// Push implements [SyncEndpoint]. It POSTs {"data": ...} to
// POST /api/sync and returns the server-assigned lastSync. Requires a
// valid bearer token.
func (h *httpSyncEndpoint) Push(ctx context.Context, data json.RawMessage) (time.Time, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SyncPushRequest{Data: data}).
		Post("/api/sync")
	if err != nil {
		return time.Time{}, fmt.Errorf("push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return time.Time{}, err
	}

	var pr models.SyncPushResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return time.Time{}, fmt.Errorf("decode push response: %w", err)
	}

	return pr.LastSync, nil
}

// Rollback implements [SyncEndpoint]. It POSTs {"rollbackTo": ...} to
// POST /api/sync and returns the restored payload with the new lastSync.
// Returns [ErrSnapshotNotFound] (wrapped) on HTTP 404. Requires a valid
// bearer token.
func (h *httpSyncEndpoint) Rollback(ctx context.Context, rollbackTo string) (*models.Payload, time.Time, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SyncPushRequest{RollbackTo: rollbackTo}).
		Post("/api/sync")
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("rollback request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, time.Time{}, err
	}

	var rr models.SyncRollbackResponse
	if err = json.Unmarshal(resp.Body(), &rr); err != nil {
		return nil, time.Time{}, fmt.Errorf("decode rollback response: %w", err)
	}

	return rr.Data, rr.LastSync, nil
}

func (h *httpSyncEndpoint) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
