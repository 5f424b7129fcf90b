// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-money-keeper/internal/logger"
	"github.com/MKhiriev/go-money-keeper/internal/service"
	"github.com/MKhiriev/go-money-keeper/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
	issueTokenFn func(ctx context.Context, identity models.Identity) (models.Token, error)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) IssueToken(ctx context.Context, identity models.Identity) (models.Token, error) {
	return m.issueTokenFn(ctx, identity)
}

// mockSyncService implements service.SyncService for unit tests.
type mockSyncService struct {
	fetchFn    func(ctx context.Context, identity models.Identity) (models.SyncFetchResponse, error)
	pushFn     func(ctx context.Context, identity models.Identity, raw json.RawMessage) (time.Time, error)
	rollbackFn func(ctx context.Context, identity models.Identity, rollbackTo string) (*models.Payload, time.Time, error)
}

func (m *mockSyncService) Fetch(ctx context.Context, identity models.Identity) (models.SyncFetchResponse, error) {
	return m.fetchFn(ctx, identity)
}

func (m *mockSyncService) Push(ctx context.Context, identity models.Identity, raw json.RawMessage) (time.Time, error) {
	return m.pushFn(ctx, identity, raw)
}

func (m *mockSyncService) Rollback(ctx context.Context, identity models.Identity, rollbackTo string) (*models.Payload, time.Time, error) {
	return m.rollbackFn(ctx, identity, rollbackTo)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testIdentityEmail = "user@example.com"

// passThroughAuth returns an AuthService that accepts any token and
// asserts the fixture identity.
func passThroughAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			return models.Token{
				SignedString: tokenString,
				Identity:     models.Identity{Email: testIdentityEmail, Name: "Ana"},
			}, nil
		},
	}
}

// newTestHandler builds a Handler with the given service mocks.
func newTestHandler(t *testing.T, auth service.AuthService, sync service.SyncService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
		SyncService: sync,
	}
	return NewHandler(svcs, "test-version", logger.Nop())
}

// doRequest routes a request through the full middleware chain.
func doRequest(t *testing.T, h *Handler, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, r)
	return w
}

// decodeErrorResponse parses the uniform {error, message} body.
func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var er models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &er))
	return er
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler(t, passThroughAuth(), &mockSyncService{})
	require.NotNil(t, h)
	require.NotNil(t, h.Init())
}
