// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-money-keeper/internal/service"
	"github.com/MKhiriev/go-money-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// POST /api/auth/token
// ─────────────────────────────────────────────

func TestIssueToken(t *testing.T) {
	t.Run("success: token in header and body", func(t *testing.T) {
		auth := &mockAuthService{
			issueTokenFn: func(_ context.Context, identity models.Identity) (models.Token, error) {
				require.Equal(t, "user@example.com", identity.Email)
				return models.Token{SignedString: "signed-token", Identity: identity}, nil
			},
		}
		h := newTestHandler(t, auth, &mockSyncService{})

		r := httptest.NewRequest(http.MethodPost, "/api/auth/token",
			strings.NewReader(`{"email":"user@example.com","name":"Ana"}`))
		w := doRequest(t, h, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Bearer signed-token", w.Header().Get("Authorization"))
		assert.JSONEq(t, `{"token":"signed-token"}`, w.Body.String())
	})

	t.Run("invalid json", func(t *testing.T) {
		h := newTestHandler(t, &mockAuthService{}, &mockSyncService{})

		r := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(`{broken`))
		w := doRequest(t, h, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid JSON was passed", decodeErrorResponse(t, w).Error)
	})

	t.Run("no email", func(t *testing.T) {
		auth := &mockAuthService{
			issueTokenFn: func(context.Context, models.Identity) (models.Token, error) {
				return models.Token{}, service.ErrNotAuthenticated
			},
		}
		h := newTestHandler(t, auth, &mockSyncService{})

		r := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(`{"name":"Ana"}`))
		w := doRequest(t, h, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "no identity email provided", decodeErrorResponse(t, w).Error)
	})

	t.Run("signing failure", func(t *testing.T) {
		auth := &mockAuthService{
			issueTokenFn: func(context.Context, models.Identity) (models.Token, error) {
				return models.Token{}, errors.New("sign key misconfigured")
			},
		}
		h := newTestHandler(t, auth, &mockSyncService{})

		r := httptest.NewRequest(http.MethodPost, "/api/auth/token",
			strings.NewReader(`{"email":"user@example.com"}`))
		w := doRequest(t, h, r)

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
