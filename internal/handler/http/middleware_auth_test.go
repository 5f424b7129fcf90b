// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-money-keeper/internal/service"
	"github.com/MKhiriev/go-money-keeper/internal/utils"
	"github.com/MKhiriev/go-money-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveWithAuth прогоняет запрос только через auth middleware и
// возвращает identity, попавшую в контекст конечного обработчика.
func serveWithAuth(t *testing.T, auth service.AuthService, r *http.Request) (*httptest.ResponseRecorder, *models.Identity) {
	t.Helper()
	h := newTestHandler(t, auth, &mockSyncService{})

	var gotIdentity *models.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
			gotIdentity = &identity
		}
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	h.auth(next).ServeHTTP(w, r)
	return w, gotIdentity
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("success: identity lands in the context", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/sync", nil)
		r.Header.Set("Authorization", "Bearer valid-token")

		w, identity := serveWithAuth(t, passThroughAuth(), r)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, identity)
		assert.Equal(t, testIdentityEmail, identity.Email)
	})

	t.Run("missing authorization header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/sync", nil)

		w, identity := serveWithAuth(t, passThroughAuth(), r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, identity)
		assert.Equal(t, ErrEmptyAuthorizationHeader.Error(), decodeErrorResponse(t, w).Error)
	})

	t.Run("header without token part", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/sync", nil)
		r.Header.Set("Authorization", "Bearer")

		w, identity := serveWithAuth(t, passThroughAuth(), r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, identity)
		assert.Equal(t, ErrInvalidAuthorizationHeader.Error(), decodeErrorResponse(t, w).Error)
	})

	t.Run("empty token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/sync", nil)
		r.Header.Set("Authorization", "Bearer ")

		w, identity := serveWithAuth(t, passThroughAuth(), r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, identity)
		assert.Equal(t, ErrEmptyToken.Error(), decodeErrorResponse(t, w).Error)
	})

	t.Run("expired token", func(t *testing.T) {
		auth := &mockAuthService{
			parseTokenFn: func(context.Context, string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpired
			},
		}

		r := httptest.NewRequest(http.MethodGet, "/api/sync", nil)
		r.Header.Set("Authorization", "Bearer expired-token")

		w, identity := serveWithAuth(t, auth, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, identity)
		assert.Equal(t, service.ErrTokenIsExpired.Error(), decodeErrorResponse(t, w).Error)
	})

	t.Run("invalid token", func(t *testing.T) {
		auth := &mockAuthService{
			parseTokenFn: func(context.Context, string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			},
		}

		r := httptest.NewRequest(http.MethodGet, "/api/sync", nil)
		r.Header.Set("Authorization", "Bearer forged-token")

		w, identity := serveWithAuth(t, auth, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, identity)
	})
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token part", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tc.header)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
