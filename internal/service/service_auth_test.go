package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-money-keeper/internal/config"
	"github.com/MKhiriev/go-money-keeper/internal/logger"
	"github.com/MKhiriev/go-money-keeper/internal/utils"
	"github.com/MKhiriev/go-money-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "money-keeper-test",
		TokenDuration: time.Hour,
	}
	return NewAuthService(cfg, logger.Nop())
}

func TestAuthService_IssueToken(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := syncTestContext()

	t.Run("no email", func(t *testing.T) {
		_, err := svc.IssueToken(ctx, models.Identity{Name: "Ana"})
		require.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("success", func(t *testing.T) {
		token, err := svc.IssueToken(ctx, models.Identity{Email: "user@example.com", Name: "Ana"})
		require.NoError(t, err)
		assert.NotEmpty(t, token.SignedString)
		assert.Equal(t, "user@example.com", token.Identity.Email)
	})
}

func TestAuthService_ParseToken(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := syncTestContext()
	identity := models.Identity{Email: "user@example.com", Name: "Ana", Picture: "avatar-ref"}

	t.Run("issue and parse round trip", func(t *testing.T) {
		issued, err := svc.IssueToken(ctx, identity)
		require.NoError(t, err)

		parsed, err := svc.ParseToken(ctx, issued.SignedString)
		require.NoError(t, err)
		assert.Equal(t, identity, parsed.Identity)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := utils.GenerateIdentityToken("money-keeper-test", identity, -time.Minute, "test-sign-key")
		require.NoError(t, err)

		_, err = svc.ParseToken(ctx, expired.SignedString)
		require.ErrorIs(t, err, ErrTokenIsExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		foreign, err := utils.GenerateIdentityToken("some-other-issuer", identity, time.Hour, "test-sign-key")
		require.NoError(t, err)

		_, err = svc.ParseToken(ctx, foreign.SignedString)
		require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("wrong sign key", func(t *testing.T) {
		forged, err := utils.GenerateIdentityToken("money-keeper-test", identity, time.Hour, "another-key")
		require.NoError(t, err)

		_, err = svc.ParseToken(ctx, forged.SignedString)
		require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("garbage token string", func(t *testing.T) {
		_, err := svc.ParseToken(ctx, "not.a.token")
		require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})
}
