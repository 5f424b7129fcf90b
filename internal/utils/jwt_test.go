package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-money-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "money-keeper-test"
	testSignKey = "test-sign-key"
)

var testIdentity = models.Identity{
	Email:   "user@example.com",
	Name:    "Ana",
	Picture: "avatar-ref",
}

func TestGenerateIdentityToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		token, err := GenerateIdentityToken(testIssuer, testIdentity, time.Hour, testSignKey)
		require.NoError(t, err)

		assert.NotEmpty(t, token.SignedString)
		assert.Equal(t, testIdentity, token.Identity)
		require.NotNil(t, token.Token)
	})

	t.Run("invalid params", func(t *testing.T) {
		cases := []struct {
			name     string
			issuer   string
			identity models.Identity
			duration time.Duration
			signKey  string
		}{
			{name: "empty issuer", identity: testIdentity, duration: time.Hour, signKey: testSignKey},
			{name: "empty email", issuer: testIssuer, duration: time.Hour, signKey: testSignKey},
			{name: "zero duration", issuer: testIssuer, identity: testIdentity, signKey: testSignKey},
			{name: "empty sign key", issuer: testIssuer, identity: testIdentity, duration: time.Hour},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := GenerateIdentityToken(tc.issuer, tc.identity, tc.duration, tc.signKey)
				require.Error(t, err)
			})
		}
	})
}

func TestValidateAndParseIdentityToken(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		issued, err := GenerateIdentityToken(testIssuer, testIdentity, time.Hour, testSignKey)
		require.NoError(t, err)

		parsed, err := ValidateAndParseIdentityToken(issued.SignedString, testSignKey, testIssuer)
		require.NoError(t, err)
		assert.Equal(t, testIdentity, parsed.Identity)
		assert.Equal(t, issued.SignedString, parsed.SignedString)
	})

	t.Run("expired token", func(t *testing.T) {
		issued, err := GenerateIdentityToken(testIssuer, testIdentity, -time.Minute, testSignKey)
		require.NoError(t, err)

		_, err = ValidateAndParseIdentityToken(issued.SignedString, testSignKey, testIssuer)
		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		issued, err := GenerateIdentityToken("someone-else", testIdentity, time.Hour, testSignKey)
		require.NoError(t, err)

		_, err = ValidateAndParseIdentityToken(issued.SignedString, testSignKey, testIssuer)
		require.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("wrong sign key", func(t *testing.T) {
		issued, err := GenerateIdentityToken(testIssuer, testIdentity, time.Hour, "another-key")
		require.NoError(t, err)

		_, err = ValidateAndParseIdentityToken(issued.SignedString, testSignKey, testIssuer)
		require.Error(t, err)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		// alg: none — отвергается до проверки подписи
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   testIdentity.Email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ValidateAndParseIdentityToken(tokenString, testSignKey, testIssuer)
		require.Error(t, err)
	})

	t.Run("email falls back to the subject claim", func(t *testing.T) {
		legacy := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "legacy@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		})
		tokenString, err := legacy.SignedString([]byte(testSignKey))
		require.NoError(t, err)

		parsed, err := ValidateAndParseIdentityToken(tokenString, testSignKey, testIssuer)
		require.NoError(t, err)
		assert.Equal(t, "legacy@example.com", parsed.Identity.Email)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ValidateAndParseIdentityToken("not.a.token", testSignKey, testIssuer)
		require.Error(t, err)
	})
}
