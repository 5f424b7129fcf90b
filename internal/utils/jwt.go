package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-money-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// identityClaims are the claims carried by an identity token issued by
// the OAuth identity provider after a successful sign-in. Email is the
// stable user key; name and picture are profile passthrough.
type identityClaims struct {
	jwt.RegisteredClaims
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// GenerateIdentityToken creates a signed HMAC-SHA256 identity token for
// the given identity. In production the identity provider issues these;
// this function exists for the client sign-in flow in development and
// for tests.
//
// The token includes the standard claims:
//   - Issuer    (iss): identifies the issuing identity provider
//   - Subject   (sub): the user's email
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Returns an error if any parameter is empty or zero.
func GenerateIdentityToken(issuer string, identity models.Identity, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || identity.Email == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating identity token")
	}

	now := time.Now()
	claims := &identityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identity.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email:   identity.Email,
		Name:    identity.Name,
		Picture: identity.Picture,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing identity token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Identity: identity}, nil
}

// ValidateAndParseIdentityToken validates the given token string and
// extracts the caller's identity from its claims.
//
// Validation includes:
//   - signature verification using the provided sign key (HS256 only)
//   - issuer (iss) claim check against the expected issuer
//   - expiration (exp) claim check
//   - presence of a non-empty email claim
//
// Expired tokens are reported as jwt.ErrTokenExpired so callers can map
// them to a distinct failure.
func ValidateAndParseIdentityToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &identityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(tokenSignKey), nil
		},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error parsing identity token: %w", err)
	}
	if !token.Valid {
		return models.Token{}, errors.New("identity token is not valid")
	}

	email := claims.Email
	if email == "" {
		// older issuers put the email in the subject only
		email = claims.Subject
	}
	if email == "" {
		return models.Token{}, errors.New("identity token carries no email")
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Identity: models.Identity{
			Email:   email,
			Name:    claims.Name,
			Picture: claims.Picture,
		},
	}, nil
}
