package models

import "github.com/golang-jwt/jwt/v5"

// Token pairs a parsed identity token with the identity extracted from
// its claims. Produced by the token verification utilities and consumed
// by the auth middleware.
type Token struct {
	// Token is the parsed and validated JWT.
	Token *jwt.Token `json:"-"`

	// SignedString is the raw signed token string.
	SignedString string `json:"token"`

	// Identity is the caller asserted by the token claims.
	Identity Identity `json:"-"`
}
