package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-money-keeper/internal/config"
	"github.com/MKhiriev/go-money-keeper/internal/logger"
	"github.com/MKhiriev/go-money-keeper/internal/utils"
	"github.com/MKhiriev/go-money-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService implements [AuthService]. Verification is HMAC-based with
// a key shared with the identity provider; the real provider performs
// the OAuth dance, this service only checks its signed assertions.
type authService struct {
	cfg    config.App
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] from the app configuration.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{cfg: cfg, logger: logger}
}

// ParseToken implements [AuthService]. Expired tokens are reported as
// [ErrTokenIsExpired]; any other validation failure becomes
// [ErrTokenIsExpiredOrInvalid].
func (s *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseIdentityToken(tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		log.Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token validation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

// IssueToken implements [AuthService].
func (s *authService) IssueToken(ctx context.Context, identity models.Identity) (models.Token, error) {
	if identity.Email == "" {
		return models.Token{}, ErrNotAuthenticated
	}

	token, err := utils.GenerateIdentityToken(s.cfg.TokenIssuer, identity, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("issue identity token: %w", err)
	}

	return token, nil
}
