package jwt

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ipede/user-directory-service/internal/domain"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Issuer signs HS256 bearer tokens with a shared secret
type Issuer struct {
	cfg    domain.TokenConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewIssuer creates a new token issuer. Missing subject and duration fall
// back to their defaults; a missing secret is only reported when a token is
// requested.
func NewIssuer(cfg domain.TokenConfig, logger *zap.Logger) *Issuer {
	if cfg.Subject == "" {
		cfg.Subject = domain.DefaultTokenSubject
	}
	if cfg.Duration <= 0 {
		cfg.Duration = domain.DefaultTokenDuration
	}
	return &Issuer{cfg: cfg, logger: logger, now: time.Now}
}

// IssueToken generates a signed token valid for the configured duration
func (i *Issuer) IssueToken(ctx context.Context) (string, error) {
	if len(i.cfg.SecretKey) == 0 {
		i.logger.Error("token requested but no signing key is configured")
		return "", domain.ErrMissingSigningKey
	}

	now := i.now()
	claims := jwt.RegisteredClaims{
		Subject:   i.cfg.Subject,
		Issuer:    i.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.cfg.Duration)),
		ID:        ulid.Make().String(),
	}
	if i.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{i.cfg.Audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.cfg.SecretKey)
	if err != nil {
		i.logger.Error("failed to sign token", zap.Error(err))
		return "", domain.ErrInternal
	}

	i.logger.Debug("token issued", zap.String("jti", claims.ID), zap.Time("expires_at", claims.ExpiresAt.Time))
	return signed, nil
}
