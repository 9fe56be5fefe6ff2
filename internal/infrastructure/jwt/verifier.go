package jwt

import (
	"github.com/go-chi/jwtauth/v5"
	"github.com/ipede/user-directory-service/internal/domain"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
)

// NewVerifier returns the HS256 verifier used by the HTTP auth middleware.
// Issuer and audience are enforced when configured.
func NewVerifier(cfg domain.TokenConfig) *jwtauth.JWTAuth {
	var opts []jwxjwt.ValidateOption
	if cfg.Issuer != "" {
		opts = append(opts, jwxjwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwxjwt.WithAudience(cfg.Audience))
	}
	return jwtauth.New("HS256", cfg.SecretKey, nil, opts...)
}
