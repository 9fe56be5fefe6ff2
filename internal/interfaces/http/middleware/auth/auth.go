package auth

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/ipede/user-directory-service/internal/domain"
	"github.com/ipede/user-directory-service/internal/interfaces/http/errors"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	ja     *jwtauth.JWTAuth
	logger *zap.Logger
}

func NewAuthMiddleware(ja *jwtauth.JWTAuth, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{ja: ja, logger: logger}
}

// Verifier extracts the bearer token from the Authorization header and
// verifies it, leaving the outcome in the request context.
func (m *AuthMiddleware) Verifier(next http.Handler) http.Handler {
	return jwtauth.Verify(m.ja, jwtauth.TokenFromHeader)(next)
}

// Authenticator rejects requests whose token is missing or failed
// verification. Subject and token id of accepted tokens are put in the
// context.
func (m *AuthMiddleware) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil {
			if err == jwtauth.ErrNoTokenFound {
				errors.RespondWithError(w, domain.ErrUnauthorized)
				return
			}
			m.logger.Debug("rejected bearer token", zap.Error(err))
			errors.RespondWithError(w, domain.ErrInvalidToken)
			return
		}
		if token == nil {
			errors.RespondWithError(w, domain.ErrUnauthorized)
			return
		}

		ctx := domain.WithSubject(r.Context(), token.Subject())
		ctx = domain.WithTokenID(ctx, token.JwtID())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
