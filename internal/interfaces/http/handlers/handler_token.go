package handlers

import (
	"net/http"

	"github.com/ipede/user-directory-service/internal/domain"
	"github.com/ipede/user-directory-service/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

type HandlerToken struct {
	issuer domain.TokenIssuer
	logger *zap.Logger
}

func NewTokenHandler(issuer domain.TokenIssuer, logger *zap.Logger) *HandlerToken {
	return &HandlerToken{issuer: issuer, logger: logger}
}

// IssueTokenHandler godoc
// @Summary Issue a bearer token
// @Description Returns an HS256 token valid for the configured duration
// @Tags auth
// @Produce json
// @Success 200 {object} dto.TokenResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /token [get]
func (h *HandlerToken) IssueTokenHandler(w http.ResponseWriter, r *http.Request) {
	token, err := h.issuer.IssueToken(r.Context())
	if err != nil {
		respondError(w, h.logger, "failed to issue token", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, dto.TokenResponse{Token: token})
}
