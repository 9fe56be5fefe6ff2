package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ipede/user-directory-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) IssueToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func TestHandlerToken_Issue(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "issued",
			token:          "signed.jwt.value",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"token":"signed.jwt.value"}`,
		},
		{
			name:           "missing signing key",
			err:            domain.ErrMissingSigningKey,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"code":"U0015","message":"Token signing key is not configured"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer := new(mockTokenIssuer)
			issuer.On("IssueToken", mock.Anything).Return(tt.token, tt.err)

			w := httptest.NewRecorder()
			NewTokenHandler(issuer, zap.NewNop()).IssueTokenHandler(w, httptest.NewRequest(http.MethodGet, "/token", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
