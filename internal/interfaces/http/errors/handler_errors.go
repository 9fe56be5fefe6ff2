package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/ipede/user-directory-service/internal/domain"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details []domain.FieldError `json:"details,omitempty"`
}

func getStatus(err domain.Error) int {
	switch err.GetKind() {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	case domain.KindConfiguration, domain.KindInternal:
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

// RespondWithError sends a standardized error response
func RespondWithError(w http.ResponseWriter, err domain.Error) {
	RespondErrorWithDetails(w, err, err.GetDetails())
}

// RespondErrorWithDetails sends a standardized error response with details
func RespondErrorWithDetails(w http.ResponseWriter, err domain.Error, details []domain.FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(getStatus(err))
	json.NewEncoder(w).Encode(ErrorResponse{
		Code:    err.GetCode(),
		Message: err.GetMessage(),
		Details: details,
	})
}

// Respond maps any error onto the standard response. Errors that are not
// domain errors are reported as internal failures.
func Respond(w http.ResponseWriter, err error) {
	var derr domain.Error
	if stderrors.As(err, &derr) {
		RespondWithError(w, derr)
		return
	}
	RespondWithError(w, domain.ErrInternal)
}
