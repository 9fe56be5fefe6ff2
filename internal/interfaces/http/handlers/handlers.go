package handlers

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ipede/user-directory-service/internal/domain"
	"github.com/ipede/user-directory-service/internal/interfaces/http/errors"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// respondError writes err and logs it when it is not a client error
func respondError(w http.ResponseWriter, logger *zap.Logger, msg string, err error) {
	var derr domain.Error
	if !stderrors.As(err, &derr) || derr.GetKind() == domain.KindInternal || derr.GetKind() == domain.KindConfiguration {
		logger.Error(msg, zap.Error(err))
	}
	errors.Respond(w, err)
}

// pathID parses a positive integer path parameter
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidID.WithMessage("Invalid %s %q.", name, raw)
	}
	return id, nil
}

// queryInt reads an integer query parameter, falling back to def when absent
func queryInt(q url.Values, key string, def int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ErrInvalidQueryParam.WithMessage("Query parameter %q must be an integer.", key)
	}
	return v, nil
}

// decodeBody decodes the JSON body into dst. A body of JSON null leaves dst
// untouched and reports present=false.
func decodeBody(r *http.Request, dst any) (present bool, err error) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return false, domain.ErrInvalidRequestBody
	}
	if !json.Valid(raw) {
		return false, domain.ErrInvalidRequestBody
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, domain.ErrInvalidRequestBody.WithMessage("Invalid request body: %v", err)
	}
	return true, nil
}
