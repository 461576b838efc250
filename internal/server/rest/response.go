package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/William0209/backend-last/internal/common"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a single JSON object from the request body into v.
// Failures are reported as common.ErrValidation.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", common.ErrValidation)
		}
		return fmt.Errorf("%w: malformed request body", common.ErrValidation)
	}
	return nil
}

// writeError maps service errors to statuses. Anything unrecognised is
// logged and answered with a generic 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, common.ErrIdentityTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "User already exists"})
	case errors.Is(err, common.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "User not found"})
	case errors.Is(err, common.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid password"})
	case errors.Is(err, common.ErrTokenMissing):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Token missing"})
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "Invalid token"})
	case errors.Is(err, common.ErrNotFoundOrNotOwner):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Post not found"})
	default:
		s.logger.Error(r.Context(), err.Error(), "method", r.Method, "path", r.URL.Path)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Something went wrong!"})
	}
}
