package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

// respondError maps domain sentinels onto HTTP statuses. Anything
// unrecognized is a 500 with a generic message; the underlying error is
// logged, not leaked.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(ctx, w, http.StatusNotFound, errorResponse{Message: "not found"})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(ctx, w, http.StatusConflict, errorResponse{Message: "already exists"})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(ctx, w, http.StatusForbidden, errorResponse{Message: "forbidden"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{Message: "invalid credentials"})
	default:
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "request failed", "error", err)
		writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}

func respondBadRequest(ctx context.Context, w http.ResponseWriter, message string) {
	writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Message: message})
}
