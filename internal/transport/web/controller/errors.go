package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/platziflix/catalog/internal/domain"
)

// apiError is the structured error body returned for every failure:
// a machine-readable kind plus a human-readable message.
type apiError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Error kinds carried in error responses.
const (
	ErrKindValidation   = "validation"
	ErrKindNotFound     = "not_found"
	ErrKindForbidden    = "forbidden"
	ErrKindUnauthorized = "unauthorized"
	ErrKindConflict     = "conflict"
	ErrKindInternal     = "internal"
)

// writeError maps a domain error onto an HTTP status and structured body.
// Unrecognized errors become opaque 500s so internals never leak.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr   domain.ValidationError
		notFoundErr     domain.NotFoundError
		forbiddenErr    domain.ForbiddenError
		unauthorizedErr domain.UnauthorizedError
		conflictErr     domain.ConflictError
	)

	status := http.StatusInternalServerError
	body := apiError{Kind: ErrKindInternal, Message: "internal server error"}

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		body = apiError{Kind: ErrKindValidation, Message: validationErr.Message}
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
		body = apiError{Kind: ErrKindNotFound, Message: notFoundErr.Error()}
	case errors.As(err, &forbiddenErr):
		status = http.StatusForbidden
		body = apiError{Kind: ErrKindForbidden, Message: forbiddenErr.Message}
	case errors.As(err, &unauthorizedErr):
		status = http.StatusUnauthorized
		body = apiError{Kind: ErrKindUnauthorized, Message: unauthorizedErr.Message}
	case errors.As(err, &conflictErr):
		status = http.StatusConflict
		body = apiError{Kind: ErrKindConflict, Message: conflictErr.Message}
	}

	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, "request failed", "error", err)
	} else {
		logger.WarnContext(ctx, "request rejected", "kind", body.Kind, "error", err)
	}

	writeJSON(w, r, status, body)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

// pathInt64 parses a numeric path variable, reporting a ValidationError on
// malformed input.
func pathInt64(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ValidationError{Message: "invalid " + name + " [" + raw + "]"}
	}
	return v, nil
}
