package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/validation"
)

// Error bodies shared by several handlers.
const (
	MsgInternalError = "Error interno del servidor"
	MsgUnauthorized  = "No autorizado"
)

var validate = validation.New()

// UserIDGetter returns the authenticated user id stored in the context.
type UserIDGetter func(ctx context.Context) (int64, bool)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Datos inválidos
	Error string `json:"error"`
}

// MessageResponse is the body of successful writes that return no entity
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// validRequest runs the struct validation rules on req. Rejected fields are
// logged since the client only gets the handler's generic message.
func validRequest(r *http.Request, req any) bool {
	err := validate.Validate(req)
	if err == nil {
		return true
	}

	var fieldsErr *validation.FieldsError
	if errors.As(err, &fieldsErr) {
		logger.Log.Warnw("invalid request", "method", r.Method, "path", r.URL.Path, "fields", fieldsErr.Fields)
	} else {
		logger.Log.Warnw("invalid request", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	return false
}
