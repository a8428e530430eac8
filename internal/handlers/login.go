package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// LoginRequest is the login variant of the /api/auth POST body
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: ana@example.com
	Email string `json:"email" validate:"notblank"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"notblank"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Bearer token valid for seven days
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// Login error bodies.
const (
	MsgLoginMissing      = "Faltan datos"
	MsgInvalidCredential = "Credenciales inválidas"
	MsgLoginFailed       = "Error al iniciar sesión"
)

func handleLogin(w http.ResponseWriter, r *http.Request, svc Loginer, req LoginRequest) {
	if !validRequest(r, req) {
		writeError(w, http.StatusBadRequest, MsgLoginMissing)
		return
	}

	token, err := svc.Login(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, MsgInvalidCredential)
		default:
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, MsgLoginFailed)
		}
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}
