package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

// ProfileReader returns the authenticated user's profile.
type ProfileReader interface {
	Profile(ctx context.Context, userID int64) (*models.Profile, error)
}

// AuthRequest is the /api/auth POST body; type "register" selects registration
// swagger:model AuthRequest
type AuthRequest struct {
	// Operation: "register" or anything else for login
	// default: register
	Type string `json:"type"`
	RegisterRequest
}

// MsgUserNotFound is returned when the token's user no longer exists.
const MsgUserNotFound = "Usuario no encontrado"

// NewAuthHandler returns an HTTP handler that registers or logs a user in.
// @Summary Register or log in
// @Description With type=register creates the user, its profile, favourite genres and the three default lists. Otherwise authenticates by email and password and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param authRequest body handlers.AuthRequest true "Register or login request"
// @Success 200 {object} handlers.LoginResponse "Bearer token"
// @Success 201 {object} handlers.MessageResponse "User registered"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Failure 409 {object} handlers.ErrorResponse "User already exists"
// @Router /auth [post]
func NewAuthHandler(registerer Registerer, loginer Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AuthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if req.Type == "register" {
				writeError(w, http.StatusBadRequest, MsgRegisterMissing)
			} else {
				writeError(w, http.StatusBadRequest, MsgLoginMissing)
			}
			return
		}

		if req.Type == "register" {
			handleRegister(w, r, registerer, req.RegisterRequest)
			return
		}
		handleLogin(w, r, loginer, LoginRequest{Email: req.Email, Password: req.Password})
	}
}

// NewProfileHandler returns an HTTP handler for the authenticated user's profile.
// @Summary Current user profile
// @Description Returns the user with profile, favourite genres and all lists with their books.
// @Tags auth
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 401 {object} handlers.ErrorResponse "No autorizado / Token inválido / Token expirado"
// @Failure 404 {object} handlers.ErrorResponse "Usuario no encontrado"
// @Router /auth [get]
// @Security BearerAuth
func NewProfileHandler(svc ProfileReader, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, MsgUnauthorized)
			return
		}

		profile, err := svc.Profile(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, MsgUserNotFound)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, MsgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}
