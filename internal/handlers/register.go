package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in models.NewUser) error
}

// RegisterRequest is the register variant of the /api/auth POST body
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: ana@example.com
	Email string `json:"email" validate:"notblank"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"notblank"`

	// Username
	// required: true
	// default: ana
	Username string `json:"username" validate:"notblank"`

	// Birthdate as YYYY-MM-DD or RFC 3339
	// required: true
	// default: 1990-05-17
	Birthdate string `json:"birthdate" validate:"notblank"`

	// Favourite genres
	FavoriteGenres []string `json:"favoriteGenres"`
}

// Register error bodies.
const (
	MsgRegisterMissing   = "Faltan datos obligatorios"
	MsgRegisterBadDate   = "Fecha de nacimiento inválida"
	MsgUserExists        = "El usuario ya existe"
	MsgRegisterFailed    = "Error al registrar usuario"
	MsgRegisterSucceeded = "Usuario registrado"
)

// parseBirthdate accepts a calendar date or a full RFC 3339 timestamp.
func parseBirthdate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func handleRegister(w http.ResponseWriter, r *http.Request, svc Registerer, req RegisterRequest) {
	if !validRequest(r, req) {
		writeError(w, http.StatusBadRequest, MsgRegisterMissing)
		return
	}

	birthdate, err := parseBirthdate(req.Birthdate)
	if err != nil {
		writeError(w, http.StatusBadRequest, MsgRegisterBadDate)
		return
	}

	err = svc.Register(r.Context(), models.NewUser{
		Email:          strings.TrimSpace(req.Email),
		Username:       strings.TrimSpace(req.Username),
		Password:       req.Password,
		Birthdate:      birthdate,
		FavoriteGenres: req.FavoriteGenres,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserAlreadyExists):
			writeError(w, http.StatusConflict, MsgUserExists)
		default:
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, MsgRegisterFailed)
		}
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: MsgRegisterSucceeded})
}
