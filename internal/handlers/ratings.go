package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"
)

//go:generate mockgen -source=ratings.go -destination=ratings_mock.go -package=handlers

// Rater defines the rating operations used by the handlers.
type Rater interface {
	Rate(ctx context.Context, userID int64, bookID string, rating int) (models.RatingSummary, error)
	Get(ctx context.Context, bookID string, userID *int64) (models.RatingSummary, *int, error)
}

// Rating bodies.
const (
	MsgRatingInvalid    = "Datos inválidos"
	MsgRatingSaveFailed = "Error al guardar la calificación"
	MsgRatingBookID     = "Falta el bookId"
)

// FlexibleID is a user id sent either as a JSON number or as a numeric string.
type FlexibleID int64

// UnmarshalJSON implements json.Unmarshaler.
func (id *FlexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(strings.TrimSpace(s))
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*id = FlexibleID(n)
	return nil
}

// RateRequest is the body of POST /api/ratings
// swagger:model RateRequest
type RateRequest struct {
	BookID string `json:"bookId" validate:"notblank"`
	// Number or numeric string
	UserID FlexibleID `json:"userId" swaggertype:"integer" validate:"required"`
	// Integer between 1 and 5
	Rating int `json:"rating" validate:"gte=1,lte=5"`
}

// RateResponse is returned after a rating is stored
// swagger:model RateResponse
type RateResponse struct {
	Success bool    `json:"success"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// RatingResponse is the body of GET /api/ratings
// swagger:model RatingResponse
type RatingResponse struct {
	Average    float64 `json:"average"`
	Count      int     `json:"count"`
	UserRating *int    `json:"userRating"`
}

// NewRateBookHandler returns an HTTP handler storing a user's rating.
// @Summary Rate a book
// @Description Upserts the user's rating and recomputes the book average in one transaction.
// @Tags ratings
// @Accept json
// @Produce json
// @Param request body handlers.RateRequest true "Rating"
// @Success 200 {object} handlers.RateResponse
// @Failure 400 {object} handlers.ErrorResponse "Datos inválidos"
// @Router /ratings [post]
func NewRateBookHandler(svc Rater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, MsgRatingInvalid)
			return
		}
		if !validRequest(r, req) {
			writeError(w, http.StatusBadRequest, MsgRatingInvalid)
			return
		}

		summary, err := svc.Rate(r.Context(), int64(req.UserID), req.BookID, req.Rating)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRating):
				writeError(w, http.StatusBadRequest, MsgRatingInvalid)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, MsgRatingSaveFailed)
			}
			return
		}

		writeJSON(w, http.StatusOK, RateResponse{Success: true, Average: summary.Average, Count: summary.Count})
	}
}

// NewGetRatingHandler returns an HTTP handler with a book's rating summary.
// @Summary Book rating summary
// @Description Average (0 when unrated), count and optionally the given user's rating.
// @Tags ratings
// @Produce json
// @Param bookId query string true "Book id"
// @Param userId query int false "User id"
// @Success 200 {object} handlers.RatingResponse
// @Failure 400 {object} handlers.ErrorResponse "Falta el bookId"
// @Router /ratings [get]
func NewGetRatingHandler(svc Rater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID := r.URL.Query().Get("bookId")
		if bookID == "" {
			writeError(w, http.StatusBadRequest, MsgRatingBookID)
			return
		}

		var userID *int64
		if raw := r.URL.Query().Get("userId"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, MsgRatingInvalid)
				return
			}
			userID = &id
		}

		summary, own, err := svc.Get(r.Context(), bookID, userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, RatingResponse{Average: summary.Average, Count: summary.Count, UserRating: own})
	}
}
