package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"
)

//go:generate mockgen -source=comments.go -destination=comments_mock.go -package=handlers

// Commenter defines the comment operations used by the handlers.
type Commenter interface {
	List(ctx context.Context, bookID string) ([]models.CommentWithAuthor, error)
	Create(ctx context.Context, userID int64, bookID, content string) (*models.CommentWithAuthor, error)
}

// Comment bodies.
const (
	MsgCommentBookID     = "Falta el parámetro bookId"
	MsgCommentMissing    = "Faltan datos"
	MsgCommentSaveFailed = "Error al guardar comentario"
)

// CreateCommentRequest is the body of POST /api/comments
// swagger:model CreateCommentRequest
type CreateCommentRequest struct {
	BookID  string `json:"bookId" validate:"notblank"`
	Content string `json:"content" validate:"notblank"`
}

// NewListCommentsHandler returns an HTTP handler listing a book's comments, oldest first.
// @Summary List comments
// @Tags comments
// @Produce json
// @Param bookId query string true "Book id"
// @Success 200 {array} models.CommentWithAuthor
// @Failure 400 {object} handlers.ErrorResponse "Falta el parámetro bookId"
// @Router /comments [get]
func NewListCommentsHandler(svc Commenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID := strings.TrimSpace(r.URL.Query().Get("bookId"))
		if bookID == "" {
			writeError(w, http.StatusBadRequest, MsgCommentBookID)
			return
		}

		comments, err := svc.List(r.Context(), bookID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, comments)
	}
}

// NewCreateCommentHandler returns an HTTP handler posting a comment as the authenticated user.
// @Summary Post comment
// @Tags comments
// @Accept json
// @Produce json
// @Param request body handlers.CreateCommentRequest true "Comment"
// @Success 200 {object} models.CommentWithAuthor
// @Failure 400 {object} handlers.ErrorResponse "Faltan datos"
// @Failure 401 {object} handlers.ErrorResponse "No autorizado"
// @Router /comments [post]
// @Security BearerAuth
func NewCreateCommentHandler(svc Commenter, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, MsgCommentMissing)
			return
		}
		if !validRequest(r, req) {
			writeError(w, http.StatusBadRequest, MsgCommentMissing)
			return
		}

		userID, ok := userIDGetter(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, MsgUnauthorized)
			return
		}

		comment, err := svc.Create(r.Context(), userID, req.BookID, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidComment):
				writeError(w, http.StatusBadRequest, MsgCommentMissing)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, MsgCommentSaveFailed)
			}
			return
		}

		writeJSON(w, http.StatusOK, comment)
	}
}
