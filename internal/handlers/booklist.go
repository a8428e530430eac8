package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lib/pq"
	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"
)

//go:generate mockgen -source=booklist.go -destination=booklist_mock.go -package=handlers

// BookListManager defines the book list operations used by the handlers.
type BookListManager interface {
	List(ctx context.Context, userID int64) ([]models.BookListDB, error)
	Create(ctx context.Context, userID int64, name string) (*models.BookListDB, error)
	AddBook(ctx context.Context, userID, bookListID int64, book models.BookDB) error
	RemoveBook(ctx context.Context, userID, bookListID int64, bookID string) error
	DeleteList(ctx context.Context, userID, bookListID int64) error
}

// Book list bodies.
const (
	MsgListNameInvalid   = "Nombre de lista inválido"
	MsgListNameTaken     = "Ya tienes una lista con ese nombre"
	MsgAddBookMissing    = "Datos incompletos para agregar el libro"
	MsgListModifyDenied  = "No tienes permiso para modificar esta lista"
	MsgBookAlreadyInList = "El libro ya está en la lista"
	MsgBookAdded         = "Libro agregado a la lista"
	MsgRemoveBookMissing = "Datos incompletos para eliminar el libro"
	MsgBookRemoved       = "Libro eliminado de la lista"
	MsgListIDMissing     = "Falta el ID de la lista"
	MsgListDeleteDenied  = "No tienes permiso para eliminar esta lista"
	MsgDefaultListLocked = "No puedes eliminar una lista predefinida"
	MsgListDeleted       = "Lista eliminada"
)

// BookListSummary is one entry of the GET /api/booklist response
// swagger:model BookListSummary
type BookListSummary struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
}

// CreateBookListRequest is the body of POST /api/booklist
// swagger:model CreateBookListRequest
type CreateBookListRequest struct {
	// List name, trimmed before use
	// required: true
	Name string `json:"name"`
}

// AddBookRequest is the body of PUT /api/booklist
// swagger:model AddBookRequest
type AddBookRequest struct {
	BookID      string   `json:"bookId" validate:"notblank"`
	BookListID  int64    `json:"bookListId" validate:"required"`
	Title       string   `json:"title" validate:"notblank"`
	Authors     string   `json:"authors" validate:"notblank"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	// Accepted for compatibility; the stored average is derived from ratings only.
	AverageRating *float64 `json:"averageRating"`
}

// DeleteBookListRequest is the body of DELETE /api/booklist and POST /api/booklist/delete
// swagger:model DeleteBookListRequest
type DeleteBookListRequest struct {
	BookID     string `json:"bookId"`
	BookListID int64  `json:"bookListId"`
	DeleteList bool   `json:"deleteList"`
}

// NewListBookListsHandler returns an HTTP handler listing the caller's book lists.
// @Summary List book lists
// @Tags booklist
// @Produce json
// @Success 200 {array} handlers.BookListSummary
// @Failure 401 {object} handlers.ErrorResponse
// @Router /booklist [get]
// @Security BearerAuth
func NewListBookListsHandler(svc BookListManager, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, MsgUnauthorized)
			return
		}

		lists, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}

		resp := make([]BookListSummary, 0, len(lists))
		for _, l := range lists {
			resp = append(resp, BookListSummary{ID: l.BookListID, Name: l.Name, IsDefault: l.IsDefault})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewCreateBookListHandler returns an HTTP handler creating a custom list.
// @Summary Create book list
// @Tags booklist
// @Accept json
// @Produce json
// @Param request body handlers.CreateBookListRequest true "List name"
// @Success 200 {object} models.BookListDB
// @Failure 400 {object} handlers.ErrorResponse "Nombre de lista inválido / Ya tienes una lista con ese nombre"
// @Failure 401 {object} handlers.ErrorResponse
// @Router /booklist [post]
// @Security BearerAuth
func NewCreateBookListHandler(svc BookListManager, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, MsgUnauthorized)
			return
		}

		var req CreateBookListRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, MsgListNameInvalid)
			return
		}

		list, err := svc.Create(r.Context(), userID, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookListNameInvalid):
				writeError(w, http.StatusBadRequest, MsgListNameInvalid)
			case errors.Is(err, services.ErrBookListExists):
				writeError(w, http.StatusBadRequest, MsgListNameTaken)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, MsgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

// NewAddBookHandler returns an HTTP handler adding a book to one of the caller's lists.
// @Summary Add book to list
// @Description Stores the book metadata and adds it to the list. The client's averageRating is ignored.
// @Tags booklist
// @Accept json
// @Produce json
// @Param request body handlers.AddBookRequest true "Book and list"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /booklist [put]
// @Security BearerAuth
func NewAddBookHandler(svc BookListManager, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, MsgUnauthorized)
			return
		}

		var req AddBookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, MsgAddBookMissing)
			return
		}
		if !validRequest(r, req) {
			writeError(w, http.StatusBadRequest, MsgAddBookMissing)
			return
		}

		categories := req.Categories
		if categories == nil {
			categories = []string{}
		}
		book := models.BookDB{
			BookID:      req.BookID,
			Title:       req.Title,
			Authors:     req.Authors,
			Image:       req.Image,
			Description: req.Description,
			Categories:  pq.StringArray(categories),
		}

		err := svc.AddBook(r.Context(), userID, req.BookListID, book)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookListForbidden):
				writeError(w, http.StatusForbidden, MsgListModifyDenied)
			case errors.Is(err, services.ErrBookAlreadyInList):
				writeError(w, http.StatusBadRequest, MsgBookAlreadyInList)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, MsgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: MsgBookAdded})
	}
}

// NewDeleteFromBookListHandler returns an HTTP handler removing a book from a
// list, or the whole list when deleteList is set.
// @Summary Remove book or delete list
// @Tags booklist
// @Accept json
// @Produce json
// @Param request body handlers.DeleteBookListRequest true "Entry or list to delete"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse "No permission / default list"
// @Router /booklist [delete]
// @Security BearerAuth
func NewDeleteFromBookListHandler(svc BookListManager, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, MsgUnauthorized)
			return
		}

		var req DeleteBookListRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, MsgRemoveBookMissing)
			return
		}

		if req.DeleteList {
			deleteList(w, r, svc, userID, req.BookListID)
			return
		}

		if req.BookID == "" || req.BookListID == 0 {
			writeError(w, http.StatusBadRequest, MsgRemoveBookMissing)
			return
		}

		err := svc.RemoveBook(r.Context(), userID, req.BookListID, req.BookID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookListForbidden):
				writeError(w, http.StatusForbidden, MsgListModifyDenied)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, MsgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: MsgBookRemoved})
	}
}

// NewDeleteBookListHandler returns an HTTP handler deleting a whole list.
// @Summary Delete book list
// @Tags booklist
// @Accept json
// @Produce json
// @Param request body handlers.DeleteBookListRequest true "List to delete"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse "No permission / default list"
// @Router /booklist/delete [post]
// @Security BearerAuth
func NewDeleteBookListHandler(svc BookListManager, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, MsgUnauthorized)
			return
		}

		var req DeleteBookListRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, MsgListIDMissing)
			return
		}
		deleteList(w, r, svc, userID, req.BookListID)
	}
}

func deleteList(w http.ResponseWriter, r *http.Request, svc BookListManager, userID, bookListID int64) {
	if bookListID == 0 {
		writeError(w, http.StatusBadRequest, MsgListIDMissing)
		return
	}

	err := svc.DeleteList(r.Context(), userID, bookListID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookListForbidden):
			writeError(w, http.StatusForbidden, MsgListDeleteDenied)
		case errors.Is(err, services.ErrDefaultListProtected):
			writeError(w, http.StatusForbidden, MsgDefaultListLocked)
		default:
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, MsgInternalError)
		}
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: MsgListDeleted})
}
