package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"
)

//go:generate mockgen -source=books.go -destination=books_mock.go -package=handlers

// Catalog defines the external catalog operations used by the handlers.
type Catalog interface {
	Search(ctx context.Context, kind models.SearchKind, term string, maxResults int) ([]models.CatalogItem, error)
	Recommendations(ctx context.Context, userID int64, extraGenres []string) (map[string][]models.CatalogItem, error)
}

// Catalog bodies.
const (
	MsgSearchInvalid      = "Parámetros de búsqueda inválidos"
	MsgCatalogUnavailable = "Error al consultar el catálogo"
	searchMaxResultsParam = "maxResults"
	recommendationsGenres = "genres"
)

// NewSearchBooksHandler returns an HTTP handler searching the external catalog.
// @Summary Search catalog
// @Description Exactly one of q, author or subject is required. maxResults defaults to 10 and is clamped to 1..40.
// @Tags books
// @Produce json
// @Param q query string false "Free text"
// @Param author query string false "Author"
// @Param subject query string false "Subject or genre"
// @Param maxResults query int false "Page size"
// @Success 200 {array} models.CatalogItem
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 502 {object} handlers.ErrorResponse "Error al consultar el catálogo"
// @Router /books/search [get]
func NewSearchBooksHandler(svc Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var (
			kind  models.SearchKind
			term  string
			terms int
		)
		for param, k := range map[string]models.SearchKind{
			"q":       models.SearchByText,
			"author":  models.SearchByAuthor,
			"subject": models.SearchBySubject,
		} {
			if v := strings.TrimSpace(query.Get(param)); v != "" {
				kind, term = k, v
				terms++
			}
		}
		if terms != 1 {
			writeError(w, http.StatusBadRequest, MsgSearchInvalid)
			return
		}

		maxResults := 0
		if raw := query.Get(searchMaxResultsParam); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, MsgSearchInvalid)
				return
			}
			maxResults = n
		}

		items, err := svc.Search(r.Context(), kind, term, services.ClampResults(maxResults))
		if err != nil {
			writeCatalogError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// NewRecommendationsHandler returns an HTTP handler with books grouped by genre.
// @Summary Recommendations
// @Description Up to ten books for each favourite genre of the caller plus each extra genre.
// @Tags books
// @Produce json
// @Param genres query string false "Comma separated extra genres"
// @Success 200 {object} map[string][]models.CatalogItem
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 502 {object} handlers.ErrorResponse "Error al consultar el catálogo"
// @Router /books/recommendations [get]
// @Security BearerAuth
func NewRecommendationsHandler(svc Catalog, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, MsgUnauthorized)
			return
		}

		var extra []string
		if raw := r.URL.Query().Get(recommendationsGenres); raw != "" {
			for _, g := range strings.Split(raw, ",") {
				if g = strings.TrimSpace(g); g != "" {
					extra = append(extra, g)
				}
			}
		}

		result, err := svc.Recommendations(r.Context(), userID, extra)
		if err != nil {
			writeCatalogError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidSearch):
		writeError(w, http.StatusBadRequest, MsgSearchInvalid)
	case errors.Is(err, services.ErrCatalogUnavailable):
		writeError(w, http.StatusBadGateway, MsgCatalogUnavailable)
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, MsgInternalError)
	}
}
