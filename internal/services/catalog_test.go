package services_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errMiss = errors.New("miss")

func catalogItems(prefix string, n int, categories ...string) []models.CatalogItem {
	items := make([]models.CatalogItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, models.CatalogItem{
			ID:         fmt.Sprintf("%s-%d", prefix, i),
			Title:      fmt.Sprintf("%s %d", prefix, i),
			Categories: categories,
		})
	}
	return items
}

func TestClampResults(t *testing.T) {
	assert.Equal(t, services.DefaultSearchResults, services.ClampResults(0))
	assert.Equal(t, services.DefaultSearchResults, services.ClampResults(-3))
	assert.Equal(t, 1, services.ClampResults(1))
	assert.Equal(t, 25, services.ClampResults(25))
	assert.Equal(t, services.MaxSearchResults, services.ClampResults(100))
}

func TestTranslateGenre(t *testing.T) {
	assert.Equal(t, "Fiction", services.TranslateGenre("Ficcion"))
	assert.Equal(t, "Horror", services.TranslateGenre("Terror"))
	assert.Equal(t, "Science", services.TranslateGenre("Science"))
}

func TestCatalogService_Search(t *testing.T) {
	tests := []struct {
		name      string
		kind      models.SearchKind
		term      string
		wantQuery string
	}{
		{name: "text", kind: models.SearchByText, term: "dune", wantQuery: "dune"},
		{name: "author", kind: models.SearchByAuthor, term: "Borges", wantQuery: "inauthor:Borges"},
		{name: "subject", kind: models.SearchBySubject, term: "Poetry", wantQuery: "subject:Poetry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			searcher := services.NewMockCatalogSearcher(ctrl)
			cache := services.NewMockCatalogCache(ctrl)
			svc := services.NewCatalogService(searcher, cache, services.NewMockFavoriteGenreReader(ctrl))

			items := catalogItems("b", 2)
			gomock.InOrder(
				cache.EXPECT().GetSearchResults(gomock.Any(), tt.wantQuery, 0, 10).Return(nil, errMiss),
				searcher.EXPECT().Search(gomock.Any(), tt.wantQuery, 0, 10).Return(items, nil),
				cache.EXPECT().SetSearchResults(gomock.Any(), tt.wantQuery, 0, 10, items).Return(nil),
			)

			got, err := svc.Search(context.Background(), tt.kind, tt.term, 0)
			require.NoError(t, err)
			assert.Equal(t, items, got)
		})
	}

	t.Run("cache hit skips catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cache := services.NewMockCatalogCache(ctrl)
		svc := services.NewCatalogService(services.NewMockCatalogSearcher(ctrl), cache, services.NewMockFavoriteGenreReader(ctrl))

		items := catalogItems("c", 1)
		cache.EXPECT().GetSearchResults(gomock.Any(), "dune", 0, 40).Return(items, nil)

		got, err := svc.Search(context.Background(), models.SearchByText, "dune", 500)
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("cache write failure is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		searcher := services.NewMockCatalogSearcher(ctrl)
		cache := services.NewMockCatalogCache(ctrl)
		svc := services.NewCatalogService(searcher, cache, services.NewMockFavoriteGenreReader(ctrl))

		cache.EXPECT().GetSearchResults(gomock.Any(), "dune", 0, 5).Return(nil, errMiss)
		searcher.EXPECT().Search(gomock.Any(), "dune", 0, 5).Return(catalogItems("d", 1), nil)
		cache.EXPECT().SetSearchResults(gomock.Any(), "dune", 0, 5, gomock.Any()).Return(errors.New("redis down"))

		got, err := svc.Search(context.Background(), models.SearchByText, "dune", 5)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("catalog failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		searcher := services.NewMockCatalogSearcher(ctrl)
		cache := services.NewMockCatalogCache(ctrl)
		svc := services.NewCatalogService(searcher, cache, services.NewMockFavoriteGenreReader(ctrl))

		cache.EXPECT().GetSearchResults(gomock.Any(), "dune", 0, 10).Return(nil, errMiss)
		searcher.EXPECT().Search(gomock.Any(), "dune", 0, 10).Return(nil, errors.New("status 503"))

		_, err := svc.Search(context.Background(), models.SearchByText, "dune", 10)
		assert.ErrorIs(t, err, services.ErrCatalogUnavailable)
	})

	t.Run("blank term", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := services.NewCatalogService(services.NewMockCatalogSearcher(ctrl), services.NewMockCatalogCache(ctrl), services.NewMockFavoriteGenreReader(ctrl))

		_, err := svc.Search(context.Background(), models.SearchByText, "  ", 10)
		assert.ErrorIs(t, err, services.ErrInvalidSearch)
	})

	t.Run("unknown kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := services.NewCatalogService(services.NewMockCatalogSearcher(ctrl), services.NewMockCatalogCache(ctrl), services.NewMockFavoriteGenreReader(ctrl))

		_, err := svc.Search(context.Background(), models.SearchKind("isbn"), "123", 10)
		assert.ErrorIs(t, err, services.ErrInvalidSearch)
	})
}

func TestCatalogService_Recommendations(t *testing.T) {
	t.Run("favourite and extra genres", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		searcher := services.NewMockCatalogSearcher(ctrl)
		cache := services.NewMockCatalogCache(ctrl)
		genres := services.NewMockFavoriteGenreReader(ctrl)
		svc := services.NewCatalogService(searcher, cache, genres, services.WithRand(rand.New(rand.NewSource(1))))

		genres.EXPECT().GetFavoriteGenres(gomock.Any(), int64(1)).
			Return([]models.FavoriteGenreDB{{Name: "Ficcion"}}, nil)

		cache.EXPECT().GetSearchResults(gomock.Any(), gomock.Any(), gomock.Any(), 20).Return(nil, errMiss).AnyTimes()
		cache.EXPECT().SetSearchResults(gomock.Any(), gomock.Any(), gomock.Any(), 20, gomock.Any()).Return(nil).AnyTimes()

		fiction := append(catalogItems("f", 15), catalogItems("f", 3)...)
		searcher.EXPECT().Search(gomock.Any(), "subject:Fiction", gomock.Any(), 20).Return(fiction, nil)

		horror := append(catalogItems("h", 3, "Fiction / Horror"), catalogItems("x", 4, "Cooking")...)
		searcher.EXPECT().Search(gomock.Any(), "subject:Horror", gomock.Any(), 20).Return(horror, nil)

		result, err := svc.Recommendations(context.Background(), 1, []string{"Terror", "Ficcion", ""})
		require.NoError(t, err)
		require.Len(t, result, 2)

		assert.Len(t, result["Ficcion"], 10)
		seen := map[string]bool{}
		for _, it := range result["Ficcion"] {
			assert.False(t, seen[it.ID], "duplicate %s", it.ID)
			seen[it.ID] = true
		}

		require.Len(t, result["Terror"], 3)
		for _, it := range result["Terror"] {
			assert.Contains(t, it.Categories, "Fiction / Horror")
		}
	})

	t.Run("empty page retries from start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		searcher := services.NewMockCatalogSearcher(ctrl)
		cache := services.NewMockCatalogCache(ctrl)
		genres := services.NewMockFavoriteGenreReader(ctrl)
		svc := services.NewCatalogService(searcher, cache, genres)

		genres.EXPECT().GetFavoriteGenres(gomock.Any(), int64(1)).
			Return([]models.FavoriteGenreDB{{Name: "Poesia"}}, nil)
		cache.EXPECT().GetSearchResults(gomock.Any(), gomock.Any(), gomock.Any(), 20).Return(nil, errMiss).Times(2)
		cache.EXPECT().SetSearchResults(gomock.Any(), gomock.Any(), gomock.Any(), 20, gomock.Any()).Return(nil).Times(2)

		gomock.InOrder(
			searcher.EXPECT().Search(gomock.Any(), "subject:Poetry", gomock.Any(), 20).Return([]models.CatalogItem{}, nil),
			searcher.EXPECT().Search(gomock.Any(), "subject:Poetry", 0, 20).Return(catalogItems("p", 2), nil),
		)

		result, err := svc.Recommendations(context.Background(), 1, nil)
		require.NoError(t, err)
		assert.Len(t, result["Poesia"], 2)
	})

	t.Run("catalog failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		searcher := services.NewMockCatalogSearcher(ctrl)
		cache := services.NewMockCatalogCache(ctrl)
		genres := services.NewMockFavoriteGenreReader(ctrl)
		svc := services.NewCatalogService(searcher, cache, genres)

		genres.EXPECT().GetFavoriteGenres(gomock.Any(), int64(1)).
			Return([]models.FavoriteGenreDB{{Name: "Drama"}}, nil)
		cache.EXPECT().GetSearchResults(gomock.Any(), gomock.Any(), gomock.Any(), 20).Return(nil, errMiss).Times(2)
		searcher.EXPECT().Search(gomock.Any(), "subject:Drama", gomock.Any(), 20).Return(nil, errors.New("boom")).Times(2)

		_, err := svc.Recommendations(context.Background(), 1, nil)
		assert.ErrorIs(t, err, services.ErrCatalogUnavailable)
	})
}

func TestCatalogService_Recommendations_Concurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	searcher := services.NewMockCatalogSearcher(ctrl)
	cache := services.NewMockCatalogCache(ctrl)
	genres := services.NewMockFavoriteGenreReader(ctrl)
	svc := services.NewCatalogService(searcher, cache, genres, services.WithRand(rand.New(rand.NewSource(7))))

	genres.EXPECT().GetFavoriteGenres(gomock.Any(), gomock.Any()).
		Return([]models.FavoriteGenreDB{{Name: "Ficcion"}}, nil).AnyTimes()
	cache.EXPECT().GetSearchResults(gomock.Any(), "subject:Fiction", gomock.Any(), 20).
		DoAndReturn(func(context.Context, string, int, int) ([]models.CatalogItem, error) {
			return catalogItems("f", 20), nil
		}).AnyTimes()

	const workers, calls = 8, 50
	var wg sync.WaitGroup
	errs := make(chan error, workers*calls)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			for i := 0; i < calls; i++ {
				result, err := svc.Recommendations(context.Background(), userID, nil)
				if err != nil {
					errs <- err
					continue
				}
				if len(result["Ficcion"]) != 10 {
					errs <- fmt.Errorf("got %d books", len(result["Ficcion"]))
				}
			}
		}(int64(w + 1))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
