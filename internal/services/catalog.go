package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/sbilibin2017/gw-bookshelf/internal/facades"
	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
)

//go:generate mockgen -source=catalog.go -destination=catalog_mock.go -package=services

const (
	DefaultSearchResults = 10
	MaxSearchResults     = 40

	recommendationPool     = 20
	recommendationsByGenre = 10
)

// CatalogSearcher queries the external catalog.
type CatalogSearcher interface {
	Search(ctx context.Context, query string, startIndex, maxResults int) ([]models.CatalogItem, error)
}

// CatalogCache caches catalog search results.
type CatalogCache interface {
	GetSearchResults(ctx context.Context, query string, startIndex, maxResults int) ([]models.CatalogItem, error)
	SetSearchResults(ctx context.Context, query string, startIndex, maxResults int, items []models.CatalogItem) error
}

// FavoriteGenreReader reads the user's favourite genres.
type FavoriteGenreReader interface {
	GetFavoriteGenres(ctx context.Context, userID int64) ([]models.FavoriteGenreDB, error)
}

// CatalogService searches the external catalog and builds recommendations.
type CatalogService struct {
	searcher CatalogSearcher
	cache    CatalogCache
	genres   FavoriteGenreReader

	// rnd is shared by concurrent requests; rand.Rand is not safe for that.
	rndMu sync.Mutex
	rnd   *rand.Rand
}

// CatalogOpt configures a CatalogService.
type CatalogOpt func(*CatalogService)

// WithRand sets the random source used for recommendations.
func WithRand(r *rand.Rand) CatalogOpt {
	return func(s *CatalogService) {
		s.rnd = r
	}
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(searcher CatalogSearcher, cache CatalogCache, genres FavoriteGenreReader, opts ...CatalogOpt) *CatalogService {
	s := &CatalogService{
		searcher: searcher,
		cache:    cache,
		genres:   genres,
		rnd:      rand.New(rand.NewSource(rand.Int63())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClampResults bounds the requested page size, using the default for non-positive values.
func ClampResults(maxResults int) int {
	switch {
	case maxResults <= 0:
		return DefaultSearchResults
	case maxResults > MaxSearchResults:
		return MaxSearchResults
	default:
		return maxResults
	}
}

// Search looks up the term by free text, author or subject.
func (s *CatalogService) Search(ctx context.Context, kind models.SearchKind, term string, maxResults int) ([]models.CatalogItem, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrInvalidSearch
	}

	var query string
	switch kind {
	case models.SearchByText:
		query = term
	case models.SearchByAuthor:
		query = facades.AuthorQuery(term)
	case models.SearchBySubject:
		query = facades.SubjectQuery(term)
	default:
		return nil, ErrInvalidSearch
	}

	return s.search(ctx, query, 0, ClampResults(maxResults))
}

// search consults the cache before the catalog. Cache failures are only logged.
func (s *CatalogService) search(ctx context.Context, query string, startIndex, maxResults int) ([]models.CatalogItem, error) {
	items, err := s.cache.GetSearchResults(ctx, query, startIndex, maxResults)
	if err == nil {
		return items, nil
	}

	items, err = s.searcher.Search(ctx, query, startIndex, maxResults)
	if err != nil {
		logger.Log.Errorw("failed to search catalog", "query", query, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	if err := s.cache.SetSearchResults(ctx, query, startIndex, maxResults, items); err != nil {
		logger.Log.Warnw("failed to cache catalog results", "query", query, "error", err)
	}
	return items, nil
}

// Recommendations returns up to ten books per genre for the user's favourite
// genres plus any extra genres. Books for extra genres must carry the genre
// among their categories.
func (s *CatalogService) Recommendations(ctx context.Context, userID int64, extraGenres []string) (map[string][]models.CatalogItem, error) {
	favorites, err := s.genres.GetFavoriteGenres(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get favorite genres", "userID", userID, "error", err)
		return nil, err
	}

	result := make(map[string][]models.CatalogItem)
	for _, g := range favorites {
		if _, ok := result[g.Name]; ok {
			continue
		}
		items, err := s.genreBooks(ctx, g.Name, false)
		if err != nil {
			return nil, err
		}
		result[g.Name] = items
	}

	for _, g := range extraGenres {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if _, ok := result[g]; ok {
			continue
		}
		items, err := s.genreBooks(ctx, g, true)
		if err != nil {
			return nil, err
		}
		result[g] = items
	}

	return result, nil
}

func (s *CatalogService) genreBooks(ctx context.Context, genre string, filter bool) ([]models.CatalogItem, error) {
	subject := TranslateGenre(genre)
	query := facades.SubjectQuery(subject)

	items, err := s.search(ctx, query, s.randomStart(), recommendationPool)
	if err != nil || len(items) == 0 {
		items, err = s.search(ctx, query, 0, recommendationPool)
		if err != nil {
			return nil, err
		}
	}

	items = uniqueByID(items)
	if filter {
		items = withCategory(items, subject)
	}

	s.shuffle(items)
	if len(items) > recommendationsByGenre {
		items = items[:recommendationsByGenre]
	}
	return items, nil
}

func (s *CatalogService) randomStart() int {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	return s.rnd.Intn(recommendationPool)
}

func (s *CatalogService) shuffle(items []models.CatalogItem) {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	s.rnd.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

func uniqueByID(items []models.CatalogItem) []models.CatalogItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]models.CatalogItem, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ID]; ok {
			continue
		}
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	return out
}

func withCategory(items []models.CatalogItem, subject string) []models.CatalogItem {
	subject = strings.ToLower(subject)
	out := make([]models.CatalogItem, 0, len(items))
	for _, it := range items {
		for _, c := range it.Categories {
			if strings.Contains(strings.ToLower(c), subject) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
