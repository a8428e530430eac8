package facades

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
)

// DefaultGoogleBooksURL is the public volumes endpoint.
const DefaultGoogleBooksURL = "https://www.googleapis.com/books/v1/volumes"

// ErrCatalogUnavailable is returned when the catalog answers with a non-2xx status.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// volumesResponse mirrors the subset of the Google Books payload we read.
type volumesResponse struct {
	Items []struct {
		ID         string `json:"id"`
		VolumeInfo struct {
			Title       string   `json:"title"`
			Authors     []string `json:"authors"`
			Description string   `json:"description"`
			Categories  []string `json:"categories"`
			ImageLinks  *struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// GoogleBooksFacade queries the Google Books API.
type GoogleBooksFacade struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]models.CatalogItem]
}

// GoogleBooksOpt configures a GoogleBooksFacade.
type GoogleBooksOpt func(*GoogleBooksFacade)

// WithBaseURL points the facade at another endpoint.
func WithBaseURL(u string) GoogleBooksOpt {
	return func(f *GoogleBooksFacade) {
		f.baseURL = u
	}
}

// WithAPIKey sets the key appended to every request.
func WithAPIKey(key string) GoogleBooksOpt {
	return func(f *GoogleBooksFacade) {
		f.apiKey = key
	}
}

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) GoogleBooksOpt {
	return func(f *GoogleBooksFacade) {
		f.httpClient = c
	}
}

// WithRateLimit limits outbound requests to rps with the given burst.
func WithRateLimit(rps float64, burst int) GoogleBooksOpt {
	return func(f *GoogleBooksFacade) {
		f.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewGoogleBooksFacade creates a facade. The circuit opens after five
// consecutive failures and retries after thirty seconds.
func NewGoogleBooksFacade(opts ...GoogleBooksOpt) *GoogleBooksFacade {
	f := &GoogleBooksFacade{
		baseURL:    DefaultGoogleBooksURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(5), 10),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.breaker = gobreaker.NewCircuitBreaker[[]models.CatalogItem](gobreaker.Settings{
		Name:        "google-books",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Log.Warnw("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})

	return f
}

// Search runs a raw catalog query such as "dune", "inauthor:Borges" or "subject:Fiction".
func (f *GoogleBooksFacade) Search(ctx context.Context, query string, startIndex, maxResults int) ([]models.CatalogItem, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	items, err := f.breaker.Execute(func() ([]models.CatalogItem, error) {
		return f.fetch(ctx, query, startIndex, maxResults)
	})
	if err != nil {
		logger.Log.Errorw("failed to query catalog", "query", query, "startIndex", startIndex, "error", err)
		return nil, err
	}
	return items, nil
}

func (f *GoogleBooksFacade) fetch(ctx context.Context, query string, startIndex, maxResults int) ([]models.CatalogItem, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("startIndex", strconv.Itoa(startIndex))
	params.Set("maxResults", strconv.Itoa(maxResults))
	if f.apiKey != "" {
		params.Set("key", f.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", ErrCatalogUnavailable, resp.StatusCode)
	}

	var payload volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	items := make([]models.CatalogItem, 0, len(payload.Items))
	for _, it := range payload.Items {
		item := models.CatalogItem{
			ID:          it.ID,
			Title:       it.VolumeInfo.Title,
			Authors:     nonNil(it.VolumeInfo.Authors),
			Description: it.VolumeInfo.Description,
			Categories:  nonNil(it.VolumeInfo.Categories),
		}
		if it.VolumeInfo.ImageLinks != nil {
			item.Thumbnail = it.VolumeInfo.ImageLinks.Thumbnail
		}
		items = append(items, item)
	}
	return items, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// AuthorQuery builds a query matching books by author.
func AuthorQuery(author string) string {
	return "inauthor:" + author
}

// SubjectQuery builds a query matching books by subject.
func SubjectQuery(subject string) string {
	return "subject:" + subject
}
