package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const volumesJSON = `{
  "kind": "books#volumes",
  "totalItems": 2,
  "items": [
    {
      "id": "zyTCAlFPjgYC",
      "volumeInfo": {
        "title": "The Google Story",
        "authors": ["David A. Vise", "Mark Malseed"],
        "description": "Here is the story...",
        "categories": ["Business & Economics"],
        "imageLinks": {"thumbnail": "http://books.google.com/thumb.jpg"}
      }
    },
    {
      "id": "noInfo",
      "volumeInfo": {"title": "Bare"}
    }
  ]
}`

func TestGoogleBooksFacade_Search(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "inauthor:Borges", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("startIndex"))
		assert.Equal(t, "20", r.URL.Query().Get("maxResults"))
		assert.Equal(t, "k123", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(volumesJSON))
	}))
	defer srv.Close()

	f := NewGoogleBooksFacade(WithBaseURL(srv.URL), WithAPIKey("k123"), WithRateLimit(100, 10), WithHTTPClient(srv.Client()))

	items, err := f.Search(context.Background(), AuthorQuery("Borges"), 5, 20)
	require.NoError(t, err)
	assert.NotEmpty(t, gotQuery)
	require.Len(t, items, 2)

	assert.Equal(t, "zyTCAlFPjgYC", items[0].ID)
	assert.Equal(t, []string{"David A. Vise", "Mark Malseed"}, items[0].Authors)
	assert.Equal(t, "http://books.google.com/thumb.jpg", items[0].Thumbnail)

	assert.Equal(t, "Bare", items[1].Title)
	assert.Equal(t, []string{}, items[1].Authors)
	assert.Equal(t, []string{}, items[1].Categories)
	assert.Empty(t, items[1].Thumbnail)
}

func TestGoogleBooksFacade_NoItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"kind":"books#volumes","totalItems":0}`))
	}))
	defer srv.Close()

	f := NewGoogleBooksFacade(WithBaseURL(srv.URL))

	items, err := f.Search(context.Background(), SubjectQuery("Poetry"), 0, 10)
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestGoogleBooksFacade_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewGoogleBooksFacade(WithBaseURL(srv.URL))

	items, err := f.Search(context.Background(), "dune", 0, 10)
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
	assert.Nil(t, items)
}

func TestGoogleBooksFacade_CircuitOpensAfterFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewGoogleBooksFacade(WithBaseURL(srv.URL), WithRateLimit(1000, 100))

	for i := 0; i < 5; i++ {
		_, err := f.Search(context.Background(), "dune", 0, 10)
		assert.Error(t, err)
	}

	_, err := f.Search(context.Background(), "dune", 0, 10)
	assert.Error(t, err)
	assert.Equal(t, int32(5), calls.Load(), "open circuit short-circuits the sixth call")
}

func TestGoogleBooksFacade_ContextCanceled(t *testing.T) {
	f := NewGoogleBooksFacade(WithBaseURL("http://127.0.0.1:1"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Search(ctx, "dune", 0, 10)
	assert.Error(t, err)
}

func TestQueryBuilders(t *testing.T) {
	assert.Equal(t, "inauthor:Isabel Allende", AuthorQuery("Isabel Allende"))
	assert.Equal(t, "subject:Fiction", SubjectQuery("Fiction"))
}
