package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
)

// ErrCacheMiss is returned when no cached value exists for a key.
var ErrCacheMiss = errors.New("catalog search not found in cache")

// CatalogCacheRepository caches external catalog search results in Redis
type CatalogCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached results
}

// NewCatalogCacheRepository creates a new repository instance with the given TTL
func NewCatalogCacheRepository(client *redis.Client, expiration time.Duration) *CatalogCacheRepository {
	return &CatalogCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func searchKey(query string, startIndex, maxResults int) string {
	return fmt.Sprintf("catalog:search:%s:%d:%d", query, startIndex, maxResults)
}

// GetSearchResults returns cached results for the query page.
func (r *CatalogCacheRepository) GetSearchResults(ctx context.Context, query string, startIndex, maxResults int) ([]models.CatalogItem, error) {
	key := searchKey(query, startIndex, maxResults)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var items []models.CatalogItem
	if err := json.Unmarshal(val, &items); err != nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(items),
		"error", nil,
	)

	return items, nil
}

// SetSearchResults caches results for the query page with expiration
func (r *CatalogCacheRepository) SetSearchResults(ctx context.Context, query string, startIndex, maxResults int, items []models.CatalogItem) error {
	key := searchKey(query, startIndex, maxResults)

	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"items", len(items),
		"result", "ok",
		"error", err,
	)

	return err
}
