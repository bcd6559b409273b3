package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"lumina_server/config"
	"lumina_server/structs"
	"lumina_server/structs/tables"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	redisCtx    = context.Background()
)

const (
	productKeyPrefix   = "catalog:product:"
	collectionsKey     = "catalog:collections"
	slidesKey          = "catalog:slides"
	rateLimitKeyPrefix = "ratelimit:"
)

// CacheService provides Redis caching for catalog reads plus the counters
// backing the rate limiter. Cache failures are soft: callers fall back to the
// database.
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(),
	}
}

// getRedisClient returns a singleton Redis client with proper connection pooling.
func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.GetConfig()
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			PoolSize:     cfg.Cache.PoolSize,
			MinIdleConns: cfg.Cache.MinIdleConns,

			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,
		})
	})
	return redisClient
}

// Close closes the Redis connection pool.
func (cs *CacheService) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

func (cs *CacheService) getJSON(key string, dest any) (bool, error) {
	raw, err := cs.client.Get(redisCtx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (cs *CacheService) setJSON(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return cs.client.Set(redisCtx, key, raw, cs.config.Cache.DefaultTTL).Err()
}

// GetProduct returns a cached product by id or slug key, or nil on a miss.
func (cs *CacheService) GetProduct(key string) (*tables.Product, error) {
	var product tables.Product
	found, err := cs.getJSON(productKeyPrefix+key, &product)
	if err != nil || !found {
		return nil, err
	}
	return &product, nil
}

// SetProduct caches a product under both its id and its slug.
func (cs *CacheService) SetProduct(product *tables.Product) {
	if err := cs.setJSON(productKeyPrefix+product.ID.String(), product); err != nil {
		cs.logger.Warn("Failed to cache product", gecho.Field("error", err))
		return
	}
	if product.Slug != "" {
		if err := cs.setJSON(productKeyPrefix+product.Slug, product); err != nil {
			cs.logger.Warn("Failed to cache product by slug", gecho.Field("error", err))
		}
	}
}

// GetCollections returns the cached collection list, or nil on a miss.
func (cs *CacheService) GetCollections() ([]tables.Collection, error) {
	var collections []tables.Collection
	found, err := cs.getJSON(collectionsKey, &collections)
	if err != nil || !found {
		return nil, err
	}
	return collections, nil
}

func (cs *CacheService) SetCollections(collections []tables.Collection) {
	if err := cs.setJSON(collectionsKey, collections); err != nil {
		cs.logger.Warn("Failed to cache collections", gecho.Field("error", err))
	}
}

// GetSlides returns the cached hero slide list, or nil on a miss.
func (cs *CacheService) GetSlides() ([]tables.HeroSlide, error) {
	var slides []tables.HeroSlide
	found, err := cs.getJSON(slidesKey, &slides)
	if err != nil || !found {
		return nil, err
	}
	return slides, nil
}

func (cs *CacheService) SetSlides(slides []tables.HeroSlide) {
	if err := cs.setJSON(slidesKey, slides); err != nil {
		cs.logger.Warn("Failed to cache slides", gecho.Field("error", err))
	}
}

// InvalidateCatalog drops all cached catalog entries. Called after any admin
// mutation of products, collections or slides.
func (cs *CacheService) InvalidateCatalog() {
	iter := cs.client.Scan(redisCtx, 0, productKeyPrefix+"*", 100).Iterator()
	for iter.Next(redisCtx) {
		if err := cs.client.Del(redisCtx, iter.Val()).Err(); err != nil {
			cs.logger.Warn("Failed to drop cached product", gecho.Field("error", err))
		}
	}
	if err := iter.Err(); err != nil {
		cs.logger.Warn("Failed to scan product cache keys", gecho.Field("error", err))
	}

	if err := cs.client.Del(redisCtx, collectionsKey, slidesKey).Err(); err != nil {
		cs.logger.Warn("Failed to drop catalog cache keys", gecho.Field("error", err))
	}
}

// IncrementRateLimit bumps the counter for a rate-limit bucket and returns the
// new count. The TTL is set when the bucket is first created so the window
// slides per bucket.
func (cs *CacheService) IncrementRateLimit(key string, window time.Duration) (int64, error) {
	fullKey := rateLimitKeyPrefix + key

	count, err := cs.client.Incr(redisCtx, fullKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	if count == 1 {
		if err := cs.client.Expire(redisCtx, fullKey, window).Err(); err != nil {
			cs.logger.Warn("Failed to set rate limit window", gecho.Field("error", err), gecho.Field("key", key))
		}
	}

	return count, nil
}
