// file: repository/cache.go

package repository

import (
	"context"
	"encoding/json"
	"product-insights-api/logger"
	"product-insights-api/model"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// ICacheClient defines the contract for a cache client.
// *redis.Client satisfies it; tests use a mock.
type ICacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ProductsCacheKey is the Redis key holding the cached dataset.
const ProductsCacheKey = "products:all"

// sharedFetchTimeout bounds a coalesced fetch once it no longer follows the
// context of the request that started it.
const sharedFetchTimeout = 30 * time.Second

// fetchShared runs fetch once for all concurrent callers. The fetch outlives
// any single caller: a caller whose context ends gets its context error while
// the others keep waiting for the result.
func fetchShared(ctx context.Context, group *singleflight.Group, fetch func(ctx context.Context) ([]model.Transaction, error)) ([]model.Transaction, error) {
	ch := group.DoChan(ProductsCacheKey, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()
		return fetch(fetchCtx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]model.Transaction), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// RedisCachedRepository is a read-through cache in front of another repository.
// Cache errors never fail a fetch; they fall through to the source.
type RedisCachedRepository struct {
	source IProductRepository
	cache  ICacheClient
	ttl    time.Duration
	group  singleflight.Group
}

func NewRedisCachedRepository(source IProductRepository, cache ICacheClient, ttl time.Duration) *RedisCachedRepository {
	return &RedisCachedRepository{source: source, cache: cache, ttl: ttl}
}

func (r *RedisCachedRepository) FetchAll(ctx context.Context) ([]model.Transaction, error) {
	// 1. Try to get data from Redis.
	cached, err := r.cache.Get(ctx, ProductsCacheKey).Result()
	if err == nil {
		var txs []model.Transaction
		if err := json.Unmarshal([]byte(cached), &txs); err == nil {
			return txs, nil
		}
		logger.Log.WithField("key", ProductsCacheKey).Warn("Discarding undecodable cache entry")
	} else if err != redis.Nil {
		logger.Log.WithError(err).Warn("Redis cache read failed, falling back to source")
	}

	// 2. Cache miss. Fetch from the source once for all concurrent callers.
	return fetchShared(ctx, &r.group, func(ctx context.Context) ([]model.Transaction, error) {
		txs, err := r.source.FetchAll(ctx)
		if err != nil {
			return nil, err
		}

		// 3. Store the result in Redis for future requests.
		if data, err := json.Marshal(txs); err == nil {
			if err := r.cache.Set(ctx, ProductsCacheKey, data, r.ttl).Err(); err != nil {
				logger.Log.WithError(err).Warn("Redis cache write failed")
			}
		}
		return txs, nil
	})
}

// Invalidate drops the cached dataset.
func (r *RedisCachedRepository) Invalidate(ctx context.Context) error {
	return r.cache.Del(ctx, ProductsCacheKey).Err()
}

// MemoryCachedRepository keeps the last successful fetch in process for ttl.
type MemoryCachedRepository struct {
	source IProductRepository
	ttl    time.Duration
	now    func() time.Time
	group  singleflight.Group

	mu        sync.RWMutex
	data      []model.Transaction
	expiresAt time.Time
}

func NewMemoryCachedRepository(source IProductRepository, ttl time.Duration) *MemoryCachedRepository {
	return &MemoryCachedRepository{source: source, ttl: ttl, now: time.Now}
}

func (r *MemoryCachedRepository) FetchAll(ctx context.Context) ([]model.Transaction, error) {
	if txs, ok := r.fresh(); ok {
		return txs, nil
	}

	return fetchShared(ctx, &r.group, func(ctx context.Context) ([]model.Transaction, error) {
		// Another caller may have refilled the entry while we waited.
		if txs, ok := r.fresh(); ok {
			return txs, nil
		}
		txs, err := r.source.FetchAll(ctx)
		if err != nil {
			return nil, err
		}
		if txs == nil {
			txs = []model.Transaction{}
		}
		r.mu.Lock()
		r.data = txs
		r.expiresAt = r.now().Add(r.ttl)
		r.mu.Unlock()
		return txs, nil
	})
}

func (r *MemoryCachedRepository) fresh() ([]model.Transaction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.data != nil && r.now().Before(r.expiresAt) {
		return r.data, true
	}
	return nil, false
}

// Invalidate drops the cached dataset.
func (r *MemoryCachedRepository) Invalidate() {
	r.mu.Lock()
	r.data = nil
	r.expiresAt = time.Time{}
	r.mu.Unlock()
}
