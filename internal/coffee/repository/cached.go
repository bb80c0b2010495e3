package repository

import (
	"context"
	"time"

	"github.com/articret/coffee-shop-server/internal/coffee"
	"github.com/articret/coffee-shop-server/internal/models"
	"github.com/articret/coffee-shop-server/pkg/logger"
	"github.com/articret/coffee-shop-server/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cache is the subset of internal/cache.RedisCache used for point lookups.
type Cache interface {
	Get(ctx context.Context, key string, dst interface{}) (bool, error)
	Set(ctx context.Context, key string, v interface{}) error
	Delete(ctx context.Context, key string) error
}

// redeleteDelay bounds how long a Get that read the store before a write, but
// filled the cache after its invalidation, can keep serving the old document.
const redeleteDelay = 500 * time.Millisecond

// CachedRepo serves Get through a read-through cache and invalidates on
// Replace and Delete. Invalidation deletes the key at once and again after
// redeleteDelay. Cache failures are logged and never fail the call.
type CachedRepo struct {
	Repository
	cache    Cache
	redelete time.Duration
}

func NewCachedRepo(repo Repository, cache Cache) *CachedRepo {
	return &CachedRepo{Repository: repo, cache: cache, redelete: redeleteDelay}
}

func (r *CachedRepo) Get(ctx context.Context, id primitive.ObjectID) (*coffee.Coffee, error) {
	key := id.Hex()
	var c coffee.Coffee
	hit, err := r.cache.Get(ctx, key, &c)
	if err != nil {
		logger.Warnf("coffee cache read %s: %v", key, err)
	}
	if hit {
		metrics.CacheHits.WithLabelValues("coffees").Inc()
		return &c, nil
	}
	metrics.CacheMisses.WithLabelValues("coffees").Inc()

	found, err := r.Repository.Get(ctx, id)
	if err != nil || found == nil {
		return found, err
	}
	if err := r.cache.Set(ctx, key, found); err != nil {
		logger.Warnf("coffee cache write %s: %v", key, err)
	}
	return found, nil
}

func (r *CachedRepo) Replace(ctx context.Context, id primitive.ObjectID, rep coffee.Replacement) (*models.UpdateResult, error) {
	res, err := r.Repository.Replace(ctx, id, rep)
	r.invalidate(ctx, id)
	return res, err
}

func (r *CachedRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := r.Repository.Delete(ctx, id)
	r.invalidate(ctx, id)
	return res, err
}

func (r *CachedRepo) invalidate(ctx context.Context, id primitive.ObjectID) {
	key := id.Hex()
	if err := r.cache.Delete(ctx, key); err != nil {
		logger.Warnf("coffee cache invalidate %s: %v", key, err)
	}
	if r.redelete <= 0 {
		return
	}
	time.AfterFunc(r.redelete, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := r.cache.Delete(ctx, key); err != nil {
			logger.Warnf("coffee cache delayed invalidate %s: %v", key, err)
		}
	})
}
