package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/metinatakli/movie-discovery/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultCacheTTL = 10 * time.Minute

	// fetchTimeout bounds a shared upstream fetch, which may outlive the
	// request that started it.
	fetchTimeout = 15 * time.Second
)

// RedisCachedMovieRepository serves category and search envelopes from redis
// and falls through to the upstream repository on a miss. Concurrent misses
// for the same key share one upstream request.
type RedisCachedMovieRepository struct {
	upstream domain.MovieRepository
	redis    redis.UniversalClient
	ttl      time.Duration
	group    singleflight.Group
	logger   *slog.Logger
}

func NewRedisCachedMovieRepository(
	upstream domain.MovieRepository,
	client redis.UniversalClient,
	ttl time.Duration,
	logger *slog.Logger,
) *RedisCachedMovieRepository {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &RedisCachedMovieRepository{
		upstream: upstream,
		redis:    client,
		ttl:      ttl,
		logger:   logger,
	}
}

func (r *RedisCachedMovieRepository) GetByCategory(ctx context.Context, category domain.Category) (*domain.CategoryPage, error) {
	return r.cached(ctx, categoryCacheKey(category), func(ctx context.Context) (*domain.CategoryPage, error) {
		return r.upstream.GetByCategory(ctx, category)
	})
}

func (r *RedisCachedMovieRepository) Search(ctx context.Context, keyword string, page int) (*domain.CategoryPage, error) {
	return r.cached(ctx, searchCacheKey(keyword, page), func(ctx context.Context) (*domain.CategoryPage, error) {
		return r.upstream.Search(ctx, keyword, page)
	})
}

func (r *RedisCachedMovieRepository) cached(
	ctx context.Context,
	key string,
	fetch func(context.Context) (*domain.CategoryPage, error),
) (*domain.CategoryPage, error) {
	page, err := r.load(ctx, key)
	if err == nil {
		return page, nil
	}

	if !errors.Is(err, redis.Nil) {
		r.logger.Warn("failed to read movie cache, falling back to upstream", "key", key, "error", err)
	}

	// Every caller waits on its own context while the fetch runs detached
	// from whichever request happened to start it.
	ch := r.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()

		page, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}

		r.store(fetchCtx, key, page)

		return page, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}

		return res.Val.(*domain.CategoryPage), nil
	}
}

func (r *RedisCachedMovieRepository) load(ctx context.Context, key string) (*domain.CategoryPage, error) {
	data, err := r.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var page domain.CategoryPage

	err = json.Unmarshal(data, &page)
	if err != nil {
		return nil, fmt.Errorf("decode cached page: %w", err)
	}

	return &page, nil
}

func (r *RedisCachedMovieRepository) store(ctx context.Context, key string, page *domain.CategoryPage) {
	data, err := json.Marshal(page)
	if err != nil {
		r.logger.Error("failed to encode movie page for cache", "key", key, "error", err)
		return
	}

	err = r.redis.Set(ctx, key, data, r.ttl).Err()
	if err != nil {
		r.logger.Warn("failed to write movie cache", "key", key, "error", err)
	}
}

func categoryCacheKey(category domain.Category) string {
	return "movies:category:" + category.String()
}

func searchCacheKey(keyword string, page int) string {
	return "movies:search:" + strings.ToLower(strings.TrimSpace(keyword)) + ":" + strconv.Itoa(page)
}
