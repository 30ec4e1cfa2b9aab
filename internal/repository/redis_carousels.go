package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/metinatakli/movie-discovery/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultCarouselTTL = 24 * time.Hour

	maxCarouselRetries = 10
)

var ErrCarouselContention = errors.New("carousel cursor kept changing during update")

// RedisCarouselRepository keeps carousel cursors in redis, one key per
// visitor and category. Updates run inside WATCH/MULTI so two requests of the
// same visitor cannot both take the transition lock.
type RedisCarouselRepository struct {
	redis redis.UniversalClient
	ttl   time.Duration
}

func NewRedisCarouselRepository(client redis.UniversalClient, ttl time.Duration) *RedisCarouselRepository {
	if ttl <= 0 {
		ttl = DefaultCarouselTTL
	}

	return &RedisCarouselRepository{
		redis: client,
		ttl:   ttl,
	}
}

func (r *RedisCarouselRepository) Get(ctx context.Context, visitor string, category domain.Category) (domain.Cursor, error) {
	data, err := r.redis.Get(ctx, carouselKey(visitor, category)).Bytes()
	if errors.Is(err, redis.Nil) {
		return idleCursor(), nil
	}
	if err != nil {
		return domain.Cursor{}, err
	}

	return decodeCursor(data)
}

func (r *RedisCarouselRepository) Update(
	ctx context.Context,
	visitor string,
	category domain.Category,
	fn func(*domain.Cursor) (bool, error),
) (domain.Cursor, error) {
	key := carouselKey(visitor, category)

	var cursor domain.Cursor

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			cursor = idleCursor()
		case err != nil:
			return err
		default:
			cursor, err = decodeCursor(data)
			if err != nil {
				return err
			}
		}

		changed, err := fn(&cursor)
		if err != nil || !changed {
			return err
		}

		encoded, err := json.Marshal(cursor)
		if err != nil {
			return fmt.Errorf("encode carousel cursor: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, r.ttl)
			return nil
		})

		return err
	}

	for range maxCarouselRetries {
		err := r.redis.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return domain.Cursor{}, err
		}

		return cursor, nil
	}

	return domain.Cursor{}, ErrCarouselContention
}

func carouselKey(visitor string, category domain.Category) string {
	return "carousel:" + visitor + ":" + category.String()
}

func idleCursor() domain.Cursor {
	return domain.Cursor{State: domain.StateIdle}
}

func decodeCursor(data []byte) (domain.Cursor, error) {
	var cursor domain.Cursor

	err := json.Unmarshal(data, &cursor)
	if err != nil {
		return domain.Cursor{}, fmt.Errorf("decode carousel cursor: %w", err)
	}

	if cursor.State == "" {
		cursor.State = domain.StateIdle
	}

	return cursor, nil
}
