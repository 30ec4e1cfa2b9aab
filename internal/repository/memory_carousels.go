package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/alexedwards/scs/v2/memstore"
	"github.com/metinatakli/movie-discovery/internal/domain"
)

// MemoryCarouselRepository keeps carousel cursors in process memory. It
// serves single instance deployments and tests; expired cursors are swept by
// the underlying store.
type MemoryCarouselRepository struct {
	mu    sync.Mutex
	store *memstore.MemStore
	ttl   time.Duration
}

func NewMemoryCarouselRepository(ttl time.Duration) *MemoryCarouselRepository {
	if ttl <= 0 {
		ttl = DefaultCarouselTTL
	}

	return &MemoryCarouselRepository{
		store: memstore.New(),
		ttl:   ttl,
	}
}

func (r *MemoryCarouselRepository) Get(ctx context.Context, visitor string, category domain.Category) (domain.Cursor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.find(carouselKey(visitor, category))
}

func (r *MemoryCarouselRepository) Update(
	ctx context.Context,
	visitor string,
	category domain.Category,
	fn func(*domain.Cursor) (bool, error),
) (domain.Cursor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := carouselKey(visitor, category)

	cursor, err := r.find(key)
	if err != nil {
		return domain.Cursor{}, err
	}

	changed, err := fn(&cursor)
	if err != nil {
		return domain.Cursor{}, err
	}
	if !changed {
		return cursor, nil
	}

	data, err := json.Marshal(cursor)
	if err != nil {
		return domain.Cursor{}, fmt.Errorf("encode carousel cursor: %w", err)
	}

	err = r.store.Commit(key, data, time.Now().Add(r.ttl))
	if err != nil {
		return domain.Cursor{}, err
	}

	return cursor, nil
}

func (r *MemoryCarouselRepository) find(key string) (domain.Cursor, error) {
	data, found, err := r.store.Find(key)
	if err != nil {
		return domain.Cursor{}, err
	}
	if !found {
		return idleCursor(), nil
	}

	return decodeCursor(data)
}
