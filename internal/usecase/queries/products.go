package queries

import (
	"context"
	"errors"
	"log/slog"

	"levelup-store/internal/domain/catalog"
	"levelup-store/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductReadStore interface {
	List(ctx context.Context) ([]catalog.Summary, error)
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Summary, error)
}

type ProductQueries interface {
	List(ctx context.Context, criteria catalog.Criteria) ([]catalog.Summary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.Summary, error)
}

type productQueriesImpl struct {
	store ProductReadStore
	cache shared.CatalogCache
}

func NewProductQueries(store ProductReadStore, cache shared.CatalogCache) ProductQueries {
	return &productQueriesImpl{store: store, cache: cache}
}

// List serves the catalog cache-aside and filters in memory. The filter runs
// over the full list rather than in SQL because the criteria combine freely
// and the catalog is small; the cache keeps the hot path off the database.
func (q *productQueriesImpl) List(ctx context.Context, criteria catalog.Criteria) ([]catalog.Summary, error) {
	items, err := q.cache.Get(ctx)
	if err != nil {
		if !errors.Is(err, shared.ErrCacheMiss) {
			// degraded cache is not fatal for a read
			slog.Warn("catalog cache read failed", "error", err.Error())
		}
		items, err = q.store.List(ctx)
		if err != nil {
			return nil, err
		}
		if cacheErr := q.cache.Set(ctx, items); cacheErr != nil {
			slog.Warn("catalog cache write failed", "error", cacheErr.Error())
		}
	}

	return catalog.Filter(items, criteria), nil
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Summary, error) {
	p, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, ErrProductNotFound)
	}
	return p, nil
}
