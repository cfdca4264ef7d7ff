package queries

import (
	"context"
	"testing"

	"levelup-store/internal/domain/catalog"
	"levelup-store/internal/infra"
	"levelup-store/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductStore struct {
	items     []catalog.Summary
	listCalls int
}

func (s *stubProductStore) List(context.Context) ([]catalog.Summary, error) {
	s.listCalls++
	return s.items, nil
}

func (s *stubProductStore) FindByID(_ context.Context, id uuid.UUID) (*catalog.Summary, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i], nil
		}
	}
	return nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
}

type stubCatalogCache struct {
	items []catalog.Summary
	sets  int
}

func (c *stubCatalogCache) Get(context.Context) ([]catalog.Summary, error) {
	if c.items == nil {
		return nil, shared.ErrCacheMiss
	}
	return c.items, nil
}

func (c *stubCatalogCache) Set(_ context.Context, items []catalog.Summary) error {
	c.items = items
	c.sets++
	return nil
}

func (c *stubCatalogCache) Invalidate(context.Context) error {
	c.items = nil
	return nil
}

func TestProductQueries_List(t *testing.T) {
	items := []catalog.Summary{
		{ID: uuid.New(), Nombre: "Catan", Precio: 29990, Categoria: "Juegos de Mesa"},
		{ID: uuid.New(), Nombre: "Mouse Gamer", Precio: 49990, Categoria: "Mouse"},
	}

	t.Run("miss populates the cache", func(t *testing.T) {
		store := &stubProductStore{items: items}
		cache := &stubCatalogCache{}
		q := NewProductQueries(store, cache)

		got, err := q.List(context.Background(), catalog.Criteria{})
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, 1, store.listCalls)
		assert.Equal(t, 1, cache.sets)

		_, err = q.List(context.Background(), catalog.Criteria{})
		require.NoError(t, err)
		assert.Equal(t, 1, store.listCalls, "second list should hit the cache")
	})

	t.Run("criteria filter the cached list", func(t *testing.T) {
		q := NewProductQueries(&stubProductStore{items: items}, &stubCatalogCache{})

		got, err := q.List(context.Background(), catalog.Criteria{Categoria: "Mouse"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Mouse Gamer", got[0].Nombre)
	})
}

func TestProductQueries_GetByID(t *testing.T) {
	items := []catalog.Summary{{ID: uuid.New(), Nombre: "Catan"}}
	q := NewProductQueries(&stubProductStore{items: items}, &stubCatalogCache{})

	t.Run("found", func(t *testing.T) {
		got, err := q.GetByID(context.Background(), items[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Catan", got.Nombre)
	})

	t.Run("missing maps to the sentinel", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}
