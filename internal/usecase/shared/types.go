package shared

import (
	"context"
	"errors"

	"levelup-store/internal/domain/cart"
	"levelup-store/internal/domain/catalog"

	"github.com/google/uuid"
)

const (
	RoleCliente = "cliente"
	RoleAdmin   = "admin"
)

var ErrCacheMiss = errors.New("cache miss")

// CartStore holds per-user cart ledgers. Backed by Redis; a missing cart is
// reported as ErrCacheMiss and treated as empty by callers.
type CartStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*cart.Cart, error)
	Save(ctx context.Context, c *cart.Cart) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// CatalogCache is the cache-aside store for the full product listing.
// Writers invalidate; readers repopulate on miss.
type CatalogCache interface {
	Get(ctx context.Context) ([]catalog.Summary, error)
	Set(ctx context.Context, items []catalog.Summary) error
	Invalidate(ctx context.Context) error
}
