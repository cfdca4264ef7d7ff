package commands

import (
	"context"
	"testing"
	"time"

	"levelup-store/internal/pkg/clock"
	"levelup-store/internal/pkg/errs"
	"levelup-store/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T) (*fakeUoW, *fakeCartStore, CartCommands) {
	t.Helper()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uow := newFakeUoW()
	store := newFakeCartStore()
	clk := clock.NewMockClock(now)
	checkout := NewCheckoutUseCase(uow, &fakeCatalogCache{}, clk)
	return uow, store, NewCartUseCase(store, uow, checkout, clk)
}

func seedCartProduct(uow *fakeUoW, nombre string, precio int64, stock int) uuid.UUID {
	id := uuid.New()
	uow.reads.products[id] = shared.ProductSnapshot{ID: id, Nombre: nombre, Precio: precio, Stock: stock}
	return id
}

func TestCartUseCase_Get(t *testing.T) {
	userID := uuid.New()

	t.Run("missing cart reads as empty", func(t *testing.T) {
		_, _, uc := newCartFixture(t)

		view, err := uc.Get(context.Background(), userID, false)
		require.NoError(t, err)

		assert.Empty(t, view.Items)
		assert.Equal(t, int64(0), view.Quote.Total)
	})

	t.Run("quote reflects discount eligibility", func(t *testing.T) {
		uow, _, uc := newCartFixture(t)
		productID := seedCartProduct(uow, "Catan", 20000, 5)
		require.NoError(t, uc.AddItem(context.Background(), userID, productID))

		view, err := uc.Get(context.Background(), userID, true)
		require.NoError(t, err)

		assert.Equal(t, int64(20000), view.Quote.Subtotal)
		assert.Equal(t, int64(4000), view.Quote.Descuento)
		assert.Equal(t, int64(16000), view.Quote.Total)
	})
}

func TestCartUseCase_AddItem(t *testing.T) {
	userID := uuid.New()

	t.Run("adds with live product data", func(t *testing.T) {
		uow, store, uc := newCartFixture(t)
		productID := seedCartProduct(uow, "Catan", 29990, 5)

		require.NoError(t, uc.AddItem(context.Background(), userID, productID))
		require.NoError(t, uc.AddItem(context.Background(), userID, productID))

		c := store.carts[userID]
		require.NotNil(t, c)
		require.Len(t, c.Items, 1)
		assert.Equal(t, "Catan", c.Items[0].Nombre)
		assert.Equal(t, 2, c.Items[0].Cantidad)
	})

	t.Run("cap at current stock", func(t *testing.T) {
		uow, store, uc := newCartFixture(t)
		productID := seedCartProduct(uow, "Catan", 29990, 1)

		require.NoError(t, uc.AddItem(context.Background(), userID, productID))
		require.NoError(t, uc.AddItem(context.Background(), userID, productID))

		assert.Equal(t, 1, store.carts[userID].Items[0].Cantidad)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, _, uc := newCartFixture(t)

		err := uc.AddItem(context.Background(), userID, uuid.New())
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})
}

func TestCartUseCase_RemoveItem(t *testing.T) {
	userID := uuid.New()
	uow, store, uc := newCartFixture(t)
	productID := seedCartProduct(uow, "Catan", 29990, 5)
	require.NoError(t, uc.AddItem(context.Background(), userID, productID))

	require.NoError(t, uc.RemoveItem(context.Background(), userID, productID))
	assert.Empty(t, store.carts[userID].Items)

	// removing again is still fine
	require.NoError(t, uc.RemoveItem(context.Background(), userID, productID))
}

func TestCartUseCase_Checkout(t *testing.T) {
	userID := uuid.New()

	t.Run("empty cart", func(t *testing.T) {
		_, _, uc := newCartFixture(t)

		_, err := uc.Checkout(context.Background(), userID, false, "TARJETA", nil)
		assert.ErrorIs(t, err, errs.ErrEmptyCart)
	})

	t.Run("successful checkout clears the cart", func(t *testing.T) {
		uow, store, uc := newCartFixture(t)
		productID := seedCartProduct(uow, "Catan", 20000, 5)
		require.NoError(t, uc.AddItem(context.Background(), userID, productID))
		require.NoError(t, uc.AddItem(context.Background(), userID, productID))

		result, err := uc.Checkout(context.Background(), userID, true, "EFECTIVO", nil)
		require.NoError(t, err)

		assert.Equal(t, int64(32000), result.Total)
		assert.Equal(t, 2, uow.tx.products.decrements[productID])
		_, exists := store.carts[userID]
		assert.False(t, exists)
	})

	t.Run("failed checkout keeps the cart", func(t *testing.T) {
		uow, store, uc := newCartFixture(t)
		productID := seedCartProduct(uow, "Catan", 20000, 5)
		require.NoError(t, uc.AddItem(context.Background(), userID, productID))

		// stock drops after the item was added
		snap := uow.reads.products[productID]
		snap.Stock = 0
		uow.reads.products[productID] = snap

		_, err := uc.Checkout(context.Background(), userID, false, "TARJETA", nil)
		assert.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.NotEmpty(t, store.carts[userID].Items)
	})
}
