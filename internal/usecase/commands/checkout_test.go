package commands

import (
	"context"
	"testing"
	"time"

	"levelup-store/internal/domain/sale"
	"levelup-store/internal/pkg/clock"
	"levelup-store/internal/pkg/errs"
	"levelup-store/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(uow *fakeUoW, precio int64, stock int) uuid.UUID {
	id := uuid.New()
	uow.reads.products[id] = shared.ProductSnapshot{
		ID:     id,
		Nombre: "Producto",
		Precio: precio,
		Stock:  stock,
	}
	return id
}

func TestCheckoutUseCase_CreateSale(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("creates the sale and applies side effects", func(t *testing.T) {
		uow := newFakeUoW()
		cache := &fakeCatalogCache{}
		uc := NewCheckoutUseCase(uow, cache, clock.NewMockClock(now))

		productID := seedProduct(uow, 20000, 5)

		result, err := uc.CreateSale(context.Background(), userID, true, CreateSaleRequest{
			Detalles:   []SaleLine{{ProductID: productID, Cantidad: 2}},
			MetodoPago: "TARJETA",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(32000), result.Total)
		assert.Equal(t, 32, result.PuntosOtorgados)
		assert.False(t, result.Replayed)

		require.Len(t, uow.tx.sales.created, 1)
		created := uow.tx.sales.created[0]
		assert.Equal(t, result.SaleID, created.ID())
		assert.Equal(t, int64(40000), created.Subtotal())
		assert.Equal(t, int64(8000), created.DescuentoAplicado())

		assert.Equal(t, 2, uow.tx.products.decrements[productID])
		assert.Equal(t, 32, uow.tx.users.points[userID])
		assert.Equal(t, 1, cache.invalidations)
	})

	t.Run("ineligible account gets no discount", func(t *testing.T) {
		uow := newFakeUoW()
		uc := NewCheckoutUseCase(uow, &fakeCatalogCache{}, clock.NewMockClock(now))

		productID := seedProduct(uow, 20000, 5)

		result, err := uc.CreateSale(context.Background(), userID, false, CreateSaleRequest{
			Detalles:   []SaleLine{{ProductID: productID, Cantidad: 1}},
			MetodoPago: "EFECTIVO",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(20000), result.Total)
	})

	t.Run("invalid payment method", func(t *testing.T) {
		uow := newFakeUoW()
		uc := NewCheckoutUseCase(uow, &fakeCatalogCache{}, clock.NewMockClock(now))

		_, err := uc.CreateSale(context.Background(), userID, false, CreateSaleRequest{
			Detalles:   []SaleLine{{ProductID: uuid.New(), Cantidad: 1}},
			MetodoPago: "CHEQUE",
		})
		assert.ErrorIs(t, err, sale.ErrInvalidPaymentMethod)
	})

	t.Run("empty detalles", func(t *testing.T) {
		uow := newFakeUoW()
		uc := NewCheckoutUseCase(uow, &fakeCatalogCache{}, clock.NewMockClock(now))

		_, err := uc.CreateSale(context.Background(), userID, false, CreateSaleRequest{
			MetodoPago: "TARJETA",
		})
		assert.ErrorIs(t, err, errs.ErrEmptyCart)
	})

	t.Run("unknown product", func(t *testing.T) {
		uow := newFakeUoW()
		uc := NewCheckoutUseCase(uow, &fakeCatalogCache{}, clock.NewMockClock(now))

		_, err := uc.CreateSale(context.Background(), userID, false, CreateSaleRequest{
			Detalles:   []SaleLine{{ProductID: uuid.New(), Cantidad: 1}},
			MetodoPago: "TARJETA",
		})
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		uow := newFakeUoW()
		cache := &fakeCatalogCache{}
		uc := NewCheckoutUseCase(uow, cache, clock.NewMockClock(now))

		productID := seedProduct(uow, 20000, 1)

		_, err := uc.CreateSale(context.Background(), userID, false, CreateSaleRequest{
			Detalles:   []SaleLine{{ProductID: productID, Cantidad: 3}},
			MetodoPago: "TARJETA",
		})
		assert.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.Empty(t, uow.tx.sales.created)
		assert.Equal(t, 0, cache.invalidations)
	})
}

func TestCheckoutUseCase_Idempotency(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("first attempt claims the key and completes it", func(t *testing.T) {
		uow := newFakeUoW()
		uc := NewCheckoutUseCase(uow, &fakeCatalogCache{}, clock.NewMockClock(now))

		productID := seedProduct(uow, 10000, 5)
		key := uuid.New()

		result, err := uc.CreateSale(context.Background(), userID, false, CreateSaleRequest{
			Detalles:       []SaleLine{{ProductID: productID, Cantidad: 1}},
			MetodoPago:     "TARJETA",
			IdempotencyKey: &key,
		})
		require.NoError(t, err)
		assert.False(t, result.Replayed)

		rec := uow.reads.idem[key]
		require.NotNil(t, rec)
		assert.Equal(t, "completed", rec.Status)
		require.NotNil(t, rec.ResultSaleID)
		assert.Equal(t, result.SaleID, *rec.ResultSaleID)
		assert.Equal(t, now.Add(24*time.Hour), rec.ExpiresAt)
	})

	t.Run("retry replays the committed sale", func(t *testing.T) {
		uow := newFakeUoW()
		cache := &fakeCatalogCache{}
		uc := NewCheckoutUseCase(uow, cache, clock.NewMockClock(now))

		productID := seedProduct(uow, 10000, 5)
		key := uuid.New()
		req := CreateSaleRequest{
			Detalles:       []SaleLine{{ProductID: productID, Cantidad: 1}},
			MetodoPago:     "TARJETA",
			IdempotencyKey: &key,
		}

		first, err := uc.CreateSale(context.Background(), userID, false, req)
		require.NoError(t, err)

		second, err := uc.CreateSale(context.Background(), userID, false, req)
		require.NoError(t, err)

		assert.True(t, second.Replayed)
		assert.Equal(t, first.SaleID, second.SaleID)
		assert.Len(t, uow.tx.sales.created, 1)
		assert.Equal(t, 1, uow.tx.products.decrements[productID])
		assert.Equal(t, 1, cache.invalidations)
	})

	t.Run("pending key is rejected", func(t *testing.T) {
		uow := newFakeUoW()
		uc := NewCheckoutUseCase(uow, &fakeCatalogCache{}, clock.NewMockClock(now))

		productID := seedProduct(uow, 10000, 5)
		key := uuid.New()
		uow.reads.idem[key] = &shared.IdempotencyRecord{
			Key:    key,
			UserID: userID,
			Status: "pending",
		}

		_, err := uc.CreateSale(context.Background(), userID, false, CreateSaleRequest{
			Detalles:       []SaleLine{{ProductID: productID, Cantidad: 1}},
			MetodoPago:     "TARJETA",
			IdempotencyKey: &key,
		})
		assert.ErrorIs(t, err, errs.ErrIdempotencyInProgress)
	})
}
