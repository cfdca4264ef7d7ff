package commands

import (
	"context"
	"errors"
	"log/slog"

	"levelup-store/internal/domain/cart"
	"levelup-store/internal/domain/pricing"
	"levelup-store/internal/pkg/clock"
	"levelup-store/internal/pkg/errs"
	"levelup-store/internal/usecase/shared"

	"github.com/google/uuid"
)

// CartView is the priced ledger the storefront renders.
type CartView struct {
	Items []cart.Line
	Quote pricing.Quote
}

type CartCommands interface {
	Get(ctx context.Context, userID uuid.UUID, descuentoEligible bool) (*CartView, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID) error
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
	Checkout(ctx context.Context, userID uuid.UUID, descuentoEligible bool, metodoPago string, idempotencyKey *uuid.UUID) (*CreateSaleResult, error)
}

type cartUseCaseImpl struct {
	store    shared.CartStore
	uow      shared.UnitOfWork
	checkout CheckoutCommands
	clock    clock.Clock
}

func NewCartUseCase(store shared.CartStore, uow shared.UnitOfWork, checkout CheckoutCommands, clk clock.Clock) CartCommands {
	return &cartUseCaseImpl{store: store, uow: uow, checkout: checkout, clock: clk}
}

func (uc *cartUseCaseImpl) load(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	c, err := uc.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrCacheMiss) {
			return cart.New(userID), nil
		}
		return nil, err
	}
	return c, nil
}

func (uc *cartUseCaseImpl) Get(ctx context.Context, userID uuid.UUID, descuentoEligible bool) (*CartView, error) {
	c, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &CartView{
		Items: c.Items,
		Quote: pricing.NewQuote(c.Subtotal(), descuentoEligible),
	}, nil
}

// AddItem reads the live product so the stock cap reflects the catalog at
// the time of the click, not at cart creation.
func (uc *cartUseCaseImpl) AddItem(ctx context.Context, userID, productID uuid.UUID) error {
	snap, err := uc.uow.CommandReads().ProductByID(ctx, productID)
	if err != nil {
		return markProductNotFound(err)
	}

	c, err := uc.load(ctx, userID)
	if err != nil {
		return err
	}
	c.Add(cart.Item{
		ProductID: snap.ID,
		Nombre:    snap.Nombre,
		Precio:    snap.Precio,
	}, snap.Stock, uc.clock.Now())

	return uc.store.Save(ctx, c)
}

func (uc *cartUseCaseImpl) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	c, err := uc.load(ctx, userID)
	if err != nil {
		return err
	}
	c.Remove(productID, uc.clock.Now())
	return uc.store.Save(ctx, c)
}

func (uc *cartUseCaseImpl) Clear(ctx context.Context, userID uuid.UUID) error {
	return uc.store.Delete(ctx, userID)
}

// Checkout turns the cart into a boleta. The cart is cleared only after the
// sale commits; any failure leaves the ledger untouched for a retry.
func (uc *cartUseCaseImpl) Checkout(ctx context.Context, userID uuid.UUID, descuentoEligible bool, metodoPago string, idempotencyKey *uuid.UUID) (*CreateSaleResult, error) {
	c, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, errs.ErrEmptyCart
	}

	detalles := make([]SaleLine, 0, c.Len())
	for _, line := range c.Items {
		detalles = append(detalles, SaleLine{ProductID: line.ProductID, Cantidad: line.Cantidad})
	}

	result, err := uc.checkout.CreateSale(ctx, userID, descuentoEligible, CreateSaleRequest{
		Detalles:       detalles,
		MetodoPago:     metodoPago,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return nil, err
	}

	if delErr := uc.store.Delete(ctx, userID); delErr != nil {
		// the sale is committed; a stale cart is recoverable
		slog.Warn("cart clear after checkout failed", "user_id", userID, "error", delErr.Error())
	}
	return result, nil
}
