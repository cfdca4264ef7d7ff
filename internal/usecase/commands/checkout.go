package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"levelup-store/internal/domain/sale"
	"levelup-store/internal/infra"
	"levelup-store/internal/pkg/clock"
	"levelup-store/internal/pkg/errs"
	"levelup-store/internal/usecase/shared"

	"github.com/google/uuid"
)

const idempotencyTTL = 24 * time.Hour

type SaleLine struct {
	ProductID uuid.UUID
	Cantidad  int
}

type CreateSaleRequest struct {
	Detalles   []SaleLine
	MetodoPago string
	// IdempotencyKey, when present, makes the request replay-safe: a retry
	// with the same key returns the sale created the first time.
	IdempotencyKey *uuid.UUID
}

type CreateSaleResult struct {
	SaleID          uuid.UUID
	Total           int64
	PuntosOtorgados int
	Replayed        bool
}

type CheckoutCommands interface {
	CreateSale(ctx context.Context, userID uuid.UUID, descuentoEligible bool, req CreateSaleRequest) (*CreateSaleResult, error)
}

type checkoutUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.CatalogCache
	clock clock.Clock
}

func NewCheckoutUseCase(uow shared.UnitOfWork, cache shared.CatalogCache, clk clock.Clock) CheckoutCommands {
	return &checkoutUseCaseImpl{uow: uow, cache: cache, clock: clk}
}

// CreateSale prices and persists a boleta in one transaction. Product rows
// are locked before the stock check so concurrent checkouts cannot both
// decrement past zero. Points accrue to the buyer in the same transaction.
func (uc *checkoutUseCaseImpl) CreateSale(ctx context.Context, userID uuid.UUID, descuentoEligible bool, req CreateSaleRequest) (*CreateSaleResult, error) {
	metodoPago, err := sale.NewPaymentMethod(req.MetodoPago)
	if err != nil {
		return nil, err
	}
	if len(req.Detalles) == 0 {
		return nil, errs.Mark(sale.ErrEmptyDetalles, errs.ErrEmptyCart)
	}

	var result *CreateSaleResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if req.IdempotencyKey != nil {
			replayed, derr := uc.claimKey(ctx, tx, *req.IdempotencyKey, userID)
			if derr != nil {
				return derr
			}
			if replayed != nil {
				result = replayed
				return nil
			}
		}

		ids := make([]uuid.UUID, 0, len(req.Detalles))
		for _, line := range req.Detalles {
			ids = append(ids, line.ProductID)
		}
		snaps, derr := tx.Reads().ProductsForUpdate(ctx, ids)
		if derr != nil {
			return derr
		}
		byID := make(map[uuid.UUID]shared.ProductSnapshot, len(snaps))
		for _, s := range snaps {
			byID[s.ID] = s
		}

		lines := make([]sale.LineInput, 0, len(req.Detalles))
		for _, line := range req.Detalles {
			snap, ok := byID[line.ProductID]
			if !ok {
				return errs.Mark(errs.New("product missing at checkout"), errs.ErrProductNotFound)
			}
			lines = append(lines, sale.LineInput{
				Product: sale.ProductSpec{
					ID:     snap.ID,
					Nombre: snap.Nombre,
					Precio: snap.Precio,
					Stock:  snap.Stock,
				},
				Cantidad: line.Cantidad,
			})
		}

		agg, derr := sale.NewSale(&sale.Services{Clock: uc.clock}, userID, lines, metodoPago, descuentoEligible)
		if derr != nil {
			if errors.Is(derr, sale.ErrInsufficientStock) {
				return errs.Mark(derr, errs.ErrInsufficientStock)
			}
			return derr
		}

		saleID, derr := tx.Sales().Create(ctx, tx.DB(), agg)
		if derr != nil {
			return derr
		}
		for _, d := range agg.Detalles() {
			if derr = tx.Products().DecrementStock(ctx, tx.DB(), d.ProductID(), d.Cantidad()); derr != nil {
				return derr
			}
		}
		if agg.PuntosOtorgados() > 0 {
			if derr = tx.Users().AddPoints(ctx, tx.DB(), userID, agg.PuntosOtorgados()); derr != nil {
				return derr
			}
		}

		if req.IdempotencyKey != nil {
			if derr = tx.Idempotency().MarkCompleted(ctx, tx.DB(), *req.IdempotencyKey, userID, saleID); derr != nil {
				return derr
			}
		}

		result = &CreateSaleResult{
			SaleID:          saleID,
			Total:           agg.Total(),
			PuntosOtorgados: agg.PuntosOtorgados(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Replayed {
		if cacheErr := uc.cache.Invalidate(ctx); cacheErr != nil {
			slog.Warn("catalog cache invalidation failed", "error", cacheErr.Error())
		}
	}
	return result, nil
}

// claimKey inserts the idempotency record. A duplicate key means a previous
// attempt: completed ones replay their sale, pending ones are rejected so a
// concurrent first attempt can finish.
func (uc *checkoutUseCaseImpl) claimKey(ctx context.Context, tx shared.Tx, key, userID uuid.UUID) (*CreateSaleResult, error) {
	err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, "", uc.clock.Now().Add(idempotencyTTL))
	if err == nil {
		return nil, nil
	}
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return nil, err
	}

	rec, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if rec.Status != "completed" || rec.ResultSaleID == nil {
		return nil, errs.ErrIdempotencyInProgress
	}
	return &CreateSaleResult{SaleID: *rec.ResultSaleID, Replayed: true}, nil
}
