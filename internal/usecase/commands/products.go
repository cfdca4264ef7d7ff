package commands

import (
	"context"
	"log/slog"

	"levelup-store/internal/domain/catalog"
	"levelup-store/internal/pkg/clock"
	"levelup-store/internal/pkg/patch"
	"levelup-store/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	Nombre      string
	Descripcion string
	Precio      int64
	Stock       int
	Categoria   string
	Imagen      string
}

// UpdateProductRequest is a partial update; nil fields keep their value.
type UpdateProductRequest struct {
	Nombre      *string
	Descripcion *string
	Precio      *int64
	Stock       *int
	Categoria   *string
	Imagen      *string
}

type ProductCommands interface {
	Create(ctx context.Context, req CreateProductRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.CatalogCache
	clock clock.Clock
}

func NewProductUseCase(uow shared.UnitOfWork, cache shared.CatalogCache, clk clock.Clock) ProductCommands {
	return &productUseCaseImpl{uow: uow, cache: cache, clock: clk}
}

func (uc *productUseCaseImpl) Create(ctx context.Context, req CreateProductRequest) (uuid.UUID, error) {
	p, err := catalog.NewProduct(req.Nombre, req.Descripcion, req.Precio, req.Stock, req.Categoria, req.Imagen)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Products().Create(ctx, tx.DB(), p)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.invalidate(ctx)
	return createdID, nil
}

func (uc *productUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ProductByID(ctx, id)
		if derr != nil {
			return markProductNotFound(derr)
		}

		updated, derr := catalog.NewProduct(
			patch.Coalesce(req.Nombre, snap.Nombre),
			patch.Coalesce(req.Descripcion, snap.Descripcion),
			patch.Coalesce(req.Precio, snap.Precio),
			patch.Coalesce(req.Stock, snap.Stock),
			patch.Coalesce(req.Categoria, snap.Categoria),
			patch.Coalesce(req.Imagen, snap.Imagen),
		)
		if derr != nil {
			return derr
		}
		agg := catalog.ReconstructProduct(
			snap.ID,
			updated.Nombre(), updated.Descripcion(),
			updated.Precio(), updated.Stock(),
			updated.Categoria(), updated.Imagen(),
			snap.CreatedAt, uc.clock.Now(),
		)
		return tx.Products().Update(ctx, tx.DB(), agg)
	})
	if err != nil {
		return err
	}

	uc.invalidate(ctx)
	return nil
}

func (uc *productUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().ProductByID(ctx, id); derr != nil {
			return markProductNotFound(derr)
		}
		return tx.Products().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return err
	}

	uc.invalidate(ctx)
	return nil
}

func (uc *productUseCaseImpl) invalidate(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		slog.Warn("catalog cache invalidation failed", "error", err.Error())
	}
}
