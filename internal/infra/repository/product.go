package repository

import (
	"context"

	"levelup-store/internal/domain/catalog"
	"levelup-store/internal/infra"
	"levelup-store/internal/infra/db"
	"levelup-store/internal/pkg/errs"

	"github.com/google/uuid"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) Create(ctx context.Context, tx db.DBTX, p *catalog.Product) (uuid.UUID, error) {
	const query = `
		INSERT INTO products (id, nombre, descripcion, precio, stock, categoria, imagen)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		p.ID(), p.Nombre(), p.Descripcion(), p.Precio(), p.Stock(), p.Categoria(), p.Imagen(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create product", err, classify(err))
	}
	return id, nil
}

func (r *ProductRepository) Update(ctx context.Context, tx db.DBTX, p *catalog.Product) error {
	const query = `
		UPDATE products
		SET nombre = $2, descripcion = $3, precio = $4, stock = $5,
		    categoria = $6, imagen = $7, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		p.ID(), p.Nombre(), p.Descripcion(), p.Precio(), p.Stock(), p.Categoria(), p.Imagen(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

// DecrementStock subtracts sold units. The guard in the WHERE clause keeps
// stock non-negative even if a concurrent transaction slipped past the
// usecase check.
func (r *ProductRepository) DecrementStock(ctx context.Context, tx db.DBTX, id uuid.UUID, by int) error {
	const query = `
		UPDATE products
		SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2`

	tag, err := tx.Exec(ctx, query, id, by)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement stock", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return errs.Mark(errs.New("stock decrement rejected"), errs.ErrInsufficientStock)
	}
	return nil
}
