package readstore

import (
	"context"

	"levelup-store/internal/domain/catalog"
	"levelup-store/internal/infra"
	"levelup-store/internal/infra/db"
	"levelup-store/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

const productColumns = `id, nombre, descripcion, precio, stock, categoria, imagen`

func (s *ProductReadStore) List(ctx context.Context) ([]catalog.Summary, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY nombre`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	items := make([]catalog.Summary, 0)
	for rows.Next() {
		var p catalog.Summary
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Stock, &p.Categoria, &p.Imagen); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read products", err)
	}
	return items, nil
}

func (s *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Summary, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var p catalog.Summary
	err := s.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Stock, &p.Categoria, &p.Imagen,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	return &p, nil
}
