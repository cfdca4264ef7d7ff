package repository

import (
	"context"

	"levelup-store/internal/domain/sale"
	"levelup-store/internal/infra"
	"levelup-store/internal/infra/db"

	"github.com/google/uuid"
)

type SaleRepository struct{}

func NewSaleRepository() *SaleRepository {
	return &SaleRepository{}
}

// Create persists the boleta header and its frozen lines. Caller supplies
// the transaction; header and lines always commit together.
func (r *SaleRepository) Create(ctx context.Context, tx db.DBTX, s *sale.Sale) (uuid.UUID, error) {
	const headerQuery = `
		INSERT INTO sales (id, user_id, fecha, subtotal, descuento_aplicado, total, metodo_pago, puntos_otorgados)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, headerQuery,
		s.ID(), s.UserID(), s.Fecha(),
		s.Subtotal(), s.DescuentoAplicado(), s.Total(),
		s.MetodoPago().String(), s.PuntosOtorgados(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create sale", err, classify(err))
	}

	const lineQuery = `
		INSERT INTO sale_details (sale_id, product_id, nombre, precio_unitario, cantidad)
		VALUES ($1, $2, $3, $4, $5)`

	for _, d := range s.Detalles() {
		_, err = tx.Exec(ctx, lineQuery, id, d.ProductID(), d.Nombre(), d.PrecioUnitario(), d.Cantidad())
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create sale detail", err, classify(err))
		}
	}
	return id, nil
}
