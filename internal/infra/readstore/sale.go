package readstore

import (
	"context"

	"levelup-store/internal/infra"
	"levelup-store/internal/infra/db"
	"levelup-store/internal/pkg/pgconv"
	"levelup-store/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SaleReadStore struct {
	db db.DBTX
}

func NewSaleReadStore(dbtx db.DBTX) *SaleReadStore {
	return &SaleReadStore{db: dbtx}
}

const saleListQuery = `
	SELECT s.id, s.fecha, u.nombre, s.metodo_pago, s.total
	FROM sales s
	JOIN users u ON u.id = s.user_id`

func (s *SaleReadStore) ListAll(ctx context.Context) ([]queries.SaleListItem, error) {
	rows, err := s.db.Query(ctx, saleListQuery+` ORDER BY s.fecha DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sales", err)
	}
	return scanSaleList(rows)
}

func (s *SaleReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.SaleListItem, error) {
	rows, err := s.db.Query(ctx, saleListQuery+` WHERE s.user_id = $1 ORDER BY s.fecha DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user sales", err)
	}
	return scanSaleList(rows)
}

func scanSaleList(rows pgx.Rows) ([]queries.SaleListItem, error) {
	defer rows.Close()

	items := make([]queries.SaleListItem, 0)
	for rows.Next() {
		var it queries.SaleListItem
		if err := rows.Scan(&it.ID, &it.Fecha, &it.UserNombre, &it.MetodoPago, &it.Total); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sale", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read sales", err)
	}
	return items, nil
}

func (s *SaleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SaleRecord, error) {
	const headerQuery = `
		SELECT s.id, s.user_id, u.nombre, s.fecha, s.total, s.descuento_aplicado, s.metodo_pago
		FROM sales s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1`

	var rec queries.SaleRecord
	err := s.db.QueryRow(ctx, headerQuery, id).Scan(
		&rec.ID, &rec.UserID, &rec.UserNombre, &rec.Fecha,
		&rec.Total, &rec.DescuentoAplicado, &rec.MetodoPago,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("sale not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find sale", err)
	}

	const linesQuery = `
		SELECT product_id, nombre, precio_unitario, cantidad
		FROM sale_details
		WHERE sale_id = $1`

	rows, err := s.db.Query(ctx, linesQuery, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load sale details", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line queries.SaleLineView
		if err := rows.Scan(&line.ProductID, &line.Nombre, &line.PrecioUnitario, &line.Cantidad); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sale detail", err)
		}
		rec.Detalles = append(rec.Detalles, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read sale details", err)
	}
	return &rec, nil
}
