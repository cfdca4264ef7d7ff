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

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const reviewSelect = `
	SELECT r.id, r.product_id, p.nombre, r.user_id, u.nombre, r.calificacion, r.texto, r.fecha
	FROM reviews r
	JOIN products p ON p.id = r.product_id
	JOIN users u ON u.id = r.user_id`

func scanReviews(rows pgx.Rows) ([]queries.ReviewView, error) {
	defer rows.Close()

	items := make([]queries.ReviewView, 0)
	for rows.Next() {
		var v queries.ReviewView
		if err := rows.Scan(
			&v.ID, &v.ProductID, &v.ProductNombre, &v.UserID, &v.UsuarioNombre,
			&v.Calificacion, &v.Texto, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review", err)
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reviews", err)
	}
	return items, nil
}

func (s *ReviewReadStore) ListAll(ctx context.Context) ([]queries.ReviewView, error) {
	rows, err := s.db.Query(ctx, reviewSelect+` ORDER BY r.fecha DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	return scanReviews(rows)
}

func (s *ReviewReadStore) ListByProduct(ctx context.Context, productID uuid.UUID) ([]queries.ReviewView, error) {
	rows, err := s.db.Query(ctx, reviewSelect+` WHERE r.product_id = $1 ORDER BY r.fecha DESC`, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product reviews", err)
	}
	return scanReviews(rows)
}

func (s *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	var v queries.ReviewView
	err := s.db.QueryRow(ctx, reviewSelect+` WHERE r.id = $1`, id).Scan(
		&v.ID, &v.ProductID, &v.ProductNombre, &v.UserID, &v.UsuarioNombre,
		&v.Calificacion, &v.Texto, &v.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review", err)
	}
	return &v, nil
}
