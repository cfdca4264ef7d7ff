package repository

import (
	"context"

	"levelup-store/internal/infra"
	"levelup-store/internal/infra/db"
	"levelup-store/internal/pkg/pgconv"
	"levelup-store/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads serves write-side lookups. It runs against whatever DBTX it
// is bound to: the pool for out-of-transaction validation, or the live
// transaction when used through Tx.Reads().
type CommandReads struct {
	dbtx db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{dbtx: dbtx}
}

const productSnapshotColumns = `id, nombre, descripcion, precio, stock, categoria, imagen, created_at`

func (r *CommandReads) ProductByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	query := `SELECT ` + productSnapshotColumns + ` FROM products WHERE id = $1`

	var snap shared.ProductSnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Nombre, &snap.Descripcion, &snap.Precio,
		&snap.Stock, &snap.Categoria, &snap.Imagen, &snap.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	return &snap, nil
}

// ProductsForUpdate locks the rows until the enclosing transaction ends.
// Missing IDs are simply absent from the result; the caller decides whether
// that is an error.
func (r *CommandReads) ProductsForUpdate(ctx context.Context, ids []uuid.UUID) ([]shared.ProductSnapshot, error) {
	query := `SELECT ` + productSnapshotColumns + ` FROM products WHERE id = ANY($1) FOR UPDATE`

	rows, err := r.dbtx.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock products", err)
	}
	defer rows.Close()

	var snaps []shared.ProductSnapshot
	for rows.Next() {
		var snap shared.ProductSnapshot
		if err := rows.Scan(
			&snap.ID, &snap.Nombre, &snap.Descripcion, &snap.Precio,
			&snap.Stock, &snap.Categoria, &snap.Imagen, &snap.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read locked products", err)
	}
	return snaps, nil
}

func (r *CommandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, nombre, email, password_hash, role, fecha_nacimiento,
		       puntos_levelup, codigo_referido, descuento_duoc, is_active, created_at
		FROM users WHERE id = $1`

	var snap shared.UserSnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Nombre, &snap.Email, &snap.PasswordHash, &snap.Role,
		&snap.FechaNacimiento, &snap.PuntosLevelUp, &snap.CodigoReferido,
		&snap.DescuentoDuoc, &snap.IsActive, &snap.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &snap, nil
}

func (r *CommandReads) ReviewByID(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	const query = `SELECT id, user_id, product_id, calificacion, texto FROM reviews WHERE id = $1`

	var snap shared.ReviewSnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.UserID, &snap.ProductID, &snap.Calificacion, &snap.Texto,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review", err)
	}
	return &snap, nil
}

func (r *CommandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	const query = `
		SELECT key, user_id, status, result_sale_id, expires_at
		FROM idempotency_keys WHERE key = $1 AND user_id = $2`

	var rec shared.IdempotencyRecord
	err := r.dbtx.QueryRow(ctx, query, key, userID).Scan(
		&rec.Key, &rec.UserID, &rec.Status, &rec.ResultSaleID, &rec.ExpiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find idempotency key", err)
	}
	return &rec, nil
}
