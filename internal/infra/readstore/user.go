package readstore

import (
	"context"

	"levelup-store/internal/domain/user"
	"levelup-store/internal/infra"
	"levelup-store/internal/infra/db"
	"levelup-store/internal/pkg/pgconv"
	"levelup-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const userColumns = `
	u.id, u.nombre, u.email, u.role, u.fecha_nacimiento, u.puntos_levelup,
	u.codigo_referido, u.descuento_duoc, u.is_active,
	(SELECT count(*) FROM sales s WHERE s.user_id = u.id) AS compras,
	u.created_at`

func scanUser(row interface{ Scan(dest ...any) error }, rec *queries.UserRecord) error {
	return row.Scan(
		&rec.ID, &rec.Nombre, &rec.Email, &rec.Role, &rec.FechaNacimiento,
		&rec.PuntosLevelUp, &rec.CodigoReferido, &rec.DescuentoDuoc,
		&rec.IsActive, &rec.Compras, &rec.CreatedAt,
	)
}

func (s *UserReadStore) List(ctx context.Context) ([]queries.UserRecord, error) {
	query := `SELECT ` + userColumns + ` FROM users u ORDER BY u.created_at DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	items := make([]queries.UserRecord, 0)
	for rows.Next() {
		var rec queries.UserRecord
		if err := scanUser(rows, &rec); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user", err)
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read users", err)
	}
	return items, nil
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserRecord, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.id = $1`

	var rec queries.UserRecord
	if err := scanUser(s.db.QueryRow(ctx, query, id), &rec); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &rec, nil
}

// FindByEmail returns the stored password hash alongside the record so the
// hash never travels through the read model.
func (s *UserReadStore) FindByEmail(ctx context.Context, email user.Email) (*queries.UserRecord, string, error) {
	query := `SELECT ` + userColumns + `, u.password_hash FROM users u WHERE u.email = $1`

	var rec queries.UserRecord
	var hash string
	err := s.db.QueryRow(ctx, query, email.Value()).Scan(
		&rec.ID, &rec.Nombre, &rec.Email, &rec.Role, &rec.FechaNacimiento,
		&rec.PuntosLevelUp, &rec.CodigoReferido, &rec.DescuentoDuoc,
		&rec.IsActive, &rec.Compras, &rec.CreatedAt, &hash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &rec, hash, nil
}
