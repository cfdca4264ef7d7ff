package repository

import (
	"context"

	"levelup-store/internal/domain/user"
	"levelup-store/internal/infra"
	"levelup-store/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, nombre, email, password_hash, role, fecha_nacimiento,
		                   puntos_levelup, codigo_referido, descuento_duoc, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		u.ID(), u.Nombre(), u.Email().Value(), u.PasswordHash(), u.Role().String(),
		u.FechaNacimiento(), u.PuntosLevelUp(), u.CodigoReferido(), u.DescuentoDuoc(), u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err, classify(err))
	}
	return id, nil
}

func (r *UserRepository) Update(ctx context.Context, tx db.DBTX, u *user.User) error {
	const query = `
		UPDATE users
		SET nombre = $2, role = $3, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, u.ID(), u.Nombre(), u.Role().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete deactivates the account. Sales history references the row, so
// accounts are never physically removed.
func (r *UserRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `UPDATE users SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	_, err := tx.Exec(ctx, `UPDATE users SET last_login_at = now() WHERE id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func (r *UserRepository) AddPoints(ctx context.Context, tx db.DBTX, userID uuid.UUID, points int) error {
	const query = `
		UPDATE users
		SET puntos_levelup = puntos_levelup + $2, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, userID, points)
	if err != nil {
		return infra.WrapRepoErr("failed to add points", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
