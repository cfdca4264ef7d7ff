package commands

import (
	"context"
	"time"

	"levelup-store/internal/domain/user"
	"levelup-store/internal/infra"
	"levelup-store/internal/pkg/clock"
	"levelup-store/internal/pkg/errs"
	"levelup-store/internal/pkg/password"
	"levelup-store/internal/pkg/patch"
	"levelup-store/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Nombre          string
	Email           string
	Password        string
	Role            string
	FechaNacimiento time.Time
}

// UpdateUserRequest is a partial update; nil fields keep their value.
type UpdateUserRequest struct {
	Nombre *string
	Role   *string
}

type UserCommands interface {
	Create(ctx context.Context, req CreateUserRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserUseCase(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userUseCaseImpl{uow: uow, clock: clk}
}

func (uc *userUseCaseImpl) Create(ctx context.Context, req CreateUserRequest) (uuid.UUID, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, err
	}
	pass, err := user.NewPassword(req.Password)
	if err != nil {
		return uuid.Nil, err
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	u, err := user.NewUser(req.Nombre, email, hash, role, req.FechaNacimiento, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), u)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, errs.ErrDuplicateEmail)
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *userUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().UserByID(ctx, id)
		if derr != nil {
			return markUserNotFound(derr)
		}

		role, derr := user.NewRole(patch.Coalesce(req.Role, snap.Role))
		if derr != nil {
			return derr
		}
		email, derr := user.NewEmail(snap.Email)
		if derr != nil {
			return derr
		}
		nombre := patch.Coalesce(req.Nombre, snap.Nombre)
		if nombre == "" {
			return user.ErrEmptyNombre
		}

		agg := user.ReconstructUser(
			snap.ID, nombre, email, snap.PasswordHash, role,
			snap.FechaNacimiento, snap.PuntosLevelUp, snap.CodigoReferido,
			snap.DescuentoDuoc, snap.IsActive,
			snap.CreatedAt, uc.clock.Now(),
		)
		return tx.Users().Update(ctx, tx.DB(), agg)
	})
}

func (uc *userUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, id); derr != nil {
			return markUserNotFound(derr)
		}
		return tx.Users().Delete(ctx, tx.DB(), id)
	})
}
