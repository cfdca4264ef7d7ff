package usecase

import (
	"context"
	"errors"
	"time"

	"levelup-store/internal/domain/user"
	"levelup-store/internal/infra"
	"levelup-store/internal/pkg/clock"
	"levelup-store/internal/pkg/errs"
	"levelup-store/internal/pkg/jwt"
	"levelup-store/internal/pkg/password"
	"levelup-store/internal/usecase/queries"
	"levelup-store/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrEmailTaken           = errors.New("email already registered")
)

// AuthUserStore is the read side of authentication. FindByEmail returns the
// stored hash separately so the read model stays hash-free.
type AuthUserStore interface {
	FindByEmail(ctx context.Context, email user.Email) (*queries.UserRecord, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.UserRecord, error)
}

type RegisterRequest struct {
	Nombre          string
	Email           string
	Password        string
	FechaNacimiento time.Time
}

type AuthResult struct {
	Token string
	User  *queries.UserRecord
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (*AuthResult, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.UserRecord, error)
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type authUseCaseImpl struct {
	store      AuthUserStore
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthUseCase(store AuthUserStore, uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		store:      store,
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (*AuthResult, error) {
	rec, hash, err := a.store.FindByEmail(ctx, credentials.Email())
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err = password.ComparePassword(hash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !rec.IsActive {
		return nil, ErrUserInactive
	}

	token, err := a.issueToken(rec)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), rec.ID)
	})
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: rec}, nil
}

// Register creates a cliente account and logs it straight in. The discount
// flag is derived from the email domain inside the aggregate.
func (a *authUseCaseImpl) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	pass, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u, err := user.NewUser(req.Nombre, email, hash, user.RoleCliente, req.FechaNacimiento, a.clock.Now())
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), u)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrEmailTaken)
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	rec, err := a.store.FindByID(ctx, createdID)
	if err != nil {
		return nil, err
	}

	token, err := a.issueToken(rec)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: rec}, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.UserRecord, error) {
	rec, err := a.store.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUserNotFound)
	}
	if !rec.IsActive {
		return nil, ErrUserInactive
	}
	return rec, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (*jwt.Claims, error) {
	return a.jwtService.ValidateToken(tokenString)
}

func (a *authUseCaseImpl) issueToken(rec *queries.UserRecord) (string, error) {
	role, err := user.NewRole(rec.Role)
	if err != nil {
		return "", ErrAuthenticationFailed
	}
	token, err := a.jwtService.GenerateToken(rec.ID, role, rec.Nombre, rec.DescuentoDuoc)
	if err != nil {
		return "", ErrTokenGeneration
	}
	return token, nil
}
