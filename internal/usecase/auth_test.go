package usecase

import (
	"context"
	"testing"
	"time"

	"levelup-store/internal/domain/user"
	"levelup-store/internal/infra"
	"levelup-store/internal/infra/db"
	"levelup-store/internal/pkg/clock"
	"levelup-store/internal/pkg/jwt"
	"levelup-store/internal/pkg/password"
	"levelup-store/internal/usecase/queries"
	"levelup-store/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authStoreStub keeps accounts keyed by email, mirroring the read store.
type authStoreStub struct {
	records map[string]*queries.UserRecord
	hashes  map[string]string
}

func newAuthStoreStub() *authStoreStub {
	return &authStoreStub{
		records: map[string]*queries.UserRecord{},
		hashes:  map[string]string{},
	}
}

func (s *authStoreStub) add(t *testing.T, email, plainPassword string, active bool) *queries.UserRecord {
	t.Helper()
	hash, err := password.HashPassword(plainPassword)
	require.NoError(t, err)

	rec := &queries.UserRecord{
		ID:       uuid.New(),
		Nombre:   "Ana",
		Email:    email,
		Role:     "cliente",
		IsActive: active,
	}
	s.records[email] = rec
	s.hashes[email] = hash
	return rec
}

func (s *authStoreStub) FindByEmail(_ context.Context, email user.Email) (*queries.UserRecord, string, error) {
	rec, ok := s.records[email.Value()]
	if !ok {
		return nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return rec, s.hashes[email.Value()], nil
}

func (s *authStoreStub) FindByID(_ context.Context, id uuid.UUID) (*queries.UserRecord, error) {
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

// passthroughUoW executes transaction bodies directly; the user repo records
// what the usecase writes and registers new accounts with the stub store.
type passthroughUoW struct {
	users *recordingUserRepo
}

func (u *passthroughUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, authTx{users: u.users})
}

func (u *passthroughUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *passthroughUoW) CommandReads() shared.CommandReads { return nil }

type authTx struct {
	users *recordingUserRepo
}

func (t authTx) Products() shared.ProductRepository        { return nil }
func (t authTx) Sales() shared.SaleRepository              { return nil }
func (t authTx) Users() shared.UserRepository              { return t.users }
func (t authTx) Reviews() shared.ReviewRepository          { return nil }
func (t authTx) Events() shared.EventRepository            { return nil }
func (t authTx) Blogs() shared.BlogRepository              { return nil }
func (t authTx) Idempotency() shared.IdempotencyRepository { return nil }
func (t authTx) Reads() shared.CommandReads                { return nil }
func (t authTx) DB() db.DBTX                               { return nil }

var _ shared.Tx = authTx{}

type recordingUserRepo struct {
	store      *authStoreStub
	lastLogins []uuid.UUID
	createErr  error
}

func (r *recordingUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.store.records[u.Email().Value()] = &queries.UserRecord{
		ID:             u.ID(),
		Nombre:         u.Nombre(),
		Email:          u.Email().Value(),
		Role:           u.Role().String(),
		DescuentoDuoc:  u.DescuentoDuoc(),
		CodigoReferido: u.CodigoReferido(),
		IsActive:       u.IsActive(),
	}
	return u.ID(), nil
}

func (r *recordingUserRepo) Update(context.Context, db.DBTX, *user.User) error { return nil }
func (r *recordingUserRepo) Delete(context.Context, db.DBTX, uuid.UUID) error  { return nil }

func (r *recordingUserRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, userID uuid.UUID) error {
	r.lastLogins = append(r.lastLogins, userID)
	return nil
}

func (r *recordingUserRepo) AddPoints(context.Context, db.DBTX, uuid.UUID, int) error { return nil }

func newAuthFixture(t *testing.T) (*authStoreStub, *recordingUserRepo, AuthUseCase) {
	t.Helper()
	store := newAuthStoreStub()
	repo := &recordingUserRepo{store: store}
	svc := jwt.NewService("test-secret", time.Hour)
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return store, repo, NewAuthUseCase(store, &passthroughUoW{users: repo}, svc, clk)
}

func credentials(t *testing.T, email, pass string) user.Credentials {
	t.Helper()
	e, err := user.NewEmail(email)
	require.NoError(t, err)
	p, err := user.NewPassword(pass)
	require.NoError(t, err)
	return user.NewCredentials(e, p)
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		store, repo, uc := newAuthFixture(t)
		rec := store.add(t, "ana@gmail.com", "secret123", true)

		result, err := uc.Login(context.Background(), credentials(t, "ana@gmail.com", "secret123"))
		require.NoError(t, err)

		assert.NotEmpty(t, result.Token)
		assert.Equal(t, rec.ID, result.User.ID)
		assert.Equal(t, []uuid.UUID{rec.ID}, repo.lastLogins)

		claims, err := uc.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, rec.ID, claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		store, _, uc := newAuthFixture(t)
		store.add(t, "ana@gmail.com", "secret123", true)

		_, err := uc.Login(context.Background(), credentials(t, "ana@gmail.com", "wrong-pass"))
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, uc := newAuthFixture(t)

		_, err := uc.Login(context.Background(), credentials(t, "nobody@gmail.com", "secret123"))
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		store, _, uc := newAuthFixture(t)
		store.add(t, "ana@gmail.com", "secret123", false)

		_, err := uc.Login(context.Background(), credentials(t, "ana@gmail.com", "secret123"))
		assert.ErrorIs(t, err, ErrUserInactive)
	})
}

func TestAuthUseCase_Register(t *testing.T) {
	birth := time.Date(2000, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("creates a cliente and logs in", func(t *testing.T) {
		_, _, uc := newAuthFixture(t)

		result, err := uc.Register(context.Background(), RegisterRequest{
			Nombre:          "Ana",
			Email:           "alumna@duocuc.cl",
			Password:        "secret123",
			FechaNacimiento: birth,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "cliente", result.User.Role)
		assert.True(t, result.User.DescuentoDuoc)

		claims, err := uc.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.True(t, claims.DescuentoDuoc)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, repo, uc := newAuthFixture(t)
		repo.createErr = infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)

		_, err := uc.Register(context.Background(), RegisterRequest{
			Nombre:          "Ana",
			Email:           "ana@gmail.com",
			Password:        "secret123",
			FechaNacimiento: birth,
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("weak password", func(t *testing.T) {
		_, _, uc := newAuthFixture(t)

		_, err := uc.Register(context.Background(), RegisterRequest{
			Nombre:          "Ana",
			Email:           "ana@gmail.com",
			Password:        "short",
			FechaNacimiento: birth,
		})
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})

	t.Run("underage", func(t *testing.T) {
		_, _, uc := newAuthFixture(t)

		_, err := uc.Register(context.Background(), RegisterRequest{
			Nombre:          "Ana",
			Email:           "ana@gmail.com",
			Password:        "secret123",
			FechaNacimiento: time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, user.ErrUnderage)
	})
}
