package queries

import (
	"context"
	"time"

	"levelup-store/internal/domain/loyalty"

	"github.com/google/uuid"
)

// UserRecord is the persisted account as the read store returns it.
type UserRecord struct {
	ID              uuid.UUID
	Nombre          string
	Email           string
	Role            string
	FechaNacimiento time.Time
	PuntosLevelUp   int
	CodigoReferido  string
	DescuentoDuoc   bool
	IsActive        bool
	Compras         int // number of completed sales
	CreatedAt       time.Time
}

// ProfileView adds the resolved loyalty progress for the profile screen.
type ProfileView struct {
	UserRecord
	Nivel loyalty.Progress
}

type UserReadStore interface {
	List(ctx context.Context) ([]UserRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserRecord, error)
}

type UserQueries interface {
	List(ctx context.Context) ([]UserRecord, error)
	GetProfile(ctx context.Context, id, actorID uuid.UUID, actorRole string) (*ProfileView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) List(ctx context.Context) ([]UserRecord, error) {
	return q.store.List(ctx)
}

// GetProfile is self-readable; admins can read anyone.
func (q *userQueriesImpl) GetProfile(ctx context.Context, id, actorID uuid.UUID, actorRole string) (*ProfileView, error) {
	if actorRole != "admin" && id != actorID {
		return nil, ErrUserAccess
	}

	rec, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, ErrUserNotFound)
	}

	return &ProfileView{
		UserRecord: *rec,
		Nivel:      loyalty.Resolve(rec.PuntosLevelUp),
	}, nil
}
