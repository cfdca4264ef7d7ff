package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReviewView joins the author and product names for listing.
type ReviewView struct {
	ID             uuid.UUID
	ProductID      uuid.UUID
	ProductNombre  string
	UserID         uuid.UUID
	UsuarioNombre  string
	Calificacion   int
	Texto          string
	CreatedAt      time.Time
}

type ReviewReadStore interface {
	ListAll(ctx context.Context) ([]ReviewView, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]ReviewView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
}

type ReviewQueries interface {
	List(ctx context.Context) ([]ReviewView, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]ReviewView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) List(ctx context.Context) ([]ReviewView, error) {
	return q.store.ListAll(ctx)
}

func (q *reviewQueriesImpl) ListByProduct(ctx context.Context, productID uuid.UUID) ([]ReviewView, error) {
	return q.store.ListByProduct(ctx, productID)
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, ErrReviewNotFound)
	}
	return view, nil
}
