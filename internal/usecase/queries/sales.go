package queries

import (
	"context"
	"time"

	"levelup-store/internal/domain/receipt"

	"github.com/google/uuid"
)

type SaleLineView struct {
	ProductID      uuid.UUID `json:"productoId"`
	Nombre         string    `json:"nombre"`
	PrecioUnitario int64     `json:"precioUnitario"`
	Cantidad       int       `json:"cantidad"`
}

// SaleRecord is the persisted boleta as the read store returns it, before
// the receipt breakdown is projected on top.
type SaleRecord struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	UserNombre        string
	Fecha             time.Time
	Total             int64
	DescuentoAplicado int64
	MetodoPago        string
	Detalles          []SaleLineView
}

type SaleListItem struct {
	ID         uuid.UUID `json:"id"`
	Fecha      time.Time `json:"fecha"`
	UserNombre string    `json:"usuario"`
	MetodoPago string    `json:"metodoPago"`
	Total      int64     `json:"total"`
}

// SaleView is the receipt-ready projection of a sale.
type SaleView struct {
	SaleRecord
	Breakdown receipt.Breakdown
}

type SaleReadStore interface {
	ListAll(ctx context.Context) ([]SaleListItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]SaleListItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SaleRecord, error)
}

type SaleQueries interface {
	List(ctx context.Context, actorID uuid.UUID, actorRole string) ([]SaleListItem, error)
	GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole string) (*SaleView, error)
}

type saleQueriesImpl struct {
	store SaleReadStore
}

func NewSaleQueries(store SaleReadStore) SaleQueries {
	return &saleQueriesImpl{store: store}
}

// List returns every sale for admins and only the actor's own otherwise.
func (q *saleQueriesImpl) List(ctx context.Context, actorID uuid.UUID, actorRole string) ([]SaleListItem, error) {
	if actorRole == "admin" {
		return q.store.ListAll(ctx)
	}
	return q.store.ListByUser(ctx, actorID)
}

func (q *saleQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole string) (*SaleView, error) {
	rec, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, ErrSaleNotFound)
	}
	if actorRole != "admin" && rec.UserID != actorID {
		return nil, ErrSaleAccess
	}

	return &SaleView{
		SaleRecord: *rec,
		Breakdown:  receipt.Project(rec.Total, rec.DescuentoAplicado),
	}, nil
}
