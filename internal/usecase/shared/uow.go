package shared

import (
	"context"
	"time"

	"levelup-store/internal/domain/catalog"
	"levelup-store/internal/domain/content"
	"levelup-store/internal/domain/review"
	"levelup-store/internal/domain/sale"
	"levelup-store/internal/domain/user"
	"levelup-store/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Products() ProductRepository
	Sales() SaleRepository
	Users() UserRepository
	Reviews() ReviewRepository
	Events() EventRepository
	Blogs() BlogRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	// ProductsForUpdate locks the product rows for the duration of the
	// enclosing transaction, so stock checks and decrements are atomic.
	ProductsForUpdate(ctx context.Context, ids []uuid.UUID) ([]ProductSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

// Write-side snapshots prevent dependency on read-side query types
type ProductSnapshot struct {
	ID          uuid.UUID
	Nombre      string
	Descripcion string
	Precio      int64
	Stock       int
	Categoria   string
	Imagen      string
	CreatedAt   time.Time
}

type UserSnapshot struct {
	ID              uuid.UUID
	Nombre          string
	Email           string
	PasswordHash    string
	Role            string
	FechaNacimiento time.Time
	PuntosLevelUp   int
	CodigoReferido  string
	DescuentoDuoc   bool
	IsActive        bool
	CreatedAt       time.Time
}

type ReviewSnapshot struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ProductID    uuid.UUID
	Calificacion int
	Texto        string
}

type IdempotencyRecord struct {
	Key          uuid.UUID
	UserID       uuid.UUID
	Status       string
	ResultSaleID *uuid.UUID
	ExpiresAt    time.Time
}

type ProductRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *catalog.Product) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, p *catalog.Product) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	DecrementStock(ctx context.Context, tx db.DBTX, id uuid.UUID, by int) error
}

type SaleRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *sale.Sale) (uuid.UUID, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, u *user.User) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
	AddPoints(ctx context.Context, tx db.DBTX, userID uuid.UUID, points int) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
	Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error
}

type EventRepository interface {
	Create(ctx context.Context, tx db.DBTX, ev *content.Event) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, ev *content.Event) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type BlogRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *content.Blog) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, b *content.Blog) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) error
	MarkCompleted(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, saleID uuid.UUID) error
}
