package commands

import (
	"context"
	"time"

	"levelup-store/internal/domain/cart"
	"levelup-store/internal/domain/catalog"
	"levelup-store/internal/domain/content"
	"levelup-store/internal/domain/review"
	"levelup-store/internal/domain/sale"
	"levelup-store/internal/domain/user"
	"levelup-store/internal/infra"
	"levelup-store/internal/infra/db"
	"levelup-store/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW runs transaction bodies directly against in-memory fakes.
type fakeUoW struct {
	tx    *fakeTx
	reads *fakeReads
}

func newFakeUoW() *fakeUoW {
	reads := &fakeReads{
		products: map[uuid.UUID]shared.ProductSnapshot{},
		users:    map[uuid.UUID]shared.UserSnapshot{},
		idem:     map[uuid.UUID]*shared.IdempotencyRecord{},
	}
	return &fakeUoW{
		tx: &fakeTx{
			reads:    reads,
			products: &fakeProductRepo{decrements: map[uuid.UUID]int{}},
			sales:    &fakeSaleRepo{},
			users:    &fakeUserRepo{points: map[uuid.UUID]int{}},
			idem:     &fakeIdemRepo{reads: reads},
		},
		reads: reads,
	}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.reads
}

type fakeTx struct {
	reads    *fakeReads
	products *fakeProductRepo
	sales    *fakeSaleRepo
	users    *fakeUserRepo
	idem     *fakeIdemRepo
}

func (t *fakeTx) Products() shared.ProductRepository        { return t.products }
func (t *fakeTx) Sales() shared.SaleRepository              { return t.sales }
func (t *fakeTx) Users() shared.UserRepository              { return t.users }
func (t *fakeTx) Reviews() shared.ReviewRepository          { return nopRepo{} }
func (t *fakeTx) Events() shared.EventRepository            { return nopEventRepo{} }
func (t *fakeTx) Blogs() shared.BlogRepository              { return nopBlogRepo{} }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository { return t.idem }
func (t *fakeTx) Reads() shared.CommandReads                { return t.reads }
func (t *fakeTx) DB() db.DBTX                               { return nil }

type fakeReads struct {
	products map[uuid.UUID]shared.ProductSnapshot
	users    map[uuid.UUID]shared.UserSnapshot
	idem     map[uuid.UUID]*shared.IdempotencyRecord
}

func (r *fakeReads) ProductByID(_ context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	snap, ok := r.products[id]
	if !ok {
		return nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeReads) ProductsForUpdate(_ context.Context, ids []uuid.UUID) ([]shared.ProductSnapshot, error) {
	out := make([]shared.ProductSnapshot, 0, len(ids))
	for _, id := range ids {
		if snap, ok := r.products[id]; ok {
			out = append(out, snap)
		}
	}
	return out, nil
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	snap, ok := r.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeReads) ReviewByID(_ context.Context, _ uuid.UUID) (*shared.ReviewSnapshot, error) {
	return nil, infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
}

func (r *fakeReads) IdempotencyByKey(_ context.Context, key, _ uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.idem[key]
	if !ok {
		return nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return rec, nil
}

type fakeProductRepo struct {
	decrements map[uuid.UUID]int
	decErr     error
}

func (p *fakeProductRepo) Create(context.Context, db.DBTX, *catalog.Product) (uuid.UUID, error) {
	return uuid.New(), nil
}
func (p *fakeProductRepo) Update(context.Context, db.DBTX, *catalog.Product) error { return nil }
func (p *fakeProductRepo) Delete(context.Context, db.DBTX, uuid.UUID) error        { return nil }

func (p *fakeProductRepo) DecrementStock(_ context.Context, _ db.DBTX, id uuid.UUID, by int) error {
	if p.decErr != nil {
		return p.decErr
	}
	p.decrements[id] += by
	return nil
}

type fakeSaleRepo struct {
	created []*sale.Sale
}

func (s *fakeSaleRepo) Create(_ context.Context, _ db.DBTX, agg *sale.Sale) (uuid.UUID, error) {
	s.created = append(s.created, agg)
	return agg.ID(), nil
}

type fakeUserRepo struct {
	points map[uuid.UUID]int
}

func (u *fakeUserRepo) Create(context.Context, db.DBTX, *user.User) (uuid.UUID, error) {
	return uuid.New(), nil
}
func (u *fakeUserRepo) Update(context.Context, db.DBTX, *user.User) error         { return nil }
func (u *fakeUserRepo) Delete(context.Context, db.DBTX, uuid.UUID) error          { return nil }
func (u *fakeUserRepo) UpdateLastLogin(context.Context, db.DBTX, uuid.UUID) error { return nil }

func (u *fakeUserRepo) AddPoints(_ context.Context, _ db.DBTX, userID uuid.UUID, points int) error {
	u.points[userID] += points
	return nil
}

type fakeIdemRepo struct {
	reads     *fakeReads
	completed []uuid.UUID
}

// TryInsert mirrors the unique-key behavior of the real table.
func (i *fakeIdemRepo) TryInsert(_ context.Context, _ db.DBTX, key, userID uuid.UUID, _ string, expiresAt time.Time) error {
	if _, exists := i.reads.idem[key]; exists {
		return infra.WrapRepoErr("duplicate idempotency key", nil, infra.KindDuplicateKey)
	}
	i.reads.idem[key] = &shared.IdempotencyRecord{
		Key:       key,
		UserID:    userID,
		Status:    "pending",
		ExpiresAt: expiresAt,
	}
	return nil
}

func (i *fakeIdemRepo) MarkCompleted(_ context.Context, _ db.DBTX, key, _ uuid.UUID, saleID uuid.UUID) error {
	if rec, ok := i.reads.idem[key]; ok {
		rec.Status = "completed"
		rec.ResultSaleID = &saleID
	}
	i.completed = append(i.completed, key)
	return nil
}

type nopRepo struct{}

func (nopRepo) Create(context.Context, db.DBTX, *review.Review) (uuid.UUID, error) {
	return uuid.Nil, nil
}
func (nopRepo) Delete(context.Context, db.DBTX, uuid.UUID) error { return nil }

type nopEventRepo = nopContentRepo[content.Event]
type nopBlogRepo = nopContentRepo[content.Blog]

type nopContentRepo[T any] struct{}

func (nopContentRepo[T]) Create(context.Context, db.DBTX, *T) (uuid.UUID, error) {
	return uuid.Nil, nil
}
func (nopContentRepo[T]) Update(context.Context, db.DBTX, *T) error { return nil }
func (nopContentRepo[T]) Delete(context.Context, db.DBTX, uuid.UUID) error {
	return nil
}

type fakeCatalogCache struct {
	invalidations int
	items         []catalog.Summary
}

func (c *fakeCatalogCache) Get(context.Context) ([]catalog.Summary, error) {
	if c.items == nil {
		return nil, shared.ErrCacheMiss
	}
	return c.items, nil
}

func (c *fakeCatalogCache) Set(_ context.Context, items []catalog.Summary) error {
	c.items = items
	return nil
}

func (c *fakeCatalogCache) Invalidate(context.Context) error {
	c.invalidations++
	c.items = nil
	return nil
}

type fakeCartStore struct {
	carts map[uuid.UUID]*cart.Cart
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: map[uuid.UUID]*cart.Cart{}}
}

func (s *fakeCartStore) Get(_ context.Context, userID uuid.UUID) (*cart.Cart, error) {
	c, ok := s.carts[userID]
	if !ok {
		return nil, shared.ErrCacheMiss
	}
	return c, nil
}

func (s *fakeCartStore) Save(_ context.Context, c *cart.Cart) error {
	s.carts[c.UserID] = c
	return nil
}

func (s *fakeCartStore) Delete(_ context.Context, userID uuid.UUID) error {
	delete(s.carts, userID)
	return nil
}
