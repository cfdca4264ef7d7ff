package queries

import (
	"context"
	"testing"
	"time"

	"levelup-store/internal/infra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSaleStore struct {
	all    []SaleListItem
	byUser map[uuid.UUID][]SaleListItem
	sales  map[uuid.UUID]*SaleRecord
}

func (s *stubSaleStore) ListAll(context.Context) ([]SaleListItem, error) {
	return s.all, nil
}

func (s *stubSaleStore) ListByUser(_ context.Context, userID uuid.UUID) ([]SaleListItem, error) {
	return s.byUser[userID], nil
}

func (s *stubSaleStore) FindByID(_ context.Context, id uuid.UUID) (*SaleRecord, error) {
	rec, ok := s.sales[id]
	if !ok {
		return nil, infra.WrapRepoErr("sale not found", nil, infra.KindNotFound)
	}
	return rec, nil
}

func TestSaleQueries_List(t *testing.T) {
	owner := uuid.New()
	store := &stubSaleStore{
		all:    []SaleListItem{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}},
		byUser: map[uuid.UUID][]SaleListItem{owner: {{ID: uuid.New()}}},
	}
	q := NewSaleQueries(store)

	t.Run("admin sees everything", func(t *testing.T) {
		got, err := q.List(context.Background(), uuid.New(), "admin")
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("cliente sees only their own", func(t *testing.T) {
		got, err := q.List(context.Background(), owner, "cliente")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestSaleQueries_GetByID(t *testing.T) {
	owner := uuid.New()
	saleID := uuid.New()
	store := &stubSaleStore{
		sales: map[uuid.UUID]*SaleRecord{
			saleID: {
				ID:                saleID,
				UserID:            owner,
				Fecha:             time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
				Total:             16000,
				DescuentoAplicado: 4000,
				MetodoPago:        "TARJETA",
			},
		},
	}
	q := NewSaleQueries(store)

	t.Run("projects the receipt breakdown", func(t *testing.T) {
		view, err := q.GetByID(context.Background(), saleID, owner, "cliente")
		require.NoError(t, err)

		assert.Equal(t, int64(20000), view.Breakdown.Subtotal)
		assert.Equal(t, int64(16000), view.Breakdown.Total)
		assert.Equal(t, view.Breakdown.Total, view.Breakdown.Neto+view.Breakdown.IVA)
	})

	t.Run("admin can read any sale", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), saleID, uuid.New(), "admin")
		assert.NoError(t, err)
	})

	t.Run("other cliente is denied", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), saleID, uuid.New(), "cliente")
		assert.ErrorIs(t, err, ErrSaleAccess)
	})

	t.Run("missing sale", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), uuid.New(), owner, "cliente")
		assert.ErrorIs(t, err, ErrSaleNotFound)
	})
}

func TestUserQueries_GetProfile(t *testing.T) {
	owner := uuid.New()
	store := &stubUserStore{
		users: map[uuid.UUID]*UserRecord{
			owner: {ID: owner, Nombre: "Ana", PuntosLevelUp: 1500},
		},
	}
	q := NewUserQueries(store)

	t.Run("resolves loyalty progress", func(t *testing.T) {
		view, err := q.GetProfile(context.Background(), owner, owner, "cliente")
		require.NoError(t, err)

		assert.Equal(t, "Pro Gamer", view.Nivel.Tier.Titulo)
		assert.Equal(t, 500, view.Nivel.PointsToNext)
	})

	t.Run("other cliente is denied", func(t *testing.T) {
		_, err := q.GetProfile(context.Background(), owner, uuid.New(), "cliente")
		assert.ErrorIs(t, err, ErrUserAccess)
	})

	t.Run("admin can read anyone", func(t *testing.T) {
		_, err := q.GetProfile(context.Background(), owner, uuid.New(), "admin")
		assert.NoError(t, err)
	})
}

type stubUserStore struct {
	users map[uuid.UUID]*UserRecord
}

func (s *stubUserStore) List(context.Context) ([]UserRecord, error) {
	out := make([]UserRecord, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *stubUserStore) FindByID(_ context.Context, id uuid.UUID) (*UserRecord, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u, nil
}
