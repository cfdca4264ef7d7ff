package sale

import (
	"testing"
	"time"

	"levelup-store/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleServices(t time.Time) *Services {
	return &Services{Clock: clock.NewMockClock(t)}
}

func TestNewSale(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	lines := []LineInput{
		{Product: ProductSpec{ID: uuid.New(), Nombre: "Catan", Precio: 29990, Stock: 10}, Cantidad: 2},
		{Product: ProductSpec{ID: uuid.New(), Nombre: "Mouse", Precio: 49990, Stock: 5}, Cantidad: 1},
	}

	t.Run("prices lines and accrues points", func(t *testing.T) {
		s, err := NewSale(saleServices(now), userID, lines, PaymentCard, false)
		require.NoError(t, err)

		assert.Equal(t, int64(109970), s.Subtotal())
		assert.Equal(t, int64(0), s.DescuentoAplicado())
		assert.Equal(t, int64(109970), s.Total())
		assert.Equal(t, 109, s.PuntosOtorgados())
		assert.Equal(t, now, s.Fecha())
		assert.Equal(t, PaymentCard, s.MetodoPago())
		require.Len(t, s.Detalles(), 2)
		assert.Equal(t, int64(59980), s.Detalles()[0].LineTotal())
	})

	t.Run("eligible accounts get the flat discount", func(t *testing.T) {
		single := []LineInput{
			{Product: ProductSpec{ID: uuid.New(), Nombre: "Teclado", Precio: 20000, Stock: 3}, Cantidad: 1},
		}

		s, err := NewSale(saleServices(now), userID, single, PaymentCash, true)
		require.NoError(t, err)

		assert.Equal(t, int64(20000), s.Subtotal())
		assert.Equal(t, int64(4000), s.DescuentoAplicado())
		assert.Equal(t, int64(16000), s.Total())
		assert.Equal(t, 16, s.PuntosOtorgados())
	})

	t.Run("empty lines rejected", func(t *testing.T) {
		_, err := NewSale(saleServices(now), userID, nil, PaymentCash, false)
		assert.ErrorIs(t, err, ErrEmptyDetalles)
	})

	t.Run("invalid payment method rejected", func(t *testing.T) {
		_, err := NewSale(saleServices(now), userID, lines, PaymentMethod("CHEQUE"), false)
		assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
	})

	t.Run("quantity above stock rejected", func(t *testing.T) {
		over := []LineInput{
			{Product: ProductSpec{ID: uuid.New(), Nombre: "Catan", Precio: 29990, Stock: 1}, Cantidad: 2},
		}

		_, err := NewSale(saleServices(now), userID, over, PaymentCash, false)
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("non positive quantity rejected", func(t *testing.T) {
		zero := []LineInput{
			{Product: ProductSpec{ID: uuid.New(), Nombre: "Catan", Precio: 29990, Stock: 5}, Cantidad: 0},
		}

		_, err := NewSale(saleServices(now), userID, zero, PaymentCash, false)
		assert.ErrorIs(t, err, ErrInvalidCantidad)
	})
}

func TestNewPaymentMethod(t *testing.T) {
	for _, valid := range []string{"EFECTIVO", "TARJETA"} {
		m, err := NewPaymentMethod(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, m.String())
	}

	_, err := NewPaymentMethod("efectivo")
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}
