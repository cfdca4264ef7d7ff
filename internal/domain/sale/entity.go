package sale

import (
	"errors"
	"time"

	"levelup-store/internal/domain/loyalty"
	"levelup-store/internal/domain/pricing"
	"levelup-store/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrEmptyDetalles        = errors.New("sale requires at least one line")
	ErrInvalidCantidad      = errors.New("cantidad must be positive")
	ErrInsufficientStock    = errors.New("cantidad exceeds available stock")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// ProductSpec is the write-side snapshot of a product at sale time.
type ProductSpec struct {
	ID     uuid.UUID
	Nombre string
	Precio int64
	Stock  int
}

// LineInput pairs a product snapshot with the requested quantity.
type LineInput struct {
	Product  ProductSpec
	Cantidad int
}

type Services struct {
	Clock clock.Clock
}

// Detail is a frozen sale line: the product state at the moment of
// purchase, immune to later catalog edits.
type Detail struct {
	productID      uuid.UUID
	nombre         string
	precioUnitario int64
	cantidad       int
}

func (d Detail) ProductID() uuid.UUID  { return d.productID }
func (d Detail) Nombre() string        { return d.nombre }
func (d Detail) PrecioUnitario() int64 { return d.precioUnitario }
func (d Detail) Cantidad() int         { return d.cantidad }
func (d Detail) LineTotal() int64      { return int64(d.cantidad) * d.precioUnitario }

// Sale is the boleta aggregate: immutable once created.
type Sale struct {
	id                uuid.UUID
	userID            uuid.UUID
	fecha             time.Time
	detalles          []Detail
	subtotal          int64
	descuentoAplicado int64
	total             int64
	metodoPago        PaymentMethod
	puntosOtorgados   int
}

// NewSale prices the requested lines and freezes them. Stock is validated
// against the snapshots the caller read inside its transaction; pricing and
// point accrual happen here so every checkout path agrees on the numbers.
func NewSale(
	services *Services,
	userID uuid.UUID,
	lines []LineInput,
	metodoPago PaymentMethod,
	descuentoEligible bool,
) (*Sale, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyDetalles
	}
	if !metodoPago.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	detalles := make([]Detail, 0, len(lines))
	var subtotal int64
	for _, in := range lines {
		if in.Cantidad < 1 {
			return nil, ErrInvalidCantidad
		}
		if in.Cantidad > in.Product.Stock {
			return nil, ErrInsufficientStock
		}
		d := Detail{
			productID:      in.Product.ID,
			nombre:         in.Product.Nombre,
			precioUnitario: in.Product.Precio,
			cantidad:       in.Cantidad,
		}
		detalles = append(detalles, d)
		subtotal += d.LineTotal()
	}

	quote := pricing.NewQuote(subtotal, descuentoEligible)

	return &Sale{
		id:                uuid.New(),
		userID:            userID,
		fecha:             services.Clock.Now(),
		detalles:          detalles,
		subtotal:          quote.Subtotal,
		descuentoAplicado: quote.Descuento,
		total:             quote.Total,
		metodoPago:        metodoPago,
		puntosOtorgados:   loyalty.PointsForPurchase(quote.Total),
	}, nil
}

func ReconstructSale(
	id, userID uuid.UUID,
	fecha time.Time,
	detalles []Detail,
	subtotal, descuentoAplicado, total int64,
	metodoPago PaymentMethod,
	puntosOtorgados int,
) *Sale {
	return &Sale{
		id:                id,
		userID:            userID,
		fecha:             fecha,
		detalles:          detalles,
		subtotal:          subtotal,
		descuentoAplicado: descuentoAplicado,
		total:             total,
		metodoPago:        metodoPago,
		puntosOtorgados:   puntosOtorgados,
	}
}

func ReconstructDetail(productID uuid.UUID, nombre string, precioUnitario int64, cantidad int) Detail {
	return Detail{
		productID:      productID,
		nombre:         nombre,
		precioUnitario: precioUnitario,
		cantidad:       cantidad,
	}
}

func (s *Sale) ID() uuid.UUID             { return s.id }
func (s *Sale) UserID() uuid.UUID         { return s.userID }
func (s *Sale) Fecha() time.Time          { return s.fecha }
func (s *Sale) Detalles() []Detail        { return s.detalles }
func (s *Sale) Subtotal() int64           { return s.subtotal }
func (s *Sale) DescuentoAplicado() int64  { return s.descuentoAplicado }
func (s *Sale) Total() int64              { return s.total }
func (s *Sale) MetodoPago() PaymentMethod { return s.metodoPago }
func (s *Sale) PuntosOtorgados() int      { return s.puntosOtorgados }
