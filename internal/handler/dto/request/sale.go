package request

import (
	"levelup-store/internal/usecase/commands"

	"github.com/google/uuid"
)

type SaleLineRequest struct {
	ProductoID uuid.UUID `json:"productoId" binding:"required"`
	Cantidad   int       `json:"cantidad" binding:"required,min=1"`
}

type CreateSaleRequest struct {
	Detalles   []SaleLineRequest `json:"detalles" binding:"required,min=1,dive"`
	MetodoPago string            `json:"metodoPago" binding:"required"`
}

func (r *CreateSaleRequest) ToCommand(idempotencyKey *uuid.UUID) commands.CreateSaleRequest {
	detalles := make([]commands.SaleLine, len(r.Detalles))
	for i, d := range r.Detalles {
		detalles[i] = commands.SaleLine{ProductID: d.ProductoID, Cantidad: d.Cantidad}
	}
	return commands.CreateSaleRequest{
		Detalles:       detalles,
		MetodoPago:     r.MetodoPago,
		IdempotencyKey: idempotencyKey,
	}
}

type CartCheckoutRequest struct {
	MetodoPago string `json:"metodoPago" binding:"required"`
}

type AddCartItemRequest struct {
	ProductoID uuid.UUID `json:"productoId" binding:"required"`
}
