package request

import (
	"levelup-store/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	ProductoID   uuid.UUID `json:"productoId" binding:"required"`
	Calificacion int       `json:"calificacion" binding:"required,min=1,max=5"`
	Texto        string    `json:"texto" binding:"required,max=1000"`
}

func (r *CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		ProductID:    r.ProductoID,
		Calificacion: r.Calificacion,
		Texto:        r.Texto,
	}
}
