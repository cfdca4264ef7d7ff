package review

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCalificacion = errors.New("calificacion must be between 1 and 5")
	ErrEmptyTexto          = errors.New("texto cannot be empty")
	ErrTextoTooLong        = errors.New("texto exceeds maximum length")
)

const (
	MinCalificacion = 1
	MaxCalificacion = 5
	MaxTextoLength  = 1000
)

// Review is a product rating left by a customer.
type Review struct {
	id           uuid.UUID
	productID    uuid.UUID
	userID       uuid.UUID
	calificacion int
	texto        string
	fecha        time.Time
}

func NewReview(userID, productID uuid.UUID, calificacion int, texto string, now time.Time) (*Review, error) {
	if calificacion < MinCalificacion || calificacion > MaxCalificacion {
		return nil, ErrInvalidCalificacion
	}
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return nil, ErrEmptyTexto
	}
	if len(texto) > MaxTextoLength {
		return nil, ErrTextoTooLong
	}

	return &Review{
		id:           uuid.New(),
		productID:    productID,
		userID:       userID,
		calificacion: calificacion,
		texto:        texto,
		fecha:        now,
	}, nil
}

func ReconstructReview(id, userID, productID uuid.UUID, calificacion int, texto string, fecha time.Time) *Review {
	return &Review{
		id:           id,
		productID:    productID,
		userID:       userID,
		calificacion: calificacion,
		texto:        texto,
		fecha:        fecha,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) ProductID() uuid.UUID { return r.productID }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) Calificacion() int    { return r.calificacion }
func (r *Review) Texto() string        { return r.texto }
func (r *Review) Fecha() time.Time     { return r.fecha }
