package content

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitulo    = errors.New("titulo is required")
	ErrNegativePuntos = errors.New("puntos cannot be negative")
)

// Event is a community event that awards loyalty points to attendees.
type Event struct {
	ID          uuid.UUID
	Titulo      string
	Puntos      int
	Ubicacion   string
	Fecha       string // calendar date, YYYY-MM-DD
	Hora        string
	Descripcion string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewEvent(titulo string, puntos int, ubicacion, fecha, hora, descripcion string) (*Event, error) {
	titulo = strings.TrimSpace(titulo)
	if titulo == "" {
		return nil, ErrEmptyTitulo
	}
	if puntos < 0 {
		return nil, ErrNegativePuntos
	}

	return &Event{
		ID:          uuid.New(),
		Titulo:      titulo,
		Puntos:      puntos,
		Ubicacion:   strings.TrimSpace(ubicacion),
		Fecha:       fecha,
		Hora:        hora,
		Descripcion: strings.TrimSpace(descripcion),
	}, nil
}
