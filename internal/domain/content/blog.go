package content

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Blog is a storefront news/guide post.
type Blog struct {
	ID          uuid.UUID
	Titulo      string
	Categoria   string
	Descripcion string
	Fecha       string
	Icono       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewBlog(titulo, categoria, descripcion, fecha, icono string) (*Blog, error) {
	titulo = strings.TrimSpace(titulo)
	if titulo == "" {
		return nil, ErrEmptyTitulo
	}
	if categoria == "" {
		categoria = "Guías"
	}
	if icono == "" {
		icono = "🎮"
	}

	return &Blog{
		ID:          uuid.New(),
		Titulo:      titulo,
		Categoria:   categoria,
		Descripcion: strings.TrimSpace(descripcion),
		Fecha:       fecha,
		Icono:       icono,
	}, nil
}
