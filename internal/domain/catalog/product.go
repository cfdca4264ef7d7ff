package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyNombre     = errors.New("product nombre is required")
	ErrEmptyCategoria  = errors.New("product categoria is required")
	ErrNegativePrecio  = errors.New("precio cannot be negative")
	ErrNegativeStock   = errors.New("stock cannot be negative")
	ErrProductInactive = errors.New("product is not available")
)

// Product is the catalog aggregate. Prices are whole currency units; the
// backend contract has no minor-unit convention.
type Product struct {
	id          uuid.UUID
	nombre      string
	descripcion string
	precio      int64
	stock       int
	categoria   string
	imagen      string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(nombre, descripcion string, precio int64, stock int, categoria, imagen string) (*Product, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, ErrEmptyNombre
	}
	categoria = strings.TrimSpace(categoria)
	if categoria == "" {
		return nil, ErrEmptyCategoria
	}
	if precio < 0 {
		return nil, ErrNegativePrecio
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}

	return &Product{
		id:          uuid.New(),
		nombre:      nombre,
		descripcion: strings.TrimSpace(descripcion),
		precio:      precio,
		stock:       stock,
		categoria:   categoria,
		imagen:      imagen,
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	nombre, descripcion string,
	precio int64,
	stock int,
	categoria, imagen string,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:          id,
		nombre:      nombre,
		descripcion: descripcion,
		precio:      precio,
		stock:       stock,
		categoria:   categoria,
		imagen:      imagen,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Product) ID() uuid.UUID        { return p.id }
func (p *Product) Nombre() string       { return p.nombre }
func (p *Product) Descripcion() string  { return p.descripcion }
func (p *Product) Precio() int64        { return p.precio }
func (p *Product) Stock() int           { return p.stock }
func (p *Product) Categoria() string    { return p.categoria }
func (p *Product) Imagen() string       { return p.imagen }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }
