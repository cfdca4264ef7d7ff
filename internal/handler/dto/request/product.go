package request

import "levelup-store/internal/usecase/commands"

type CreateProductRequest struct {
	Nombre      string `json:"nombre" binding:"required"`
	Descripcion string `json:"descripcion"`
	Precio      int64  `json:"precio" binding:"required,min=0"`
	Stock       int    `json:"stock" binding:"min=0"`
	Categoria   string `json:"categoria" binding:"required"`
	Imagen      string `json:"imagen"`
}

func (r *CreateProductRequest) ToCommand() commands.CreateProductRequest {
	return commands.CreateProductRequest{
		Nombre:      r.Nombre,
		Descripcion: r.Descripcion,
		Precio:      r.Precio,
		Stock:       r.Stock,
		Categoria:   r.Categoria,
		Imagen:      r.Imagen,
	}
}

type UpdateProductRequest struct {
	Nombre      *string `json:"nombre" binding:"omitempty"`
	Descripcion *string `json:"descripcion"`
	Precio      *int64  `json:"precio" binding:"omitempty,min=0"`
	Stock       *int    `json:"stock" binding:"omitempty,min=0"`
	Categoria   *string `json:"categoria"`
	Imagen      *string `json:"imagen"`
}

func (r *UpdateProductRequest) ToCommand() commands.UpdateProductRequest {
	return commands.UpdateProductRequest{
		Nombre:      r.Nombre,
		Descripcion: r.Descripcion,
		Precio:      r.Precio,
		Stock:       r.Stock,
		Categoria:   r.Categoria,
		Imagen:      r.Imagen,
	}
}
