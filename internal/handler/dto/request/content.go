package request

import "levelup-store/internal/usecase/commands"

type CreateEventRequest struct {
	Titulo      string `json:"titulo" binding:"required"`
	Puntos      int    `json:"puntos" binding:"min=0"`
	Ubicacion   string `json:"ubicacion"`
	Fecha       string `json:"fecha"`
	Hora        string `json:"hora"`
	Descripcion string `json:"descripcion"`
}

func (r *CreateEventRequest) ToCommand() commands.CreateEventRequest {
	return commands.CreateEventRequest{
		Titulo:      r.Titulo,
		Puntos:      r.Puntos,
		Ubicacion:   r.Ubicacion,
		Fecha:       r.Fecha,
		Hora:        r.Hora,
		Descripcion: r.Descripcion,
	}
}

type UpdateEventRequest struct {
	Titulo      *string `json:"titulo"`
	Puntos      *int    `json:"puntos" binding:"omitempty,min=0"`
	Ubicacion   *string `json:"ubicacion"`
	Fecha       *string `json:"fecha"`
	Hora        *string `json:"hora"`
	Descripcion *string `json:"descripcion"`
}

func (r *UpdateEventRequest) ToCommand() commands.UpdateEventRequest {
	return commands.UpdateEventRequest{
		Titulo:      r.Titulo,
		Puntos:      r.Puntos,
		Ubicacion:   r.Ubicacion,
		Fecha:       r.Fecha,
		Hora:        r.Hora,
		Descripcion: r.Descripcion,
	}
}

type CreateBlogRequest struct {
	Titulo      string `json:"titulo" binding:"required"`
	Categoria   string `json:"categoria"`
	Descripcion string `json:"descripcion"`
	Fecha       string `json:"fecha"`
	Icono       string `json:"icono"`
}

func (r *CreateBlogRequest) ToCommand() commands.CreateBlogRequest {
	return commands.CreateBlogRequest{
		Titulo:      r.Titulo,
		Categoria:   r.Categoria,
		Descripcion: r.Descripcion,
		Fecha:       r.Fecha,
		Icono:       r.Icono,
	}
}

type UpdateBlogRequest struct {
	Titulo      *string `json:"titulo"`
	Categoria   *string `json:"categoria"`
	Descripcion *string `json:"descripcion"`
	Fecha       *string `json:"fecha"`
	Icono       *string `json:"icono"`
}

func (r *UpdateBlogRequest) ToCommand() commands.UpdateBlogRequest {
	return commands.UpdateBlogRequest{
		Titulo:      r.Titulo,
		Categoria:   r.Categoria,
		Descripcion: r.Descripcion,
		Fecha:       r.Fecha,
		Icono:       r.Icono,
	}
}
