package response

import "levelup-store/internal/usecase/queries"

type EventResponse struct {
	ID          string `json:"id"`
	Titulo      string `json:"titulo"`
	Puntos      int    `json:"puntos"`
	Ubicacion   string `json:"ubicacion"`
	Fecha       string `json:"fecha"`
	Hora        string `json:"hora"`
	Descripcion string `json:"descripcion"`
}

func FromEventView(v *queries.EventView) *EventResponse {
	return &EventResponse{
		ID:          v.ID.String(),
		Titulo:      v.Titulo,
		Puntos:      v.Puntos,
		Ubicacion:   v.Ubicacion,
		Fecha:       v.Fecha,
		Hora:        v.Hora,
		Descripcion: v.Descripcion,
	}
}

func FromEventList(items []queries.EventView) []*EventResponse {
	res := make([]*EventResponse, len(items))
	for i := range items {
		res[i] = FromEventView(&items[i])
	}
	return res
}

type BlogResponse struct {
	ID          string `json:"id"`
	Titulo      string `json:"titulo"`
	Categoria   string `json:"categoria"`
	Descripcion string `json:"descripcion"`
	Fecha       string `json:"fecha"`
	Icono       string `json:"icono"`
}

func FromBlogView(v *queries.BlogView) *BlogResponse {
	return &BlogResponse{
		ID:          v.ID.String(),
		Titulo:      v.Titulo,
		Categoria:   v.Categoria,
		Descripcion: v.Descripcion,
		Fecha:       v.Fecha,
		Icono:       v.Icono,
	}
}

func FromBlogList(items []queries.BlogView) []*BlogResponse {
	res := make([]*BlogResponse, len(items))
	for i := range items {
		res[i] = FromBlogView(&items[i])
	}
	return res
}
