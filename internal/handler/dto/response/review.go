package response

import "levelup-store/internal/usecase/queries"

type ReviewResponse struct {
	ID           string `json:"id"`
	ProductoID   string `json:"productoId"`
	Producto     string `json:"producto"`
	UsuarioID    string `json:"usuarioId"`
	Usuario      string `json:"usuario"`
	Calificacion int    `json:"calificacion"`
	Texto        string `json:"texto"`
	Fecha        string `json:"fecha"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:           v.ID.String(),
		ProductoID:   v.ProductID.String(),
		Producto:     v.ProductNombre,
		UsuarioID:    v.UserID.String(),
		Usuario:      v.UsuarioNombre,
		Calificacion: v.Calificacion,
		Texto:        v.Texto,
		Fecha:        v.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func FromReviewList(items []queries.ReviewView) []*ReviewResponse {
	res := make([]*ReviewResponse, len(items))
	for i := range items {
		res[i] = FromReviewView(&items[i])
	}
	return res
}
