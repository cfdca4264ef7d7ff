package response

import "levelup-store/internal/usecase/commands"

type CartLineResponse struct {
	ProductoID string `json:"productoId"`
	Nombre     string `json:"nombre"`
	Precio     int64  `json:"precio"`
	Cantidad   int    `json:"cantidad"`
}

type CartResponse struct {
	Items     []CartLineResponse `json:"items"`
	Subtotal  int64              `json:"subtotal"`
	Descuento int64              `json:"descuento"`
	Total     int64              `json:"total"`
}

func FromCartView(v *commands.CartView) *CartResponse {
	items := make([]CartLineResponse, len(v.Items))
	for i, line := range v.Items {
		items[i] = CartLineResponse{
			ProductoID: line.ProductID.String(),
			Nombre:     line.Nombre,
			Precio:     line.Precio,
			Cantidad:   line.Cantidad,
		}
	}
	return &CartResponse{
		Items:     items,
		Subtotal:  v.Quote.Subtotal,
		Descuento: v.Quote.Descuento,
		Total:     v.Quote.Total,
	}
}
