package response

import (
	"levelup-store/internal/usecase/commands"
	"levelup-store/internal/usecase/queries"
)

type SaleLineResponse struct {
	ProductoID     string `json:"productoId"`
	Nombre         string `json:"nombre"`
	PrecioUnitario int64  `json:"precioUnitario"`
	Cantidad       int    `json:"cantidad"`
}

// SaleResponse is the receipt shape: the stored figures plus the projected
// tax breakdown.
type SaleResponse struct {
	ID         string             `json:"id"`
	Fecha      string             `json:"fecha"`
	Usuario    string             `json:"usuario"`
	MetodoPago string             `json:"metodoPago"`
	Detalles   []SaleLineResponse `json:"detalles"`
	Subtotal   int64              `json:"subtotal"`
	Descuento  int64              `json:"descuento"`
	Total      int64              `json:"total"`
	Neto       int64              `json:"neto"`
	IVA        int64              `json:"iva"`
}

func FromSaleView(v *queries.SaleView) *SaleResponse {
	detalles := make([]SaleLineResponse, len(v.Detalles))
	for i, d := range v.Detalles {
		detalles[i] = SaleLineResponse{
			ProductoID:     d.ProductID.String(),
			Nombre:         d.Nombre,
			PrecioUnitario: d.PrecioUnitario,
			Cantidad:       d.Cantidad,
		}
	}
	return &SaleResponse{
		ID:         v.ID.String(),
		Fecha:      v.Fecha.Format("2006-01-02 15:04:05"),
		Usuario:    v.UserNombre,
		MetodoPago: v.MetodoPago,
		Detalles:   detalles,
		Subtotal:   v.Breakdown.Subtotal,
		Descuento:  v.Breakdown.Descuento,
		Total:      v.Breakdown.Total,
		Neto:       v.Breakdown.Neto,
		IVA:        v.Breakdown.IVA,
	}
}

type SaleListItemResponse struct {
	ID         string `json:"id"`
	Fecha      string `json:"fecha"`
	Usuario    string `json:"usuario"`
	MetodoPago string `json:"metodoPago"`
	Total      int64  `json:"total"`
}

func FromSaleList(items []queries.SaleListItem) []*SaleListItemResponse {
	res := make([]*SaleListItemResponse, len(items))
	for i, it := range items {
		res[i] = &SaleListItemResponse{
			ID:         it.ID.String(),
			Fecha:      it.Fecha.Format("2006-01-02 15:04:05"),
			Usuario:    it.UserNombre,
			MetodoPago: it.MetodoPago,
			Total:      it.Total,
		}
	}
	return res
}

type CheckoutResponse struct {
	ID              string `json:"id"`
	Total           int64  `json:"total"`
	PuntosOtorgados int    `json:"puntosOtorgados"`
	Replayed        bool   `json:"replayed,omitempty"`
}

func FromCheckoutResult(r *commands.CreateSaleResult) *CheckoutResponse {
	return &CheckoutResponse{
		ID:              r.SaleID.String(),
		Total:           r.Total,
		PuntosOtorgados: r.PuntosOtorgados,
		Replayed:        r.Replayed,
	}
}
