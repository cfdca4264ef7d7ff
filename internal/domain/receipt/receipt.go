package receipt

import "math"

// Chilean IVA, included in every displayed price.
const taxRate = 0.19

// Breakdown is the display-ready decomposition of a finalized sale total.
// Total already has any discount netted in; the projector only derives the
// other figures from it.
type Breakdown struct {
	Subtotal  int64 // before discount
	Descuento int64
	Total     int64
	Neto      int64 // tax-exclusive amount
	IVA       int64
}

// Project back-calculates the breakdown. Neto is round-half-up of
// total/1.19 and IVA is defined as the remainder, never rounded
// independently, so Neto+IVA == Total holds exactly for every input.
func Project(total, descuentoAplicado int64) Breakdown {
	if descuentoAplicado < 0 {
		descuentoAplicado = 0
	}

	neto := int64(math.Round(float64(total) / (1 + taxRate)))
	return Breakdown{
		Subtotal:  total + descuentoAplicado,
		Descuento: descuentoAplicado,
		Total:     total,
		Neto:      neto,
		IVA:       total - neto,
	}
}
