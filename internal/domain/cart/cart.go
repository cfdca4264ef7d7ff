package cart

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the per-user ledger of selected products. It is session state,
// serialized to the cart store as JSON, so fields stay exported. At most one
// line exists per product; insertion order is preserved.
type Cart struct {
	UserID    uuid.UUID `json:"user_id"`
	Items     []Line    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Line references a product snapshot taken when the item was added. Precio
// is re-read from the catalog at checkout; the copy here is for display.
type Line struct {
	ProductID uuid.UUID `json:"producto_id"`
	Nombre    string    `json:"nombre"`
	Precio    int64     `json:"precio"`
	Cantidad  int       `json:"cantidad"`
	AddedAt   time.Time `json:"added_at"`
}

// Item is what gets added to the ledger.
type Item struct {
	ProductID uuid.UUID
	Nombre    string
	Precio    int64
}

func New(userID uuid.UUID) *Cart {
	return &Cart{UserID: userID}
}

// Add puts one unit of the item in the cart. Incrementing an existing line
// past currentStock is a silent no-op, not an error: the stock cap is
// policy, and the caller's cart must stay usable. A new line is inserted
// with quantity 1 without re-checking stock; the storefront does not offer
// out-of-stock items.
func (c *Cart) Add(item Item, currentStock int, now time.Time) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			if c.Items[i].Cantidad >= currentStock {
				return
			}
			c.Items[i].Cantidad++
			c.UpdatedAt = now
			return
		}
	}

	c.Items = append(c.Items, Line{
		ProductID: item.ProductID,
		Nombre:    item.Nombre,
		Precio:    item.Precio,
		Cantidad:  1,
		AddedAt:   now,
	})
	c.UpdatedAt = now
}

// Remove drops the whole line for the product. Removing an absent product
// is a no-op, so the operation is idempotent.
func (c *Cart) Remove(productID uuid.UUID, now time.Time) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = now
			return
		}
	}
}

func (c *Cart) Clear(now time.Time) {
	c.Items = nil
	c.UpdatedAt = now
}

// Subtotal is the sum of quantity times unit price over all lines.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, line := range c.Items {
		total += int64(line.Cantidad) * line.Precio
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Len() int {
	return len(c.Items)
}
