package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureProducts() []Summary {
	return []Summary{
		{ID: uuid.New(), Nombre: "Catan", Precio: 29990, Categoria: "Juegos de Mesa"},
		{ID: uuid.New(), Nombre: "Carcassonne", Precio: 24990, Categoria: "Juegos de Mesa"},
		{ID: uuid.New(), Nombre: "Mouse Gamer Logitech G502", Precio: 49990, Categoria: "Mouse"},
		{ID: uuid.New(), Nombre: "PC Gamer ASUS ROG Strix", Precio: 1299990, Categoria: "Computadores Gamers"},
	}
}

func names(products []Summary) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Nombre)
	}
	return out
}

func TestFilter(t *testing.T) {
	products := fixtureProducts()

	t.Run("zero criteria returns everything", func(t *testing.T) {
		got := Filter(products, Criteria{})
		assert.Len(t, got, len(products))
	})

	t.Run("search is case insensitive substring", func(t *testing.T) {
		got := Filter(products, Criteria{Search: "gamer"})
		assert.ElementsMatch(t, []string{"Mouse Gamer Logitech G502", "PC Gamer ASUS ROG Strix"}, names(got))
	})

	t.Run("categoria exact match", func(t *testing.T) {
		got := Filter(products, Criteria{Categoria: "Juegos de Mesa"})
		assert.ElementsMatch(t, []string{"Catan", "Carcassonne"}, names(got))
	})

	t.Run("categoria Todas matches everything", func(t *testing.T) {
		got := Filter(products, Criteria{Categoria: "Todas"})
		assert.Len(t, got, len(products))
	})

	t.Run("bounded price range is inclusive", func(t *testing.T) {
		got := Filter(products, Criteria{PriceRange: "24990-29990"})
		assert.ElementsMatch(t, []string{"Catan", "Carcassonne"}, names(got))
	})

	t.Run("open ended price range", func(t *testing.T) {
		got := Filter(products, Criteria{PriceRange: "100000+"})
		require.Len(t, got, 1)
		assert.Equal(t, "PC Gamer ASUS ROG Strix", got[0].Nombre)
	})

	t.Run("unparseable range is skipped", func(t *testing.T) {
		got := Filter(products, Criteria{PriceRange: "cheap"})
		assert.Len(t, got, len(products))
	})

	t.Run("criteria combine", func(t *testing.T) {
		got := Filter(products, Criteria{Search: "ca", Categoria: "Juegos de Mesa", PriceRange: "25000-30000"})
		require.Len(t, got, 1)
		assert.Equal(t, "Catan", got[0].Nombre)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		before := names(products)
		Filter(products, Criteria{Search: "catan"})
		assert.Equal(t, before, names(products))
	})
}
