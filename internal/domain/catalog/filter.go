package catalog

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Summary is the read-side shape of a catalog entry, what listings and the
// cart operate on.
type Summary struct {
	ID          uuid.UUID `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Precio      int64     `json:"precio"`
	Stock       int       `json:"stock"`
	Categoria   string    `json:"categoria"`
	Imagen      string    `json:"imagen"`
}

// Criteria are the storefront catalog filters. Zero values mean "no filter".
// PriceRange is either "min-max" (both bounds inclusive) or "min+" for an
// open-ended range.
type Criteria struct {
	Search     string
	Categoria  string
	PriceRange string
}

func (c Criteria) IsZero() bool {
	return c.Search == "" && (c.Categoria == "" || c.Categoria == "Todas") && c.PriceRange == ""
}

// Filter applies the criteria to a full product list. Pure function; the
// input slice is never mutated. An unparseable price range matches nothing
// restricted, i.e. the range filter is simply skipped.
func Filter(products []Summary, c Criteria) []Summary {
	if c.IsZero() {
		return products
	}

	result := make([]Summary, 0, len(products))

	term := strings.ToLower(c.Search)
	minPrecio, maxPrecio, hasRange := parsePriceRange(c.PriceRange)

	for _, p := range products {
		if term != "" && !strings.Contains(strings.ToLower(p.Nombre), term) {
			continue
		}
		if c.Categoria != "" && c.Categoria != "Todas" && p.Categoria != c.Categoria {
			continue
		}
		if hasRange {
			if p.Precio < minPrecio {
				continue
			}
			if maxPrecio >= 0 && p.Precio > maxPrecio {
				continue
			}
		}
		result = append(result, p)
	}

	return result
}

// parsePriceRange returns (min, max, ok); max is -1 for open-ended ranges.
func parsePriceRange(s string) (int64, int64, bool) {
	if s == "" {
		return 0, -1, false
	}

	if strings.HasSuffix(s, "+") {
		min, err := strconv.ParseInt(strings.TrimSuffix(s, "+"), 10, 64)
		if err != nil {
			return 0, -1, false
		}
		return min, -1, true
	}

	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, -1, false
	}
	min, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, -1, false
	}
	max, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, -1, false
	}
	return min, max, true
}
