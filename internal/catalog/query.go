package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/BuildersAQP/api-comida-peru/internal/models"
	"github.com/BuildersAQP/api-comida-peru/internal/normalize"
)

// applyQuery filters, sorts, and paginates a region's dishes. Filters compose
// with AND in the order tipo, ingrediente, q; all matching is accent- and
// case-insensitive substring search over folded text. The returned total is
// the filtered-set size before pagination.
func applyQuery(platos []models.Plato, req *models.ListDishesRequest) (total int, page []models.Plato) {
	filtered := make([]models.Plato, 0, len(platos))
	for _, p := range platos {
		if req.Tipo != "" && !normalize.Contains(p.Tipo, req.Tipo) {
			continue
		}
		if req.Ingrediente != "" && !matchesIngrediente(p, req.Ingrediente) {
			continue
		}
		if req.Q != "" && !matchesQ(p, req.Q) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortPlatos(filtered, req.Sort)

	total = len(filtered)
	start := req.Offset
	if start > total {
		start = total
	}
	end := start + req.Limit
	if end > total {
		end = total
	}
	return total, filtered[start:end]
}

// matchesIngrediente reports whether any ingredient contains the needle.
func matchesIngrediente(p models.Plato, needle string) bool {
	for _, ing := range p.Ingredientes {
		if normalize.Contains(ing, needle) {
			return true
		}
	}
	return false
}

// matchesQ searches the dish name and the space-joined preparation steps.
func matchesQ(p models.Plato, needle string) bool {
	if normalize.Contains(p.Nombre, needle) {
		return true
	}
	return normalize.Contains(strings.Join(p.Preparacion, " "), needle)
}

// sortPlatos orders dishes ascending by the requested field. Name and type
// use Spanish collation; the default is numeric id order. The sort is stable
// so equal keys keep their document order.
func sortPlatos(platos []models.Plato, sortBy string) {
	switch sortBy {
	case models.SortByNombre:
		// Collators carry internal buffers and are not safe for concurrent
		// use, so each query gets its own.
		c := collate.New(language.Spanish)
		sort.SliceStable(platos, func(i, j int) bool {
			return c.CompareString(platos[i].Nombre, platos[j].Nombre) < 0
		})
	case models.SortByTipo:
		c := collate.New(language.Spanish)
		sort.SliceStable(platos, func(i, j int) bool {
			return c.CompareString(platos[i].Tipo, platos[j].Tipo) < 0
		})
	default:
		sort.SliceStable(platos, func(i, j int) bool {
			return platos[i].ID < platos[j].ID
		})
	}
}
