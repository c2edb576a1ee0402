package models

// Sort field constants for dish listings.
const (
	SortByID     = "id"
	SortByNombre = "nombre"
	SortByTipo   = "tipo"
)

// Pagination bounds for dish listings.
const (
	MinLimit     = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListDishesRequest carries the query parameters of a dish listing request.
// All fields are optional; Normalize fills defaults and clamps bounds so the
// query engine never sees out-of-range values.
type ListDishesRequest struct {
	Tipo        string
	Ingrediente string
	Q           string
	Sort        string
	Limit       int
	Offset      int
}

// Normalize applies defaults and clamps pagination bounds. Absent and
// malformed numeric query input is handled upstream by leaving the zero value
// in place, so a non-positive Limit here means "not provided" and takes the
// default; explicit out-of-range values are floored to MinLimit before they
// reach this point. Unknown sort fields degrade to id order rather than
// erroring.
func (r *ListDishesRequest) Normalize() {
	if r.Limit <= 0 {
		r.Limit = DefaultLimit
	}
	if r.Limit > MaxLimit {
		r.Limit = MaxLimit
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	switch r.Sort {
	case SortByNombre, SortByTipo:
	default:
		r.Sort = SortByID
	}
}
