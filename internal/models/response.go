package models

// RegionInfo is the public listing shape of a region. The backing filename
// is deliberately not exposed.
type RegionInfo struct {
	Slug   string `json:"slug"`
	Nombre string `json:"nombre"`
}

// RegionListResponse is the envelope for GET /api.
type RegionListResponse struct {
	Regiones []RegionInfo `json:"regiones"`
}

// DishListResponse is the pagination envelope for a region's dish listing.
// Total is the size of the filtered set before pagination; Platos is the
// requested page.
type DishListResponse struct {
	IDRegion     string  `json:"id_region"`
	NombreRegion string  `json:"nombre_region"`
	Total        int     `json:"total"`
	Offset       int     `json:"offset"`
	Limit        int     `json:"limit"`
	Platos       []Plato `json:"platos"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Regions int    `json:"regions"`
}
