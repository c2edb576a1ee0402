package models

// Plato is a single dish record. Records are sourced verbatim from the
// backing JSON documents and never mutated after load.
type Plato struct {
	ID           int      `json:"id"`
	Nombre       string   `json:"nombre"`
	Tipo         string   `json:"tipo"`
	Ingredientes []string `json:"ingredientes"`
	Preparacion  []string `json:"preparacion"`
	ImagenURL    string   `json:"imagen_url"`
}

// RegionDocument is one region's complete dish document as stored in the
// backing store. Dish ids are expected to be unique within a document; the
// source does not validate this and lookups take the first match.
type RegionDocument struct {
	IDRegion     string  `json:"id_region"`
	NombreRegion string  `json:"nombre_region"`
	DatoCurioso  string  `json:"dato_curioso"`
	Platos       []Plato `json:"platos"`
}
