// Package models defines the domain types for the regional dish catalog:
// the fixed region table, the dish document shape served by the backing
// store, query requests, API responses, and service configuration.
package models

// Region is one of the 25 administrative regions. The set is fixed at build
// time; Slug is the stable external key and File names the JSON document in
// the backing store.
type Region struct {
	Slug   string `json:"slug"`
	Nombre string `json:"nombre"`
	File   string `json:"-"`
}

// regions is the static region-to-file mapping. Filenames are kept verbatim
// from the backing store, accents included.
var regions = []Region{
	{Slug: "amazonas", Nombre: "Amazonas", File: "amazonas.json"},
	{Slug: "ancash", Nombre: "Áncash", File: "ancash.json"},
	{Slug: "apurimac", Nombre: "Apurímac", File: "apurímac.json"},
	{Slug: "arequipa", Nombre: "Arequipa", File: "arequipa.json"},
	{Slug: "ayacucho", Nombre: "Ayacucho", File: "ayacucho.json"},
	{Slug: "cajamarca", Nombre: "Cajamarca", File: "cajamarca.json"},
	{Slug: "callao", Nombre: "Callao", File: "callao.json"},
	{Slug: "cusco", Nombre: "Cusco", File: "cusco.json"},
	{Slug: "huancavelica", Nombre: "Huancavelica", File: "huancavelica.json"},
	{Slug: "huanuco", Nombre: "Huánuco", File: "huanuco.json"},
	{Slug: "ica", Nombre: "Ica", File: "ica.json"},
	{Slug: "junin", Nombre: "Junín", File: "junin.json"},
	{Slug: "la-libertad", Nombre: "La Libertad", File: "lalibertad.json"},
	{Slug: "lambayeque", Nombre: "Lambayeque", File: "lambayeque.json"},
	{Slug: "lima", Nombre: "Lima", File: "lima.json"},
	{Slug: "loreto", Nombre: "Loreto", File: "loreto.json"},
	{Slug: "madre-de-dios", Nombre: "Madre de Dios", File: "madrededios.json"},
	{Slug: "moquegua", Nombre: "Moquegua", File: "moquegua.json"},
	{Slug: "pasco", Nombre: "Pasco", File: "pasco.json"},
	{Slug: "piura", Nombre: "Piura", File: "piura.json"},
	{Slug: "puno", Nombre: "Puno", File: "puno.json"},
	{Slug: "san-martin", Nombre: "San Martín", File: "sanmartin.json"},
	{Slug: "tacna", Nombre: "Tacna", File: "tacna.json"},
	{Slug: "tumbes", Nombre: "Tumbes", File: "tumbes.json"},
	{Slug: "ucayali", Nombre: "Ucayali", File: "ucayali.json"},
}

// Regions returns the full region table in its canonical order. Slug lookup
// is the catalog service's job; it holds its own copy of the table.
func Regions() []Region {
	return regions
}
