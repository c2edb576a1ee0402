// Package api exposes the HTTP surface of the catalog: the region index,
// per-region dish listings, dish detail lookup, and the health endpoint.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/BuildersAQP/api-comida-peru/internal/catalog"
	"github.com/BuildersAQP/api-comida-peru/internal/models"
	"github.com/BuildersAQP/api-comida-peru/internal/storage"
	"github.com/BuildersAQP/api-comida-peru/internal/version"
)

// Plain-text error bodies. Success bodies are JSON; error bodies are short
// human-readable text.
const (
	msgRegionNotFound  = "Región no encontrada"
	msgDishNotFound    = "Plato no encontrado"
	msgDataUnavailable = "Datos no disponibles"
	msgInternalError   = "Error interno"
)

// Handlers contains the HTTP handlers for the catalog API.
type Handlers struct {
	catalog *catalog.Service
}

// NewHandlers creates a handlers instance over the given catalog.
func NewHandlers(catalog *catalog.Service) *Handlers {
	return &Handlers{catalog: catalog}
}

// ListRegions handles GET /api. It serves the static region table and is
// exempt from rate limiting.
func (h *Handlers) ListRegions(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.ListRegions())
}

// ListDishes handles GET /api/{region}. Malformed numeric parameters degrade
// to their defaults rather than erroring.
func (h *Handlers) ListDishes(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["region"]

	query := r.URL.Query()
	req := &models.ListDishesRequest{
		Tipo:        query.Get("tipo"),
		Ingrediente: query.Get("ingrediente"),
		Q:           query.Get("q"),
		Sort:        query.Get("sort"),
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
		// An explicit numeric limit clamps into range; only an absent or
		// non-numeric parameter falls through to the default.
		if limit < models.MinLimit {
			limit = models.MinLimit
		}
		req.Limit = limit
	}
	if offset, err := strconv.Atoi(query.Get("offset")); err == nil {
		req.Offset = offset
	}

	response, err := h.catalog.ListDishes(r.Context(), slug, req)
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, response)
}

// GetDish handles GET /api/{region}/{id}.
func (h *Handlers) GetDish(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["region"]

	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		// Dish ids are positive; a sentinel that matches nothing keeps region
		// resolution first so unknown regions still answer with their own 404.
		id = -1
	}

	plato, err := h.catalog.GetDish(r.Context(), slug, id)
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, plato)
}

// Health handles GET /health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, &models.HealthResponse{
		Status:  "ok",
		Version: version.GetInfo().Version,
		Regions: len(models.Regions()),
	})
}

// writeCatalogError maps catalog errors onto the status code policy: 404 for
// unknown regions and dishes, 503 when the backing document is unavailable,
// 500 only for parse faults, which are never masked as unavailable.
func (h *Handlers) writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrRegionNotFound):
		h.writeText(w, http.StatusNotFound, msgRegionNotFound)
	case errors.Is(err, catalog.ErrDishNotFound):
		h.writeText(w, http.StatusNotFound, msgDishNotFound)
	case errors.Is(err, storage.ErrUnavailable):
		h.writeText(w, http.StatusServiceUnavailable, msgDataUnavailable)
	default:
		slog.Error("Catalog request failed", "path", r.URL.Path, "error", err)
		h.writeText(w, http.StatusInternalServerError, msgInternalError)
	}
}

func (h *Handlers) writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out; nothing left to do but log.
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

func (h *Handlers) writeText(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	fmt.Fprintln(w, message)
}
