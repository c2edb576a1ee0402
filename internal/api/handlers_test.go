package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuildersAQP/api-comida-peru/internal/catalog"
	"github.com/BuildersAQP/api-comida-peru/internal/models"
	"github.com/BuildersAQP/api-comida-peru/internal/ratelimit"
	"github.com/BuildersAQP/api-comida-peru/internal/storage"
)

const testIPHeader = "CF-Connecting-IP"

func cuscoDocs() map[string]*models.RegionDocument {
	return map[string]*models.RegionDocument{
		"cusco.json": {
			IDRegion:     "cusco",
			NombreRegion: "Cusco",
			Platos: []models.Plato{
				{ID: 1, Nombre: "Chiriuchu", Tipo: "Plato", Ingredientes: []string{"cuy"}, Preparacion: []string{"Servir frío"}},
				{ID: 2, Nombre: "Lechon", Tipo: "Plato", Ingredientes: []string{"cerdo"}, Preparacion: []string{"Hornear"}},
				{ID: 3, Nombre: "Chairo", Tipo: "Sopa", Ingredientes: []string{"chuño", "res"}, Preparacion: []string{"Hervir"}},
			},
		},
	}
}

func newTestRouter(t *testing.T, source storage.Source, limit int) http.Handler {
	t.Helper()
	service := catalog.NewService(models.Regions(), source)
	handlers := NewHandlers(service)

	var rateLimitMiddleware func(http.Handler) http.Handler
	if limit > 0 {
		limiter := ratelimit.NewMemoryLimiter(limit, 5*time.Minute, 1000)
		t.Cleanup(limiter.Close)
		rateLimitMiddleware = ratelimit.Middleware(limiter, testIPHeader)
	}
	return SetupRoutes(handlers, rateLimitMiddleware)
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	req.Header.Set(testIPHeader, "198.51.100.7")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestListRegions(t *testing.T) {
	handler := newTestRouter(t, storage.NewStaticSource(nil), 0)

	rr := get(handler, "/api")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	var response models.RegionListResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
	require.Len(t, response.Regiones, 25)
	assert.Equal(t, "amazonas", response.Regiones[0].Slug)
	assert.Equal(t, "Áncash", response.Regiones[1].Nombre)
}

func TestListDishes(t *testing.T) {
	handler := newTestRouter(t, storage.NewStaticSource(cuscoDocs()), 0)

	rr := get(handler, "/api/cusco")
	require.Equal(t, http.StatusOK, rr.Code)

	var response models.DishListResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
	assert.Equal(t, "cusco", response.IDRegion)
	assert.Equal(t, 3, response.Total)
	assert.Equal(t, 20, response.Limit)
	require.Len(t, response.Platos, 3)
}

func TestListDishes_QueryParams(t *testing.T) {
	handler := newTestRouter(t, storage.NewStaticSource(cuscoDocs()), 0)

	rr := get(handler, "/api/cusco?limit=1&offset=1&sort=nombre")
	require.Equal(t, http.StatusOK, rr.Code)

	var response models.DishListResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
	assert.Equal(t, 3, response.Total)
	assert.Equal(t, 1, response.Offset)
	assert.Equal(t, 1, response.Limit)
	require.Len(t, response.Platos, 1)
	// Chairo, Chiriuchu, Lechon -- offset 1 is Chiriuchu.
	assert.Equal(t, "Chiriuchu", response.Platos[0].Nombre)
}

func TestListDishes_Filters(t *testing.T) {
	handler := newTestRouter(t, storage.NewStaticSource(cuscoDocs()), 0)

	rr := get(handler, "/api/cusco?tipo=sopa")
	require.Equal(t, http.StatusOK, rr.Code)

	var response models.DishListResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
	assert.Equal(t, 1, response.Total)
	require.Len(t, response.Platos, 1)
	assert.Equal(t, "Chairo", response.Platos[0].Nombre)

	// Accent-insensitive ingredient search.
	rr = get(handler, "/api/cusco?ingrediente=chuno")
	var byIngredient models.DishListResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&byIngredient))
	assert.Equal(t, 1, byIngredient.Total)
}

func TestListDishes_MalformedNumbersDegradeToDefaults(t *testing.T) {
	handler := newTestRouter(t, storage.NewStaticSource(cuscoDocs()), 0)

	rr := get(handler, "/api/cusco?limit=abc&offset=xyz")
	require.Equal(t, http.StatusOK, rr.Code)

	var response models.DishListResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
	assert.Equal(t, 20, response.Limit)
	assert.Equal(t, 0, response.Offset)
}

func TestListDishes_ExplicitLimitClampsToMinimum(t *testing.T) {
	handler := newTestRouter(t, storage.NewStaticSource(cuscoDocs()), 0)

	rr := get(handler, "/api/cusco?limit=0")
	require.Equal(t, http.StatusOK, rr.Code)

	var response models.DishListResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
	assert.Equal(t, 1, response.Limit)
	assert.Len(t, response.Platos, 1)

	rr = get(handler, "/api/cusco?limit=-5")
	require.Equal(t, http.StatusOK, rr.Code)

	var negative models.DishListResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&negative))
	assert.Equal(t, 1, negative.Limit)
	assert.Len(t, negative.Platos, 1)
}

func TestListDishes_UnknownRegion(t *testing.T) {
	handler := newTestRouter(t, storage.NewStaticSource(cuscoDocs()), 0)

	rr := get(handler, "/api/atlantis")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Región no encontrada\n", rr.Body.String())
}

func TestListDishes_UnconfiguredBackingStore(t *testing.T) {
	// No base URL: fetches are disabled and data routes must answer 503,
	// never 500.
	source := storage.NewHTTPCache(storage.NewHTTPSource("", time.Second), 24*time.Hour)
	handler := newTestRouter(t, source, 0)

	rr := get(handler, "/api/cusco")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "Datos no disponibles\n", rr.Body.String())

	rr = get(handler, "/api/cusco/1")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestGetDish(t *testing.T) {
	handler := newTestRouter(t, storage.NewStaticSource(cuscoDocs()), 0)

	rr := get(handler, "/api/cusco/2")
	require.Equal(t, http.StatusOK, rr.Code)

	var plato models.Plato
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&plato))
	assert.Equal(t, 2, plato.ID)
	assert.Equal(t, "Lechon", plato.Nombre)
}

func TestGetDish_NotFound(t *testing.T) {
	handler := newTestRouter(t, storage.NewStaticSource(cuscoDocs()), 0)

	rr := get(handler, "/api/cusco/999")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Plato no encontrado\n", rr.Body.String())
}

func TestGetDish_NonNumericID(t *testing.T) {
	handler := newTestRouter(t, storage.NewStaticSource(cuscoDocs()), 0)

	rr := get(handler, "/api/cusco/lomo")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Plato no encontrado\n", rr.Body.String())
}

func TestGetDish_UnknownRegion(t *testing.T) {
	handler := newTestRouter(t, storage.NewStaticSource(cuscoDocs()), 0)

	rr := get(handler, "/api/atlantis/1")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Región no encontrada\n", rr.Body.String())
}

func TestRateLimit_AppliesToDataRoutesOnly(t *testing.T) {
	handler := newTestRouter(t, storage.NewStaticSource(cuscoDocs()), 2)

	// Exhaust the bucket on the listing route.
	require.Equal(t, http.StatusOK, get(handler, "/api/cusco").Code)
	require.Equal(t, http.StatusOK, get(handler, "/api/cusco/1").Code)

	rr := get(handler, "/api/cusco")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "Demasiadas solicitudes\n", rr.Body.String())

	// The region index stays reachable.
	assert.Equal(t, http.StatusOK, get(handler, "/api").Code)
	assert.Equal(t, http.StatusOK, get(handler, "/health").Code)
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestRouter(t, storage.NewStaticSource(nil), 0)

	req := httptest.NewRequest("OPTIONS", "/api/cusco", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealth(t *testing.T) {
	handler := newTestRouter(t, storage.NewStaticSource(nil), 0)

	rr := get(handler, "/health")
	require.Equal(t, http.StatusOK, rr.Code)

	var response models.HealthResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, 25, response.Regions)
}
