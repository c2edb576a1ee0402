package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuildersAQP/api-comida-peru/internal/models"
	"github.com/BuildersAQP/api-comida-peru/internal/storage"
)

func newTestService() *Service {
	docs := map[string]*models.RegionDocument{
		"cusco.json": {
			IDRegion:     "cusco",
			NombreRegion: "Cusco",
			Platos: []models.Plato{
				{ID: 1, Nombre: "Chiriuchu", Tipo: "Plato"},
				{ID: 2, Nombre: "Lechon", Tipo: "Plato"},
			},
		},
	}
	return NewService(models.Regions(), storage.NewStaticSource(docs))
}

func TestService_ListRegions(t *testing.T) {
	service := newTestService()

	response := service.ListRegions()
	require.Len(t, response.Regiones, 25)
	assert.Equal(t, models.RegionInfo{Slug: "amazonas", Nombre: "Amazonas"}, response.Regiones[0])
	assert.Equal(t, models.RegionInfo{Slug: "ucayali", Nombre: "Ucayali"}, response.Regiones[24])
}

func TestService_ListDishes(t *testing.T) {
	service := newTestService()

	response, err := service.ListDishes(context.Background(), "cusco", &models.ListDishesRequest{})
	require.NoError(t, err)
	assert.Equal(t, "cusco", response.IDRegion)
	assert.Equal(t, "Cusco", response.NombreRegion)
	assert.Equal(t, 2, response.Total)
	assert.Equal(t, 20, response.Limit)
	assert.Equal(t, 0, response.Offset)
	require.Len(t, response.Platos, 2)
}

func TestService_ListDishes_SortedPage(t *testing.T) {
	service := newTestService()

	response, err := service.ListDishes(context.Background(), "cusco", &models.ListDishesRequest{
		Sort:   models.SortByNombre,
		Limit:  1,
		Offset: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, response.Total)
	assert.Equal(t, 1, response.Offset)
	assert.Equal(t, 1, response.Limit)
	require.Len(t, response.Platos, 1)
	assert.Equal(t, "Lechon", response.Platos[0].Nombre, "page holds the alphabetically second dish")
}

func TestService_ListDishes_UnknownRegion(t *testing.T) {
	service := newTestService()

	_, err := service.ListDishes(context.Background(), "atlantis", &models.ListDishesRequest{})
	assert.ErrorIs(t, err, ErrRegionNotFound)
}

func TestService_ListDishes_Unavailable(t *testing.T) {
	service := newTestService()

	// lima is a valid region but the test source has no document for it.
	_, err := service.ListDishes(context.Background(), "lima", &models.ListDishesRequest{})
	assert.ErrorIs(t, err, storage.ErrUnavailable)
}

func TestService_GetDish(t *testing.T) {
	service := newTestService()

	plato, err := service.GetDish(context.Background(), "cusco", 2)
	require.NoError(t, err)
	assert.Equal(t, "Lechon", plato.Nombre)
}

func TestService_GetDish_NotFound(t *testing.T) {
	service := newTestService()

	_, err := service.GetDish(context.Background(), "cusco", 999)
	assert.ErrorIs(t, err, ErrDishNotFound)
}

func TestService_GetDish_UnknownRegion(t *testing.T) {
	service := newTestService()

	_, err := service.GetDish(context.Background(), "atlantis", 1)
	assert.ErrorIs(t, err, ErrRegionNotFound)
}

func TestService_GetDish_DuplicateIDsFirstMatchWins(t *testing.T) {
	docs := map[string]*models.RegionDocument{
		"lima.json": {
			IDRegion:     "lima",
			NombreRegion: "Lima",
			Platos: []models.Plato{
				{ID: 7, Nombre: "Causa"},
				{ID: 7, Nombre: "Causa Limeña"},
			},
		},
	}
	service := NewService(models.Regions(), storage.NewStaticSource(docs))

	plato, err := service.GetDish(context.Background(), "lima", 7)
	require.NoError(t, err)
	assert.Equal(t, "Causa", plato.Nombre)
}
