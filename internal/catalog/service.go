// Package catalog implements the dish catalog operations: listing regions,
// listing a region's dishes with filter/sort/pagination, and looking up a
// single dish by id.
package catalog

import (
	"context"
	"fmt"

	"github.com/BuildersAQP/api-comida-peru/internal/models"
	"github.com/BuildersAQP/api-comida-peru/internal/storage"
)

// Service answers catalog queries against a region table and a document
// source. It holds no mutable state of its own; per-request state lives in
// the source's cache and the documents it returns are shared read-only.
type Service struct {
	regions []models.Region
	source  storage.Source
}

// NewService creates a catalog over the given region table and source.
func NewService(regions []models.Region, source storage.Source) *Service {
	return &Service{regions: regions, source: source}
}

// ListRegions returns the public region listing. It touches neither the rate
// limiter nor the document source.
func (s *Service) ListRegions() *models.RegionListResponse {
	out := make([]models.RegionInfo, len(s.regions))
	for i, r := range s.regions {
		out[i] = models.RegionInfo{Slug: r.Slug, Nombre: r.Nombre}
	}
	return &models.RegionListResponse{Regiones: out}
}

// ListDishes resolves the region, fetches its document, and applies the
// query. Unknown slugs yield ErrRegionNotFound; an unavailable document
// propagates storage.ErrUnavailable; a parse fault propagates wrapped.
func (s *Service) ListDishes(ctx context.Context, slug string, req *models.ListDishesRequest) (*models.DishListResponse, error) {
	doc, err := s.fetchDocument(ctx, slug)
	if err != nil {
		return nil, err
	}

	req.Normalize()
	total, page := applyQuery(doc.Platos, req)

	return &models.DishListResponse{
		IDRegion:     doc.IDRegion,
		NombreRegion: doc.NombreRegion,
		Total:        total,
		Offset:       req.Offset,
		Limit:        req.Limit,
		Platos:       page,
	}, nil
}

// GetDish returns the dish with the given id in the region's document. When
// a document carries duplicate ids the first match wins, matching the
// backing data's lack of validation.
func (s *Service) GetDish(ctx context.Context, slug string, id int) (*models.Plato, error) {
	doc, err := s.fetchDocument(ctx, slug)
	if err != nil {
		return nil, err
	}

	for i := range doc.Platos {
		if doc.Platos[i].ID == id {
			return &doc.Platos[i], nil
		}
	}
	return nil, ErrDishNotFound
}

func (s *Service) fetchDocument(ctx context.Context, slug string) (*models.RegionDocument, error) {
	region, ok := s.findRegion(slug)
	if !ok {
		return nil, ErrRegionNotFound
	}

	doc, err := s.source.FetchRegion(ctx, region.File)
	if err != nil {
		return nil, fmt.Errorf("fetch region %s: %w", slug, err)
	}
	return doc, nil
}

func (s *Service) findRegion(slug string) (models.Region, bool) {
	for _, r := range s.regions {
		if r.Slug == slug {
			return r, true
		}
	}
	return models.Region{}, false
}
