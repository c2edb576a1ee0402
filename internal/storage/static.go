package storage

import (
	"context"

	"github.com/BuildersAQP/api-comida-peru/internal/models"
)

// StaticSource serves region documents from an in-memory map keyed by
// backing-store filename. Files without an entry are unavailable. Useful for
// tests and local development without a backing store.
type StaticSource struct {
	docs map[string]*models.RegionDocument
}

// NewStaticSource creates a source over the given documents.
func NewStaticSource(docs map[string]*models.RegionDocument) *StaticSource {
	if docs == nil {
		docs = make(map[string]*models.RegionDocument)
	}
	return &StaticSource{docs: docs}
}

// FetchRegion returns the document for file or ErrUnavailable.
func (s *StaticSource) FetchRegion(_ context.Context, file string) (*models.RegionDocument, error) {
	doc, ok := s.docs[file]
	if !ok {
		return nil, ErrUnavailable
	}
	return doc, nil
}
