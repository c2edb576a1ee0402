package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegions_TableShape(t *testing.T) {
	regions := Regions()
	require.Len(t, regions, 25)

	seenSlugs := make(map[string]bool)
	seenFiles := make(map[string]bool)
	for _, r := range regions {
		assert.NotEmpty(t, r.Slug)
		assert.NotEmpty(t, r.Nombre)
		assert.NotEmpty(t, r.File)
		assert.False(t, seenSlugs[r.Slug], "duplicate slug %s", r.Slug)
		assert.False(t, seenFiles[r.File], "duplicate file %s", r.File)
		seenSlugs[r.Slug] = true
		seenFiles[r.File] = true
	}
}

func TestRegions_SlugsAndFiles(t *testing.T) {
	bySlug := make(map[string]Region, 25)
	for _, r := range Regions() {
		bySlug[r.Slug] = r
	}

	cusco, ok := bySlug["cusco"]
	require.True(t, ok)
	assert.Equal(t, "Cusco", cusco.Nombre)
	assert.Equal(t, "cusco.json", cusco.File)

	// Slugs are ASCII even when display names carry accents; filenames come
	// verbatim from the backing store, accents included.
	ancash, ok := bySlug["ancash"]
	require.True(t, ok)
	assert.Equal(t, "Áncash", ancash.Nombre)

	apurimac, ok := bySlug["apurimac"]
	require.True(t, ok)
	assert.Equal(t, "apurímac.json", apurimac.File)
}
