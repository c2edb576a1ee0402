package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"accented uppercase", "Áncash", "ancash"},
		{"plain lowercase", "ancash", "ancash"},
		{"mixed accents", "Apurímac", "apurimac"},
		{"enye loses its tilde", "Ñoquis", "noquis"},
		{"empty string", "", ""},
		{"no letters", "1234 -!", "1234 -!"},
		{"multi word", "San Martín", "san martin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.input))
		})
	}
}

func TestFold_AccentedAndPlainFoldEqual(t *testing.T) {
	assert.Equal(t, Fold("ancash"), Fold("Áncash"))
	assert.Equal(t, Fold("aji de gallina"), Fold("Ají de Gallina"))
}

func TestFold_Idempotent(t *testing.T) {
	inputs := []string{"Áncash", "Chiriuchu", "rocoto relleno", "", "Junín"}
	for _, s := range inputs {
		once := Fold(s)
		assert.Equal(t, once, Fold(once), "folding %q twice changed the result", s)
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("Sopa Teóloga", "teolo"))
	assert.True(t, Contains("AJÍ de gallina", "aji"))
	assert.False(t, Contains("Cuy chactado", "pollo"))
	assert.True(t, Contains("anything", ""))
}
