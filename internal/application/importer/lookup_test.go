package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuerpodebomberos/intranet-api/internal/application/importer"
)

func TestNormalize_TildesYEspacios(t *testing.T) {
	cases := map[string]string{
		"  comunicaciones ":  "COMUNICACIONES",
		"Iluminación":        "ILUMINACION",
		"SÉPTIMA COMPAÑÍA":   "SEPTIMA COMPANIA",
		"Compañía":           "COMPANIA",
		"":                   "",
	}
	for in, want := range cases {
		assert.Equal(t, want, importer.Normalize(in), "entrada %q", in)
	}
}

func TestCategoryForFamily(t *testing.T) {
	c, ok := importer.CategoryForFamily(" comunicaciones ")
	require.True(t, ok)
	assert.Equal(t, "Telecomunicaciones", c.Name)
	assert.Equal(t, "TEL", c.Prefix)

	// Sinónimo corto y grafía con tilde resuelven igual.
	c, ok = importer.CategoryForFamily("EPP")
	require.True(t, ok)
	assert.Equal(t, "EPP", c.Prefix)

	c, ok = importer.CategoryForFamily("Equipos de Protección Personal")
	require.True(t, ok)
	assert.Equal(t, "EPP", c.Prefix)

	_, ok = importer.CategoryForFamily("MOBILIARIO")
	assert.False(t, ok, "familia desconocida no inventa categoría")
}

func TestCompanyForPlace_Canonico(t *testing.T) {
	name, ok := importer.CompanyForPlace("primera compañía")
	require.True(t, ok)
	assert.Equal(t, "Primera Compañía", name)

	name, ok = importer.CompanyForPlace("CUERPO")
	require.True(t, ok)
	assert.Equal(t, "Comandancia", name)
}

// Grafías con prefijo numérico resuelven por ordinal.
func TestCompanyForPlace_PrefijoNumerico(t *testing.T) {
	cases := map[string]string{
		"1a Cia":      "Primera Compañía",
		"3° COMPAÑIA": "Tercera Compañía",
		"8va":         "Octava Compañía",
	}
	for in, want := range cases {
		name, ok := importer.CompanyForPlace(in)
		require.True(t, ok, "entrada %q", in)
		assert.Equal(t, want, name, "entrada %q", in)
	}
}

func TestCompanyForPlace_Desconocido(t *testing.T) {
	_, ok := importer.CompanyForPlace("bodega municipal")
	assert.False(t, ok)

	_, ok = importer.CompanyForPlace("")
	assert.False(t, ok)

	_, ok = importer.CompanyForPlace("9na Compañía")
	assert.False(t, ok, "no existe novena compañía")
}
