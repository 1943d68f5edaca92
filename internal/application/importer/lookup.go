package importer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Category es la categoría canónica a la que se mapea una familia de la
// planilla, con el prefijo de los códigos de material ({PREFIJO}-{n}).
type Category struct {
	Name   string
	Prefix string
}

// familyCategories mapea la columna "familia" (normalizada) a la categoría
// canónica. Las planillas llegan con mayúsculas, tildes y espacios
// inconsistentes; la clave siempre se normaliza antes de buscar.
var familyCategories = map[string]Category{
	"COMUNICACIONES":                {Name: "Telecomunicaciones", Prefix: "TEL"},
	"TELECOMUNICACIONES":            {Name: "Telecomunicaciones", Prefix: "TEL"},
	"EQUIPOS DE PROTECCION PERSONAL": {Name: "Equipos de Protección Personal", Prefix: "EPP"},
	"EPP":                           {Name: "Equipos de Protección Personal", Prefix: "EPP"},
	"MATERIAL DE AGUA":              {Name: "Material de Agua", Prefix: "AGU"},
	"RESCATE":                       {Name: "Rescate", Prefix: "RES"},
	"HERRAMIENTAS":                  {Name: "Herramientas", Prefix: "HER"},
	"PRIMEROS AUXILIOS":             {Name: "Primeros Auxilios", Prefix: "PRI"},
	"ILUMINACION":                   {Name: "Iluminación", Prefix: "ILU"},
}

// canonicalCompanies mapea grafías externas (normalizadas) al nombre canónico
// de la compañía. Complementado por el fallback de prefijo numérico.
var canonicalCompanies = map[string]string{
	"PRIMERA COMPANIA": "Primera Compañía",
	"SEGUNDA COMPANIA": "Segunda Compañía",
	"TERCERA COMPANIA": "Tercera Compañía",
	"CUARTA COMPANIA":  "Cuarta Compañía",
	"QUINTA COMPANIA":  "Quinta Compañía",
	"SEXTA COMPANIA":   "Sexta Compañía",
	"SEPTIMA COMPANIA": "Séptima Compañía",
	"OCTAVA COMPANIA":  "Octava Compañía",
	"COMANDANCIA":      "Comandancia",
	"CUERPO":           "Comandancia",
}

// ordinalCompanies resuelve el fallback numérico: "1a Cia", "3° COMPAÑIA", etc.
var ordinalCompanies = map[byte]string{
	'1': "Primera Compañía",
	'2': "Segunda Compañía",
	'3': "Tercera Compañía",
	'4': "Cuarta Compañía",
	'5': "Quinta Compañía",
	'6': "Sexta Compañía",
	'7': "Séptima Compañía",
	'8': "Octava Compañía",
}

// Normalize recorta, pasa a mayúsculas y elimina diacríticos (NFD + filtro de
// marcas no espaciadoras) para comparar grafías externas.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	clean, _, err := transform.String(t, s)
	if err != nil {
		clean = s
	}
	return strings.ToUpper(strings.TrimSpace(clean))
}

// CategoryForFamily resuelve la familia de la planilla a su categoría canónica.
func CategoryForFamily(family string) (Category, bool) {
	c, ok := familyCategories[Normalize(family)]
	return c, ok
}

// CompanyForPlace resuelve el "lugar" de la planilla al nombre canónico de la
// compañía: primero el diccionario fijo, luego el fallback por prefijo
// numérico ("1a", "2ª", "3° Compañía"…).
func CompanyForPlace(place string) (string, bool) {
	key := Normalize(place)
	if name, ok := canonicalCompanies[key]; ok {
		return name, true
	}
	if key == "" {
		return "", false
	}
	if name, ok := ordinalCompanies[key[0]]; ok {
		return name, true
	}
	return "", false
}
