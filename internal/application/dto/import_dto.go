package dto

// ImportRowError error de una fila de la planilla, indexado por número de fila
// (1-based, contando el encabezado como fila 1).
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult resumen de una importación de planilla.
type ImportResult struct {
	Created int              `json:"created"`
	Skipped int              `json:"skipped"`
	Errors  []ImportRowError `json:"errors,omitempty"`
}
