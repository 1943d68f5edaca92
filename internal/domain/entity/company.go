package entity

import "time"

// Company representa una compañía del cuerpo (unidad organizacional,
// ej. "Primera Compañía"). Es la clave de partición de casi todos los datos.
type Company struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
