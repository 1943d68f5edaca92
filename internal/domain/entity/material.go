package entity

import "time"

// Material representa un artículo de material menor inventariable.
// StockQuantity es el saldo vivo: invariante, igual a la suma de los
// QuantityChange de su historial (incluida la fila sintética INITIAL).
type Material struct {
	ID            string
	CompanyID     string
	Code          string // ej. "TEL-0001"
	Name          string
	Brand         string
	Model         string
	Category      string
	SubFamily     string
	Condition     string
	SerialNumber  string
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
