package dto

import "time"

// CreateMaterialRequest alta manual de material; InitialStock genera la fila
// INITIAL del libro.
type CreateMaterialRequest struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Category     string `json:"category"`
	SubFamily    string `json:"sub_family"`
	Condition    string `json:"condition"`
	SerialNumber string `json:"serial_number"`
	InitialStock int    `json:"initial_stock"`
}

// UpdateMaterialRequest edición de datos descriptivos. El stock no se toca
// aquí: toda corrección de saldo pasa por el libro (movimiento EDIT).
type UpdateMaterialRequest struct {
	Name         *string `json:"name"`
	Brand        *string `json:"brand"`
	Model        *string `json:"model"`
	Category     *string `json:"category"`
	Condition    *string `json:"condition"`
	SerialNumber *string `json:"serial_number"`
}

// StockMovementRequest movimiento manual sobre el libro de material.
// Para EDIT, Quantity es el saldo absoluto deseado; para el resto, el delta
// siempre positivo (el tipo define el signo).
type StockMovementRequest struct {
	Type     string `json:"type"` // ADD, REMOVE, EDIT
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

// MaterialResponse representación pública del material.
type MaterialResponse struct {
	ID            string    `json:"id"`
	CompanyID     string    `json:"company_id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Brand         string    `json:"brand,omitempty"`
	Model         string    `json:"model,omitempty"`
	Category      string    `json:"category"`
	SubFamily     string    `json:"sub_family,omitempty"`
	Condition     string    `json:"condition,omitempty"`
	SerialNumber  string    `json:"serial_number,omitempty"`
	StockQuantity int       `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
}

// MaterialHistoryResponse una fila del libro.
type MaterialHistoryResponse struct {
	ID             string    `json:"id"`
	MaterialID     string    `json:"material_id"`
	UserID         string    `json:"user_id"`
	Type           string    `json:"type"`
	QuantityChange int       `json:"quantity_change"`
	CurrentBalance int       `json:"current_balance"`
	ReferenceType  string    `json:"reference_type,omitempty"`
	ReferenceID    string    `json:"reference_id,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
