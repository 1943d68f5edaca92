package dto

import "time"

// CertificateItemRequest una línea del acta.
type CertificateItemRequest struct {
	MaterialID string `json:"material_id"`
	Quantity   int    `json:"quantity"`
}

// CreateCertificateRequest cabecera + líneas ordenadas de un acta de
// entrega o recepción.
type CreateCertificateRequest struct {
	FirefighterID  string                   `json:"firefighter_id"`
	AssigneeName   string                   `json:"assignee_name"`
	AssignmentType string                   `json:"assignment_type"`
	Date           time.Time                `json:"date"`
	Notes          string                   `json:"notes"`
	Items          []CertificateItemRequest `json:"items"`
}

// CertificateItemResponse línea del acta en respuestas.
type CertificateItemResponse struct {
	MaterialID   string `json:"material_id"`
	MaterialName string `json:"material_name,omitempty"`
	Quantity     int    `json:"quantity"`
}

// CertificateResponse acta completa.
type CertificateResponse struct {
	ID             string                    `json:"id"`
	CompanyID      string                    `json:"company_id"`
	Type           string                    `json:"type"`
	FirefighterID  string                    `json:"firefighter_id,omitempty"`
	AssigneeName   string                    `json:"assignee_name,omitempty"`
	AssignmentType string                    `json:"assignment_type"`
	IssuedByID     string                    `json:"issued_by_id"`
	Date           time.Time                 `json:"date"`
	Notes          string                    `json:"notes,omitempty"`
	Items          []CertificateItemResponse `json:"items"`
	CreatedAt      time.Time                 `json:"created_at"`
}

// AssignedMaterialResponse cargo vigente de un bombero.
type AssignedMaterialResponse struct {
	FirefighterID string    `json:"firefighter_id"`
	MaterialID    string    `json:"material_id"`
	MaterialName  string    `json:"material_name,omitempty"`
	Quantity      int       `json:"quantity"`
	UpdatedAt     time.Time `json:"updated_at"`
}
