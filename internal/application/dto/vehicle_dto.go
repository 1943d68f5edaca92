package dto

import "time"

// CreateVehicleRequest alta de vehículo (nace operativo).
type CreateVehicleRequest struct {
	Denomination string `json:"denomination"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	Plate        string `json:"plate"`
}

// VehicleResponse representación pública del vehículo.
type VehicleResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	Denomination string    `json:"denomination"`
	Brand        string    `json:"brand,omitempty"`
	Model        string    `json:"model,omitempty"`
	Year         int       `json:"year,omitempty"`
	Plate        string    `json:"plate,omitempty"`
	Status       string    `json:"status"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IssueResponse novedad con sus sellos de revisión y resolución.
type IssueResponse struct {
	ID          string     `json:"id"`
	VehicleID   string     `json:"vehicle_id"`
	ReportedBy  string     `json:"reported_by"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	ReviewedBy  string     `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ResolvedBy  string     `json:"resolved_by,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// MaintenanceResponse orden de mantención.
type MaintenanceResponse struct {
	ID          string     `json:"id"`
	VehicleID   string     `json:"vehicle_id"`
	OpenedBy    string     `json:"opened_by"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	CompletedBy string     `json:"completed_by,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ChecklistItemResponse punto de revisión en respuestas.
type ChecklistItemResponse struct {
	Label       string `json:"label"`
	OK          bool   `json:"ok"`
	Observation string `json:"observation,omitempty"`
}

// ChecklistResponse revisión de carro completa.
type ChecklistResponse struct {
	ID          string                  `json:"id"`
	VehicleID   string                  `json:"vehicle_id"`
	PerformedBy string                  `json:"performed_by"`
	Date        time.Time               `json:"date"`
	Items       []ChecklistItemResponse `json:"items"`
	CreatedAt   time.Time               `json:"created_at"`
}

// CreateIssueRequest reporte de novedad.
type CreateIssueRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateMaintenanceRequest ingreso a taller.
type CreateMaintenanceRequest struct {
	Description string `json:"description"`
}

// CompleteMaintenanceRequest salida de taller. MaterialsUsed genera movimientos
// MAINTENANCE en el libro; OutOfService deja el vehículo fuera de servicio en
// lugar de volver a operativo.
type CompleteMaintenanceRequest struct {
	MaterialsUsed []CertificateItemRequest `json:"materials_used"`
	OutOfService  bool                     `json:"out_of_service"`
}

// ChecklistItemRequest punto de revisión de carro.
type ChecklistItemRequest struct {
	Label       string `json:"label"`
	OK          bool   `json:"ok"`
	Observation string `json:"observation"`
}

// CreateChecklistRequest revisión completa.
type CreateChecklistRequest struct {
	Date  time.Time              `json:"date"`
	Items []ChecklistItemRequest `json:"items"`
}
