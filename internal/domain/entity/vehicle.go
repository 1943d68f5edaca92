package entity

import "time"

// Estados de un vehículo (material mayor).
const (
	VehicleOperative    = "operative"
	VehicleInWorkshop   = "in_workshop"
	VehicleOutOfService = "out_of_service"
)

// Vehicle representa una unidad del parque vehicular.
type Vehicle struct {
	ID           string
	CompanyID    string
	Denomination string // ej. "B-1", "RX-2"
	Brand        string
	Model        string
	Year         int
	Plate        string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Estados de una novedad/incidente de vehículo.
const (
	IssueOpen     = "open"
	IssueReviewed = "reviewed"
	IssueResolved = "resolved"
)

// VehicleIssue es una novedad reportada sobre un vehículo.
// Ciclo: open → reviewed (capitán) → resolved.
type VehicleIssue struct {
	ID          string
	VehicleID   string
	CompanyID   string
	ReportedBy  string
	Title       string
	Description string
	Status      string
	ReviewedBy  string
	ReviewedAt  *time.Time
	ResolvedBy  string
	ResolvedAt  *time.Time
	CreatedAt   time.Time
}

// Estados de una orden de mantención.
const (
	MaintenanceInWorkshop = "in_workshop"
	MaintenanceCompleted  = "completed"
)

// VehicleMaintenance es una orden de taller. Completarla puede consumir
// materiales (movimientos MAINTENANCE en el libro) y devuelve el vehículo
// a operativo o lo deja fuera de servicio.
type VehicleMaintenance struct {
	ID          string
	VehicleID   string
	CompanyID   string
	OpenedBy    string
	Description string
	Status      string
	CompletedBy string
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// VehicleChecklist es una revisión periódica de carro realizada por el
// maquinista o cuartelero. Un ítem observado puede abrir una novedad.
type VehicleChecklist struct {
	ID          string
	VehicleID   string
	CompanyID   string
	PerformedBy string
	Date        time.Time
	Items       []ChecklistItem
	CreatedAt   time.Time
}

// ChecklistItem es un punto de la revisión.
type ChecklistItem struct {
	ID          string
	ChecklistID string
	Label       string
	OK          bool
	Observation string
	Position    int
}
