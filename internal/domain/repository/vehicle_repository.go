package repository

import "github.com/cuerpodebomberos/intranet-api/internal/domain/entity"

// VehicleRepository define el puerto de persistencia para vehículos.
type VehicleRepository interface {
	Create(vehicle *entity.Vehicle) error
	GetByID(id string) (*entity.Vehicle, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Vehicle, error)
	Update(vehicle *entity.Vehicle) error
}

// VehicleIssueRepository define el puerto para novedades de vehículos.
type VehicleIssueRepository interface {
	Create(issue *entity.VehicleIssue) error
	GetByID(id string) (*entity.VehicleIssue, error)
	ListByVehicle(vehicleID string, limit, offset int) ([]*entity.VehicleIssue, error)
	Update(issue *entity.VehicleIssue) error
}

// VehicleMaintenanceRepository define el puerto para órdenes de mantención.
type VehicleMaintenanceRepository interface {
	Create(m *entity.VehicleMaintenance) error
	GetByID(id string) (*entity.VehicleMaintenance, error)
	ListByVehicle(vehicleID string, limit, offset int) ([]*entity.VehicleMaintenance, error)
	Update(m *entity.VehicleMaintenance) error
}

// VehicleChecklistRepository define el puerto para revisiones de carro.
type VehicleChecklistRepository interface {
	Create(cl *entity.VehicleChecklist) error
	GetByID(id string) (*entity.VehicleChecklist, error)
	ListByVehicle(vehicleID string, limit, offset int) ([]*entity.VehicleChecklist, error)
}
