package fleet

import (
	"context"

	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

// TxRunner ejecuta el cierre de una orden de mantención en una transacción:
// los movimientos MAINTENANCE del libro, la orden y el estado del vehículo,
// todo junto o nada.
type TxRunner interface {
	RunMaintenance(ctx context.Context, fn func(
		materialRepo repository.MaterialRepository,
		historyRepo repository.MaterialHistoryRepository,
		assignedRepo repository.AssignedMaterialRepository,
		maintenanceRepo repository.VehicleMaintenanceRepository,
		vehicleRepo repository.VehicleRepository,
	) error) error
}
