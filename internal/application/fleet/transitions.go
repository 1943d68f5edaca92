package fleet

import "github.com/cuerpodebomberos/intranet-api/internal/domain/entity"

// Tablas de transición explícitas por entidad (sin motor genérico): cada
// transición valida estado actual y rol del actor antes de escribir.

type transition struct {
	from  string
	to    string
	roles []string
}

var (
	// Vehículo: Operativo → Taller → Operativo | Fuera de servicio.
	vehicleEnterWorkshop = transition{
		from:  entity.VehicleOperative,
		to:    entity.VehicleInWorkshop,
		roles: []string{entity.RoleAdmin, entity.RoleCapitan, entity.RoleMecanico, entity.RoleMaquinista},
	}
	// La salida de taller exige visto bueno de comandante o inspector.
	vehicleExitWorkshop = transition{
		from:  entity.VehicleInWorkshop,
		to:    entity.VehicleOperative,
		roles: []string{entity.RoleAdmin, entity.RoleCapitan, entity.RoleComandante, entity.RoleInspector},
	}
	vehicleOutOfService = transition{
		from:  entity.VehicleInWorkshop,
		to:    entity.VehicleOutOfService,
		roles: []string{entity.RoleAdmin, entity.RoleCapitan, entity.RoleComandante, entity.RoleInspector},
	}

	// Novedad: abierta → revisada (capitán) → resuelta.
	issueReview = transition{
		from:  entity.IssueOpen,
		to:    entity.IssueReviewed,
		roles: []string{entity.RoleAdmin, entity.RoleCapitan},
	}
	issueResolve = transition{
		from:  entity.IssueReviewed,
		to:    entity.IssueResolved,
		roles: []string{entity.RoleAdmin, entity.RoleCapitan, entity.RoleMecanico},
	}

	// Mantención: en taller → completada. Comandante e inspector figuran
	// porque el cierre de la orden y el visto bueno de salida del vehículo
	// son el mismo acto: quien firma la salida cierra la orden.
	maintenanceComplete = transition{
		from:  entity.MaintenanceInWorkshop,
		to:    entity.MaintenanceCompleted,
		roles: []string{entity.RoleAdmin, entity.RoleCapitan, entity.RoleMecanico, entity.RoleComandante, entity.RoleInspector},
	}
)

func (t transition) allows(currentState, role string) bool {
	if currentState != t.from {
		return false
	}
	for _, r := range t.roles {
		if r == role {
			return true
		}
	}
	return false
}

// check distingue estado inválido (ErrInvalidTransition) de rol inválido
// (ErrForbidden) para que el handler mapee 409 vs 403.
func (t transition) check(currentState, role string) error {
	if currentState != t.from {
		return errInvalidTransition
	}
	if !t.allows(currentState, role) {
		return errForbidden
	}
	return nil
}
