// Package access implementa el resolver de permisos de la intranet sobre una
// única tabla de reglas autoritativa. La misma tabla que evalúa el servidor se
// sirve como datos al front-end (GET /api/access/rules), de modo que no existen
// dos copias sincronizadas a mano.
package access

import "github.com/cuerpodebomberos/intranet-api/internal/domain/entity"

// Level es el nivel de acceso que una regla concede sobre un módulo.
type Level string

const (
	LevelNone Level = "none"
	LevelView Level = "view" // solo lectura
	LevelEdit Level = "edit" // lectura + escritura (crear = editar)
	LevelFull Level = "full" // lectura + escritura + borrado
)

// Claves de módulo (jerarquía con puntos). El acceso a una clave padre no
// concede las hijas: cada regla enumera explícitamente sus módulos.
const (
	ModVehicles          = "vehicles"
	ModVehicleStatus     = "vehicles.status"
	ModVehicleIncidents  = "vehicles.incidents"
	ModVehicleWorkshop   = "vehicles.workshop"
	ModVehicleChecklist  = "vehicles.checklist"
	ModVehicleLogs       = "vehicles.logs"
	ModVehicleInventory  = "vehicles.inventory"
	ModVehicleBatteries  = "vehicles.batteries"
	ModInventory         = "inventory"
	ModTickets           = "tickets"
	ModBatteries         = "batteries"
	ModDeliveries        = "deliveries"
	ModReception         = "reception"
	ModEquipment         = "equipment"
	ModPettyCash         = "pettycash"
	ModUsers             = "users"
)

// Rule es una fila de la tabla: si el rol (y el departamento, cuando aplica)
// del usuario calzan, la regla resuelve y no se evalúan las siguientes.
type Rule struct {
	Role       string           `json:"role"`
	Department string           `json:"department,omitempty"` // solo significativo para inspector
	AllModules Level            `json:"all_modules,omitempty"` // nivel para cualquier clave de módulo
	Modules    map[string]Level `json:"modules,omitempty"`
}

// Ruleset es la tabla completa, en orden de resolución.
type Ruleset struct {
	Rules []Rule `json:"rules"`
}

// Default devuelve la tabla autoritativa de reglas. El orden importa:
// la primera regla cuyo rol/departamento calce gana.
func Default() Ruleset {
	return Ruleset{Rules: []Rule{
		// 1. Mando: acceso total a todo módulo, presente o futuro.
		{Role: entity.RoleAdmin, AllModules: LevelFull},
		{Role: entity.RoleCapitan, AllModules: LevelFull},

		// 2. Listas implícitas por rol.
		{Role: entity.RoleCuartelero, Modules: vehicleModules(LevelEdit)},
		{Role: entity.RoleMecanico, Modules: vehicleModules(LevelEdit)},
		{Role: entity.RoleMaquinista, Modules: map[string]Level{
			ModVehicles:         LevelEdit,
			ModVehicleStatus:    LevelEdit,
			ModVehicleIncidents: LevelEdit,
			ModVehicleChecklist: LevelEdit,
			ModVehicleLogs:      LevelEdit,
			ModVehicleInventory: LevelEdit,
			ModVehicleBatteries: LevelEdit,
			ModVehicleWorkshop:  LevelView, // taller solo lectura para maquinista
		}},

		// 3. Inspectores, según departamento (comparado tras recortar espacios).
		{Role: entity.RoleInspector, Department: entity.DeptMaterialMayor, Modules: map[string]Level{
			ModVehicles:         LevelView,
			ModVehicleStatus:    LevelEdit,
			ModVehicleIncidents: LevelEdit,
			ModVehicleInventory: LevelEdit,
			ModVehicleWorkshop:  LevelView,
			ModVehicleChecklist: LevelView,
			ModVehicleLogs:      LevelView,
		}},
		{Role: entity.RoleInspector, Department: entity.DeptMaterialMenor, Modules: map[string]Level{
			ModInventory:  LevelEdit,
			ModTickets:    LevelEdit,
			ModBatteries:  LevelEdit,
			ModDeliveries: LevelEdit,
			ModReception:  LevelEdit,
			ModEquipment:  LevelEdit,
		}},
	}}
}

func vehicleModules(lvl Level) map[string]Level {
	return map[string]Level{
		ModVehicles:         lvl,
		ModVehicleStatus:    lvl,
		ModVehicleIncidents: lvl,
		ModVehicleWorkshop:  lvl,
		ModVehicleChecklist: lvl,
		ModVehicleLogs:      lvl,
		ModVehicleInventory: lvl,
		ModVehicleBatteries: lvl,
	}
}
