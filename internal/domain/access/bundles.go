package access

import (
	"sort"

	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
)

// defaultBundles son los permisos implícitos que ciertos roles reciben al
// compartir la sesión con el cliente. Se calculan bajo demanda: nunca se
// persisten ni mutan al usuario.
var defaultBundles = map[string][]string{
	entity.RoleMaquinista: {
		ModVehicles + ".edit",
		ModVehicleStatus + ".edit",
		ModVehicleIncidents + ".edit",
		ModVehicleChecklist + ".edit",
		ModVehicleLogs + ".edit",
		ModVehicleInventory + ".edit",
		ModVehicleBatteries + ".edit",
		ModVehicleWorkshop + ".view",
	},
}

// EffectivePermissions devuelve la lista de permisos a compartir con el
// cliente: los explícitos del usuario más el paquete por defecto del rol,
// sin duplicados y ordenada. Función pura del (rol, permisos) de entrada.
func EffectivePermissions(role string, explicit []string) []string {
	seen := make(map[string]struct{}, len(explicit))
	out := make([]string, 0, len(explicit))
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	for _, p := range explicit {
		add(p)
	}
	for _, p := range defaultBundles[role] {
		add(p)
	}
	sort.Strings(out)
	return out
}
