package access

import (
	"strings"

	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
)

// Acciones que el middleware HTTP puede exigir sobre un módulo.
const (
	ActionView   = "view"
	ActionEdit   = "edit"
	ActionCreate = "create" // crear = editar
	ActionDelete = "delete"
)

// CanAccess informa si el usuario puede ver el módulo.
//
// Orden de resolución (gana el primer calce):
//  1. regla de rol en la tabla (admin/capitan: AllModules);
//  2. si la regla no cubre el módulo (o no hay regla), la lista explícita de
//     permisos del usuario: clave pelada, ".view" o ".edit" bastan para
//     acceder (los sufijos se evalúan de forma independiente);
//  3. sin calce: denegado.
//
// La regla es autoritativa solo sobre los módulos que declara: un nivel
// distinto de LevelNone no se puede subir ni bajar por permiso explícito, pero
// un módulo fuera de la regla sí se puede conceder de forma individual.
func (rs Ruleset) CanAccess(u *entity.User, module string) bool {
	if rule, ok := rs.match(u); ok {
		if rule.level(module) != LevelNone {
			return true
		}
	}
	return hasPermission(u.Permissions, module, "") ||
		hasPermission(u.Permissions, module, "view") ||
		hasPermission(u.Permissions, module, "edit") ||
		hasPermission(u.Permissions, module, "full")
}

// CanEdit informa si el usuario puede crear o modificar dentro del módulo.
func (rs Ruleset) CanEdit(u *entity.User, module string) bool {
	if rule, ok := rs.match(u); ok {
		switch rule.level(module) {
		case LevelEdit, LevelFull:
			return true
		case LevelView:
			return false
		}
	}
	return hasPermission(u.Permissions, module, "edit") ||
		hasPermission(u.Permissions, module, "full")
}

// CanCreate es un alias de CanEdit (contrato del resolver).
func (rs Ruleset) CanCreate(u *entity.User, module string) bool {
	return rs.CanEdit(u, module)
}

// CanDelete exige nivel full: solo mando (admin/capitan) o permiso explícito
// con sufijo ".full".
func (rs Ruleset) CanDelete(u *entity.User, module string) bool {
	if rule, ok := rs.match(u); ok {
		switch rule.level(module) {
		case LevelFull:
			return true
		case LevelView, LevelEdit:
			return false
		}
	}
	return hasPermission(u.Permissions, module, "full")
}

// Can evalúa una acción nombrada; acciones desconocidas se deniegan.
func (rs Ruleset) Can(u *entity.User, module, action string) bool {
	switch action {
	case ActionView:
		return rs.CanAccess(u, module)
	case ActionEdit, ActionCreate:
		return rs.CanEdit(u, module)
	case ActionDelete:
		return rs.CanDelete(u, module)
	}
	return false
}

// match busca la primera regla que calce con el rol del usuario y, si la regla
// declara departamento, con el departamento recortado.
func (rs Ruleset) match(u *entity.User) (Rule, bool) {
	dept := strings.TrimSpace(u.Department)
	for _, r := range rs.Rules {
		if r.Role != u.Role {
			continue
		}
		if r.Department != "" && r.Department != dept {
			continue
		}
		return r, true
	}
	return Rule{}, false
}

// level resuelve el nivel de la regla para una clave de módulo exacta.
// El acceso a una clave padre no concede las hijas.
func (r Rule) level(module string) Level {
	if r.AllModules != "" && r.AllModules != LevelNone {
		return r.AllModules
	}
	if lvl, ok := r.Modules[module]; ok {
		return lvl
	}
	return LevelNone
}

// hasPermission busca la clave en la lista explícita, con o sin sufijo.
func hasPermission(perms []string, module, suffix string) bool {
	want := module
	if suffix != "" {
		want = module + "." + suffix
	}
	for _, p := range perms {
		if p == want {
			return true
		}
	}
	return false
}
