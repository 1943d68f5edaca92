package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cuerpodebomberos/intranet-api/internal/domain/access"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
)

func user(role, department string, perms ...string) *entity.User {
	return &entity.User{
		ID:          "u-1",
		Role:        role,
		Department:  department,
		Permissions: perms,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas de rol
// ──────────────────────────────────────────────────────────────────────────────

// Admin y capitán acceden a todo módulo, incluso a claves que no existían
// cuando se escribió la tabla.
func TestResolver_MandoAccedeATodo(t *testing.T) {
	rs := access.Default()
	for _, role := range []string{entity.RoleAdmin, entity.RoleCapitan} {
		u := user(role, "")
		assert.True(t, rs.CanAccess(u, access.ModInventory), "%s debe ver inventory", role)
		assert.True(t, rs.CanEdit(u, access.ModPettyCash), "%s debe editar pettycash", role)
		assert.True(t, rs.CanDelete(u, access.ModTickets), "%s debe borrar en tickets", role)
		assert.True(t, rs.CanAccess(u, "modulo.futuro"), "%s debe ver módulos futuros", role)
	}
}

func TestResolver_CuarteleroYMecanicoEditanVehiculos(t *testing.T) {
	rs := access.Default()
	for _, role := range []string{entity.RoleCuartelero, entity.RoleMecanico} {
		u := user(role, "")
		assert.True(t, rs.CanEdit(u, access.ModVehicleWorkshop), "%s debe editar taller", role)
		assert.True(t, rs.CanEdit(u, access.ModVehicleChecklist), "%s debe editar revisiones", role)
		assert.False(t, rs.CanAccess(u, access.ModInventory), "%s no debe ver inventario", role)
		assert.False(t, rs.CanDelete(u, access.ModVehicles), "edit no alcanza para borrar")
	}
}

// El maquinista edita los módulos vehiculares pero el taller le queda en solo
// lectura.
func TestResolver_MaquinistaTallerSoloLectura(t *testing.T) {
	rs := access.Default()
	u := user(entity.RoleMaquinista, "")
	assert.True(t, rs.CanEdit(u, access.ModVehicleStatus))
	assert.True(t, rs.CanAccess(u, access.ModVehicleWorkshop), "el taller sí se ve")
	assert.False(t, rs.CanEdit(u, access.ModVehicleWorkshop), "el taller no se edita")
}

// ──────────────────────────────────────────────────────────────────────────────
// Inspectores por departamento
// ──────────────────────────────────────────────────────────────────────────────

func TestResolver_InspectorMaterialMenor(t *testing.T) {
	rs := access.Default()
	u := user(entity.RoleInspector, entity.DeptMaterialMenor)
	assert.True(t, rs.CanEdit(u, access.ModInventory))
	assert.True(t, rs.CanEdit(u, access.ModTickets))
	assert.True(t, rs.CanEdit(u, access.ModDeliveries))
	assert.False(t, rs.CanAccess(u, access.ModVehicles), "material menor no ve vehículos")
}

func TestResolver_InspectorMaterialMayor(t *testing.T) {
	rs := access.Default()
	u := user(entity.RoleInspector, entity.DeptMaterialMayor)
	assert.True(t, rs.CanEdit(u, access.ModVehicleStatus))
	assert.True(t, rs.CanAccess(u, access.ModVehicleWorkshop))
	assert.False(t, rs.CanEdit(u, access.ModVehicleWorkshop), "taller solo lectura")
	assert.False(t, rs.CanAccess(u, access.ModTickets), "material mayor no ve tickets")
}

// El departamento se compara tras recortar espacios: " Material Menor " calza.
func TestResolver_DepartamentoConEspacios(t *testing.T) {
	rs := access.Default()
	u := user(entity.RoleInspector, "  Material Menor  ")
	assert.True(t, rs.CanEdit(u, access.ModInventory),
		"el departamento debe recortarse antes de comparar")
}

// Un inspector con departamento desconocido no calza ninguna regla y cae a sus
// permisos explícitos.
func TestResolver_InspectorDepartamentoDesconocido(t *testing.T) {
	rs := access.Default()
	u := user(entity.RoleInspector, "Secretaría", access.ModTickets+".view")
	assert.True(t, rs.CanAccess(u, access.ModTickets))
	assert.False(t, rs.CanEdit(u, access.ModTickets))
	assert.False(t, rs.CanAccess(u, access.ModInventory))
}

// ──────────────────────────────────────────────────────────────────────────────
// Permisos explícitos
// ──────────────────────────────────────────────────────────────────────────────

// Los sufijos se evalúan de forma independiente: ".edit" no implica ".view" en
// la lista, pero sí basta para poder acceder.
func TestResolver_SufijosIndependientes(t *testing.T) {
	rs := access.Default()

	soloEdit := user(entity.RoleGenerico, "", access.ModTickets+".edit")
	assert.True(t, rs.CanAccess(soloEdit, access.ModTickets), "edit permite acceder")
	assert.True(t, rs.CanEdit(soloEdit, access.ModTickets))
	assert.False(t, rs.CanDelete(soloEdit, access.ModTickets), "edit no permite borrar")

	soloView := user(entity.RoleGenerico, "", access.ModTickets+".view")
	assert.True(t, rs.CanAccess(soloView, access.ModTickets))
	assert.False(t, rs.CanEdit(soloView, access.ModTickets), "view no permite editar")

	pelado := user(entity.RoleGenerico, "", access.ModTickets)
	assert.True(t, rs.CanAccess(pelado, access.ModTickets), "clave pelada permite acceder")
	assert.False(t, rs.CanEdit(pelado, access.ModTickets))
}

// La regla de rol acota lo implícito, no veta lo explícito: un módulo que la
// regla no declara puede concederse de forma individual. Un inspector de
// Material Menor con "pettycash.edit" puede despachar la etapa de caja chica.
func TestResolver_PermisoExplicitoComplementaRegla(t *testing.T) {
	rs := access.Default()

	u := user(entity.RoleInspector, entity.DeptMaterialMenor, access.ModPettyCash+".edit")
	assert.True(t, rs.CanAccess(u, access.ModPettyCash))
	assert.True(t, rs.CanEdit(u, access.ModPettyCash))
	assert.False(t, rs.CanDelete(u, access.ModPettyCash), "edit explícito no borra")

	soloVista := user(entity.RoleMaquinista, "", access.ModInventory+".view")
	assert.True(t, rs.CanAccess(soloVista, access.ModInventory))
	assert.False(t, rs.CanEdit(soloVista, access.ModInventory))
}

// Donde la regla sí declara el módulo, su nivel manda: un permiso explícito no
// sube lectura a edición.
func TestResolver_PermisoExplicitoNoElevaNivelDeRegla(t *testing.T) {
	rs := access.Default()
	u := user(entity.RoleMaquinista, "", access.ModVehicleWorkshop+".edit")
	assert.True(t, rs.CanAccess(u, access.ModVehicleWorkshop))
	assert.False(t, rs.CanEdit(u, access.ModVehicleWorkshop),
		"la regla deja el taller en solo lectura")
}

func TestResolver_DeleteExigeFull(t *testing.T) {
	rs := access.Default()
	u := user(entity.RoleGenerico, "", access.ModInventory+".full")
	assert.True(t, rs.CanDelete(u, access.ModInventory))
	assert.True(t, rs.CanEdit(u, access.ModInventory), "full incluye editar")
	assert.True(t, rs.CanAccess(u, access.ModInventory), "full incluye ver")
}

// CanCreate es exactamente CanEdit.
func TestResolver_CrearEsEditar(t *testing.T) {
	rs := access.Default()
	users := []*entity.User{
		user(entity.RoleAdmin, ""),
		user(entity.RoleMaquinista, ""),
		user(entity.RoleInspector, entity.DeptMaterialMenor),
		user(entity.RoleGenerico, "", access.ModTickets+".edit"),
		user(entity.RoleGenerico, ""),
	}
	modules := []string{access.ModInventory, access.ModTickets, access.ModVehicleWorkshop}
	for _, u := range users {
		for _, mod := range modules {
			assert.Equal(t, rs.CanEdit(u, mod), rs.CanCreate(u, mod),
				"crear y editar deben resolver igual para rol %s en %s", u.Role, mod)
		}
	}
}

// La clave padre no concede las hijas ni al revés.
func TestResolver_SinHerenciaJerarquica(t *testing.T) {
	rs := access.Default()
	padre := user(entity.RoleGenerico, "", access.ModVehicles+".edit")
	assert.True(t, rs.CanEdit(padre, access.ModVehicles))
	assert.False(t, rs.CanAccess(padre, access.ModVehicleStatus),
		"vehicles no concede vehicles.status")
}

func TestResolver_SinCalceNiPermisos_Denegado(t *testing.T) {
	rs := access.Default()
	u := user(entity.RoleGenerico, "")
	assert.False(t, rs.CanAccess(u, access.ModInventory))
	assert.False(t, rs.CanEdit(u, access.ModInventory))
	assert.False(t, rs.CanDelete(u, access.ModInventory))
}

func TestResolver_AccionDesconocidaDenegada(t *testing.T) {
	rs := access.Default()
	u := user(entity.RoleAdmin, "")
	assert.False(t, rs.Can(u, access.ModInventory, "export"),
		"las acciones desconocidas se deniegan incluso para admin")
}
