package access_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cuerpodebomberos/intranet-api/internal/domain/access"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
)

func TestEffectivePermissions_MaquinistaRecibePaquete(t *testing.T) {
	perms := access.EffectivePermissions(entity.RoleMaquinista, nil)
	assert.Contains(t, perms, access.ModVehicleStatus+".edit")
	assert.Contains(t, perms, access.ModVehicleWorkshop+".view",
		"el taller del maquinista va en solo lectura")
	assert.NotContains(t, perms, access.ModVehicleWorkshop+".edit")
	assert.True(t, sort.StringsAreSorted(perms), "la lista debe venir ordenada")
}

func TestEffectivePermissions_MergeSinDuplicados(t *testing.T) {
	explicit := []string{
		access.ModTickets + ".edit",
		access.ModVehicleStatus + ".edit", // también está en el paquete del rol
	}
	perms := access.EffectivePermissions(entity.RoleMaquinista, explicit)

	count := 0
	for _, p := range perms {
		if p == access.ModVehicleStatus+".edit" {
			count++
		}
	}
	assert.Equal(t, 1, count, "sin duplicados tras el merge")
	assert.Contains(t, perms, access.ModTickets+".edit", "los explícitos se conservan")
}

// La función es pura: no muta la lista de entrada ni el usuario.
func TestEffectivePermissions_NoMutaLaEntrada(t *testing.T) {
	explicit := []string{access.ModTickets + ".edit"}
	before := append([]string(nil), explicit...)

	_ = access.EffectivePermissions(entity.RoleMaquinista, explicit)
	assert.Equal(t, before, explicit, "la entrada no debe mutar")

	a := access.EffectivePermissions(entity.RoleMaquinista, explicit)
	b := access.EffectivePermissions(entity.RoleMaquinista, explicit)
	assert.Equal(t, a, b, "llamadas repetidas devuelven lo mismo")
}

func TestEffectivePermissions_RolSinPaquete(t *testing.T) {
	explicit := []string{access.ModInventory + ".view"}
	perms := access.EffectivePermissions(entity.RoleGenerico, explicit)
	assert.Equal(t, explicit, perms, "sin paquete, solo los explícitos")
}
