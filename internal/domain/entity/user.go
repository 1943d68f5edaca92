package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleCapitan    = "capitan"
	RoleComandante = "comandante"
	RoleInspector  = "inspector"
	RoleMecanico   = "mecanico"
	RoleCuartelero = "cuartelero"
	RoleMaquinista = "maquinista"
	RoleGenerico   = "generico"
)

// Departamentos de inspectoría reconocidos por el resolver de acceso.
// El campo Department es texto libre; solo es significativo para RoleInspector.
const (
	DeptMaterialMayor = "Material Mayor"
	DeptMaterialMenor = "Material Menor"
)

// User representa un usuario de la intranet (pertenece a una Company).
// Permissions contiene claves de módulo, opcionalmente con sufijo
// ".view", ".edit" o ".full" (ver internal/domain/access).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string
	Department   string // texto libre; se recorta antes de comparar
	Permissions  []string
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
