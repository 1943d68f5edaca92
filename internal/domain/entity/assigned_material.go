package entity

import "time"

// AssignedMaterial es el cargo vigente de un material a un bombero: caché
// derivada mantenida incrementalmente por entregas y recepciones.
// Invariante: Quantity = suma con signo de entregas (+) y recepciones (−)
// del par (bombero, material), y nunca negativa.
type AssignedMaterial struct {
	FirefighterID string
	MaterialID    string
	CompanyID     string
	Quantity      int
	UpdatedAt     time.Time
}
