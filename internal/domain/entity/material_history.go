package entity

import "time"

// Tipos de movimiento del libro de material.
const (
	MovementInitial     = "INITIAL"     // alta inicial (saldo absoluto)
	MovementAdd         = "ADD"         // entrada manual
	MovementRemove      = "REMOVE"      // salida manual
	MovementDelivery    = "DELIVERY"    // acta de entrega (delta negativo)
	MovementReception   = "RECEPTION"   // acta de recepción (delta positivo)
	MovementMaintenance = "MAINTENANCE" // consumo en mantención
	MovementEdit        = "EDIT"        // corrección de saldo (saldo absoluto)
)

// Tipos de referencia polimórfica de una fila del historial.
const (
	RefDeliveryCertificate  = "delivery_certificate"
	RefReceptionCertificate = "reception_certificate"
	RefVehicleMaintenance   = "vehicle_maintenance"
)

// MaterialHistory es una fila inmutable del libro de material: se crea una vez
// por operación mutadora y nunca se actualiza ni borra. Ordenadas por creación,
// las filas de un material forman una suma de prefijos cuyo valor final es el
// StockQuantity vivo del material.
type MaterialHistory struct {
	ID             string
	MaterialID     string
	UserID         string // actor
	Type           string
	QuantityChange int // delta con signo
	CurrentBalance int // saldo resultante tras aplicar esta fila
	ReferenceType  string // unión etiquetada {ReferenceType, ReferenceID}; vacío = sin referencia
	ReferenceID    string
	Notes          string
	CreatedAt      time.Time
}
