package entity

import "time"

// Tipos de acta.
const (
	CertificateDelivery  = "delivery"
	CertificateReception = "reception"
)

// Tipos de asignación de un acta.
const (
	AssignmentPersonal = "personal" // cargo personal del bombero
	AssignmentUnidad   = "unidad"   // asignado a una unidad/carro
	AssignmentOtro     = "otro"
)

// Certificate es la cabecera de un acta de entrega o recepción de material.
// Una entrega descuenta stock (una fila DELIVERY por ítem); una recepción
// hace lo inverso (RECEPTION).
type Certificate struct {
	ID             string
	CompanyID      string
	Type           string // delivery | reception
	FirefighterID  string // bombero receptor/devolvente; vacío si AssigneeName aplica
	AssigneeName   string // destinatario externo (texto libre)
	AssignmentType string
	IssuedByID     string // usuario que emite el acta
	Date           time.Time
	Notes          string
	Items          []CertificateItem // líneas ordenadas
	CreatedAt      time.Time
}

// CertificateItem es una línea del acta (material y cantidad, siempre positiva).
type CertificateItem struct {
	ID            string
	CertificateID string
	MaterialID    string
	Quantity      int
	Position      int // respeta el orden del request
}
