package entity

import "time"

// Estados de un ticket de soporte.
const (
	TicketOpen       = "open"
	TicketInProgress = "in_progress"
	TicketClosed     = "closed"
)

// Ticket es una solicitud de soporte interna. El adjunto (si existe) se
// guarda sincrónicamente como parte del request.
type Ticket struct {
	ID             string
	CompanyID      string
	CreatedBy      string
	AssignedTo     string
	Subject        string
	Description    string
	Status         string
	AttachmentPath string // ruta relativa en el almacenamiento local; vacío = sin adjunto
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
