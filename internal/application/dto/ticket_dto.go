package dto

import "time"

// CreateTicketRequest alta de ticket. El adjunto llega como multipart y se
// guarda sincrónicamente dentro del mismo request.
type CreateTicketRequest struct {
	Subject     string `json:"subject" form:"subject"`
	Description string `json:"description" form:"description"`
}

// TicketResponse representación pública del ticket.
type TicketResponse struct {
	ID             string    `json:"id"`
	CompanyID      string    `json:"company_id"`
	CreatedBy      string    `json:"created_by"`
	AssignedTo     string    `json:"assigned_to,omitempty"`
	Subject        string    `json:"subject"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	AttachmentPath string    `json:"attachment_path,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
