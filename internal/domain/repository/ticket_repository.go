package repository

import "github.com/cuerpodebomberos/intranet-api/internal/domain/entity"

// TicketRepository define el puerto de persistencia para tickets de soporte.
type TicketRepository interface {
	Create(ticket *entity.Ticket) error
	GetByID(id string) (*entity.Ticket, error)
	ListByCompany(companyID, status string, limit, offset int) ([]*entity.Ticket, error)
	Update(ticket *entity.Ticket) error
}
