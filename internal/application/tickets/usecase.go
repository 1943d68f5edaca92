package tickets

import (
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/cuerpodebomberos/intranet-api/internal/application/dto"
	"github.com/cuerpodebomberos/intranet-api/internal/domain"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

// FileStore guarda adjuntos de forma síncrona dentro del request.
// Devuelve la ruta relativa con la que quedó almacenado el archivo.
type FileStore interface {
	Save(filename string, r io.Reader) (string, error)
}

// UseCase administra tickets de soporte.
type UseCase struct {
	repo  repository.TicketRepository
	files FileStore
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.TicketRepository, files FileStore) *UseCase {
	return &UseCase{repo: repo, files: files}
}

// Create abre un ticket; si attachment no es nil, el archivo se guarda antes
// de persistir (sin pipeline asíncrono).
func (uc *UseCase) Create(companyID, userID string, in dto.CreateTicketRequest, attachmentName string, attachment io.Reader) (*entity.Ticket, error) {
	if in.Subject == "" {
		return nil, domain.ErrInvalidInput
	}
	var attachmentPath string
	if attachment != nil {
		path, err := uc.files.Save(attachmentName, attachment)
		if err != nil {
			return nil, err
		}
		attachmentPath = path
	}
	now := time.Now()
	t := &entity.Ticket{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		CreatedBy:      userID,
		Subject:        in.Subject,
		Description:    in.Description,
		Status:         entity.TicketOpen,
		AttachmentPath: attachmentPath,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Assign toma el ticket: open → in_progress.
func (uc *UseCase) Assign(companyID, assigneeID, ticketID string) (*entity.Ticket, error) {
	t, err := uc.get(companyID, ticketID)
	if err != nil {
		return nil, err
	}
	if t.Status != entity.TicketOpen {
		return nil, domain.ErrInvalidTransition
	}
	t.Status = entity.TicketInProgress
	t.AssignedTo = assigneeID
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Close cierra el ticket: in_progress → closed.
func (uc *UseCase) Close(companyID, ticketID string) (*entity.Ticket, error) {
	t, err := uc.get(companyID, ticketID)
	if err != nil {
		return nil, err
	}
	if t.Status != entity.TicketInProgress {
		return nil, domain.ErrInvalidTransition
	}
	t.Status = entity.TicketClosed
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetByID devuelve un ticket de la compañía.
func (uc *UseCase) GetByID(companyID, id string) (*entity.Ticket, error) {
	return uc.get(companyID, id)
}

// List lista tickets, opcionalmente filtrados por estado.
func (uc *UseCase) List(companyID, status string, limit, offset int) ([]*entity.Ticket, error) {
	return uc.repo.ListByCompany(companyID, status, limit, offset)
}

func (uc *UseCase) get(companyID, id string) (*entity.Ticket, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if t.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return t, nil
}
