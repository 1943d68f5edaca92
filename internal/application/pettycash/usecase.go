package pettycash

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cuerpodebomberos/intranet-api/internal/application/dto"
	"github.com/cuerpodebomberos/intranet-api/internal/domain"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

// UseCase administra rendiciones de caja chica.
// Ciclo: draft → pending_inspector → pending_comandante → approved | rejected.
// Cada transición exige un rol específico y queda sellada con actor y fecha.
type UseCase struct {
	repo repository.PettyCashRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.PettyCashRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create crea un borrador de rendición.
func (uc *UseCase) Create(companyID, userID string, in dto.CreateRenditionRequest) (*entity.PettyCashRendition, error) {
	if in.Period == "" || in.Amount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	r := &entity.PettyCashRendition{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		CreatedBy: userID,
		Period:    in.Period,
		Amount:    in.Amount,
		Detail:    in.Detail,
		Status:    entity.RenditionDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Submit envía el borrador a revisión del inspector. Solo el autor puede enviar.
func (uc *UseCase) Submit(companyID, userID, renditionID string) (*entity.PettyCashRendition, error) {
	r, err := uc.get(companyID, renditionID)
	if err != nil {
		return nil, err
	}
	if r.Status != entity.RenditionDraft {
		return nil, domain.ErrInvalidTransition
	}
	if r.CreatedBy != userID {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	r.Status = entity.RenditionPendingInspector
	r.SubmittedAt = &now
	r.UpdatedAt = now
	if err := uc.repo.Update(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Review aprueba la revisión de inspector y pasa la rendición al comandante.
func (uc *UseCase) Review(companyID, userID, role, renditionID string) (*entity.PettyCashRendition, error) {
	r, err := uc.get(companyID, renditionID)
	if err != nil {
		return nil, err
	}
	if r.Status != entity.RenditionPendingInspector {
		return nil, domain.ErrInvalidTransition
	}
	if role != entity.RoleInspector && role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	r.Status = entity.RenditionPendingComandante
	r.ReviewedBy = userID
	r.ReviewedAt = &now
	r.UpdatedAt = now
	if err := uc.repo.Update(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Approve resuelve la rendición (comandante).
func (uc *UseCase) Approve(companyID, userID, role, renditionID string) (*entity.PettyCashRendition, error) {
	return uc.resolve(companyID, userID, role, renditionID, entity.RenditionApproved, "")
}

// Reject rechaza la rendición con motivo obligatorio (comandante).
func (uc *UseCase) Reject(companyID, userID, role, renditionID, reason string) (*entity.PettyCashRendition, error) {
	if reason == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.resolve(companyID, userID, role, renditionID, entity.RenditionRejected, reason)
}

func (uc *UseCase) resolve(companyID, userID, role, renditionID, status, reason string) (*entity.PettyCashRendition, error) {
	r, err := uc.get(companyID, renditionID)
	if err != nil {
		return nil, err
	}
	if r.Status != entity.RenditionPendingComandante {
		return nil, domain.ErrInvalidTransition
	}
	if role != entity.RoleComandante && role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	r.Status = status
	r.ResolvedBy = userID
	r.ResolvedAt = &now
	r.RejectionReason = reason
	r.UpdatedAt = now
	if err := uc.repo.Update(r); err != nil {
		return nil, err
	}
	return r, nil
}

// GetByID devuelve una rendición de la compañía.
func (uc *UseCase) GetByID(companyID, id string) (*entity.PettyCashRendition, error) {
	return uc.get(companyID, id)
}

// List lista rendiciones, opcionalmente filtradas por estado.
func (uc *UseCase) List(companyID, status string, limit, offset int) ([]*entity.PettyCashRendition, error) {
	return uc.repo.ListByCompany(companyID, status, limit, offset)
}

func (uc *UseCase) get(companyID, id string) (*entity.PettyCashRendition, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if r.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return r, nil
}
