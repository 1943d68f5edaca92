package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cuerpodebomberos/intranet-api/internal/application/dto"
	"github.com/cuerpodebomberos/intranet-api/internal/application/ledger"
	"github.com/cuerpodebomberos/intranet-api/internal/domain"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

// MaterialUseCase administración de materiales. El stock nunca se escribe
// directo: toda mutación de saldo pasa por el libro (ApplyMovementUseCase).
type MaterialUseCase struct {
	materialRepo  repository.MaterialRepository
	historyRepo   repository.MaterialHistoryRepository
	applyMovement *ledger.ApplyMovementUseCase
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(
	materialRepo repository.MaterialRepository,
	historyRepo repository.MaterialHistoryRepository,
	applyMovement *ledger.ApplyMovementUseCase,
) *MaterialUseCase {
	return &MaterialUseCase{
		materialRepo:  materialRepo,
		historyRepo:   historyRepo,
		applyMovement: applyMovement,
	}
}

// Create da de alta un material con stock cero y registra la fila INITIAL del
// libro con el stock inicial declarado.
func (uc *MaterialUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateMaterialRequest) (*entity.Material, error) {
	if in.Code == "" || in.Name == "" || in.Category == "" || in.InitialStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.materialRepo.GetByCode(companyID, in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	m := &entity.Material{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Code:         in.Code,
		Name:         in.Name,
		Brand:        in.Brand,
		Model:        in.Model,
		Category:     in.Category,
		SubFamily:    in.SubFamily,
		Condition:    in.Condition,
		SerialNumber: in.SerialNumber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.materialRepo.Create(m); err != nil {
		return nil, err
	}
	row, err := uc.applyMovement.ApplyMovement(ctx, ledger.MovementInput{
		CompanyID:  companyID,
		UserID:     userID,
		MaterialID: m.ID,
		Type:       entity.MovementInitial,
		Quantity:   in.InitialStock,
	})
	if err != nil {
		return nil, err
	}
	m.StockQuantity = row.CurrentBalance
	return m, nil
}

// Update modifica datos descriptivos (el stock no se toca aquí).
func (uc *MaterialUseCase) Update(companyID, id string, in dto.UpdateMaterialRequest) (*entity.Material, error) {
	m, err := uc.get(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Brand != nil {
		m.Brand = *in.Brand
	}
	if in.Model != nil {
		m.Model = *in.Model
	}
	if in.Category != nil {
		m.Category = *in.Category
	}
	if in.Condition != nil {
		m.Condition = *in.Condition
	}
	if in.SerialNumber != nil {
		m.SerialNumber = *in.SerialNumber
	}
	m.UpdatedAt = time.Now()
	if err := uc.materialRepo.Update(m); err != nil {
		return nil, err
	}
	return m, nil
}

// RegisterMovement aplica un movimiento manual (ADD, REMOVE o EDIT) al libro.
func (uc *MaterialUseCase) RegisterMovement(ctx context.Context, companyID, userID, materialID string, in dto.StockMovementRequest) (*entity.MaterialHistory, error) {
	switch in.Type {
	case entity.MovementAdd, entity.MovementRemove, entity.MovementEdit:
	default:
		return nil, domain.ErrInvalidInput
	}
	return uc.applyMovement.ApplyMovement(ctx, ledger.MovementInput{
		CompanyID:  companyID,
		UserID:     userID,
		MaterialID: materialID,
		Type:       in.Type,
		Quantity:   in.Quantity,
		Notes:      in.Notes,
	})
}

// GetByID devuelve un material de la compañía.
func (uc *MaterialUseCase) GetByID(companyID, id string) (*entity.Material, error) {
	return uc.get(companyID, id)
}

// ListByCompany lista materiales de la compañía.
func (uc *MaterialUseCase) ListByCompany(companyID string, limit, offset int) ([]*entity.Material, error) {
	return uc.materialRepo.ListByCompany(companyID, limit, offset)
}

// History lista el libro de un material, del más reciente al más antiguo.
func (uc *MaterialUseCase) History(companyID, materialID string, limit, offset int) ([]*entity.MaterialHistory, error) {
	if _, err := uc.get(companyID, materialID); err != nil {
		return nil, err
	}
	return uc.historyRepo.ListByMaterial(materialID, limit, offset)
}

func (uc *MaterialUseCase) get(companyID, id string) (*entity.Material, error) {
	m, err := uc.materialRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if m.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return m, nil
}
