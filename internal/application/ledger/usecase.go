package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cuerpodebomberos/intranet-api/internal/domain"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

// ApplyMovementUseCase aplica movimientos al libro de material de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// Toda mutación de stock del sistema pasa por aquí.
type ApplyMovementUseCase struct {
	txRunner TxRunner
}

// NewApplyMovementUseCase construye el caso de uso.
func NewApplyMovementUseCase(txRunner TxRunner) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para aplicar un movimiento.
//
// Quantity se interpreta según el tipo:
//   - ADD: delta positivo; REMOVE/MAINTENANCE: magnitud que se aplica negativa.
//   - DELIVERY: magnitud que descuenta stock y suma al cargo del bombero.
//   - RECEPTION: magnitud que repone stock y descuenta del cargo.
//   - EDIT/INITIAL: saldo absoluto no negativo (el delta se deriva).
type MovementInput struct {
	CompanyID     string
	UserID        string
	MaterialID    string
	Type          string
	Quantity      int
	FirefighterID string // requerido para mantener el cargo en DELIVERY/RECEPTION
	ReferenceType string
	ReferenceID   string
	Notes         string
}

// ApplyMovement valida la entrada, abre una transacción y aplica el movimiento.
// Devuelve la fila de historial creada. Ante cualquier error no queda ningún
// cambio: ni saldo, ni historial, ni cargo.
func (uc *ApplyMovementUseCase) ApplyMovement(ctx context.Context, input MovementInput) (*entity.MaterialHistory, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	var row *entity.MaterialHistory
	err := uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		historyRepo repository.MaterialHistoryRepository,
		assignedRepo repository.AssignedMaterialRepository,
	) error {
		var err error
		row, err = ApplyInTx(materialRepo, historyRepo, assignedRepo, input, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func validate(input MovementInput) error {
	if input.MaterialID == "" || input.UserID == "" {
		return domain.ErrInvalidInput
	}
	switch input.Type {
	case entity.MovementAdd, entity.MovementRemove, entity.MovementMaintenance,
		entity.MovementDelivery, entity.MovementReception:
		if input.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	case entity.MovementEdit, entity.MovementInitial:
		if input.Quantity < 0 {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// ApplyInTx aplica un movimiento usando repositorios ya atados a la transacción
// del caller. Lo usan las actas para registrar N líneas más la cabecera en una
// sola transacción, y la mantención para descargar materiales consumidos.
//
// Bloquea la fila del material, verifica que el saldo resultante no sea
// negativo (salvo EDIT/INITIAL, que fijan saldo absoluto), actualiza el stock,
// mantiene el cargo del bombero en DELIVERY/RECEPTION y agrega la fila
// inmutable del historial con el saldo resultante.
func ApplyInTx(
	materialRepo repository.MaterialRepository,
	historyRepo repository.MaterialHistoryRepository,
	assignedRepo repository.AssignedMaterialRepository,
	input MovementInput,
	now time.Time,
) (*entity.MaterialHistory, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	material, err := materialRepo.GetForUpdate(input.MaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	if input.CompanyID != "" && material.CompanyID != input.CompanyID {
		return nil, domain.ErrForbidden
	}

	delta := deltaFor(input.Type, input.Quantity, material.StockQuantity)
	newBalance := material.StockQuantity + delta
	if newBalance < 0 {
		return nil, domain.ErrInsufficientStock
	}

	// El cargo se valida antes de escribir nada: un OverReception no debe
	// dejar saldo actualizado ni fila huérfana.
	var tally *entity.AssignedMaterial
	if input.FirefighterID != "" &&
		(input.Type == entity.MovementDelivery || input.Type == entity.MovementReception) {
		tally, err = assignedRepo.GetForUpdate(input.FirefighterID, input.MaterialID)
		if err != nil {
			return nil, err
		}
		if tally == nil {
			tally = &entity.AssignedMaterial{
				FirefighterID: input.FirefighterID,
				MaterialID:    input.MaterialID,
				CompanyID:     material.CompanyID,
			}
		}
		if input.Type == entity.MovementDelivery {
			tally.Quantity += input.Quantity
		} else {
			tally.Quantity -= input.Quantity
			if tally.Quantity < 0 {
				return nil, domain.ErrOverReception
			}
		}
		tally.UpdatedAt = now
	}

	if err := materialRepo.UpdateStock(material.ID, newBalance); err != nil {
		return nil, err
	}
	if tally != nil {
		if err := assignedRepo.Upsert(tally); err != nil {
			return nil, err
		}
	}

	row := &entity.MaterialHistory{
		ID:             uuid.New().String(),
		MaterialID:     material.ID,
		UserID:         input.UserID,
		Type:           input.Type,
		QuantityChange: delta,
		CurrentBalance: newBalance,
		ReferenceType:  input.ReferenceType,
		ReferenceID:    input.ReferenceID,
		Notes:          input.Notes,
		CreatedAt:      now,
	}
	if err := historyRepo.Create(row); err != nil {
		return nil, err
	}
	return row, nil
}

// deltaFor traduce (tipo, cantidad) al delta con signo del movimiento.
func deltaFor(movType string, quantity, currentBalance int) int {
	switch movType {
	case entity.MovementAdd, entity.MovementReception:
		return quantity
	case entity.MovementRemove, entity.MovementDelivery, entity.MovementMaintenance:
		return -quantity
	case entity.MovementEdit, entity.MovementInitial:
		return quantity - currentBalance
	}
	return 0
}
