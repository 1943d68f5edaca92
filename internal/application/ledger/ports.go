package ledger

import (
	"context"

	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad del libro de material:
// saldo, fila de historial y cargo se escriben juntos o no se escriben.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		materialRepo repository.MaterialRepository,
		historyRepo repository.MaterialHistoryRepository,
		assignedRepo repository.AssignedMaterialRepository,
	) error) error
}
