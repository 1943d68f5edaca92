package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

var _ repository.MaterialHistoryRepository = (*MaterialHistoryRepo)(nil)

// MaterialHistoryRepo persiste el libro de material. Las filas son inmutables:
// no hay UPDATE ni DELETE sobre esta tabla.
type MaterialHistoryRepo struct {
	q Querier
}

func NewMaterialHistoryRepository(q Querier) *MaterialHistoryRepo {
	return &MaterialHistoryRepo{q: q}
}

// Create inserta una fila del historial.
func (r *MaterialHistoryRepo) Create(row *entity.MaterialHistory) error {
	if row.ID == "" {
		row.ID = uuid.New().String()
	}
	query := `
		INSERT INTO material_history
			(id, material_id, user_id, type, quantity_change, current_balance,
			 reference_type, reference_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		row.ID, row.MaterialID, row.UserID, row.Type, row.QuantityChange,
		row.CurrentBalance, row.ReferenceType, row.ReferenceID, row.Notes, row.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create history row: %w", err)
	}
	return nil
}

// ListByMaterial lista el historial de un material, más reciente primero.
func (r *MaterialHistoryRepo) ListByMaterial(materialID string, limit, offset int) ([]*entity.MaterialHistory, error) {
	query := `
		SELECT id, material_id, user_id, type, quantity_change, current_balance,
		       reference_type, reference_id, notes, created_at
		FROM material_history
		WHERE material_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, materialID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaterialHistory
	for rows.Next() {
		var h entity.MaterialHistory
		if err := rows.Scan(
			&h.ID, &h.MaterialID, &h.UserID, &h.Type, &h.QuantityChange,
			&h.CurrentBalance, &h.ReferenceType, &h.ReferenceID, &h.Notes, &h.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
