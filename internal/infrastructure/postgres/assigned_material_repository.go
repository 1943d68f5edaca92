package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

var _ repository.AssignedMaterialRepository = (*AssignedMaterialRepo)(nil)

// AssignedMaterialRepo persiste el cargo vigente por (bombero, material).
type AssignedMaterialRepo struct {
	q Querier
}

func NewAssignedMaterialRepository(q Querier) *AssignedMaterialRepo {
	return &AssignedMaterialRepo{q: q}
}

// GetForUpdate bloquea la fila del cargo dentro de la transacción.
// Devuelve nil si el par no tiene cargo registrado.
func (r *AssignedMaterialRepo) GetForUpdate(firefighterID, materialID string) (*entity.AssignedMaterial, error) {
	query := `
		SELECT firefighter_id, material_id, company_id, quantity, updated_at
		FROM assigned_materials
		WHERE firefighter_id = $1 AND material_id = $2
		FOR UPDATE`
	var t entity.AssignedMaterial
	err := r.q.QueryRow(context.Background(), query, firefighterID, materialID).Scan(
		&t.FirefighterID, &t.MaterialID, &t.CompanyID, &t.Quantity, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assigned material: %w", err)
	}
	return &t, nil
}

// Upsert crea o reemplaza el cargo del par (bombero, material).
func (r *AssignedMaterialRepo) Upsert(tally *entity.AssignedMaterial) error {
	query := `
		INSERT INTO assigned_materials (firefighter_id, material_id, company_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (firefighter_id, material_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		tally.FirefighterID, tally.MaterialID, tally.CompanyID, tally.Quantity, tally.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert assigned material: %w", err)
	}
	return nil
}

// ListByFirefighter lista el cargo vigente de un bombero (solo cantidades > 0).
func (r *AssignedMaterialRepo) ListByFirefighter(firefighterID string) ([]*entity.AssignedMaterial, error) {
	query := `
		SELECT firefighter_id, material_id, company_id, quantity, updated_at
		FROM assigned_materials
		WHERE firefighter_id = $1 AND quantity > 0
		ORDER BY material_id`
	rows, err := r.q.Query(context.Background(), query, firefighterID)
	if err != nil {
		return nil, fmt.Errorf("list assigned materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.AssignedMaterial
	for rows.Next() {
		var t entity.AssignedMaterial
		if err := rows.Scan(&t.FirefighterID, &t.MaterialID, &t.CompanyID, &t.Quantity, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan assigned material: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
