package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialColumns = `id, company_id, code, name, brand, model, category, sub_family, condition, serial_number, stock_quantity, created_at, updated_at`

// Create persiste un material.
func (r *MaterialRepo) Create(m *entity.Material) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO materials (` + materialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.CompanyID, m.Code, m.Name, m.Brand, m.Model, m.Category,
		m.SubFamily, m.Condition, m.SerialNumber, m.StockQuantity, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create material: código duplicado %s", m.Code)
		}
		return fmt.Errorf("create material: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCode obtiene un material por código dentro de una compañía.
func (r *MaterialRepo) GetByCode(companyID, code string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE company_id = $1 AND code = $2`
	return r.scanOne(query, companyID, code)
}

// GetForUpdate bloquea la fila del material (SELECT FOR UPDATE). Solo tiene
// sentido dentro de una transacción.
func (r *MaterialRepo) GetForUpdate(id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// ListByCompany lista materiales de una compañía.
func (r *MaterialRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Material, error) {
	query := `
		SELECT ` + materialColumns + ` FROM materials
		WHERE company_id = $1 ORDER BY code LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Update persiste los datos descriptivos del material (no el stock).
func (r *MaterialRepo) Update(m *entity.Material) error {
	query := `
		UPDATE materials
		SET name = $2, brand = $3, model = $4, category = $5, condition = $6,
		    serial_number = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Brand, m.Model, m.Category, m.Condition, m.SerialNumber, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// UpdateStock fija el saldo vivo. Solo lo llama el libro, dentro de la
// transacción que también escribe la fila de historial.
func (r *MaterialRepo) UpdateStock(id string, quantity int) error {
	query := `UPDATE materials SET stock_quantity = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// NextCodeSequence devuelve el siguiente correlativo para códigos con el
// prefijo dado dentro de la compañía (1-based).
func (r *MaterialRepo) NextCodeSequence(companyID, prefix string) (int, error) {
	query := `
		SELECT COUNT(*) FROM materials
		WHERE company_id = $1 AND code LIKE $2 || '-%'`
	var count int
	if err := r.q.QueryRow(context.Background(), query, companyID, prefix).Scan(&count); err != nil {
		return 0, fmt.Errorf("next code sequence: %w", err)
	}
	return count + 1, nil
}

func (r *MaterialRepo) scanOne(query string, args ...any) (*entity.Material, error) {
	m, err := scanMaterial(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMaterial(row rowScanner) (*entity.Material, error) {
	var m entity.Material
	err := row.Scan(
		&m.ID, &m.CompanyID, &m.Code, &m.Name, &m.Brand, &m.Model, &m.Category,
		&m.SubFamily, &m.Condition, &m.SerialNumber, &m.StockQuantity, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan material: %w", err)
	}
	return &m, nil
}
