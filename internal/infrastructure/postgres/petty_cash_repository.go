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

var _ repository.PettyCashRepository = (*PettyCashRepo)(nil)

// PettyCashRepo implementación de PettyCashRepository sobre PostgreSQL.
// Amount se mapea a NUMERIC vía el codec shopspring registrado en el pool.
type PettyCashRepo struct {
	q Querier
}

func NewPettyCashRepository(q Querier) *PettyCashRepo {
	return &PettyCashRepo{q: q}
}

const renditionColumns = `id, company_id, created_by, period, amount, detail, status, submitted_at, reviewed_by, reviewed_at, resolved_by, resolved_at, rejection_reason, created_at, updated_at`

func (r *PettyCashRepo) Create(p *entity.PettyCashRendition) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO petty_cash_renditions (` + renditionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.CompanyID, p.CreatedBy, p.Period, p.Amount, p.Detail, p.Status,
		p.SubmittedAt, p.ReviewedBy, p.ReviewedAt, p.ResolvedBy, p.ResolvedAt,
		p.RejectionReason, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create rendition: %w", err)
	}
	return nil
}

func (r *PettyCashRepo) GetByID(id string) (*entity.PettyCashRendition, error) {
	query := `SELECT ` + renditionColumns + ` FROM petty_cash_renditions WHERE id = $1`
	var p entity.PettyCashRendition
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.CreatedBy, &p.Period, &p.Amount, &p.Detail, &p.Status,
		&p.SubmittedAt, &p.ReviewedBy, &p.ReviewedAt, &p.ResolvedBy, &p.ResolvedAt,
		&p.RejectionReason, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rendition: %w", err)
	}
	return &p, nil
}

func (r *PettyCashRepo) ListByCompany(companyID, status string, limit, offset int) ([]*entity.PettyCashRendition, error) {
	query := `
		SELECT ` + renditionColumns + ` FROM petty_cash_renditions
		WHERE company_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list renditions: %w", err)
	}
	defer rows.Close()
	var list []*entity.PettyCashRendition
	for rows.Next() {
		var p entity.PettyCashRendition
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.CreatedBy, &p.Period, &p.Amount, &p.Detail, &p.Status,
			&p.SubmittedAt, &p.ReviewedBy, &p.ReviewedAt, &p.ResolvedBy, &p.ResolvedAt,
			&p.RejectionReason, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rendition: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PettyCashRepo) Update(p *entity.PettyCashRendition) error {
	query := `
		UPDATE petty_cash_renditions
		SET period = $2, amount = $3, detail = $4, status = $5, submitted_at = $6,
		    reviewed_by = $7, reviewed_at = $8, resolved_by = $9, resolved_at = $10,
		    rejection_reason = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Period, p.Amount, p.Detail, p.Status, p.SubmittedAt,
		p.ReviewedBy, p.ReviewedAt, p.ResolvedBy, p.ResolvedAt,
		p.RejectionReason, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update rendition: %w", err)
	}
	return nil
}
