package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

var _ repository.CertificateRepository = (*CertificateRepo)(nil)

// CertificateRepo persiste actas (cabecera + líneas).
type CertificateRepo struct {
	q Querier
}

func NewCertificateRepository(q Querier) *CertificateRepo {
	return &CertificateRepo{q: q}
}

// Create inserta la cabecera y todas sus líneas. Pensado para ejecutarse
// dentro de la transacción del acta.
func (r *CertificateRepo) Create(cert *entity.Certificate) error {
	ctx := context.Background()
	header := `
		INSERT INTO certificates
			(id, company_id, type, firefighter_id, assignee_name, assignment_type,
			 issued_by_id, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, header,
		cert.ID, cert.CompanyID, cert.Type, cert.FirefighterID, cert.AssigneeName,
		cert.AssignmentType, cert.IssuedByID, cert.Date, cert.Notes, cert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}
	line := `
		INSERT INTO certificate_items (id, certificate_id, material_id, quantity, position)
		VALUES ($1, $2, $3, $4, $5)`
	for _, it := range cert.Items {
		if _, err := r.q.Exec(ctx, line, it.ID, it.CertificateID, it.MaterialID, it.Quantity, it.Position); err != nil {
			return fmt.Errorf("create certificate item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un acta con sus líneas ordenadas por posición.
func (r *CertificateRepo) GetByID(id string) (*entity.Certificate, error) {
	ctx := context.Background()
	query := `
		SELECT id, company_id, type, firefighter_id, assignee_name, assignment_type,
		       issued_by_id, date, notes, created_at
		FROM certificates WHERE id = $1`
	var c entity.Certificate
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.CompanyID, &c.Type, &c.FirefighterID, &c.AssigneeName,
		&c.AssignmentType, &c.IssuedByID, &c.Date, &c.Notes, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get certificate: %w", err)
	}
	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Items = items
	return &c, nil
}

// ListByCompany lista actas de una compañía, opcionalmente por tipo.
// Las cabeceras del listado no cargan líneas.
func (r *CertificateRepo) ListByCompany(companyID, certType string, limit, offset int) ([]*entity.Certificate, error) {
	query := `
		SELECT id, company_id, type, firefighter_id, assignee_name, assignment_type,
		       issued_by_id, date, notes, created_at
		FROM certificates
		WHERE company_id = $1 AND ($2 = '' OR type = $2)
		ORDER BY date DESC, created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, certType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	defer rows.Close()
	var list []*entity.Certificate
	for rows.Next() {
		var c entity.Certificate
		if err := rows.Scan(
			&c.ID, &c.CompanyID, &c.Type, &c.FirefighterID, &c.AssigneeName,
			&c.AssignmentType, &c.IssuedByID, &c.Date, &c.Notes, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan certificate: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CertificateRepo) listItems(ctx context.Context, certificateID string) ([]entity.CertificateItem, error) {
	query := `
		SELECT id, certificate_id, material_id, quantity, position
		FROM certificate_items
		WHERE certificate_id = $1
		ORDER BY position`
	rows, err := r.q.Query(ctx, query, certificateID)
	if err != nil {
		return nil, fmt.Errorf("list certificate items: %w", err)
	}
	defer rows.Close()
	var items []entity.CertificateItem
	for rows.Next() {
		var it entity.CertificateItem
		if err := rows.Scan(&it.ID, &it.CertificateID, &it.MaterialID, &it.Quantity, &it.Position); err != nil {
			return nil, fmt.Errorf("scan certificate item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
