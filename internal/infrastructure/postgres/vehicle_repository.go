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

var (
	_ repository.VehicleRepository            = (*VehicleRepo)(nil)
	_ repository.VehicleIssueRepository       = (*VehicleIssueRepo)(nil)
	_ repository.VehicleMaintenanceRepository = (*VehicleMaintenanceRepo)(nil)
	_ repository.VehicleChecklistRepository   = (*VehicleChecklistRepo)(nil)
)

// VehicleRepo implementación de VehicleRepository sobre PostgreSQL.
type VehicleRepo struct {
	q Querier
}

func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

const vehicleColumns = `id, company_id, denomination, brand, model, year, plate, status, created_at, updated_at`

func (r *VehicleRepo) Create(v *entity.Vehicle) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	query := `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.CompanyID, v.Denomination, v.Brand, v.Model, v.Year, v.Plate,
		v.Status, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create vehicle: denominación duplicada %s", v.Denomination)
		}
		return fmt.Errorf("create vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	var v entity.Vehicle
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.CompanyID, &v.Denomination, &v.Brand, &v.Model, &v.Year,
		&v.Plate, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return &v, nil
}

func (r *VehicleRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + ` FROM vehicles
		WHERE company_id = $1 ORDER BY denomination LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		var v entity.Vehicle
		if err := rows.Scan(
			&v.ID, &v.CompanyID, &v.Denomination, &v.Brand, &v.Model, &v.Year,
			&v.Plate, &v.Status, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

func (r *VehicleRepo) Update(v *entity.Vehicle) error {
	query := `
		UPDATE vehicles
		SET denomination = $2, brand = $3, model = $4, year = $5, plate = $6,
		    status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Denomination, v.Brand, v.Model, v.Year, v.Plate, v.Status, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	return nil
}

// VehicleIssueRepo persiste novedades de vehículos.
type VehicleIssueRepo struct {
	q Querier
}

func NewVehicleIssueRepository(q Querier) *VehicleIssueRepo {
	return &VehicleIssueRepo{q: q}
}

const issueColumns = `id, vehicle_id, company_id, reported_by, title, description, status, reviewed_by, reviewed_at, resolved_by, resolved_at, created_at`

func (r *VehicleIssueRepo) Create(i *entity.VehicleIssue) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	query := `
		INSERT INTO vehicle_issues (` + issueColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.VehicleID, i.CompanyID, i.ReportedBy, i.Title, i.Description,
		i.Status, i.ReviewedBy, i.ReviewedAt, i.ResolvedBy, i.ResolvedAt, i.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create vehicle issue: %w", err)
	}
	return nil
}

func (r *VehicleIssueRepo) GetByID(id string) (*entity.VehicleIssue, error) {
	query := `SELECT ` + issueColumns + ` FROM vehicle_issues WHERE id = $1`
	var i entity.VehicleIssue
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.VehicleID, &i.CompanyID, &i.ReportedBy, &i.Title, &i.Description,
		&i.Status, &i.ReviewedBy, &i.ReviewedAt, &i.ResolvedBy, &i.ResolvedAt, &i.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle issue: %w", err)
	}
	return &i, nil
}

func (r *VehicleIssueRepo) ListByVehicle(vehicleID string, limit, offset int) ([]*entity.VehicleIssue, error) {
	query := `
		SELECT ` + issueColumns + ` FROM vehicle_issues
		WHERE vehicle_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, vehicleID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vehicle issues: %w", err)
	}
	defer rows.Close()
	var list []*entity.VehicleIssue
	for rows.Next() {
		var i entity.VehicleIssue
		if err := rows.Scan(
			&i.ID, &i.VehicleID, &i.CompanyID, &i.ReportedBy, &i.Title, &i.Description,
			&i.Status, &i.ReviewedBy, &i.ReviewedAt, &i.ResolvedBy, &i.ResolvedAt, &i.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vehicle issue: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

func (r *VehicleIssueRepo) Update(i *entity.VehicleIssue) error {
	query := `
		UPDATE vehicle_issues
		SET status = $2, reviewed_by = $3, reviewed_at = $4, resolved_by = $5, resolved_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.Status, i.ReviewedBy, i.ReviewedAt, i.ResolvedBy, i.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("update vehicle issue: %w", err)
	}
	return nil
}

// VehicleMaintenanceRepo persiste órdenes de mantención.
type VehicleMaintenanceRepo struct {
	q Querier
}

func NewVehicleMaintenanceRepository(q Querier) *VehicleMaintenanceRepo {
	return &VehicleMaintenanceRepo{q: q}
}

const maintenanceColumns = `id, vehicle_id, company_id, opened_by, description, status, completed_by, completed_at, created_at`

func (r *VehicleMaintenanceRepo) Create(m *entity.VehicleMaintenance) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO vehicle_maintenances (` + maintenanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.VehicleID, m.CompanyID, m.OpenedBy, m.Description, m.Status,
		m.CompletedBy, m.CompletedAt, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create maintenance: %w", err)
	}
	return nil
}

func (r *VehicleMaintenanceRepo) GetByID(id string) (*entity.VehicleMaintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM vehicle_maintenances WHERE id = $1`
	var m entity.VehicleMaintenance
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.VehicleID, &m.CompanyID, &m.OpenedBy, &m.Description, &m.Status,
		&m.CompletedBy, &m.CompletedAt, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get maintenance: %w", err)
	}
	return &m, nil
}

func (r *VehicleMaintenanceRepo) ListByVehicle(vehicleID string, limit, offset int) ([]*entity.VehicleMaintenance, error) {
	query := `
		SELECT ` + maintenanceColumns + ` FROM vehicle_maintenances
		WHERE vehicle_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, vehicleID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list maintenances: %w", err)
	}
	defer rows.Close()
	var list []*entity.VehicleMaintenance
	for rows.Next() {
		var m entity.VehicleMaintenance
		if err := rows.Scan(
			&m.ID, &m.VehicleID, &m.CompanyID, &m.OpenedBy, &m.Description, &m.Status,
			&m.CompletedBy, &m.CompletedAt, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan maintenance: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *VehicleMaintenanceRepo) Update(m *entity.VehicleMaintenance) error {
	query := `
		UPDATE vehicle_maintenances
		SET description = $2, status = $3, completed_by = $4, completed_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Description, m.Status, m.CompletedBy, m.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("update maintenance: %w", err)
	}
	return nil
}

// VehicleChecklistRepo persiste revisiones de carro (cabecera + ítems).
type VehicleChecklistRepo struct {
	q Querier
}

func NewVehicleChecklistRepository(q Querier) *VehicleChecklistRepo {
	return &VehicleChecklistRepo{q: q}
}

func (r *VehicleChecklistRepo) Create(cl *entity.VehicleChecklist) error {
	ctx := context.Background()
	if cl.ID == "" {
		cl.ID = uuid.New().String()
	}
	header := `
		INSERT INTO vehicle_checklists (id, vehicle_id, company_id, performed_by, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.q.Exec(ctx, header, cl.ID, cl.VehicleID, cl.CompanyID, cl.PerformedBy, cl.Date, cl.CreatedAt); err != nil {
		return fmt.Errorf("create checklist: %w", err)
	}
	line := `
		INSERT INTO vehicle_checklist_items (id, checklist_id, label, ok, observation, position)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for idx := range cl.Items {
		it := &cl.Items[idx]
		if it.ID == "" {
			it.ID = uuid.New().String()
		}
		it.ChecklistID = cl.ID
		if _, err := r.q.Exec(ctx, line, it.ID, it.ChecklistID, it.Label, it.OK, it.Observation, it.Position); err != nil {
			return fmt.Errorf("create checklist item: %w", err)
		}
	}
	return nil
}

func (r *VehicleChecklistRepo) GetByID(id string) (*entity.VehicleChecklist, error) {
	ctx := context.Background()
	query := `
		SELECT id, vehicle_id, company_id, performed_by, date, created_at
		FROM vehicle_checklists WHERE id = $1`
	var cl entity.VehicleChecklist
	err := r.q.QueryRow(ctx, query, id).Scan(
		&cl.ID, &cl.VehicleID, &cl.CompanyID, &cl.PerformedBy, &cl.Date, &cl.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get checklist: %w", err)
	}
	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	cl.Items = items
	return &cl, nil
}

func (r *VehicleChecklistRepo) ListByVehicle(vehicleID string, limit, offset int) ([]*entity.VehicleChecklist, error) {
	query := `
		SELECT id, vehicle_id, company_id, performed_by, date, created_at
		FROM vehicle_checklists
		WHERE vehicle_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, vehicleID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list checklists: %w", err)
	}
	defer rows.Close()
	var list []*entity.VehicleChecklist
	for rows.Next() {
		var cl entity.VehicleChecklist
		if err := rows.Scan(&cl.ID, &cl.VehicleID, &cl.CompanyID, &cl.PerformedBy, &cl.Date, &cl.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan checklist: %w", err)
		}
		list = append(list, &cl)
	}
	return list, rows.Err()
}

func (r *VehicleChecklistRepo) listItems(ctx context.Context, checklistID string) ([]entity.ChecklistItem, error) {
	query := `
		SELECT id, checklist_id, label, ok, observation, position
		FROM vehicle_checklist_items
		WHERE checklist_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, checklistID)
	if err != nil {
		return nil, fmt.Errorf("list checklist items: %w", err)
	}
	defer rows.Close()
	var items []entity.ChecklistItem
	for rows.Next() {
		var it entity.ChecklistItem
		if err := rows.Scan(&it.ID, &it.ChecklistID, &it.Label, &it.OK, &it.Observation, &it.Position); err != nil {
			return nil, fmt.Errorf("scan checklist item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
