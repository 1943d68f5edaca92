package fleet

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

var (
	errInvalidTransition = domain.ErrInvalidTransition
	errForbidden         = domain.ErrForbidden
)

// UseCase administra el parque vehicular: estados del vehículo, novedades,
// mantenciones y revisiones de carro.
type UseCase struct {
	vehicleRepo     repository.VehicleRepository
	issueRepo       repository.VehicleIssueRepository
	maintenanceRepo repository.VehicleMaintenanceRepository
	checklistRepo   repository.VehicleChecklistRepository
	txRunner        TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	vehicleRepo repository.VehicleRepository,
	issueRepo repository.VehicleIssueRepository,
	maintenanceRepo repository.VehicleMaintenanceRepository,
	checklistRepo repository.VehicleChecklistRepository,
	txRunner TxRunner,
) *UseCase {
	return &UseCase{
		vehicleRepo:     vehicleRepo,
		issueRepo:       issueRepo,
		maintenanceRepo: maintenanceRepo,
		checklistRepo:   checklistRepo,
		txRunner:        txRunner,
	}
}

// CreateVehicle da de alta un vehículo operativo.
func (uc *UseCase) CreateVehicle(companyID string, in dto.CreateVehicleRequest) (*entity.Vehicle, error) {
	if in.Denomination == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	v := &entity.Vehicle{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Denomination: in.Denomination,
		Brand:        in.Brand,
		Model:        in.Model,
		Year:         in.Year,
		Plate:        in.Plate,
		Status:       entity.VehicleOperative,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.vehicleRepo.Create(v); err != nil {
		return nil, err
	}
	return v, nil
}

// GetVehicle devuelve un vehículo de la compañía.
func (uc *UseCase) GetVehicle(companyID, id string) (*entity.Vehicle, error) {
	v, err := uc.vehicleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	if v.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return v, nil
}

// ListVehicles lista el parque de la compañía.
func (uc *UseCase) ListVehicles(companyID string, limit, offset int) ([]*entity.Vehicle, error) {
	return uc.vehicleRepo.ListByCompany(companyID, limit, offset)
}

// EnterWorkshop ingresa el vehículo a taller y abre la orden de mantención.
func (uc *UseCase) EnterWorkshop(companyID, userID, role, vehicleID, description string) (*entity.VehicleMaintenance, error) {
	v, err := uc.GetVehicle(companyID, vehicleID)
	if err != nil {
		return nil, err
	}
	if err := vehicleEnterWorkshop.check(v.Status, role); err != nil {
		return nil, err
	}
	now := time.Now()
	m := &entity.VehicleMaintenance{
		ID:          uuid.New().String(),
		VehicleID:   v.ID,
		CompanyID:   companyID,
		OpenedBy:    userID,
		Description: description,
		Status:      entity.MaintenanceInWorkshop,
		CreatedAt:   now,
	}
	if err := uc.maintenanceRepo.Create(m); err != nil {
		return nil, err
	}
	v.Status = vehicleEnterWorkshop.to
	v.UpdatedAt = now
	if err := uc.vehicleRepo.Update(v); err != nil {
		return nil, err
	}
	return m, nil
}

// CompleteMaintenance cierra la orden: descarga los materiales consumidos
// (movimientos MAINTENANCE con la orden como referencia) y devuelve el
// vehículo a operativo, o lo deja fuera de servicio. Todo en una sola
// transacción: si una línea falla no queda ningún movimiento y la orden
// sigue abierta.
func (uc *UseCase) CompleteMaintenance(ctx context.Context, companyID, userID, role, maintenanceID string, in dto.CompleteMaintenanceRequest) (*entity.VehicleMaintenance, error) {
	m, err := uc.maintenanceRepo.GetByID(maintenanceID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if m.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if err := maintenanceComplete.check(m.Status, role); err != nil {
		return nil, err
	}
	v, err := uc.GetVehicle(companyID, m.VehicleID)
	if err != nil {
		return nil, err
	}
	exit := vehicleExitWorkshop
	if in.OutOfService {
		exit = vehicleOutOfService
	}
	if err := exit.check(v.Status, role); err != nil {
		return nil, err
	}

	now := time.Now()
	err = uc.txRunner.RunMaintenance(ctx, func(
		materialRepo repository.MaterialRepository,
		historyRepo repository.MaterialHistoryRepository,
		assignedRepo repository.AssignedMaterialRepository,
		maintenanceRepo repository.VehicleMaintenanceRepository,
		vehicleRepo repository.VehicleRepository,
	) error {
		for _, used := range in.MaterialsUsed {
			_, err := ledger.ApplyInTx(materialRepo, historyRepo, assignedRepo, ledger.MovementInput{
				CompanyID:     companyID,
				UserID:        userID,
				MaterialID:    used.MaterialID,
				Type:          entity.MovementMaintenance,
				Quantity:      used.Quantity,
				ReferenceType: entity.RefVehicleMaintenance,
				ReferenceID:   m.ID,
			}, now)
			if err != nil {
				return err
			}
		}
		m.Status = maintenanceComplete.to
		m.CompletedBy = userID
		m.CompletedAt = &now
		if err := maintenanceRepo.Update(m); err != nil {
			return err
		}
		v.Status = exit.to
		v.UpdatedAt = now
		return vehicleRepo.Update(v)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ReportIssue abre una novedad sobre un vehículo.
func (uc *UseCase) ReportIssue(companyID, userID, vehicleID string, in dto.CreateIssueRequest) (*entity.VehicleIssue, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.GetVehicle(companyID, vehicleID); err != nil {
		return nil, err
	}
	issue := &entity.VehicleIssue{
		ID:          uuid.New().String(),
		VehicleID:   vehicleID,
		CompanyID:   companyID,
		ReportedBy:  userID,
		Title:       in.Title,
		Description: in.Description,
		Status:      entity.IssueOpen,
		CreatedAt:   time.Now(),
	}
	if err := uc.issueRepo.Create(issue); err != nil {
		return nil, err
	}
	return issue, nil
}

// ReviewIssue marca la novedad como revisada (capitán).
func (uc *UseCase) ReviewIssue(companyID, userID, role, issueID string) (*entity.VehicleIssue, error) {
	return uc.advanceIssue(companyID, userID, role, issueID, issueReview)
}

// ResolveIssue cierra la novedad revisada.
func (uc *UseCase) ResolveIssue(companyID, userID, role, issueID string) (*entity.VehicleIssue, error) {
	return uc.advanceIssue(companyID, userID, role, issueID, issueResolve)
}

func (uc *UseCase) advanceIssue(companyID, userID, role, issueID string, t transition) (*entity.VehicleIssue, error) {
	issue, err := uc.issueRepo.GetByID(issueID)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, domain.ErrNotFound
	}
	if issue.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if err := t.check(issue.Status, role); err != nil {
		return nil, err
	}
	now := time.Now()
	issue.Status = t.to
	switch t.to {
	case entity.IssueReviewed:
		issue.ReviewedBy = userID
		issue.ReviewedAt = &now
	case entity.IssueResolved:
		issue.ResolvedBy = userID
		issue.ResolvedAt = &now
	}
	if err := uc.issueRepo.Update(issue); err != nil {
		return nil, err
	}
	return issue, nil
}

// ListIssues lista novedades de un vehículo.
func (uc *UseCase) ListIssues(companyID, vehicleID string, limit, offset int) ([]*entity.VehicleIssue, error) {
	if _, err := uc.GetVehicle(companyID, vehicleID); err != nil {
		return nil, err
	}
	return uc.issueRepo.ListByVehicle(vehicleID, limit, offset)
}

// CreateChecklist registra una revisión de carro. Cada ítem observado
// (no OK con observación) abre automáticamente una novedad.
func (uc *UseCase) CreateChecklist(companyID, userID, vehicleID string, in dto.CreateChecklistRequest) (*entity.VehicleChecklist, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.GetVehicle(companyID, vehicleID); err != nil {
		return nil, err
	}
	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	cl := &entity.VehicleChecklist{
		ID:          uuid.New().String(),
		VehicleID:   vehicleID,
		CompanyID:   companyID,
		PerformedBy: userID,
		Date:        date,
		CreatedAt:   now,
	}
	for i, item := range in.Items {
		cl.Items = append(cl.Items, entity.ChecklistItem{
			ID:          uuid.New().String(),
			ChecklistID: cl.ID,
			Label:       item.Label,
			OK:          item.OK,
			Observation: item.Observation,
			Position:    i,
		})
	}
	if err := uc.checklistRepo.Create(cl); err != nil {
		return nil, err
	}
	for _, item := range cl.Items {
		if item.OK || item.Observation == "" {
			continue
		}
		issue := &entity.VehicleIssue{
			ID:          uuid.New().String(),
			VehicleID:   vehicleID,
			CompanyID:   companyID,
			ReportedBy:  userID,
			Title:       item.Label,
			Description: item.Observation,
			Status:      entity.IssueOpen,
			CreatedAt:   now,
		}
		if err := uc.issueRepo.Create(issue); err != nil {
			return nil, err
		}
	}
	return cl, nil
}

// ListChecklists lista revisiones de un vehículo.
func (uc *UseCase) ListChecklists(companyID, vehicleID string, limit, offset int) ([]*entity.VehicleChecklist, error) {
	if _, err := uc.GetVehicle(companyID, vehicleID); err != nil {
		return nil, err
	}
	return uc.checklistRepo.ListByVehicle(vehicleID, limit, offset)
}
