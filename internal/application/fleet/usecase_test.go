package fleet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuerpodebomberos/intranet-api/internal/application/dto"
	"github.com/cuerpodebomberos/intranet-api/internal/application/fleet"
	"github.com/cuerpodebomberos/intranet-api/internal/domain"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeFleetStore struct {
	vehicles     map[string]*entity.Vehicle
	issues       map[string]*entity.VehicleIssue
	maintenances map[string]*entity.VehicleMaintenance
	checklists   map[string]*entity.VehicleChecklist
	materials    map[string]*entity.Material
	history      []*entity.MaterialHistory
}

func newFleetStore() *fakeFleetStore {
	return &fakeFleetStore{
		vehicles:     make(map[string]*entity.Vehicle),
		issues:       make(map[string]*entity.VehicleIssue),
		maintenances: make(map[string]*entity.VehicleMaintenance),
		checklists:   make(map[string]*entity.VehicleChecklist),
		materials:    make(map[string]*entity.Material),
	}
}

// clone copia el estado para que el runner transaccional del fake pueda
// descartar los cambios si el callback falla.
func (s *fakeFleetStore) clone() *fakeFleetStore {
	c := newFleetStore()
	for id, v := range s.vehicles {
		cp := *v
		c.vehicles[id] = &cp
	}
	for id, i := range s.issues {
		cp := *i
		c.issues[id] = &cp
	}
	for id, m := range s.maintenances {
		cp := *m
		c.maintenances[id] = &cp
	}
	for id, cl := range s.checklists {
		cp := *cl
		c.checklists[id] = &cp
	}
	for id, m := range s.materials {
		cp := *m
		c.materials[id] = &cp
	}
	c.history = append([]*entity.MaterialHistory(nil), s.history...)
	return c
}

type fakeVehicleRepo struct{ s *fakeFleetStore }

func (r *fakeVehicleRepo) Create(v *entity.Vehicle) error { r.s.vehicles[v.ID] = v; return nil }
func (r *fakeVehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	return r.s.vehicles[id], nil
}
func (r *fakeVehicleRepo) ListByCompany(string, int, int) ([]*entity.Vehicle, error) {
	return nil, nil
}
func (r *fakeVehicleRepo) Update(v *entity.Vehicle) error { r.s.vehicles[v.ID] = v; return nil }

type fakeIssueRepo struct{ s *fakeFleetStore }

func (r *fakeIssueRepo) Create(i *entity.VehicleIssue) error { r.s.issues[i.ID] = i; return nil }
func (r *fakeIssueRepo) GetByID(id string) (*entity.VehicleIssue, error) {
	return r.s.issues[id], nil
}
func (r *fakeIssueRepo) ListByVehicle(vehicleID string, _, _ int) ([]*entity.VehicleIssue, error) {
	var out []*entity.VehicleIssue
	for _, i := range r.s.issues {
		if i.VehicleID == vehicleID {
			out = append(out, i)
		}
	}
	return out, nil
}
func (r *fakeIssueRepo) Update(i *entity.VehicleIssue) error { r.s.issues[i.ID] = i; return nil }

type fakeMaintenanceRepo struct{ s *fakeFleetStore }

func (r *fakeMaintenanceRepo) Create(m *entity.VehicleMaintenance) error {
	r.s.maintenances[m.ID] = m
	return nil
}
func (r *fakeMaintenanceRepo) GetByID(id string) (*entity.VehicleMaintenance, error) {
	return r.s.maintenances[id], nil
}
func (r *fakeMaintenanceRepo) ListByVehicle(string, int, int) ([]*entity.VehicleMaintenance, error) {
	return nil, nil
}
func (r *fakeMaintenanceRepo) Update(m *entity.VehicleMaintenance) error {
	r.s.maintenances[m.ID] = m
	return nil
}

type fakeChecklistRepo struct{ s *fakeFleetStore }

func (r *fakeChecklistRepo) Create(cl *entity.VehicleChecklist) error {
	r.s.checklists[cl.ID] = cl
	return nil
}
func (r *fakeChecklistRepo) GetByID(id string) (*entity.VehicleChecklist, error) {
	return r.s.checklists[id], nil
}
func (r *fakeChecklistRepo) ListByVehicle(string, int, int) ([]*entity.VehicleChecklist, error) {
	return nil, nil
}

// Repos del libro reutilizados por el runner transaccional del fake.

type fakeMaterialRepo struct{ s *fakeFleetStore }

func (r *fakeMaterialRepo) Create(m *entity.Material) error { r.s.materials[m.ID] = m; return nil }
func (r *fakeMaterialRepo) GetByID(id string) (*entity.Material, error) {
	return r.s.materials[id], nil
}
func (r *fakeMaterialRepo) GetByCode(string, string) (*entity.Material, error) { return nil, nil }
func (r *fakeMaterialRepo) GetForUpdate(id string) (*entity.Material, error) {
	return r.s.materials[id], nil
}
func (r *fakeMaterialRepo) ListByCompany(string, int, int) ([]*entity.Material, error) {
	return nil, nil
}
func (r *fakeMaterialRepo) Update(*entity.Material) error { return nil }
func (r *fakeMaterialRepo) UpdateStock(id string, quantity int) error {
	r.s.materials[id].StockQuantity = quantity
	return nil
}
func (r *fakeMaterialRepo) NextCodeSequence(string, string) (int, error) { return 1, nil }

type fakeHistoryRepo struct{ s *fakeFleetStore }

func (r *fakeHistoryRepo) Create(row *entity.MaterialHistory) error {
	r.s.history = append(r.s.history, row)
	return nil
}
func (r *fakeHistoryRepo) ListByMaterial(string, int, int) ([]*entity.MaterialHistory, error) {
	return r.s.history, nil
}

type fakeAssignedRepo struct{}

func (r *fakeAssignedRepo) GetForUpdate(string, string) (*entity.AssignedMaterial, error) {
	return nil, nil
}
func (r *fakeAssignedRepo) Upsert(*entity.AssignedMaterial) error { return nil }
func (r *fakeAssignedRepo) ListByFirefighter(string) ([]*entity.AssignedMaterial, error) {
	return nil, nil
}

// fakeTxRunner imita la semántica transaccional: el callback trabaja sobre
// una copia del estado y solo se publica si termina sin error.
type fakeTxRunner struct{ s *fakeFleetStore }

func (r *fakeTxRunner) RunMaintenance(_ context.Context, fn func(
	materialRepo repository.MaterialRepository,
	historyRepo repository.MaterialHistoryRepository,
	assignedRepo repository.AssignedMaterialRepository,
	maintenanceRepo repository.VehicleMaintenanceRepository,
	vehicleRepo repository.VehicleRepository,
) error) error {
	tx := r.s.clone()
	if err := fn(
		&fakeMaterialRepo{tx}, &fakeHistoryRepo{tx}, &fakeAssignedRepo{},
		&fakeMaintenanceRepo{tx}, &fakeVehicleRepo{tx},
	); err != nil {
		return err
	}
	*r.s = *tx
	return nil
}

func setup() (*fleet.UseCase, *fakeFleetStore) {
	s := newFleetStore()
	s.vehicles["veh-1"] = &entity.Vehicle{
		ID: "veh-1", CompanyID: "cia-1", Denomination: "B-1", Status: entity.VehicleOperative,
	}
	s.materials["mat-aceite"] = &entity.Material{
		ID: "mat-aceite", CompanyID: "cia-1", Code: "HER-0001", Name: "Aceite motor", StockQuantity: 10,
	}
	uc := fleet.NewUseCase(
		&fakeVehicleRepo{s}, &fakeIssueRepo{s}, &fakeMaintenanceRepo{s}, &fakeChecklistRepo{s},
		&fakeTxRunner{s},
	)
	return uc, s
}

// ──────────────────────────────────────────────────────────────────────────────
// Taller
// ──────────────────────────────────────────────────────────────────────────────

func TestEnterWorkshop_MecanicoAbreOrden(t *testing.T) {
	uc, s := setup()
	m, err := uc.EnterWorkshop("cia-1", "mec-1", entity.RoleMecanico, "veh-1", "cambio de frenos")
	require.NoError(t, err)

	assert.Equal(t, entity.MaintenanceInWorkshop, m.Status)
	assert.Equal(t, entity.VehicleInWorkshop, s.vehicles["veh-1"].Status)
}

// Un vehículo ya en taller no puede volver a ingresar.
func TestEnterWorkshop_YaEnTaller_Conflicto(t *testing.T) {
	uc, _ := setup()
	_, err := uc.EnterWorkshop("cia-1", "mec-1", entity.RoleMecanico, "veh-1", "frenos")
	require.NoError(t, err)

	_, err = uc.EnterWorkshop("cia-1", "mec-1", entity.RoleMecanico, "veh-1", "otra vez")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// El rol sin permiso de taller recibe 403, no 409.
func TestEnterWorkshop_RolSinPermiso(t *testing.T) {
	uc, _ := setup()
	_, err := uc.EnterWorkshop("cia-1", "gen-1", entity.RoleGenerico, "veh-1", "frenos")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Cerrar la orden consume materiales (movimientos MAINTENANCE) y devuelve el
// vehículo a operativo. La salida exige visto bueno de comandante/inspector,
// o mando.
func TestCompleteMaintenance_ConsumeMateriales(t *testing.T) {
	uc, s := setup()
	m, err := uc.EnterWorkshop("cia-1", "mec-1", entity.RoleMecanico, "veh-1", "frenos")
	require.NoError(t, err)

	done, err := uc.CompleteMaintenance(context.Background(), "cia-1", "cap-1", entity.RoleCapitan, m.ID, dto.CompleteMaintenanceRequest{
		MaterialsUsed: []dto.CertificateItemRequest{{MaterialID: "mat-aceite", Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MaintenanceCompleted, done.Status)
	assert.Equal(t, entity.VehicleOperative, s.vehicles["veh-1"].Status)
	assert.Equal(t, 8, s.materials["mat-aceite"].StockQuantity)

	require.Len(t, s.history, 1)
	assert.Equal(t, entity.MovementMaintenance, s.history[0].Type)
	assert.Equal(t, entity.RefVehicleMaintenance, s.history[0].ReferenceType)
	assert.Equal(t, m.ID, s.history[0].ReferenceID, "la fila referencia la orden")
}

// Con out_of_service el vehículo no vuelve a operativo.
func TestCompleteMaintenance_FueraDeServicio(t *testing.T) {
	uc, s := setup()
	m, err := uc.EnterWorkshop("cia-1", "mec-1", entity.RoleMecanico, "veh-1", "motor fundido")
	require.NoError(t, err)

	_, err = uc.CompleteMaintenance(context.Background(), "cia-1", "adm-1", entity.RoleAdmin, m.ID, dto.CompleteMaintenanceRequest{
		OutOfService: true,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleOutOfService, s.vehicles["veh-1"].Status)
}

// El mecánico puede cerrar la orden pero no tiene el visto bueno de salida.
func TestCompleteMaintenance_MecanicoSinVistoBueno(t *testing.T) {
	uc, _ := setup()
	m, err := uc.EnterWorkshop("cia-1", "mec-1", entity.RoleMecanico, "veh-1", "frenos")
	require.NoError(t, err)

	_, err = uc.CompleteMaintenance(context.Background(), "cia-1", "mec-1", entity.RoleMecanico, m.ID, dto.CompleteMaintenanceRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"la salida de taller exige comandante, inspector o mando")
}

// Quien firma la salida también cierra la orden: comandante e inspector
// completan la mantención en el mismo acto del visto bueno.
func TestCompleteMaintenance_ComandanteEInspectorDanVistoBueno(t *testing.T) {
	for _, role := range []string{entity.RoleComandante, entity.RoleInspector} {
		uc, s := setup()
		m, err := uc.EnterWorkshop("cia-1", "mec-1", entity.RoleMecanico, "veh-1", "frenos")
		require.NoError(t, err)

		done, err := uc.CompleteMaintenance(context.Background(), "cia-1", "vb-1", role, m.ID, dto.CompleteMaintenanceRequest{})
		require.NoError(t, err, "%s debe poder cerrar la orden", role)
		assert.Equal(t, entity.MaintenanceCompleted, done.Status)
		assert.Equal(t, "vb-1", done.CompletedBy)
		assert.Equal(t, entity.VehicleOperative, s.vehicles["veh-1"].Status)
	}
}

// Si una línea de consumo falla no queda nada escrito: ni movimientos, ni
// cierre de orden, ni cambio de estado del vehículo.
func TestCompleteMaintenance_FallaUnaLinea_SinEfectos(t *testing.T) {
	uc, s := setup()
	s.materials["mat-filtro"] = &entity.Material{
		ID: "mat-filtro", CompanyID: "cia-1", Code: "HER-0002", Name: "Filtro de aire", StockQuantity: 1,
	}
	m, err := uc.EnterWorkshop("cia-1", "mec-1", entity.RoleMecanico, "veh-1", "frenos")
	require.NoError(t, err)

	_, err = uc.CompleteMaintenance(context.Background(), "cia-1", "cap-1", entity.RoleCapitan, m.ID, dto.CompleteMaintenanceRequest{
		MaterialsUsed: []dto.CertificateItemRequest{
			{MaterialID: "mat-aceite", Quantity: 2},
			{MaterialID: "mat-filtro", Quantity: 5},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Empty(t, s.history, "no queda ningún movimiento")
	assert.Equal(t, 10, s.materials["mat-aceite"].StockQuantity,
		"la primera línea también se revierte")
	assert.Equal(t, entity.MaintenanceInWorkshop, s.maintenances[m.ID].Status,
		"la orden sigue abierta")
	assert.Equal(t, entity.VehicleInWorkshop, s.vehicles["veh-1"].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Novedades
// ──────────────────────────────────────────────────────────────────────────────

func TestIssue_CicloCompleto(t *testing.T) {
	uc, _ := setup()
	issue, err := uc.ReportIssue("cia-1", "maq-1", "veh-1", dto.CreateIssueRequest{
		Title: "Luz de freno quemada",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.IssueOpen, issue.Status)

	// Resolver sin revisar es transición inválida.
	_, err = uc.ResolveIssue("cia-1", "mec-1", entity.RoleMecanico, issue.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// El mecánico no puede revisar.
	_, err = uc.ReviewIssue("cia-1", "mec-1", entity.RoleMecanico, issue.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	reviewed, err := uc.ReviewIssue("cia-1", "cap-1", entity.RoleCapitan, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.IssueReviewed, reviewed.Status)
	assert.Equal(t, "cap-1", reviewed.ReviewedBy)
	assert.NotNil(t, reviewed.ReviewedAt)

	resolved, err := uc.ResolveIssue("cia-1", "mec-1", entity.RoleMecanico, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.IssueResolved, resolved.Status)
	assert.Equal(t, "mec-1", resolved.ResolvedBy)
}

// ──────────────────────────────────────────────────────────────────────────────
// Revisiones de carro
// ──────────────────────────────────────────────────────────────────────────────

// Cada ítem observado (no OK con observación) abre una novedad automática.
func TestCreateChecklist_AbreNovedades(t *testing.T) {
	uc, s := setup()
	cl, err := uc.CreateChecklist("cia-1", "maq-1", "veh-1", dto.CreateChecklistRequest{
		Items: []dto.ChecklistItemRequest{
			{Label: "Niveles de aceite", OK: true},
			{Label: "Luces", OK: false, Observation: "intermitente derecho no enciende"},
			{Label: "Neumáticos", OK: false}, // sin observación: no abre novedad
		},
	})
	require.NoError(t, err)
	require.Len(t, cl.Items, 3)

	require.Len(t, s.issues, 1, "solo el ítem observado abre novedad")
	for _, issue := range s.issues {
		assert.Equal(t, "Luces", issue.Title)
		assert.Equal(t, "intermitente derecho no enciende", issue.Description)
		assert.Equal(t, entity.IssueOpen, issue.Status)
	}
}

func TestCreateChecklist_SinItems(t *testing.T) {
	uc, _ := setup()
	_, err := uc.CreateChecklist("cia-1", "maq-1", "veh-1", dto.CreateChecklistRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento por compañía
// ──────────────────────────────────────────────────────────────────────────────

func TestVehiculoDeOtraCompania_Prohibido(t *testing.T) {
	uc, _ := setup()
	_, err := uc.GetVehicle("cia-2", "veh-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.EnterWorkshop("cia-2", "mec-1", entity.RoleMecanico, "veh-1", "frenos")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
