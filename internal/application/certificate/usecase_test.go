package certificate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuerpodebomberos/intranet-api/internal/application/certificate"
	"github.com/cuerpodebomberos/intranet-api/internal/application/dto"
	"github.com/cuerpodebomberos/intranet-api/internal/domain"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con Commit/Rollback simulados
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	materials    map[string]*entity.Material
	history      []*entity.MaterialHistory
	tallies      map[string]*entity.AssignedMaterial
	certificates map[string]*entity.Certificate
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		materials:    make(map[string]*entity.Material),
		tallies:      make(map[string]*entity.AssignedMaterial),
		certificates: make(map[string]*entity.Certificate),
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for id, m := range s.materials {
		cp := *m
		c.materials[id] = &cp
	}
	for _, h := range s.history {
		cp := *h
		c.history = append(c.history, &cp)
	}
	for k, t := range s.tallies {
		cp := *t
		c.tallies[k] = &cp
	}
	for id, cert := range s.certificates {
		cp := *cert
		c.certificates[id] = &cp
	}
	return c
}

type fakeMaterialRepo struct{ s *fakeStore }

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

type fakeHistoryRepo struct{ s *fakeStore }

func (r *fakeHistoryRepo) Create(row *entity.MaterialHistory) error {
	r.s.history = append(r.s.history, row)
	return nil
}
func (r *fakeHistoryRepo) ListByMaterial(string, int, int) ([]*entity.MaterialHistory, error) {
	return r.s.history, nil
}

type fakeAssignedRepo struct{ s *fakeStore }

func (r *fakeAssignedRepo) GetForUpdate(firefighterID, materialID string) (*entity.AssignedMaterial, error) {
	return r.s.tallies[firefighterID+"|"+materialID], nil
}
func (r *fakeAssignedRepo) Upsert(t *entity.AssignedMaterial) error {
	r.s.tallies[t.FirefighterID+"|"+t.MaterialID] = t
	return nil
}
func (r *fakeAssignedRepo) ListByFirefighter(string) ([]*entity.AssignedMaterial, error) {
	return nil, nil
}

type fakeCertRepo struct{ s *fakeStore }

func (r *fakeCertRepo) Create(cert *entity.Certificate) error {
	r.s.certificates[cert.ID] = cert
	return nil
}
func (r *fakeCertRepo) GetByID(id string) (*entity.Certificate, error) {
	return r.s.certificates[id], nil
}
func (r *fakeCertRepo) ListByCompany(companyID, certType string, _, _ int) ([]*entity.Certificate, error) {
	var out []*entity.Certificate
	for _, c := range r.s.certificates {
		if c.CompanyID == companyID && (certType == "" || c.Type == certType) {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) RunCertificate(_ context.Context, fn func(
	materialRepo repository.MaterialRepository,
	historyRepo repository.MaterialHistoryRepository,
	assignedRepo repository.AssignedMaterialRepository,
	certRepo repository.CertificateRepository,
) error) error {
	tx := r.s.clone()
	err := fn(&fakeMaterialRepo{tx}, &fakeHistoryRepo{tx}, &fakeAssignedRepo{tx}, &fakeCertRepo{tx})
	if err != nil {
		return err
	}
	*r.s = *tx
	return nil
}

func setup() (*certificate.UseCase, *fakeStore) {
	s := newFakeStore()
	s.materials["mat-casco"] = &entity.Material{
		ID: "mat-casco", CompanyID: "cia-1", Code: "EPP-0001", Name: "Casco estructural", StockQuantity: 10,
	}
	s.materials["mat-radio"] = &entity.Material{
		ID: "mat-radio", CompanyID: "cia-1", Code: "TEL-0001", Name: "Radio portátil", StockQuantity: 4,
	}
	return certificate.NewUseCase(&fakeTxRunner{s}, &fakeCertRepo{s}), s
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación de actas
// ──────────────────────────────────────────────────────────────────────────────

// Una entrega de dos líneas descuenta ambos stocks, crea dos filas DELIVERY
// referenciando el acta y deja el cargo del bombero con ambas cantidades.
func TestCreateDelivery_DosLineas(t *testing.T) {
	uc, s := setup()
	cert, err := uc.CreateDelivery(context.Background(), "cia-1", "insp-1", dto.CreateCertificateRequest{
		FirefighterID: "ff-1",
		Items: []dto.CertificateItemRequest{
			{MaterialID: "mat-casco", Quantity: 3},
			{MaterialID: "mat-radio", Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, cert.Items, 2)
	assert.Equal(t, 0, cert.Items[0].Position, "las líneas respetan el orden del request")
	assert.Equal(t, 1, cert.Items[1].Position)

	assert.Equal(t, 7, s.materials["mat-casco"].StockQuantity)
	assert.Equal(t, 3, s.materials["mat-radio"].StockQuantity)

	require.Len(t, s.history, 2, "una fila del libro por línea")
	for _, h := range s.history {
		assert.Equal(t, entity.MovementDelivery, h.Type)
		assert.Equal(t, entity.RefDeliveryCertificate, h.ReferenceType)
		assert.Equal(t, cert.ID, h.ReferenceID, "cada fila referencia el acta")
	}

	assert.Equal(t, 3, s.tallies["ff-1|mat-casco"].Quantity)
	assert.Equal(t, 1, s.tallies["ff-1|mat-radio"].Quantity)

	assert.NotNil(t, s.certificates[cert.ID], "la cabecera quedó persistida")
}

// Si la segunda línea no tiene stock, el acta completa se revierte: ni
// cabecera, ni historial, ni el descuento de la primera línea.
func TestCreateDelivery_FallaUnaLinea_RollbackTotal(t *testing.T) {
	uc, s := setup()
	_, err := uc.CreateDelivery(context.Background(), "cia-1", "insp-1", dto.CreateCertificateRequest{
		FirefighterID: "ff-1",
		Items: []dto.CertificateItemRequest{
			{MaterialID: "mat-casco", Quantity: 2},
			{MaterialID: "mat-radio", Quantity: 99}, // stock insuficiente
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, s.materials["mat-casco"].StockQuantity, "la primera línea también se revierte")
	assert.Equal(t, 4, s.materials["mat-radio"].StockQuantity)
	assert.Empty(t, s.history)
	assert.Empty(t, s.certificates, "no debe quedar cabecera huérfana")
	assert.Empty(t, s.tallies)
}

// Una recepción repone stock y descuenta del cargo.
func TestCreateReception_DescuentaCargo(t *testing.T) {
	uc, s := setup()
	_, err := uc.CreateDelivery(context.Background(), "cia-1", "insp-1", dto.CreateCertificateRequest{
		FirefighterID: "ff-1",
		Items:         []dto.CertificateItemRequest{{MaterialID: "mat-casco", Quantity: 3}},
	})
	require.NoError(t, err)

	cert, err := uc.CreateReception(context.Background(), "cia-1", "insp-1", dto.CreateCertificateRequest{
		FirefighterID: "ff-1",
		Items:         []dto.CertificateItemRequest{{MaterialID: "mat-casco", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CertificateReception, cert.Type)

	assert.Equal(t, 9, s.materials["mat-casco"].StockQuantity)
	assert.Equal(t, 1, s.tallies["ff-1|mat-casco"].Quantity)

	last := s.history[len(s.history)-1]
	assert.Equal(t, entity.MovementReception, last.Type)
	assert.Equal(t, entity.RefReceptionCertificate, last.ReferenceType)
}

// Devolver más de lo asignado revierte el acta completa.
func TestCreateReception_ExcedeCargo_Rollback(t *testing.T) {
	uc, s := setup()
	_, err := uc.CreateDelivery(context.Background(), "cia-1", "insp-1", dto.CreateCertificateRequest{
		FirefighterID: "ff-1",
		Items:         []dto.CertificateItemRequest{{MaterialID: "mat-casco", Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = uc.CreateReception(context.Background(), "cia-1", "insp-1", dto.CreateCertificateRequest{
		FirefighterID: "ff-1",
		Items:         []dto.CertificateItemRequest{{MaterialID: "mat-casco", Quantity: 5}},
	})
	assert.ErrorIs(t, err, domain.ErrOverReception)

	assert.Equal(t, 9, s.materials["mat-casco"].StockQuantity, "solo la entrega previa")
	assert.Equal(t, 1, s.tallies["ff-1|mat-casco"].Quantity)
	assert.Len(t, s.certificates, 1, "solo el acta de entrega quedó persistida")
}

// Entrega a destinatario libre (sin bombero): no se mantiene cargo.
func TestCreateDelivery_DestinatarioLibre(t *testing.T) {
	uc, s := setup()
	cert, err := uc.CreateDelivery(context.Background(), "cia-1", "insp-1", dto.CreateCertificateRequest{
		AssigneeName:   "Cuartel General",
		AssignmentType: entity.AssignmentUnidad,
		Items:          []dto.CertificateItemRequest{{MaterialID: "mat-casco", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Empty(t, cert.FirefighterID)
	assert.Equal(t, 8, s.materials["mat-casco"].StockQuantity)
	assert.Empty(t, s.tallies)
}

func TestCreate_Validaciones(t *testing.T) {
	uc, _ := setup()
	cases := []dto.CreateCertificateRequest{
		{FirefighterID: "ff-1"}, // sin líneas
		{Items: []dto.CertificateItemRequest{{MaterialID: "mat-casco", Quantity: 1}}},        // sin destinatario
		{FirefighterID: "ff-1", Items: []dto.CertificateItemRequest{{MaterialID: "", Quantity: 1}}},        // línea sin material
		{FirefighterID: "ff-1", Items: []dto.CertificateItemRequest{{MaterialID: "mat-casco", Quantity: 0}}}, // cantidad no positiva
	}
	for _, in := range cases {
		_, err := uc.CreateDelivery(context.Background(), "cia-1", "insp-1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_OtraCompania_Prohibido(t *testing.T) {
	uc, _ := setup()
	cert, err := uc.CreateDelivery(context.Background(), "cia-1", "insp-1", dto.CreateCertificateRequest{
		FirefighterID: "ff-1",
		Items:         []dto.CertificateItemRequest{{MaterialID: "mat-casco", Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = uc.GetByID("cia-2", cert.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := uc.GetByID("cia-1", cert.ID)
	require.NoError(t, err)
	assert.Equal(t, cert.ID, got.ID)

	_, err = uc.GetByID("cia-1", "cert-inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
