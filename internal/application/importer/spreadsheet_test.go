package importer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cuerpodebomberos/intranet-api/internal/application/importer"
	"github.com/cuerpodebomberos/intranet-api/internal/application/ledger"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeImportStore struct {
	companies map[string]*entity.Company // por nombre
	materials map[string]*entity.Material
	history   []*entity.MaterialHistory
}

type fakeCompanyRepo struct{ s *fakeImportStore }

func (r *fakeCompanyRepo) Create(c *entity.Company) error { r.s.companies[c.Name] = c; return nil }
func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	for _, c := range r.s.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCompanyRepo) GetByName(name string) (*entity.Company, error) {
	return r.s.companies[name], nil
}
func (r *fakeCompanyRepo) List(int, int) ([]*entity.Company, error) { return nil, nil }

type fakeMaterialRepo struct{ s *fakeImportStore }

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
func (r *fakeMaterialRepo) NextCodeSequence(companyID, prefix string) (int, error) {
	n := 0
	for _, m := range r.s.materials {
		if m.CompanyID == companyID && strings.HasPrefix(m.Code, prefix+"-") {
			n++
		}
	}
	return n + 1, nil
}

type fakeHistoryRepo struct{ s *fakeImportStore }

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

type fakeTxRunner struct{ s *fakeImportStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	materialRepo repository.MaterialRepository,
	historyRepo repository.MaterialHistoryRepository,
	assignedRepo repository.AssignedMaterialRepository,
) error) error {
	return fn(&fakeMaterialRepo{r.s}, &fakeHistoryRepo{r.s}, &fakeAssignedRepo{})
}

func setup() (*importer.SpreadsheetUseCase, *fakeImportStore) {
	s := &fakeImportStore{
		companies: map[string]*entity.Company{
			"Primera Compañía": {ID: "cia-1", Name: "Primera Compañía"},
			"Comandancia":      {ID: "cia-cmd", Name: "Comandancia"},
		},
		materials: make(map[string]*entity.Material),
	}
	uc := importer.NewSpreadsheetUseCase(
		&fakeCompanyRepo{s}, &fakeMaterialRepo{s},
		ledger.NewApplyMovementUseCase(&fakeTxRunner{s}),
	)
	return uc, s
}

// workbook arma una planilla en memoria con el encabezado en la fila 1 y las
// filas dadas en el orden de columnas de la importación.
func workbook(t *testing.T, rows ...[]interface{}) *strings.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	header := []interface{}{"Lugar", "Familia", "Subfamilia", "Producto", "Marca", "Modelo", "Estado", "Serie", "Cantidad"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return strings.NewReader(buf.String())
}

func materialByCode(s *fakeImportStore, code string) *entity.Material {
	for _, m := range s.materials {
		if m.Code == code {
			return m
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Importación
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_DosFilasValidas(t *testing.T) {
	uc, s := setup()
	r := workbook(t,
		[]interface{}{"1a Compañía", "Comunicaciones", "Radios", "Radio portátil", "Motorola", "DEP450", "Bueno", "SN-881", 4},
		[]interface{}{"Primera Compañía", "EPP", "Cascos", "Casco estructural", "Bullard", "UST", "Bueno", "", 12},
	)

	res, err := uc.Import(context.Background(), "usr-1", r)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.Empty(t, res.Errors)

	radio := materialByCode(s, "TEL-0001")
	require.NotNil(t, radio, "el código sale del prefijo de la categoría")
	assert.Equal(t, "cia-1", radio.CompanyID)
	assert.Equal(t, "Radio portátil", radio.Name)
	assert.Equal(t, "Telecomunicaciones", radio.Category)
	assert.Equal(t, 4, radio.StockQuantity, "la fila INITIAL fija el stock")

	casco := materialByCode(s, "EPP-0001")
	require.NotNil(t, casco)
	assert.Equal(t, 12, casco.StockQuantity)

	require.Len(t, s.history, 2)
	for _, row := range s.history {
		assert.Equal(t, entity.MovementInitial, row.Type)
		assert.Equal(t, "usr-1", row.UserID)
	}
}

// El correlativo avanza por compañía y prefijo.
func TestImport_CorrelativoPorPrefijo(t *testing.T) {
	uc, s := setup()
	r := workbook(t,
		[]interface{}{"1a", "Comunicaciones", "", "Radio base", "", "", "", "", 1},
		[]interface{}{"1a", "Telecomunicaciones", "", "Antena", "", "", "", "", 1},
	)

	res, err := uc.Import(context.Background(), "usr-1", r)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.NotNil(t, materialByCode(s, "TEL-0001"))
	assert.NotNil(t, materialByCode(s, "TEL-0002"))
}

// Los errores se acumulan por fila sin detener el resto.
func TestImport_ErroresPorFila(t *testing.T) {
	uc, s := setup()
	r := workbook(t,
		[]interface{}{"Bodega Municipal", "Comunicaciones", "", "Radio", "", "", "", "", 1}, // lugar desconocido
		[]interface{}{"1a", "Mobiliario", "", "Silla", "", "", "", "", 1},                   // familia desconocida
		[]interface{}{"1a", "Rescate", "", "Cuerda estática", "", "", "", "", 2},
	)

	res, err := uc.Import(context.Background(), "usr-1", r)
	require.NoError(t, err, "los errores de fila no abortan la importación")
	assert.Equal(t, 1, res.Created)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, 2, res.Errors[0].Row, "numeración 1-based contando el encabezado")
	assert.Contains(t, res.Errors[0].Message, "lugar no reconocido")
	assert.Equal(t, 3, res.Errors[1].Row)
	assert.Contains(t, res.Errors[1].Message, "familia no reconocida")

	assert.NotNil(t, materialByCode(s, "RES-0001"))
}

func TestImport_FilaVaciaSeSalta(t *testing.T) {
	uc, _ := setup()
	r := workbook(t,
		[]interface{}{"", "", "", "", "", "", "", "", ""},
		[]interface{}{"1a", "Herramientas", "", "Hacha", "", "", "", "", 1},
	)

	res, err := uc.Import(context.Background(), "usr-1", r)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 1, res.Created)
}

// Cantidad vacía importa con stock 1.
func TestImport_CantidadPorDefecto(t *testing.T) {
	uc, s := setup()
	r := workbook(t,
		[]interface{}{"1a", "Herramientas", "", "Halligan", "", "", "", "", ""},
	)

	res, err := uc.Import(context.Background(), "usr-1", r)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, materialByCode(s, "HER-0001").StockQuantity)
}

func TestImport_ProductoVacio_Error(t *testing.T) {
	uc, _ := setup()
	r := workbook(t,
		[]interface{}{"1a", "Herramientas", "", "", "", "", "", "", "3"},
	)

	res, err := uc.Import(context.Background(), "usr-1", r)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, "producto")
}

func TestImport_CantidadInvalida(t *testing.T) {
	uc, _ := setup()
	r := workbook(t,
		[]interface{}{"1a", "Herramientas", "", "Pala", "", "", "", "", "muchas"},
	)

	res, err := uc.Import(context.Background(), "usr-1", r)
	require.NoError(t, err)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, "cantidad inválida")
}
