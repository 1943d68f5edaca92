package importer

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/cuerpodebomberos/intranet-api/internal/application/dto"
	"github.com/cuerpodebomberos/intranet-api/internal/application/ledger"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

// Orden fijo de columnas de la planilla de inventario.
const (
	colPlace = iota
	colFamily
	colSubFamily
	colProduct
	colBrand
	colModel
	colCondition
	colSerial
	colQuantity
	columnCount
)

// SpreadsheetUseCase importa la planilla de inventario: mapea "lugar" y
// "familia" a compañía/categoría canónicas, genera códigos {PREFIJO}-{n} y
// crea cada material con su fila INITIAL. Cada fila es atómica por sí sola;
// los errores se acumulan por número de fila y no detienen el resto.
type SpreadsheetUseCase struct {
	companyRepo   repository.CompanyRepository
	materialRepo  repository.MaterialRepository
	applyMovement *ledger.ApplyMovementUseCase
}

// NewSpreadsheetUseCase construye el caso de uso.
func NewSpreadsheetUseCase(
	companyRepo repository.CompanyRepository,
	materialRepo repository.MaterialRepository,
	applyMovement *ledger.ApplyMovementUseCase,
) *SpreadsheetUseCase {
	return &SpreadsheetUseCase{
		companyRepo:   companyRepo,
		materialRepo:  materialRepo,
		applyMovement: applyMovement,
	}
}

// Import lee el workbook (primera hoja, fila 1 = encabezado) y crea los
// materiales. userID es el actor de las filas INITIAL.
func (uc *SpreadsheetUseCase) Import(ctx context.Context, userID string, r io.Reader) (*dto.ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("importer: abrir planilla: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("importer: planilla sin hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("importer: leer filas: %w", err)
	}

	result := &dto.ImportResult{}
	for i, row := range rows {
		if i == 0 {
			continue // encabezado
		}
		rowNum := i + 1
		if isEmptyRow(row) {
			result.Skipped++
			continue
		}
		if err := uc.importRow(ctx, userID, row); err != nil {
			result.Errors = append(result.Errors, dto.ImportRowError{Row: rowNum, Message: err.Error()})
			continue
		}
		result.Created++
	}
	return result, nil
}

func (uc *SpreadsheetUseCase) importRow(ctx context.Context, userID string, row []string) error {
	cell := func(idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}
	if cell(colProduct) == "" {
		return fmt.Errorf("columna producto vacía")
	}

	companyName, ok := CompanyForPlace(cell(colPlace))
	if !ok {
		return fmt.Errorf("lugar no reconocido: %q", cell(colPlace))
	}
	company, err := uc.companyRepo.GetByName(companyName)
	if err != nil {
		return err
	}
	if company == nil {
		return fmt.Errorf("compañía no registrada: %q", companyName)
	}

	category, ok := CategoryForFamily(cell(colFamily))
	if !ok {
		return fmt.Errorf("familia no reconocida: %q", cell(colFamily))
	}

	quantity := 1
	if q := cell(colQuantity); q != "" {
		quantity, err = strconv.Atoi(q)
		if err != nil || quantity < 0 {
			return fmt.Errorf("cantidad inválida: %q", q)
		}
	}

	seq, err := uc.materialRepo.NextCodeSequence(company.ID, category.Prefix)
	if err != nil {
		return err
	}

	now := time.Now()
	m := &entity.Material{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Code:         fmt.Sprintf("%s-%04d", category.Prefix, seq),
		Name:         cell(colProduct),
		Brand:        cell(colBrand),
		Model:        cell(colModel),
		Category:     category.Name,
		SubFamily:    cell(colSubFamily),
		Condition:    cell(colCondition),
		SerialNumber: cell(colSerial),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.materialRepo.Create(m); err != nil {
		return err
	}
	_, err = uc.applyMovement.ApplyMovement(ctx, ledger.MovementInput{
		CompanyID:  company.ID,
		UserID:     userID,
		MaterialID: m.ID,
		Type:       entity.MovementInitial,
		Quantity:   quantity,
		Notes:      "importación de planilla",
	})
	return err
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
