package certificate

import (
	"context"

	"github.com/cuerpodebomberos/intranet-api/internal/domain"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

// PDFUseCase arma los datos de un acta o de una hoja de cargo y delega el
// render al generador (solo lectura, no toca el libro).
type PDFUseCase struct {
	certRepo     repository.CertificateRepository
	companyRepo  repository.CompanyRepository
	userRepo     repository.UserRepository
	materialRepo repository.MaterialRepository
	assignedRepo repository.AssignedMaterialRepository
	generator    PDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	certRepo repository.CertificateRepository,
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	materialRepo repository.MaterialRepository,
	assignedRepo repository.AssignedMaterialRepository,
	generator PDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		certRepo:     certRepo,
		companyRepo:  companyRepo,
		userRepo:     userRepo,
		materialRepo: materialRepo,
		assignedRepo: assignedRepo,
		generator:    generator,
	}
}

// CertificatePDF genera el PDF de un acta.
func (uc *PDFUseCase) CertificatePDF(ctx context.Context, companyID, certID string) ([]byte, error) {
	cert, err := uc.certRepo.GetByID(certID)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, domain.ErrNotFound
	}
	if cert.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(cert.CompanyID)
	if err != nil {
		return nil, err
	}
	var firefighter *entity.User
	if cert.FirefighterID != "" {
		firefighter, err = uc.userRepo.GetByID(cert.FirefighterID)
		if err != nil {
			return nil, err
		}
	}
	materials := make(map[string]*entity.Material, len(cert.Items))
	for _, item := range cert.Items {
		if _, ok := materials[item.MaterialID]; ok {
			continue
		}
		m, err := uc.materialRepo.GetByID(item.MaterialID)
		if err != nil {
			return nil, err
		}
		materials[item.MaterialID] = m
	}
	return uc.generator.GenerateCertificatePDF(ctx, cert, company, firefighter, materials)
}

// Assignments devuelve el cargo vigente de un bombero con el material resuelto.
// Misma lectura que la hoja de cargo, en JSON.
func (uc *PDFUseCase) Assignments(companyID, firefighterID string) ([]*entity.AssignedMaterial, map[string]*entity.Material, error) {
	firefighter, err := uc.userRepo.GetByID(firefighterID)
	if err != nil {
		return nil, nil, err
	}
	if firefighter == nil {
		return nil, nil, domain.ErrNotFound
	}
	if firefighter.CompanyID != companyID {
		return nil, nil, domain.ErrForbidden
	}
	tallies, err := uc.assignedRepo.ListByFirefighter(firefighterID)
	if err != nil {
		return nil, nil, err
	}
	materials := make(map[string]*entity.Material, len(tallies))
	for _, t := range tallies {
		m, err := uc.materialRepo.GetByID(t.MaterialID)
		if err != nil {
			return nil, nil, err
		}
		materials[t.MaterialID] = m
	}
	return tallies, materials, nil
}

// AssignmentSheetPDF genera la hoja de cargo vigente de un bombero.
func (uc *PDFUseCase) AssignmentSheetPDF(ctx context.Context, companyID, firefighterID string) ([]byte, error) {
	firefighter, err := uc.userRepo.GetByID(firefighterID)
	if err != nil {
		return nil, err
	}
	if firefighter == nil {
		return nil, domain.ErrNotFound
	}
	if firefighter.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	tallies, err := uc.assignedRepo.ListByFirefighter(firefighterID)
	if err != nil {
		return nil, err
	}
	materials := make(map[string]*entity.Material, len(tallies))
	for _, t := range tallies {
		m, err := uc.materialRepo.GetByID(t.MaterialID)
		if err != nil {
			return nil, err
		}
		materials[t.MaterialID] = m
	}
	return uc.generator.GenerateAssignmentSheetPDF(ctx, company, firefighter, tallies, materials)
}
