package certificate

import (
	"context"

	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

// TxRunner ejecuta el alta de un acta en una transacción: cabecera, líneas y
// un movimiento del libro por línea, todo junto o nada.
type TxRunner interface {
	RunCertificate(ctx context.Context, fn func(
		materialRepo repository.MaterialRepository,
		historyRepo repository.MaterialHistoryRepository,
		assignedRepo repository.AssignedMaterialRepository,
		certRepo repository.CertificateRepository,
	) error) error
}

// PDFGenerator renderiza un acta como PDF (representación impresa para firma).
type PDFGenerator interface {
	GenerateCertificatePDF(
		ctx context.Context,
		cert *entity.Certificate,
		company *entity.Company,
		firefighter *entity.User,
		materials map[string]*entity.Material,
	) ([]byte, error)

	GenerateAssignmentSheetPDF(
		ctx context.Context,
		company *entity.Company,
		firefighter *entity.User,
		tallies []*entity.AssignedMaterial,
		materials map[string]*entity.Material,
	) ([]byte, error)
}
