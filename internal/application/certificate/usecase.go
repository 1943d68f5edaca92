package certificate

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

// UseCase crea y consulta actas de entrega y recepción de material.
// Crear un acta descuenta (o repone) el stock de cada línea y mantiene el
// cargo del bombero, en una única transacción.
type UseCase struct {
	txRunner TxRunner
	certRepo repository.CertificateRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, certRepo repository.CertificateRepository) *UseCase {
	return &UseCase{txRunner: txRunner, certRepo: certRepo}
}

// CreateDelivery crea un acta de entrega: una fila DELIVERY (delta negativo)
// por línea, con el acta como referencia. Si alguna línea falla (stock
// insuficiente, material inexistente) no se persiste nada.
func (uc *UseCase) CreateDelivery(ctx context.Context, companyID, userID string, in dto.CreateCertificateRequest) (*entity.Certificate, error) {
	return uc.create(ctx, companyID, userID, entity.CertificateDelivery, in)
}

// CreateReception crea un acta de recepción: una fila RECEPTION (delta
// positivo) por línea. Falla con ErrOverReception si alguna línea dejaría el
// cargo del bombero negativo.
func (uc *UseCase) CreateReception(ctx context.Context, companyID, userID string, in dto.CreateCertificateRequest) (*entity.Certificate, error) {
	return uc.create(ctx, companyID, userID, entity.CertificateReception, in)
}

func (uc *UseCase) create(ctx context.Context, companyID, userID, certType string, in dto.CreateCertificateRequest) (*entity.Certificate, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.FirefighterID == "" && in.AssigneeName == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.MaterialID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	assignmentType := in.AssignmentType
	if assignmentType == "" {
		assignmentType = entity.AssignmentPersonal
	}

	cert := &entity.Certificate{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		Type:           certType,
		FirefighterID:  in.FirefighterID,
		AssigneeName:   in.AssigneeName,
		AssignmentType: assignmentType,
		IssuedByID:     userID,
		Date:           date,
		Notes:          in.Notes,
		CreatedAt:      now,
	}
	for i, item := range in.Items {
		cert.Items = append(cert.Items, entity.CertificateItem{
			ID:            uuid.New().String(),
			CertificateID: cert.ID,
			MaterialID:    item.MaterialID,
			Quantity:      item.Quantity,
			Position:      i,
		})
	}

	movType := entity.MovementDelivery
	refType := entity.RefDeliveryCertificate
	if certType == entity.CertificateReception {
		movType = entity.MovementReception
		refType = entity.RefReceptionCertificate
	}

	err := uc.txRunner.RunCertificate(ctx, func(
		materialRepo repository.MaterialRepository,
		historyRepo repository.MaterialHistoryRepository,
		assignedRepo repository.AssignedMaterialRepository,
		certRepo repository.CertificateRepository,
	) error {
		if err := certRepo.Create(cert); err != nil {
			return err
		}
		// Una fila del libro por línea, respetando el orden del acta.
		for _, item := range cert.Items {
			_, err := ledger.ApplyInTx(materialRepo, historyRepo, assignedRepo, ledger.MovementInput{
				CompanyID:     companyID,
				UserID:        userID,
				MaterialID:    item.MaterialID,
				Type:          movType,
				Quantity:      item.Quantity,
				FirefighterID: cert.FirefighterID,
				ReferenceType: refType,
				ReferenceID:   cert.ID,
			}, now)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cert, nil
}

// GetByID devuelve un acta de la compañía indicada.
func (uc *UseCase) GetByID(companyID, id string) (*entity.Certificate, error) {
	cert, err := uc.certRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, domain.ErrNotFound
	}
	if cert.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return cert, nil
}

// List lista actas de la compañía, opcionalmente filtradas por tipo.
func (uc *UseCase) List(companyID, certType string, limit, offset int) ([]*entity.Certificate, error) {
	return uc.certRepo.ListByCompany(companyID, certType, limit, offset)
}
