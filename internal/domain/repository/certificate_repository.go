package repository

import "github.com/cuerpodebomberos/intranet-api/internal/domain/entity"

// CertificateRepository define el puerto de persistencia para actas de
// entrega/recepción (cabecera + líneas).
type CertificateRepository interface {
	Create(cert *entity.Certificate) error
	GetByID(id string) (*entity.Certificate, error)
	ListByCompany(companyID, certType string, limit, offset int) ([]*entity.Certificate, error)
}
