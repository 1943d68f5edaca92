package repository

import "github.com/cuerpodebomberos/intranet-api/internal/domain/entity"

// PettyCashRepository define el puerto de persistencia para rendiciones de caja chica.
type PettyCashRepository interface {
	Create(r *entity.PettyCashRendition) error
	GetByID(id string) (*entity.PettyCashRendition, error)
	ListByCompany(companyID, status string, limit, offset int) ([]*entity.PettyCashRendition, error)
	Update(r *entity.PettyCashRendition) error
}
