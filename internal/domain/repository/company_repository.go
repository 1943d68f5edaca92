package repository

import "github.com/cuerpodebomberos/intranet-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para compañías.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByName(name string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
}
