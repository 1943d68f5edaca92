package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/cuerpodebomberos/intranet-api/internal/domain"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

// CompanyUseCase administración de compañías del cuerpo.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una compañía.
func (uc *CompanyUseCase) Create(name, address, phone, email string) (*entity.Company, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	c := &entity.Company{
		ID:        uuid.New().String(),
		Name:      name,
		Address:   address,
		Phone:     phone,
		Email:     email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID devuelve una compañía.
func (uc *CompanyUseCase) GetByID(id string) (*entity.Company, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// List lista compañías.
func (uc *CompanyUseCase) List(limit, offset int) ([]*entity.Company, error) {
	return uc.repo.List(limit, offset)
}
