package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

// SeedUseCase carga datos iniciales desde CSV externos: crea compañías
// canónicas si faltan y da de alta usuarios, resolviendo las grafías de
// compañía del archivo con el mismo diccionario de la planilla.
//
// Formato esperado (con encabezado): nombre,email,rol,departamento,compañía
type SeedUseCase struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
}

// NewSeedUseCase construye el caso de uso de seed.
func NewSeedUseCase(companyRepo repository.CompanyRepository, userRepo repository.UserRepository) *SeedUseCase {
	return &SeedUseCase{companyRepo: companyRepo, userRepo: userRepo}
}

// SeedUsers lee el CSV y crea usuarios (password inicial = parte local del
// email; se fuerza cambio en el primer ingreso desde el front-end).
// Devuelve cuántos se crearon y los errores por línea.
func (uc *SeedUseCase) SeedUsers(r io.Reader) (int, []error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var created int
	var errs []error
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			errs = append(errs, fmt.Errorf("línea %d: %w", line, err))
			continue
		}
		if line == 1 {
			continue // encabezado
		}
		if len(record) < 5 {
			errs = append(errs, fmt.Errorf("línea %d: faltan columnas", line))
			continue
		}
		if err := uc.seedUser(record); err != nil {
			errs = append(errs, fmt.Errorf("línea %d: %w", line, err))
			continue
		}
		created++
	}
	return created, errs
}

func (uc *SeedUseCase) seedUser(record []string) error {
	name := strings.TrimSpace(record[0])
	email := strings.TrimSpace(record[1])
	role := strings.TrimSpace(record[2])
	department := strings.TrimSpace(record[3])
	rawCompany := record[4]

	if email == "" {
		return fmt.Errorf("email vacío")
	}
	companyName, ok := CompanyForPlace(rawCompany)
	if !ok {
		return fmt.Errorf("compañía no reconocida: %q", rawCompany)
	}
	company, err := uc.ensureCompany(companyName)
	if err != nil {
		return err
	}

	existing, _ := uc.userRepo.FindByEmail(email)
	if existing != nil {
		return nil // ya sembrado
	}

	localPart := email
	if at := strings.Index(email, "@"); at > 0 {
		localPart = email[:at]
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(localPart), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if role == "" {
		role = entity.RoleGenerico
	}
	now := time.Now()
	return uc.userRepo.Create(&entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Department:   department,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (uc *SeedUseCase) ensureCompany(name string) (*entity.Company, error) {
	company, err := uc.companyRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if company != nil {
		return company, nil
	}
	now := time.Now()
	company = &entity.Company{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}
