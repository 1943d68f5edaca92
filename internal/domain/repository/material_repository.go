package repository

import "github.com/cuerpodebomberos/intranet-api/internal/domain/entity"

// MaterialRepository define el puerto de persistencia para materiales.
// GetForUpdate solo tiene sentido dentro de una transacción (SELECT FOR UPDATE).
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	GetByCode(companyID, code string) (*entity.Material, error)
	GetForUpdate(id string) (*entity.Material, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Material, error)
	Update(material *entity.Material) error
	UpdateStock(id string, quantity int) error
	// NextCodeSequence devuelve el siguiente correlativo para códigos {PREFIJO}-{n}.
	NextCodeSequence(companyID, prefix string) (int, error)
}

// MaterialHistoryRepository define el puerto del libro de material.
// Las filas son inmutables: solo Create y lecturas.
type MaterialHistoryRepository interface {
	Create(row *entity.MaterialHistory) error
	ListByMaterial(materialID string, limit, offset int) ([]*entity.MaterialHistory, error)
}

// AssignedMaterialRepository define el puerto del cargo vigente por
// (bombero, material). GetForUpdate bloquea la fila dentro de la transacción.
type AssignedMaterialRepository interface {
	GetForUpdate(firefighterID, materialID string) (*entity.AssignedMaterial, error)
	Upsert(tally *entity.AssignedMaterial) error
	ListByFirefighter(firefighterID string) ([]*entity.AssignedMaterial, error)
}
