package usecase

import (
	"context"
	"fmt"

	"github.com/cuerpodebomberos/intranet-api/internal/domain/access"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/repository"
)

// AccessService evalúa la tabla de reglas contra el usuario persistido.
// Es el único punto del servidor que decide acceso a módulos; el front-end
// consume la misma tabla servida como datos (Rules).
type AccessService struct {
	userRepo repository.UserRepository
	rules    access.Ruleset
}

// NewAccessService construye el servicio con la tabla autoritativa.
func NewAccessService(userRepo repository.UserRepository) *AccessService {
	return &AccessService{userRepo: userRepo, rules: access.Default()}
}

// Can informa si el usuario puede ejecutar la acción sobre el módulo.
// Devuelve false (sin error) cuando el resolver deniega; error solo ante
// fallos de infraestructura (DB caída, usuario inexistente).
func (s *AccessService) Can(ctx context.Context, userID, module, action string) (bool, error) {
	if userID == "" || module == "" {
		return false, fmt.Errorf("access: userID y module son obligatorios")
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, fmt.Errorf("access: usuario %s no existe", userID)
	}
	return s.rules.Can(user, module, action), nil
}

// Rules expone la tabla para servirla al cliente.
func (s *AccessService) Rules() access.Ruleset {
	return s.rules
}
