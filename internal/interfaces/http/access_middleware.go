package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/cuerpodebomberos/intranet-api/internal/application/dto"
)

// accessChecker es el contrato mínimo que necesita el middleware para resolver
// el acceso. Lo implementa *usecase.AccessService; el uso de interfaz evita el
// import circular.
type accessChecker interface {
	Can(ctx context.Context, userID, module, action string) (bool, error)
}

// RequireAccess devuelve un middleware Fiber que resuelve si el usuario del
// token puede ejecutar la acción sobre el módulo. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalUserID).
//
// Comportamiento:
//   - 403 Forbidden → la tabla de reglas niega la acción.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
//   - Si no hay user_id en el contexto, responde 401.
func RequireAccess(module, action string, checker accessChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}

		allowed, err := checker.Can(c.Context(), userID, module, action)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ACCESS_CHECK_FAILED",
				Message: "no se pudo verificar el acceso, intente más tarde",
			})
		}

		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "sin acceso al módulo '" + module + "'",
			})
		}

		return c.Next()
	}
}
