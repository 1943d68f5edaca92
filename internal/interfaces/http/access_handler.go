package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cuerpodebomberos/intranet-api/internal/application/usecase"
)

// AccessHandler expone la tabla de reglas de acceso como JSON para que el
// frontend decida qué mostrar con la misma fuente que usa el backend para
// autorizar.
type AccessHandler struct {
	svc *usecase.AccessService
}

// NewAccessHandler construye el handler.
func NewAccessHandler(svc *usecase.AccessService) *AccessHandler {
	return &AccessHandler{svc: svc}
}

// Rules godoc
// @Summary      Tabla de reglas de acceso por rol
// @Tags         access
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /api/access/rules [get]
func (h *AccessHandler) Rules(c *fiber.Ctx) error {
	rules := h.svc.Rules()
	return c.JSON(fiber.Map{"rules": rules})
}
