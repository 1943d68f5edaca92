package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cuerpodebomberos/intranet-api/internal/application/dto"
	"github.com/cuerpodebomberos/intranet-api/internal/application/pettycash"
)

// PettyCashHandler maneja rendiciones de caja chica (protegido).
type PettyCashHandler struct {
	uc *pettycash.UseCase
}

// NewPettyCashHandler construye el handler.
func NewPettyCashHandler(uc *pettycash.UseCase) *PettyCashHandler {
	return &PettyCashHandler{uc: uc}
}

// Create crea una rendición en borrador.
func (h *PettyCashHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRenditionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	r, err := h.uc.Create(GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRenditionResponse(r))
}

// Submit envía el borrador a revisión del inspector (solo el autor).
func (h *PettyCashHandler) Submit(c *fiber.Ctx) error {
	r, err := h.uc.Submit(GetCompanyID(c), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toRenditionResponse(r))
}

// Review visa la rendición (inspector) y la pasa al comandante.
func (h *PettyCashHandler) Review(c *fiber.Ctx) error {
	r, err := h.uc.Review(GetCompanyID(c), GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toRenditionResponse(r))
}

// Approve aprueba la rendición (comandante).
func (h *PettyCashHandler) Approve(c *fiber.Ctx) error {
	r, err := h.uc.Approve(GetCompanyID(c), GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toRenditionResponse(r))
}

// Reject rechaza la rendición con motivo obligatorio (comandante).
func (h *PettyCashHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectRenditionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	r, err := h.uc.Reject(GetCompanyID(c), GetUserID(c), GetRole(c), c.Params("id"), in.Reason)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toRenditionResponse(r))
}

// GetByID obtiene una rendición.
func (h *PettyCashHandler) GetByID(c *fiber.Ctx) error {
	r, err := h.uc.GetByID(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toRenditionResponse(r))
}

// List lista rendiciones; ?status= filtra por estado.
func (h *PettyCashHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.List(GetCompanyID(c), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "renditions": toRenditionList(list)})
}
