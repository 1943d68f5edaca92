package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/cuerpodebomberos/intranet-api/internal/application/dto"
	"github.com/cuerpodebomberos/intranet-api/internal/application/tickets"
)

// TicketHandler maneja tickets de soporte (protegido).
type TicketHandler struct {
	uc *tickets.UseCase
}

// NewTicketHandler construye el handler.
func NewTicketHandler(uc *tickets.UseCase) *TicketHandler {
	return &TicketHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir ticket de soporte
// @Description  Acepta multipart con un adjunto opcional en el campo
//
//	"attachment"; el archivo se guarda dentro del mismo request.
//
// @Tags         tickets
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  dto.TicketResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/tickets [post]
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	var attachment io.Reader
	var attachmentName string
	if fh, err := c.FormFile("attachment"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el adjunto"})
		}
		defer f.Close()
		attachment = f
		attachmentName = fh.Filename
	}

	t, err := h.uc.Create(GetCompanyID(c), GetUserID(c), in, attachmentName, attachment)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTicketResponse(t))
}

// Assign toma el ticket (open → in_progress) asignándolo al usuario del token.
func (h *TicketHandler) Assign(c *fiber.Ctx) error {
	t, err := h.uc.Assign(GetCompanyID(c), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toTicketResponse(t))
}

// Close cierra el ticket.
func (h *TicketHandler) Close(c *fiber.Ctx) error {
	t, err := h.uc.Close(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toTicketResponse(t))
}

// GetByID obtiene un ticket.
func (h *TicketHandler) GetByID(c *fiber.Ctx) error {
	t, err := h.uc.GetByID(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toTicketResponse(t))
}

// List lista tickets; ?status= filtra por estado.
func (h *TicketHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.List(GetCompanyID(c), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "tickets": toTicketList(list)})
}
