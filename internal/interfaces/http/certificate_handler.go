package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cuerpodebomberos/intranet-api/internal/application/certificate"
	"github.com/cuerpodebomberos/intranet-api/internal/application/dto"
)

// CertificateHandler maneja actas de entrega/recepción y sus PDF (protegido).
type CertificateHandler struct {
	uc  *certificate.UseCase
	pdf *certificate.PDFUseCase
}

// NewCertificateHandler construye el handler.
func NewCertificateHandler(uc *certificate.UseCase, pdf *certificate.PDFUseCase) *CertificateHandler {
	return &CertificateHandler{uc: uc, pdf: pdf}
}

// CreateDelivery godoc
// @Summary      Crear acta de entrega
// @Description  Descuenta stock y suma al cargo del bombero, una línea por
//
//	ítem, todo en una transacción: o el acta completa o nada.
//
// @Tags         certificates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCertificateRequest  true  "cabecera + líneas"
// @Success      201   {object}  dto.CertificateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/certificates/delivery [post]
func (h *CertificateHandler) CreateDelivery(c *fiber.Ctx) error {
	var in dto.CreateCertificateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cert, err := h.uc.CreateDelivery(c.Context(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCertificateResponse(cert))
}

// CreateReception godoc
// @Summary      Crear acta de recepción (devolución)
// @Tags         certificates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCertificateRequest  true  "cabecera + líneas"
// @Success      201   {object}  dto.CertificateResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/certificates/reception [post]
func (h *CertificateHandler) CreateReception(c *fiber.Ctx) error {
	var in dto.CreateCertificateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cert, err := h.uc.CreateReception(c.Context(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCertificateResponse(cert))
}

// GetByID obtiene un acta con sus líneas.
func (h *CertificateHandler) GetByID(c *fiber.Ctx) error {
	cert, err := h.uc.GetByID(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toCertificateResponse(cert))
}

// List lista actas; ?type=delivery|reception filtra por tipo.
func (h *CertificateHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.List(GetCompanyID(c), c.Query("type"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "certificates": toCertificateList(list)})
}

// PDF descarga la representación impresa del acta para firma.
func (h *CertificateHandler) PDF(c *fiber.Ctx) error {
	data, err := h.pdf.CertificatePDF(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="acta_`+c.Params("id")+`.pdf"`)
	return c.Send(data)
}

// Assignments devuelve el cargo vigente de un bombero en JSON.
func (h *CertificateHandler) Assignments(c *fiber.Ctx) error {
	tallies, materials, err := h.pdf.Assignments(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.AssignedMaterialResponse, 0, len(tallies))
	for _, t := range tallies {
		out = append(out, toAssignedResponse(t, materials[t.MaterialID]))
	}
	return c.JSON(fiber.Map{"total": len(out), "assignments": out})
}

// AssignmentSheetPDF descarga la hoja de cargo vigente de un bombero.
func (h *CertificateHandler) AssignmentSheetPDF(c *fiber.Ctx) error {
	data, err := h.pdf.AssignmentSheetPDF(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="hoja_cargo_`+c.Params("id")+`.pdf"`)
	return c.Send(data)
}
