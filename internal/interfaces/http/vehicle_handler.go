package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cuerpodebomberos/intranet-api/internal/application/dto"
	"github.com/cuerpodebomberos/intranet-api/internal/application/fleet"
)

// VehicleHandler maneja el parque vehicular: taller, novedades y revisiones
// (protegido).
type VehicleHandler struct {
	uc *fleet.UseCase
}

// NewVehicleHandler construye el handler.
func NewVehicleHandler(uc *fleet.UseCase) *VehicleHandler {
	return &VehicleHandler{uc: uc}
}

// Create crea un vehículo (nace operativo).
func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	v, err := h.uc.CreateVehicle(GetCompanyID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toVehicleResponse(v))
}

// GetByID obtiene un vehículo.
func (h *VehicleHandler) GetByID(c *fiber.Ctx) error {
	v, err := h.uc.GetVehicle(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toVehicleResponse(v))
}

// List lista los vehículos de la compañía.
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.ListVehicles(GetCompanyID(c), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "vehicles": toVehicleList(list)})
}

// EnterWorkshop godoc
// @Summary      Ingresar vehículo a taller
// @Description  Abre una orden de mantención y deja el vehículo in_workshop.
// @Tags         vehicles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del vehículo"
// @Param        body  body  dto.CreateMaintenanceRequest  true  "descripción"
// @Success      201   {object}  dto.MaintenanceResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vehicles/{id}/workshop [post]
func (h *VehicleHandler) EnterWorkshop(c *fiber.Ctx) error {
	var in dto.CreateMaintenanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.uc.EnterWorkshop(GetCompanyID(c), GetUserID(c), GetRole(c), c.Params("id"), in.Description)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMaintenanceResponse(m))
}

// CompleteMaintenance godoc
// @Summary      Cerrar orden de mantención
// @Description  Consume los materiales usados (movimientos MAINTENANCE del
//
//	libro) y devuelve el vehículo a operativo, o lo deja fuera de
//	servicio si out_of_service es true.
//
// @Tags         vehicles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden de mantención"
// @Param        body  body  dto.CompleteMaintenanceRequest  true  "materiales usados"
// @Success      200   {object}  dto.MaintenanceResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/maintenances/{id}/complete [post]
func (h *VehicleHandler) CompleteMaintenance(c *fiber.Ctx) error {
	var in dto.CompleteMaintenanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.uc.CompleteMaintenance(c.Context(), GetCompanyID(c), GetUserID(c), GetRole(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toMaintenanceResponse(m))
}

// ReportIssue reporta una novedad sobre un vehículo.
func (h *VehicleHandler) ReportIssue(c *fiber.Ctx) error {
	var in dto.CreateIssueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	issue, err := h.uc.ReportIssue(GetCompanyID(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toIssueResponse(issue))
}

// ReviewIssue marca la novedad como revisada (capitán).
func (h *VehicleHandler) ReviewIssue(c *fiber.Ctx) error {
	issue, err := h.uc.ReviewIssue(GetCompanyID(c), GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toIssueResponse(issue))
}

// ResolveIssue cierra la novedad.
func (h *VehicleHandler) ResolveIssue(c *fiber.Ctx) error {
	issue, err := h.uc.ResolveIssue(GetCompanyID(c), GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toIssueResponse(issue))
}

// ListIssues lista las novedades de un vehículo.
func (h *VehicleHandler) ListIssues(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.ListIssues(GetCompanyID(c), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "issues": toIssueList(list)})
}

// CreateChecklist registra una revisión de carro; los ítems observados abren
// novedades automáticamente.
func (h *VehicleHandler) CreateChecklist(c *fiber.Ctx) error {
	var in dto.CreateChecklistRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cl, err := h.uc.CreateChecklist(GetCompanyID(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toChecklistResponse(cl))
}

// ListChecklists lista las revisiones de un vehículo.
func (h *VehicleHandler) ListChecklists(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.ListChecklists(GetCompanyID(c), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "checklists": toChecklistList(list)})
}
