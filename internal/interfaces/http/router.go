package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cuerpodebomberos/intranet-api/internal/application/auth"
	"github.com/cuerpodebomberos/intranet-api/internal/application/certificate"
	"github.com/cuerpodebomberos/intranet-api/internal/application/fleet"
	"github.com/cuerpodebomberos/intranet-api/internal/application/importer"
	"github.com/cuerpodebomberos/intranet-api/internal/application/pettycash"
	"github.com/cuerpodebomberos/intranet-api/internal/application/tickets"
	"github.com/cuerpodebomberos/intranet-api/internal/application/usecase"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	CompanyUC     *usecase.CompanyUseCase
	MaterialUC    *usecase.MaterialUseCase
	ImporterUC    *importer.SpreadsheetUseCase
	CertificateUC *certificate.UseCase
	CertPDFUC     *certificate.PDFUseCase
	FleetUC       *fleet.UseCase
	TicketUC      *tickets.UseCase
	PettyCashUC   *pettycash.UseCase
	AccessSvc     *usecase.AccessService
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, perfil protegido)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Tabla de reglas de acceso (cualquier usuario autenticado)
	accessHandler := NewAccessHandler(deps.AccessSvc)
	protected.Get("/access/rules", accessHandler.Rules)

	can := func(module, action string) fiber.Handler {
		return RequireAccess(module, action, deps.AccessSvc)
	}

	// Users (módulo users)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", can(access.ModUsers, access.ActionCreate), userHandler.Create)
	users.Get("/", can(access.ModUsers, access.ActionView), userHandler.List)
	users.Get("/:id", can(access.ModUsers, access.ActionView), userHandler.GetByID)
	users.Put("/:id", can(access.ModUsers, access.ActionEdit), userHandler.Update)

	// Companies (módulo users: solo administración las toca)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", can(access.ModUsers, access.ActionCreate), companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)

	// Materials (módulo inventory)
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC, deps.ImporterUC)
	materials.Post("/", can(access.ModInventory, access.ActionCreate), materialHandler.Create)
	materials.Get("/", can(access.ModInventory, access.ActionView), materialHandler.List)
	materials.Post("/import", can(access.ModInventory, access.ActionCreate), materialHandler.Import)
	materials.Get("/:id", can(access.ModInventory, access.ActionView), materialHandler.GetByID)
	materials.Put("/:id", can(access.ModInventory, access.ActionEdit), materialHandler.Update)
	materials.Get("/:id/history", can(access.ModInventory, access.ActionView), materialHandler.History)
	materials.Post("/:id/movements", can(access.ModInventory, access.ActionEdit), materialHandler.RegisterMovement)

	// Certificates (entregas y recepciones)
	certs := protected.Group("/certificates")
	certHandler := NewCertificateHandler(deps.CertificateUC, deps.CertPDFUC)
	certs.Post("/delivery", can(access.ModDeliveries, access.ActionCreate), certHandler.CreateDelivery)
	certs.Post("/reception", can(access.ModReception, access.ActionCreate), certHandler.CreateReception)
	certs.Get("/", can(access.ModDeliveries, access.ActionView), certHandler.List)
	certs.Get("/:id", can(access.ModDeliveries, access.ActionView), certHandler.GetByID)
	certs.Get("/:id/pdf", can(access.ModDeliveries, access.ActionView), certHandler.PDF)
	protected.Get("/firefighters/:id/assignments", can(access.ModDeliveries, access.ActionView), certHandler.Assignments)
	protected.Get("/firefighters/:id/assignment-sheet", can(access.ModDeliveries, access.ActionView), certHandler.AssignmentSheetPDF)

	// Vehicles (parque vehicular)
	vehicles := protected.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.FleetUC)
	vehicles.Post("/", can(access.ModVehicles, access.ActionCreate), vehicleHandler.Create)
	vehicles.Get("/", can(access.ModVehicles, access.ActionView), vehicleHandler.List)
	vehicles.Get("/:id", can(access.ModVehicles, access.ActionView), vehicleHandler.GetByID)
	// Entrada y salida de taller cambian el estado del vehículo, así que la
	// puerta es vehicles.status: la tabla de transiciones afina por rol.
	vehicles.Post("/:id/workshop", can(access.ModVehicleStatus, access.ActionEdit), vehicleHandler.EnterWorkshop)
	vehicles.Post("/:id/issues", can(access.ModVehicleIncidents, access.ActionCreate), vehicleHandler.ReportIssue)
	vehicles.Get("/:id/issues", can(access.ModVehicleIncidents, access.ActionView), vehicleHandler.ListIssues)
	vehicles.Post("/:id/checklists", can(access.ModVehicleChecklist, access.ActionCreate), vehicleHandler.CreateChecklist)
	vehicles.Get("/:id/checklists", can(access.ModVehicleChecklist, access.ActionView), vehicleHandler.ListChecklists)
	protected.Post("/issues/:id/review", can(access.ModVehicleIncidents, access.ActionEdit), vehicleHandler.ReviewIssue)
	protected.Post("/issues/:id/resolve", can(access.ModVehicleIncidents, access.ActionEdit), vehicleHandler.ResolveIssue)
	protected.Post("/maintenances/:id/complete", can(access.ModVehicleStatus, access.ActionEdit), vehicleHandler.CompleteMaintenance)

	// Tickets (soporte)
	ticketGroup := protected.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC)
	ticketGroup.Post("/", can(access.ModTickets, access.ActionCreate), ticketHandler.Create)
	ticketGroup.Get("/", can(access.ModTickets, access.ActionView), ticketHandler.List)
	ticketGroup.Get("/:id", can(access.ModTickets, access.ActionView), ticketHandler.GetByID)
	ticketGroup.Post("/:id/assign", can(access.ModTickets, access.ActionEdit), ticketHandler.Assign)
	ticketGroup.Post("/:id/close", can(access.ModTickets, access.ActionEdit), ticketHandler.Close)

	// Petty cash (caja chica)
	renditions := protected.Group("/pettycash")
	pettyCashHandler := NewPettyCashHandler(deps.PettyCashUC)
	renditions.Post("/", can(access.ModPettyCash, access.ActionCreate), pettyCashHandler.Create)
	renditions.Get("/", can(access.ModPettyCash, access.ActionView), pettyCashHandler.List)
	renditions.Get("/:id", can(access.ModPettyCash, access.ActionView), pettyCashHandler.GetByID)
	renditions.Post("/:id/submit", can(access.ModPettyCash, access.ActionEdit), pettyCashHandler.Submit)
	renditions.Post("/:id/review", can(access.ModPettyCash, access.ActionEdit), pettyCashHandler.Review)
	renditions.Post("/:id/approve", can(access.ModPettyCash, access.ActionEdit), pettyCashHandler.Approve)
	renditions.Post("/:id/reject", can(access.ModPettyCash, access.ActionEdit), pettyCashHandler.Reject)
}
