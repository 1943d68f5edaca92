package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/cuerpodebomberos/intranet-api/internal/application/auth"
	appcert "github.com/cuerpodebomberos/intranet-api/internal/application/certificate"
	"github.com/cuerpodebomberos/intranet-api/internal/application/fleet"
	"github.com/cuerpodebomberos/intranet-api/internal/application/importer"
	"github.com/cuerpodebomberos/intranet-api/internal/application/ledger"
	"github.com/cuerpodebomberos/intranet-api/internal/application/pettycash"
	"github.com/cuerpodebomberos/intranet-api/internal/application/tickets"
	"github.com/cuerpodebomberos/intranet-api/internal/application/usecase"
	infrapdf "github.com/cuerpodebomberos/intranet-api/internal/infrastructure/pdf"
	"github.com/cuerpodebomberos/intranet-api/internal/infrastructure/postgres"
	"github.com/cuerpodebomberos/intranet-api/internal/infrastructure/storage"
	httpRouter "github.com/cuerpodebomberos/intranet-api/internal/interfaces/http"
	"github.com/cuerpodebomberos/intranet-api/pkg/config"
	"github.com/cuerpodebomberos/intranet-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	historyRepo := postgres.NewMaterialHistoryRepository(pool)
	assignedRepo := postgres.NewAssignedMaterialRepository(pool)
	certRepo := postgres.NewCertificateRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	issueRepo := postgres.NewVehicleIssueRepository(pool)
	maintenanceRepo := postgres.NewVehicleMaintenanceRepository(pool)
	checklistRepo := postgres.NewVehicleChecklistRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	pettyCashRepo := postgres.NewPettyCashRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	applyMovementUC := ledger.NewApplyMovementUseCase(txRunner)
	materialUC := usecase.NewMaterialUseCase(materialRepo, historyRepo, applyMovementUC)
	importerUC := importer.NewSpreadsheetUseCase(companyRepo, materialRepo, applyMovementUC)
	certUC := appcert.NewUseCase(txRunner, certRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	certPDFUC := appcert.NewPDFUseCase(certRepo, companyRepo, userRepo, materialRepo, assignedRepo, pdfGenerator)

	fleetUC := fleet.NewUseCase(vehicleRepo, issueRepo, maintenanceRepo, checklistRepo, txRunner)
	pettyCashUC := pettycash.NewUseCase(pettyCashRepo)

	fileStore, err := storage.NewLocalStore(cfg.Storage.UploadDir, cfg.Storage.MaxUploadSize)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de adjuntos")
	}
	ticketUC := tickets.NewUseCase(ticketRepo, fileStore)

	userUC := usecase.NewUserUseCase(userRepo, companyRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	accessSvc := usecase.NewAccessService(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Intranet Bomberos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		CompanyUC:     companyUC,
		MaterialUC:    materialUC,
		ImporterUC:    importerUC,
		CertificateUC: certUC,
		CertPDFUC:     certPDFUC,
		FleetUC:       fleetUC,
		TicketUC:      ticketUC,
		PettyCashUC:   pettyCashUC,
		AccessSvc:     accessSvc,
		JWTSecret:     cfg.JWT.Secret,
	})

	httpLog := logger.Component(log, "http")
	go func() {
		httpLog.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
