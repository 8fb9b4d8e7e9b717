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

	"github.com/jhoicas/tiktrack-api/internal/application/auth"
	"github.com/jhoicas/tiktrack-api/internal/application/inventory"
	"github.com/jhoicas/tiktrack-api/internal/application/ledger"
	"github.com/jhoicas/tiktrack-api/internal/application/profit"
	"github.com/jhoicas/tiktrack-api/internal/application/reports"
	"github.com/jhoicas/tiktrack-api/internal/application/sales"
	"github.com/jhoicas/tiktrack-api/internal/application/stats"
	"github.com/jhoicas/tiktrack-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/tiktrack-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tiktrack-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/tiktrack-api/internal/interfaces/http"
	"github.com/jhoicas/tiktrack-api/pkg/config"
	"github.com/jhoicas/tiktrack-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	ownerRepo := postgres.NewOwnerRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, ownerRepo, analyticsRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, productRepo, ownerRepo)
	ownerUC := usecase.NewOwnerUseCase(ownerRepo, productRepo)
	addBatchUC := inventory.NewAddBatchUseCase(txRunner, batchRepo)
	saleUC := sales.NewSaleUseCase(txRunner)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := reports.NewReportUseCase(reportRepo, saleRepo, expenseRepo, pdfGenerator)
	profitUC := profit.NewUseCase(txRunner, ownerRepo, productRepo, saleRepo, expenseRepo, reportRepo, ledgerRepo)
	ledgerUC := ledger.NewUseCase(txRunner, ownerRepo, ledgerRepo)
	statsUC := stats.NewUseCase(analyticsRepo, expenseRepo, ownerRepo)

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
		Title:    "TikTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ProductUC: productUC,
		ExpenseUC: expenseUC,
		OwnerUC:   ownerUC,
		AddBatch:  addBatchUC,
		SaleUC:    saleUC,
		ReportUC:  reportUC,
		ProfitUC:  profitUC,
		LedgerUC:  ledgerUC,
		StatsUC:   statsUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
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
