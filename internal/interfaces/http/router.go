package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tiktrack-api/internal/application/auth"
	"github.com/jhoicas/tiktrack-api/internal/application/inventory"
	"github.com/jhoicas/tiktrack-api/internal/application/ledger"
	"github.com/jhoicas/tiktrack-api/internal/application/profit"
	"github.com/jhoicas/tiktrack-api/internal/application/reports"
	"github.com/jhoicas/tiktrack-api/internal/application/sales"
	"github.com/jhoicas/tiktrack-api/internal/application/stats"
	"github.com/jhoicas/tiktrack-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	ExpenseUC *usecase.ExpenseUseCase
	OwnerUC   *usecase.OwnerUseCase
	AddBatch  *inventory.AddBatchUseCase
	SaleUC    *sales.SaleUseCase
	ReportUC  *reports.ReportUseCase
	ProfitUC  *profit.UseCase
	LedgerUC  *ledger.UseCase
	StatsUC   *stats.UseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AddBatch)
	invGroup.Post("/batch", inventoryHandler.AddBatch)
	invGroup.Get("/batches/:product_id", inventoryHandler.ListBatches)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Record)

	// Daily reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.SaleUC, deps.ProfitUC)
	reportsGroup.Post("/", reportHandler.Create)
	reportsGroup.Get("/", reportHandler.List)
	reportsGroup.Get("/export/pdf", reportHandler.ExportPDF)
	reportsGroup.Get("/:date", reportHandler.GetByDate)
	reportsGroup.Put("/:id", reportHandler.Update)
	reportsGroup.Put("/:id/profit-distribute", reportHandler.Distribute)

	// Expenses (protegido)
	expensesGroup := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expensesGroup.Post("/", expenseHandler.Create)
	expensesGroup.Get("/", expenseHandler.List)

	// Owners y su libro (protegido)
	ownersGroup := protected.Group("/owners")
	ownerHandler := NewOwnerHandler(deps.OwnerUC, deps.LedgerUC)
	ownersGroup.Post("/", ownerHandler.Create)
	ownersGroup.Get("/", ownerHandler.List)
	ownersGroup.Post("/payment", ownerHandler.RecordPayment)
	ownersGroup.Get("/payments", ownerHandler.Payments)
	ownersGroup.Post("/:owner_id/equity", ownerHandler.SetEquity)
	ownersGroup.Post("/:owner_id/withdraw", ownerHandler.Withdraw)
	ownersGroup.Get("/:owner_id/balance", ownerHandler.Balance)

	// Stats (protegido)
	statsGroup := protected.Group("/stats")
	statsHandler := NewStatsHandler(deps.StatsUC, deps.ProfitUC)
	statsGroup.Get("/history", statsHandler.History)
	statsGroup.Get("/product-performance", statsHandler.ProductPerformance)
	statsGroup.Get("/top-payers", statsHandler.TopPayers)
	statsGroup.Get("/expenses-liability", statsHandler.ExpensesLiability)
	statsGroup.Get("/owner-profits", statsHandler.OwnerProfits)
}
